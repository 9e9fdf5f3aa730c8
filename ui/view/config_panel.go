package view

import (
	"log/slog"
	"strings"

	"github.com/soocke/vaastu-overlay-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel is the settings form. ApplyChanges writes the edited values
// back into the bound config and persists it.
type ConfigPanel interface {
	Build(startRow int) (endRow int)
	SetEditable(enabled bool)
	ApplyChanges()
}

type configPanel struct {
	parent  *FrameWidget
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
	onApply func(*config.Config)
	onError func(msg string)

	applyBtn *ButtonWidget
	inputs   map[string]*TextWidget // keyed by config.Field.ID
}

// NewConfigPanel creates the form inside parent. onApply runs after a
// successful apply; onError receives rejected input.
func NewConfigPanel(parent *FrameWidget, cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config), onError func(string)) ConfigPanel {
	if logger == nil {
		logger = slog.Default()
	}
	return &configPanel{
		parent: parent, cfg: cfg, cfgPath: cfgPath, logger: logger,
		onApply: onApply, onError: onError,
		inputs: make(map[string]*TextWidget),
	}
}

func (v *configPanel) Build(startRow int) int {
	row := startRow
	title := TLabel(Txt("Settings"), Anchor("w"))
	Grid(title, In(v.parent), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.3m"))
	row++
	for _, f := range config.Fields() {
		Grid(Label(Txt(f.Label), Anchor("w")), In(v.parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		in := Text(Height(1), Width(14))
		Grid(in, In(v.parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		if v.cfg != nil {
			in.Insert("1.0", f.Get(v.cfg))
		}
		v.inputs[f.ID] = in
		row++
	}
	v.applyBtn = Button(Txt("Apply Changes"), Command(v.ApplyChanges))
	Grid(v.applyBtn, In(v.parent), Row(row), Column(0), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	return row + 1
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, in := range v.inputs {
		in.Configure(State(state))
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	values := make(map[string]string, len(v.inputs))
	for id, in := range v.inputs {
		values[id] = strings.TrimSpace(strings.Join(in.Get("1.0", END), ""))
	}
	next, err := config.ApplyText(v.cfg, values)
	if err != nil {
		v.logger.Warn("config rejected", "error", err)
		if v.onError != nil {
			v.onError("Settings not applied: " + err.Error())
		}
		return
	}
	*v.cfg = *next
	if v.onApply != nil {
		v.onApply(v.cfg)
	}
	if v.cfgPath == "" {
		return
	}
	if err := v.cfg.Save(v.cfgPath); err != nil {
		v.logger.Error("config save failed", "path", v.cfgPath, "error", err)
		return
	}
	v.logger.Info("config saved", "path", v.cfgPath)
}
