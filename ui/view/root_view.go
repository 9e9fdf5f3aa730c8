package view

import (
	"image"
	"log/slog"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on user actions. Nil handlers leave their control inert.
type Handlers struct {
	OpenImage     func(path string)
	CaptureScreen func()
	ToggleOverlay func()
	ToggleTracing func()
	ExportPNG     func()
	ExportDetail  func()
	CopyCentroid  func()
	Exit          func()

	Pointer       PointerHandlers
	RotationInput func(raw string)
	Nudge         func(dir int)
	ConfigApplied func(cfg *config.Config)
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns high-level subviews but exposes minimal exported fields for presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Scene       SceneView
	Rotation    RotationPanel
	ConfigPanel ConfigPanel

	// Widgets
	StatusLabel *TLabelWidget
	tracingBtn  *TButtonWidget
	overlayBtn  *TButtonWidget
}

// UI abstracts the subset of view operations needed by presenters, enabling decoupling
// from the concrete RootView implementation.
type UI interface {
	ShowScene(img image.Image)
	SetStatus(text string, isError bool)
	SetTracingActive(active bool)
	SetOverlayVisible(visible bool)
	SetRotation(deg int)
}

var _ UI = (*RootView)(nil)

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: action buttons
	btnFrame := Frame()
	Grid(btnFrame, Row(0), Column(0), Columnspan(2), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	col := 0
	addBtn := func(b *TButtonWidget) {
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		col++
	}
	addBtn(TButton(Txt("Open Image"), Command(func() { rv.openImage(h.OpenImage) })))
	addBtn(TButton(Txt("Capture Screen"), Command(call(h.CaptureScreen))))
	rv.overlayBtn = TButton(Style(theme.StylePrimaryButton), Txt("Overlay Chakra"), Command(call(h.ToggleOverlay)))
	addBtn(rv.overlayBtn)
	rv.tracingBtn = TButton(Style(theme.StylePrimaryButton), Txt("Identify Bhramhasthan"), Command(call(h.ToggleTracing)))
	addBtn(rv.tracingBtn)
	addBtn(TButton(Txt("Export PNG"), Command(call(h.ExportPNG))))
	addBtn(TButton(Txt("Export Detail"), Command(call(h.ExportDetail))))
	addBtn(TButton(Txt("Copy Centroid"), Command(call(h.CopyCentroid))))
	addBtn(TButton(Style(theme.StyleDangerButton), Txt("Exit"), Command(call(h.Exit))))

	// Row 1: scene and settings side by side
	rv.Scene = NewSceneView(1, h.Pointer)
	side := Frame()
	Grid(side, Row(1), Column(4), Sticky("n"), Padx("0.4m"), Pady("0.4m"))
	rv.ConfigPanel = NewConfigPanel(side, rv.cfg, rv.cfgPath, rv.logger, h.ConfigApplied, func(msg string) { rv.SetStatus(msg, true) })
	rv.ConfigPanel.Build(0)

	// Row 2: rotation controls
	step := 15
	if rv.cfg != nil {
		step = rv.cfg.RotateStep
	}
	rv.Rotation = NewRotationPanel(step, h.RotationInput, h.Nudge)
	row := rv.Rotation.Build(2)

	// Status line
	rv.StatusLabel = TLabel(Style(theme.StyleStatusLabel), Txt("Open a floor plan to begin"), Anchor("w"))
	Grid(rv.StatusLabel, Row(row), Column(0), Columnspan(5), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
}

func call(fn func()) func() {
	return func() {
		if fn != nil {
			fn()
		}
	}
}

func (rv *RootView) openImage(fn func(path string)) {
	if fn == nil {
		return
	}
	files := GetOpenFile(Title("Open floor plan"))
	if len(files) == 0 {
		return
	}
	fn(files[0])
}

// ShowScene proxies to the scene view.
func (rv *RootView) ShowScene(img image.Image) {
	if rv != nil && rv.Scene != nil {
		rv.Scene.ShowScene(img)
	}
}

// SetStatus updates the status line.
func (rv *RootView) SetStatus(text string, isError bool) {
	if rv == nil || rv.StatusLabel == nil {
		return
	}
	style := theme.StyleStatusLabel
	if isError {
		style = theme.StyleErrorLabel
	}
	rv.StatusLabel.Configure(Style(style), Txt(text))
}

// SetTracingActive relabels the tracing toggle.
func (rv *RootView) SetTracingActive(active bool) {
	if rv == nil || rv.tracingBtn == nil {
		return
	}
	if active {
		rv.tracingBtn.Configure(Txt("Stop Tracing"))
		return
	}
	rv.tracingBtn.Configure(Txt("Identify Bhramhasthan"))
}

// SetOverlayVisible relabels the overlay toggle and enables rotation controls.
func (rv *RootView) SetOverlayVisible(visible bool) {
	if rv == nil {
		return
	}
	if rv.overlayBtn != nil {
		if visible {
			rv.overlayBtn.Configure(Txt("Hide Chakra"))
		} else {
			rv.overlayBtn.Configure(Txt("Overlay Chakra"))
		}
	}
	if rv.Rotation != nil {
		rv.Rotation.SetEnabled(visible)
	}
}

// SetRotation proxies to the rotation panel.
func (rv *RootView) SetRotation(deg int) {
	if rv != nil && rv.Rotation != nil {
		rv.Rotation.SetRotation(deg)
	}
}
