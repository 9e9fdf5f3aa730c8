package view

import (
	"fmt"
	"strings"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RotationPanel holds the numeric rotation entry and step buttons.
type RotationPanel interface {
	Build(row int) (endRow int)
	SetRotation(deg int)
	SetEnabled(enabled bool)
}

type rotationPanel struct {
	onInput func(raw string)
	onNudge func(dir int)
	step    int

	entry   *TextWidget
	value   *LabelWidget
	buttons []*ButtonWidget
}

// NewRotationPanel returns a panel calling onInput with the raw entry text and
// onNudge with -1/+1.
func NewRotationPanel(step int, onInput func(raw string), onNudge func(dir int)) RotationPanel {
	return &rotationPanel{onInput: onInput, onNudge: onNudge, step: step}
}

func (v *rotationPanel) Build(row int) int {
	frame := Frame()
	Grid(frame, Row(row), Column(0), Columnspan(4), Sticky("we"), Padx("0.4m"), Pady("0.2m"))

	lbl := Label(Txt("Rotate Chakra:"), Anchor("w"))
	Grid(lbl, In(frame), Row(0), Column(0), Sticky("w"), Padx("0.2m"))
	v.entry = Text(Height(1), Width(6))
	Grid(v.entry, In(frame), Row(0), Column(1), Sticky("w"), Padx("0.2m"))
	v.entry.Insert("1.0", "0")
	Bind(v.entry, "<Return>", Command(func() { v.apply() }))

	apply := Button(Txt("Apply"), Command(func() { v.apply() }))
	Grid(apply, In(frame), Row(0), Column(2), Sticky("w"), Padx("0.2m"))
	minus := Button(Txt(fmt.Sprintf("-%d°", v.step)), Command(func() { v.nudge(-1) }))
	Grid(minus, In(frame), Row(0), Column(3), Sticky("w"), Padx("0.2m"))
	plus := Button(Txt(fmt.Sprintf("+%d°", v.step)), Command(func() { v.nudge(+1) }))
	Grid(plus, In(frame), Row(0), Column(4), Sticky("w"), Padx("0.2m"))
	v.buttons = []*ButtonWidget{apply, minus, plus}

	v.value = Label(Txt("0°"), Width(6))
	Grid(v.value, In(frame), Row(0), Column(5), Sticky("w"), Padx("0.4m"))
	return row + 1
}

func (v *rotationPanel) apply() {
	if v.entry == nil || v.onInput == nil {
		return
	}
	v.onInput(strings.Join(v.entry.Get("1.0", END), ""))
}

func (v *rotationPanel) nudge(dir int) {
	if v.onNudge != nil {
		v.onNudge(dir)
	}
}

// SetRotation shows deg in both the entry and the readout.
func (v *rotationPanel) SetRotation(deg int) {
	if v == nil || v.entry == nil {
		return
	}
	v.entry.Delete("1.0", END)
	v.entry.Insert("1.0", fmt.Sprintf("%d", deg))
	v.value.Configure(Txt(fmt.Sprintf("%d°", deg)))
}

func (v *rotationPanel) SetEnabled(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	if v.entry != nil {
		v.entry.Configure(State(state))
	}
	for _, b := range v.buttons {
		b.Configure(State(state))
	}
}
