package view

import (
	"image"

	"github.com/soocke/vaastu-overlay-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// PointerHandlers receive pointer events in display coordinates relative to
// the scene image.
type PointerHandlers struct {
	Press   func(x, y int, modifier bool)
	Drag    func(x, y int)
	Release func()
	Leave   func()
}

// SceneView shows the rendered floor plan and forwards pointer events.
type SceneView interface {
	ShowScene(img image.Image)
}

type sceneView struct {
	label     *LabelWidget
	prevPhoto *Img // last Tk photo image instance
}

// NewSceneView creates the scene label at row, spanning the main columns.
func NewSceneView(row int, h PointerHandlers) SceneView {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	photo := NewPhoto(Data(images.EncodePNG(placeholder)))
	label := Label(Image(photo), Borderwidth(1), Relief("sunken"), Anchor("nw"))
	Grid(label, Row(row), Column(0), Columnspan(4), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	v := &sceneView{label: label, prevPhoto: photo}

	// Alt is the rotate modifier; Tk matches the more specific binding first.
	if h.Press != nil {
		Bind(label, "<Button-1>", Command(func(e *Event) { h.Press(e.X, e.Y, false) }))
		Bind(label, "<Alt-Button-1>", Command(func(e *Event) { h.Press(e.X, e.Y, true) }))
	}
	if h.Drag != nil {
		Bind(label, "<B1-Motion>", Command(func(e *Event) { h.Drag(e.X, e.Y) }))
	}
	if h.Release != nil {
		Bind(label, "<ButtonRelease-1>", Command(h.Release))
	}
	if h.Leave != nil {
		Bind(label, "<Leave>", Command(h.Leave))
	}
	return v
}

// ShowScene replaces the displayed frame.
func (v *sceneView) ShowScene(img image.Image) {
	if v == nil || v.label == nil || img == nil {
		return
	}
	// Replace previous photo to avoid retaining obsolete pixel buffers.
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	photo := NewPhoto(Data(images.EncodePNG(img)))
	v.prevPhoto = photo
	v.label.Configure(Image(photo))
}
