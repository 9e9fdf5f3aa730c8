package presenter

import (
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/model"
)

// OverlayControl narrows what the presenter needs from the overlay controller.
type OverlayControl interface {
	overlay.StateSource
	overlay.Pointer
	overlay.Rotation
	overlay.Visibility
	overlay.Placer
}

// ViewportSource maps pointer positions on the displayed plan to local space.
type ViewportSource interface {
	Loaded() bool
	Viewport() model.Viewport
}

// OverlayView reflects overlay visibility and rotation.
type OverlayView interface {
	SetOverlayVisible(bool)
	SetRotation(deg int)
}

// OverlayPresenter routes pointer events between the chakra overlay and the
// boundary tracer and keeps the rotation controls in sync.
type OverlayPresenter struct {
	overlay OverlayControl
	tracer  TracerControl
	floor   ViewportSource
	view    OverlayView
	status  StatusSink
	step    int

	shownVisible  bool
	shownRotation int
	synced        bool
}

func NewOverlayPresenter(ov OverlayControl, t TracerControl, floor ViewportSource, view OverlayView, status StatusSink, step int) *OverlayPresenter {
	if step <= 0 {
		step = 15
	}
	return &OverlayPresenter{overlay: ov, tracer: t, floor: floor, view: view, status: status, step: step}
}

// SetStep changes the rotation nudge increment.
func (p *OverlayPresenter) SetStep(step int) {
	if p != nil && step > 0 {
		p.step = step
	}
}

func (p *OverlayPresenter) ready() bool {
	return p != nil && p.overlay != nil && p.floor != nil && p.floor.Loaded()
}

// Press handles a button press at a display position. Presses on the visible
// overlay start a drag (or a rotation with the modifier held); any other press
// is offered to the tracer. It reports whether anything consumed the press.
func (p *OverlayPresenter) Press(display geometry.Point, modifier bool) bool {
	if !p.ready() {
		return false
	}
	local := p.floor.Viewport().ToLocal(display)
	if p.overlay.HitTest(local) {
		p.overlay.PointerDown(local, modifier)
		return true
	}
	if p.tracer == nil {
		return false
	}
	return p.tracer.RecordClick(local)
}

// Drag forwards pointer motion while a button is held.
func (p *OverlayPresenter) Drag(display geometry.Point) bool {
	if !p.ready() {
		return false
	}
	return p.overlay.PointerMove(p.floor.Viewport().ToLocal(display))
}

// Release ends any gesture.
func (p *OverlayPresenter) Release() {
	if p != nil && p.overlay != nil {
		p.overlay.PointerUp()
	}
}

// Leave ends any gesture when the pointer leaves the plan.
func (p *OverlayPresenter) Leave() {
	if p != nil && p.overlay != nil {
		p.overlay.PointerLeave()
	}
}

// ToggleVisible shows or hides the chakra.
func (p *OverlayPresenter) ToggleVisible() {
	if p == nil || p.overlay == nil {
		return
	}
	if !p.ready() {
		if p.status != nil {
			p.status.Error("Open a floor plan or capture the screen first")
		}
		return
	}
	p.overlay.ToggleVisible()
}

// RotationInput applies a typed rotation and returns the applied value.
func (p *OverlayPresenter) RotationInput(raw string) int {
	if p == nil || p.overlay == nil {
		return 0
	}
	deg := p.overlay.SetRotationInput(raw)
	if p.view != nil {
		// echo the clamped value back into the entry
		p.view.SetRotation(deg)
	}
	return deg
}

// Nudge rotates by dir steps, clamped to [0,360].
func (p *OverlayPresenter) Nudge(dir int) int {
	if p == nil || p.overlay == nil {
		return 0
	}
	return p.overlay.SetRotation(p.overlay.State().RotationDegrees + dir*p.step)
}

// OnTracerState is registered as a tracer listener. A fresh centroid places
// the overlay; any other change cancels a placement not yet applied.
func (p *OverlayPresenter) OnTracerState(prev, next tracer.Phase, st tracer.State) {
	if p == nil || p.overlay == nil {
		return
	}
	if next == tracer.PhaseComplete && prev != tracer.PhaseComplete && st.HasCentroid {
		p.overlay.OnCentroid(st.Centroid)
		return
	}
	if next != tracer.PhaseComplete {
		p.overlay.ClearCentroid()
	}
}

// OnOverlayState is registered as an overlay listener.
func (p *OverlayPresenter) OnOverlayState(st overlay.State) {
	if p == nil || p.view == nil {
		return
	}
	if !p.synced || st.Visible != p.shownVisible {
		p.view.SetOverlayVisible(st.Visible)
		p.shownVisible = st.Visible
	}
	if !p.synced || st.RotationDegrees != p.shownRotation {
		p.view.SetRotation(st.RotationDegrees)
		p.shownRotation = st.RotationDegrees
	}
	p.synced = true
}
