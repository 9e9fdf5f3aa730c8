package presenter

import (
	"image"
	"math"
	"time"

	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/model"
	"github.com/soocke/vaastu-overlay-go/ui/render"
)

// DisplaySource supplies the display-sized floor plan and its viewport.
type DisplaySource interface {
	Loaded() bool
	Display() image.Image
	Viewport() model.Viewport
}

// SceneView shows a rendered frame.
type SceneView interface{ ShowScene(img image.Image) }

// ChakraFunc returns the reference diagram at a pixel size.
type ChakraFunc func(size int) image.Image

const placeholderText = "Open a floor plan or capture the screen"

// ScenePresenter re-renders the plan whenever tracer, overlay or image state
// changed since the last Tick. Listener callbacks only mark it dirty.
type ScenePresenter struct {
	floor   DisplaySource
	tracer  tracer.StateSource
	overlay overlay.StateSource
	chakra  ChakraFunc
	view    SceneView
	style   render.Style

	placeholder image.Image
	phW, phH    int
	dirty       bool
	renders     int
}

func NewScenePresenter(floor DisplaySource, t tracer.StateSource, ov overlay.StateSource, chakra ChakraFunc, view SceneView, style render.Style) *ScenePresenter {
	return &ScenePresenter{floor: floor, tracer: t, overlay: ov, chakra: chakra, view: view, style: style, dirty: true}
}

// SetStyle replaces the marker style and schedules a redraw.
func (p *ScenePresenter) SetStyle(s render.Style) {
	if p == nil {
		return
	}
	p.style = s
	p.placeholder = nil
	p.dirty = true
}

// SetPlaceholderSize sets the size of the empty-state card.
func (p *ScenePresenter) SetPlaceholderSize(w, h int) {
	if p == nil || (w == p.phW && h == p.phH) {
		return
	}
	p.phW, p.phH = w, h
	p.placeholder = nil
	p.dirty = true
}

// MarkDirty schedules a redraw on the next Tick.
func (p *ScenePresenter) MarkDirty() {
	if p != nil {
		p.dirty = true
	}
}

// Renders returns how many frames were pushed to the view.
func (p *ScenePresenter) Renders() int {
	if p == nil {
		return 0
	}
	return p.renders
}

// Tick renders at most one frame.
func (p *ScenePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil || !p.dirty {
		return
	}
	p.dirty = false
	p.renders++
	if p.floor == nil || !p.floor.Loaded() {
		if p.placeholder == nil {
			p.placeholder = render.Placeholder(p.phW, p.phH, placeholderText, p.style)
		}
		p.view.ShowScene(p.placeholder)
		return
	}
	p.view.ShowScene(render.Scene(p.input()))
}

func (p *ScenePresenter) input() render.Input {
	scale := p.floor.Viewport().Scale
	in := render.Input{
		Base:  p.floor.Display(),
		Scale: scale,
		Style: p.style,
	}
	if p.tracer != nil {
		in.Tracer = p.tracer.State()
	}
	if p.overlay != nil {
		in.Overlay = p.overlay.State()
		if in.Overlay.Visible && p.chakra != nil {
			in.Chakra = p.chakra(int(math.Round(in.Overlay.Size.Width * scale)))
		}
	}
	return in
}
