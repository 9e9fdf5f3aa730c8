package model

import (
	"image"

	"github.com/soocke/vaastu-overlay-go/domain/geometry"
	"github.com/soocke/vaastu-overlay-go/ui/images"
)

// FloorPlanModel holds the loaded floor plan and its display-sized copy.
// The zero value has no image; use NewFloorPlanModel to set display bounds.
// No synchronization needed: updates occur on the UI thread.
type FloorPlanModel struct {
	img       image.Image
	display   image.Image
	source    string
	viewport  Viewport
	maxW      int
	maxH      int
	listeners []func()
}

func NewFloorPlanModel(maxW, maxH int) *FloorPlanModel {
	return &FloorPlanModel{maxW: maxW, maxH: maxH, viewport: Viewport{Scale: 1}}
}

// OnChange registers fn to run after the image or display bounds change.
func (m *FloorPlanModel) OnChange(fn func()) {
	if m == nil || fn == nil {
		return
	}
	m.listeners = append(m.listeners, fn)
}

// SetImage replaces the floor plan. source is a label for logs/status (path or "screen").
// A nil image clears the model.
func (m *FloorPlanModel) SetImage(img image.Image, source string) {
	if m == nil {
		return
	}
	if img == nil || img.Bounds().Empty() {
		m.img, m.display, m.source = nil, nil, ""
		m.viewport = Viewport{Scale: 1}
		m.notify()
		return
	}
	m.img = img
	m.source = source
	m.refit()
	m.notify()
}

// SetMaxDisplay changes the display bounds and refits the current image.
func (m *FloorPlanModel) SetMaxDisplay(maxW, maxH int) {
	if m == nil || (maxW == m.maxW && maxH == m.maxH) {
		return
	}
	m.maxW, m.maxH = maxW, maxH
	if m.img != nil {
		m.refit()
		m.notify()
	}
}

func (m *FloorPlanModel) refit() {
	b := m.img.Bounds()
	scale := images.FitScale(b.Dx(), b.Dy(), m.maxW, m.maxH)
	m.viewport = Viewport{Scale: scale}
	m.display = images.ScaleToFit(m.img, m.maxW, m.maxH)
}

func (m *FloorPlanModel) notify() {
	for _, fn := range m.listeners {
		fn()
	}
}

// Loaded reports whether a floor plan is present.
func (m *FloorPlanModel) Loaded() bool { return m != nil && m.img != nil }

// Image returns the floor plan at natural resolution (may be nil).
func (m *FloorPlanModel) Image() image.Image {
	if m == nil {
		return nil
	}
	return m.img
}

// Display returns the display-sized floor plan (may be nil).
func (m *FloorPlanModel) Display() image.Image {
	if m == nil {
		return nil
	}
	return m.display
}

// Source returns the label passed to SetImage.
func (m *FloorPlanModel) Source() string {
	if m == nil {
		return ""
	}
	return m.source
}

// NaturalSize returns the floor plan's pixel dimensions (zero when empty).
func (m *FloorPlanModel) NaturalSize() geometry.Size {
	if !m.Loaded() {
		return geometry.Size{}
	}
	b := m.img.Bounds()
	return geometry.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}
}

// Viewport returns the local-to-display mapping.
func (m *FloorPlanModel) Viewport() Viewport {
	if m == nil {
		return Viewport{Scale: 1}
	}
	return m.viewport
}
