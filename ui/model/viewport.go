package model

import "github.com/soocke/vaastu-overlay-go/domain/geometry"

// Viewport maps the floor plan's local pixel space to the on-screen copy:
// display = local * Scale. The zero value behaves like Scale 1.
type Viewport struct {
	Scale float64
}

func (v Viewport) scale() float64 {
	if v.Scale <= 0 {
		return 1
	}
	return v.Scale
}

// ToLocal converts a pointer position on the displayed image to local space.
func (v Viewport) ToLocal(display geometry.Point) geometry.Point {
	return display.Scale(1 / v.scale())
}

// ToDisplay converts a local point to display space.
func (v Viewport) ToDisplay(local geometry.Point) geometry.Point {
	return local.Scale(v.scale())
}

// Length converts a local length to display pixels.
func (v Viewport) Length(local float64) float64 { return local * v.scale() }
