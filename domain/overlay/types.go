package overlay

import "github.com/soocke/vaastu-overlay-go/domain/geometry"

// Mode enumerates how pointer movement over the overlay is interpreted.
type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
	ModeRotating
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeRotating:
		return "rotating"
	default:
		return "unknown"
	}
}

// Placement is the overlay's top-left position in local image space and its
// clockwise rotation about its own center.
type Placement struct {
	Position        geometry.Point `json:"position"`
	RotationDegrees int            `json:"rotation_degrees"`
}

// State is a read-only snapshot of the controller.
type State struct {
	Placement
	Visible bool
	Mode    Mode
	Size    geometry.Size
}

// Bounds returns the unrotated bounding box of the overlay.
func (s State) Bounds() geometry.Rect { return geometry.RectAt(s.Position, s.Size) }

// Center returns the rotation pivot.
func (s State) Center() geometry.Point { return s.Bounds().Center() }

// Listener is called synchronously after every change to the controller.
type Listener func(State)

// Interface slices for consumers (presenters).
type StateSource interface{ State() State }
type Pointer interface {
	HitTest(p geometry.Point) bool
	PointerDown(p geometry.Point, modifier bool)
	PointerMove(p geometry.Point) bool
	PointerUp()
	PointerLeave()
}
type Rotation interface {
	SetRotationInput(raw string) int
	SetRotation(deg int) int
}
type Visibility interface {
	SetVisible(v bool)
	ToggleVisible()
	Visible() bool
}
type Placer interface {
	OnCentroid(c geometry.Point)
	ClearCentroid()
}

// Contract aggregate for DI.
type Contract interface {
	StateSource
	Pointer
	Rotation
	Visibility
	Placer
	SetSize(geometry.Size)
	SetAutoShow(bool)
	AddListener(Listener)
}
