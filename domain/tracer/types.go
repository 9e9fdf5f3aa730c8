package tracer

import "github.com/soocke/vaastu-overlay-go/domain/geometry"

// Phase enumerates the boundary tracer states.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTracing
	PhaseComplete
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTracing:
		return "tracing"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// State is a read-only snapshot of the tracer. Points is a copy owned by the caller.
type State struct {
	Points      []geometry.Point
	IsTracing   bool
	IsComplete  bool
	Centroid    geometry.Point
	HasCentroid bool
	// ClosureThreshold is the closing distance in local pixels.
	ClosureThreshold float64
}

// Phase derives the state machine phase from the flags.
func (s State) Phase() Phase {
	switch {
	case s.IsComplete:
		return PhaseComplete
	case s.IsTracing:
		return PhaseTracing
	default:
		return PhaseIdle
	}
}

// CanClose reports whether the next click near the first point would close
// the boundary.
func (s State) CanClose() bool {
	return s.IsTracing && !s.IsComplete && len(s.Points) >= minVertices
}

// Degenerate reports a closed boundary for which no centroid exists.
func (s State) Degenerate() bool { return s.IsComplete && !s.HasCentroid }

// Listener is called synchronously after every tracer mutation.
type Listener func(prev, next Phase, st State)

// Interface slices for consumers (presenters).
type StateSource interface{ State() State }
type Control interface {
	StateSource
	Toggle()
	RecordClick(p geometry.Point) bool
}

// Contract aggregate for DI.
type Contract interface {
	Control
	Reset()
	SetClosureThreshold(px float64)
	AddListener(Listener)
}
