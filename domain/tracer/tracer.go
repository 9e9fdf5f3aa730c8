package tracer

import (
	"errors"
	"log/slog"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
)

// DefaultClosureThreshold is the distance from the first point within which a
// click closes the boundary instead of adding a vertex.
const DefaultClosureThreshold = 10.0

// minVertices is the number of recorded points required before a click may close the loop.
const minVertices = 3

// Tracer accumulates clicked points into a boundary polygon and computes its
// centroid once, at the moment the loop closes. All methods are expected to be
// called from the UI thread.
type Tracer struct {
	points      []geometry.Point
	tracing     bool
	complete    bool
	centroid    geometry.Point
	hasCentroid bool
	threshold   float64
	logger      *slog.Logger
	listeners   []Listener
}

// New constructs an idle tracer. A nil cfg uses DefaultClosureThreshold.
func New(logger *slog.Logger, cfg *config.Config) *Tracer {
	t := &Tracer{logger: logger, threshold: DefaultClosureThreshold}
	if cfg != nil && cfg.ClosureThreshold > 0 {
		t.threshold = cfg.ClosureThreshold
	}
	return t
}

// AddListener registers l for all subsequent mutations.
func (t *Tracer) AddListener(l Listener) {
	if l != nil {
		t.listeners = append(t.listeners, l)
	}
}

// SetClosureThreshold changes the closure distance; non-positive values are ignored.
func (t *Tracer) SetClosureThreshold(px float64) {
	if px > 0 {
		t.threshold = px
	}
}

// ClosureThreshold returns the current closure distance.
func (t *Tracer) ClosureThreshold() float64 { return t.threshold }

// Toggle starts or stops tracing. Every toggle discards the captured points
// and the centroid: idle and complete tracers start a fresh trace, an active
// trace is abandoned.
func (t *Tracer) Toggle() {
	prev := t.phase()
	t.clear()
	t.tracing = prev != PhaseTracing
	t.emit(prev)
}

// Reset returns the tracer to idle.
func (t *Tracer) Reset() {
	prev := t.phase()
	t.clear()
	t.tracing = false
	t.emit(prev)
}

// RecordClick handles a click at p (local image space). It returns false when
// the click was ignored because the tracer is idle or already complete.
func (t *Tracer) RecordClick(p geometry.Point) bool {
	if !t.tracing || t.complete {
		return false
	}
	if len(t.points) >= minVertices && geometry.Distance(t.points[0], p) < t.threshold {
		t.points = append(t.points, t.points[0])
		t.complete = true
		t.computeCentroid()
		t.emit(PhaseTracing)
		return true
	}
	t.points = append(t.points, p)
	t.emit(PhaseTracing)
	return true
}

// State returns a snapshot; the point slice is copied.
func (t *Tracer) State() State {
	pts := make([]geometry.Point, len(t.points))
	copy(pts, t.points)
	return State{
		Points:      pts,
		IsTracing:   t.tracing,
		IsComplete:  t.complete,
		Centroid:    t.centroid,
		HasCentroid: t.hasCentroid,

		ClosureThreshold: t.threshold,
	}
}

// Centroid returns the centroid of the closed boundary, if one is available.
func (t *Tracer) Centroid() (geometry.Point, bool) { return t.centroid, t.hasCentroid }

func (t *Tracer) phase() Phase {
	switch {
	case t.complete:
		return PhaseComplete
	case t.tracing:
		return PhaseTracing
	default:
		return PhaseIdle
	}
}

func (t *Tracer) clear() {
	t.points = nil
	t.complete = false
	t.centroid = geometry.Point{}
	t.hasCentroid = false
}

func (t *Tracer) computeCentroid() {
	c, err := geometry.Centroid(t.points)
	if err != nil {
		t.hasCentroid = false
		if t.logger != nil {
			if errors.Is(err, geometry.ErrDegeneratePolygon) {
				t.logger.Warn("boundary closed without enclosed area", "points", len(t.points))
			} else {
				t.logger.Error("centroid failed", "error", err)
			}
		}
		return
	}
	t.centroid = c
	t.hasCentroid = true
	if t.logger != nil {
		t.logger.Info("bhramhasthan located", "x", c.X, "y", c.Y, "area", geometry.SignedArea(t.points))
	}
}

func (t *Tracer) emit(prev Phase) {
	next := t.phase()
	if t.logger != nil && prev != next {
		t.logger.Debug("tracer state transition", "from", prev.String(), "to", next.String(), "points", len(t.points))
	}
	if len(t.listeners) == 0 {
		return
	}
	st := t.State()
	for _, l := range t.listeners {
		l(prev, next, st)
	}
}

// Ensure contract satisfaction
var _ Contract = (*Tracer)(nil)
