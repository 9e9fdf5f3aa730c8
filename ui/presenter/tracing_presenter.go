package presenter

import (
	"fmt"

	"github.com/soocke/vaastu-overlay-go/domain/geometry"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
)

// TracerControl narrows what the presenters need from the boundary tracer.
type TracerControl interface {
	State() tracer.State
	Toggle()
	RecordClick(p geometry.Point) bool
}

// LoadedSource reports whether a floor plan is present.
type LoadedSource interface{ Loaded() bool }

// TracingView reflects whether boundary tracing is active.
type TracingView interface{ SetTracingActive(bool) }

// TracingPresenter owns the "Identify Bhramhasthan" toggle and reports tracer
// progress to the status line.
type TracingPresenter struct {
	tracer TracerControl
	floor  LoadedSource
	view   TracingView
	status StatusSink
}

func NewTracingPresenter(t TracerControl, floor LoadedSource, view TracingView, status StatusSink) *TracingPresenter {
	return &TracingPresenter{tracer: t, floor: floor, view: view, status: status}
}

// Toggle starts or abandons a trace. Without a floor plan it only reports why
// nothing happened.
func (p *TracingPresenter) Toggle() {
	if p == nil || p.tracer == nil || p.floor == nil {
		return
	}
	if !p.floor.Loaded() {
		if p.status != nil {
			p.status.Error("Open a floor plan or capture the screen first")
		}
		return
	}
	p.tracer.Toggle()
}

// OnTracerState is registered as a tracer listener.
func (p *TracingPresenter) OnTracerState(prev, next tracer.Phase, st tracer.State) {
	if p == nil {
		return
	}
	if p.view != nil {
		p.view.SetTracingActive(st.IsTracing && !st.IsComplete)
	}
	if p.status == nil {
		return
	}
	switch {
	case next == tracer.PhaseTracing && prev != tracer.PhaseTracing:
		p.status.Info("Click along the plot boundary; click near the first point to close it")
	case next == tracer.PhaseTracing:
		p.status.Info(fmt.Sprintf("%d boundary points", len(st.Points)))
	case next == tracer.PhaseComplete && st.Degenerate():
		p.status.Error("Boundary encloses no area; centroid unavailable")
	case next == tracer.PhaseComplete:
		p.status.Info(fmt.Sprintf("Mapping of boundary complete: Bhramhasthan at (%.1f, %.1f)", st.Centroid.X, st.Centroid.Y))
	case next == tracer.PhaseIdle && prev != tracer.PhaseIdle:
		p.status.Info("Boundary tracing stopped")
	}
}
