package tracer

import (
	"log/slog"
	"testing"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func newTracing(t *testing.T) *Tracer {
	t.Helper()
	tr := New(discardLogger, nil)
	tr.Toggle()
	if tr.State().Phase() != PhaseTracing {
		t.Fatalf("expected tracing after toggle, got %v", tr.State().Phase())
	}
	return tr
}

func clickAll(tr *Tracer, pts ...geometry.Point) {
	for _, p := range pts {
		tr.RecordClick(p)
	}
}

type transitionRecorder struct{ seq []Phase }

func (r *transitionRecorder) listener(prev, next Phase, st State) { r.seq = append(r.seq, next) }

func TestTracer_SquareClosesWithCentroid(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 100))
	if !tr.RecordClick(geometry.Pt(3, 4)) {
		t.Fatalf("closing click should be accepted")
	}
	st := tr.State()
	if st.Phase() != PhaseComplete {
		t.Fatalf("expected complete, got %v", st.Phase())
	}
	want := []geometry.Point{geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 100), geometry.Pt(0, 0)}
	if len(st.Points) != len(want) {
		t.Fatalf("expected %d points, got %v", len(want), st.Points)
	}
	for i := range want {
		if st.Points[i] != want[i] {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], st.Points[i])
		}
	}
	if a := geometry.SignedArea(st.Points); a != 10000 {
		t.Fatalf("expected area 10000, got %v", a)
	}
	if !st.HasCentroid || st.Centroid != geometry.Pt(50, 50) {
		t.Fatalf("expected centroid (50,50), got %v ok=%v", st.Centroid, st.HasCentroid)
	}
}

func TestTracer_ClosureWithinThresholdOfOrigin(t *testing.T) {
	near := []geometry.Point{geometry.Pt(9.9, 0), geometry.Pt(0, -9.9), geometry.Pt(6, 7.9), geometry.Pt(-7, -7), geometry.Pt(0, 0)}
	for _, p := range near {
		tr := newTracing(t)
		clickAll(tr, geometry.Pt(0, 0), geometry.Pt(200, 10), geometry.Pt(150, 180))
		tr.RecordClick(p)
		st := tr.State()
		if !st.IsComplete {
			t.Fatalf("click %v within threshold should close the loop", p)
		}
		if st.Points[len(st.Points)-1] != st.Points[0] {
			t.Fatalf("last point %v must equal first %v exactly", st.Points[len(st.Points)-1], st.Points[0])
		}
	}
}

func TestTracer_ThresholdBoundaryAppends(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(200, 10), geometry.Pt(150, 180))
	tr.RecordClick(geometry.Pt(10, 0)) // exactly on the threshold
	st := tr.State()
	if st.IsComplete || len(st.Points) != 4 {
		t.Fatalf("click at distance == threshold should append, got complete=%v points=%d", st.IsComplete, len(st.Points))
	}
}

func TestTracer_NoClosureWithFewerThanThreePoints(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(0, 0), geometry.Pt(100, 0))
	st := tr.State()
	if st.IsComplete {
		t.Fatalf("closure must not trigger before 3 points are recorded")
	}
	if len(st.Points) != 3 {
		t.Fatalf("expected 3 appended points, got %d", len(st.Points))
	}
	// the fourth click near the origin now closes
	tr.RecordClick(geometry.Pt(1, 1))
	if !tr.State().IsComplete {
		t.Fatalf("expected closure on fourth click")
	}
}

func TestTracer_DegenerateBoundaryHasNoCentroid(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(50, 0), geometry.Pt(100, 0), geometry.Pt(2, 0))
	st := tr.State()
	if !st.IsComplete {
		t.Fatalf("collinear boundary should still close")
	}
	if geometry.SignedArea(st.Points) != 0 {
		t.Fatalf("expected zero area")
	}
	if st.HasCentroid || !st.Degenerate() {
		t.Fatalf("centroid must be unavailable for a degenerate boundary, got %v", st.Centroid)
	}
	if !st.Centroid.IsFinite() {
		t.Fatalf("centroid leaked non-finite value %v", st.Centroid)
	}
}

func TestTracer_ClicksIgnoredWhenIdleOrComplete(t *testing.T) {
	tr := New(discardLogger, nil)
	if tr.RecordClick(geometry.Pt(1, 1)) {
		t.Fatalf("idle tracer must ignore clicks")
	}
	if len(tr.State().Points) != 0 {
		t.Fatalf("idle click recorded a point")
	}
	tr.Toggle()
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 0))
	before := tr.State()
	if tr.RecordClick(geometry.Pt(500, 500)) {
		t.Fatalf("complete tracer must ignore clicks")
	}
	after := tr.State()
	if len(after.Points) != len(before.Points) || after.Centroid != before.Centroid {
		t.Fatalf("complete polygon mutated: %v -> %v", before.Points, after.Points)
	}
}

func TestTracer_ToggleClearsMidTrace(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0))
	tr.Toggle() // off
	st := tr.State()
	if st.IsTracing || len(st.Points) != 0 {
		t.Fatalf("toggle off should clear and stop, got %+v", st)
	}
	tr.Toggle() // on
	st = tr.State()
	if !st.IsTracing || len(st.Points) != 0 || st.HasCentroid {
		t.Fatalf("toggle on should start fresh, got %+v", st)
	}
}

func TestTracer_ToggleFromCompleteRestartsTracing(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 0))
	if _, ok := tr.Centroid(); !ok {
		t.Fatalf("expected centroid after closure")
	}
	tr.Toggle()
	st := tr.State()
	if st.Phase() != PhaseTracing || len(st.Points) != 0 || st.HasCentroid {
		t.Fatalf("toggle from complete should restart tracing with no centroid, got %+v", st)
	}
}

func TestTracer_ListenerSequence(t *testing.T) {
	tr := New(discardLogger, nil)
	r := &transitionRecorder{}
	tr.AddListener(r.listener)
	tr.Toggle()
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 0))
	tr.Reset()
	want := []Phase{PhaseTracing, PhaseTracing, PhaseTracing, PhaseTracing, PhaseComplete, PhaseIdle}
	if len(r.seq) != len(want) {
		t.Fatalf("expected %v, got %v", want, r.seq)
	}
	for i := range want {
		if r.seq[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, r.seq)
		}
	}
}

func TestTracer_StateIsACopy(t *testing.T) {
	tr := newTracing(t)
	tr.RecordClick(geometry.Pt(1, 2))
	st := tr.State()
	st.Points[0] = geometry.Pt(99, 99)
	if tr.State().Points[0] != geometry.Pt(1, 2) {
		t.Fatalf("snapshot mutation leaked into tracer")
	}
}

func TestTracer_ConfigThreshold(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ClosureThreshold = 25
	tr := New(discardLogger, cfg)
	tr.Toggle()
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(20, 0))
	if !tr.State().IsComplete {
		t.Fatalf("expected closure with configured threshold 25")
	}
	tr.SetClosureThreshold(-3)
	if tr.ClosureThreshold() != 25 {
		t.Fatalf("non-positive threshold must be ignored")
	}
}

func TestTracer_ResetReturnsToIdle(t *testing.T) {
	tr := newTracing(t)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0), geometry.Pt(100, 100), geometry.Pt(0, 0))
	var rec transitionRecorder
	tr.AddListener(rec.listener)
	tr.Reset()
	st := tr.State()
	if st.Phase() != PhaseIdle || len(st.Points) != 0 || st.HasCentroid {
		t.Fatalf("reset should clear to idle, got %+v", st)
	}
	if len(rec.seq) != 1 || rec.seq[0] != PhaseIdle {
		t.Fatalf("expected one idle transition, got %v", rec.seq)
	}
	tr.Reset()
	if tr.State().Phase() != PhaseIdle {
		t.Fatalf("second reset must stay idle")
	}
}

func TestTracer_CollinearClicksAtLargeScaleHaveNoCentroid(t *testing.T) {
	tr := newTracing(t)
	scale := 1000.0 / 2561.0
	local := func(x, y float64) geometry.Point { return geometry.Pt(x/scale, y/scale) }
	clickAll(tr, local(600, 500), local(669, 477), local(831, 423), local(600, 500))
	st := tr.State()
	if !st.IsComplete {
		t.Fatalf("boundary should close on the first point, got %+v", st)
	}
	if st.HasCentroid {
		t.Fatalf("collinear boundary must not yield a centroid, got %v", st.Centroid)
	}
}

func TestTracer_StateCarriesClosureThreshold(t *testing.T) {
	tr := newTracing(t)
	tr.SetClosureThreshold(24)
	clickAll(tr, geometry.Pt(0, 0), geometry.Pt(100, 0))
	st := tr.State()
	if st.ClosureThreshold != 24 {
		t.Fatalf("expected threshold 24 in state, got %v", st.ClosureThreshold)
	}
	if st.CanClose() {
		t.Fatalf("two points cannot close")
	}
	tr.RecordClick(geometry.Pt(100, 100))
	if !tr.State().CanClose() {
		t.Fatalf("three points should be closable")
	}
}
