package overlay

import (
	"log/slog"
	"testing"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
)

var discardLogger = slog.New(slog.NewTextHandler(&discardWriter{}, nil))

type discardWriter struct{}

func (d *discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// newTestController returns a visible 100x100 overlay at the origin.
func newTestController() *Controller {
	c := New(discardLogger, nil)
	c.SetSize(geometry.Size{Width: 100, Height: 100})
	c.SetVisible(true)
	return c
}

func TestController_RotationInputClamps(t *testing.T) {
	c := newTestController()
	cases := []struct {
		in   string
		want int
	}{
		{"abc", 0},
		{"-50", 0},
		{"999", 360},
		{"45", 45},
		{" 90 ", 90},
		{"12.7", 12},
		{"", 0},
		{"+30", 30},
		{"360", 360},
		{"-", 0},
		{"99999999999999999999999", 360},
		{"-99999999999999999999999", 0},
	}
	for _, tc := range cases {
		if got := c.SetRotationInput(tc.in); got != tc.want {
			t.Fatalf("SetRotationInput(%q) = %d, want %d", tc.in, got, tc.want)
		}
		if r := c.Placement().RotationDegrees; r < 0 || r > 360 {
			t.Fatalf("rotation %d escaped [0,360] after %q", r, tc.in)
		}
	}
}

func TestController_DragPreservesGrabOffset(t *testing.T) {
	c := newTestController()
	c.placement.Position = geometry.Pt(20, 20)
	c.PointerDown(geometry.Pt(100, 100), false)
	if c.Mode() != ModeDragging {
		t.Fatalf("expected dragging, got %v", c.Mode())
	}
	c.PointerMove(geometry.Pt(130, 140))
	if p := c.Placement().Position; p != geometry.Pt(50, 60) {
		t.Fatalf("expected position (50,60), got %v", p)
	}
	c.PointerUp()
	if c.Mode() != ModeIdle {
		t.Fatalf("pointer up should return to idle")
	}
	c.PointerMove(geometry.Pt(0, 0))
	if p := c.Placement().Position; p != geometry.Pt(50, 60) {
		t.Fatalf("idle move must not change position, got %v", p)
	}
}

func TestController_RotateSetsAbsoluteAngle(t *testing.T) {
	c := newTestController() // center (50,50)
	c.PointerDown(geometry.Pt(60, 60), true)
	if c.Mode() != ModeRotating {
		t.Fatalf("expected rotating, got %v", c.Mode())
	}
	c.PointerMove(geometry.Pt(50, 0))
	if r := c.Placement().RotationDegrees; r != 270 {
		t.Fatalf("pointer above center should yield 270, got %d", r)
	}
	c.PointerMove(geometry.Pt(100, 50))
	if r := c.Placement().RotationDegrees; r != 0 {
		t.Fatalf("pointer right of center should yield 0, got %d", r)
	}
	if p := c.Placement().Position; p != geometry.Pt(0, 0) {
		t.Fatalf("rotation must not move the overlay, got %v", p)
	}
}

func TestController_ModesAreExclusive(t *testing.T) {
	c := newTestController()
	c.PointerDown(geometry.Pt(10, 10), false)
	// missed pointer-up: a modifier press must replace dragging, not stack on it
	c.PointerDown(geometry.Pt(10, 10), true)
	if c.Mode() != ModeRotating {
		t.Fatalf("expected rotating, got %v", c.Mode())
	}
	before := c.Placement().Position
	c.PointerMove(geometry.Pt(90, 90))
	if c.Placement().Position != before {
		t.Fatalf("stale drag moved the overlay while rotating")
	}
	c.PointerDown(geometry.Pt(10, 10), false)
	if c.Mode() != ModeDragging {
		t.Fatalf("expected dragging, got %v", c.Mode())
	}
	c.PointerLeave()
	if c.Mode() != ModeIdle {
		t.Fatalf("leave should clear the gesture")
	}
}

func TestController_CentroidCentersOnce(t *testing.T) {
	c := newTestController()
	c.OnCentroid(geometry.Pt(50, 50))
	if p := c.Placement().Position; p != geometry.Pt(0, 0) {
		t.Fatalf("expected (0,0) for centroid (50,50) and size 100, got %v", p)
	}
	c.PointerDown(geometry.Pt(10, 10), false)
	c.PointerMove(geometry.Pt(40, 10))
	c.PointerUp()
	// re-showing must not re-center on the already applied centroid
	c.SetVisible(false)
	c.SetVisible(true)
	if p := c.Placement().Position; p != geometry.Pt(30, 0) {
		t.Fatalf("manual placement lost after visibility toggle: %v", p)
	}
}

func TestController_CentroidWhileHiddenAppliesOnShow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ChakraSize = 200
	cfg.AutoShow = false
	c := New(discardLogger, cfg)
	c.OnCentroid(geometry.Pt(300, 300))
	if c.Visible() {
		t.Fatalf("auto show disabled, overlay must stay hidden")
	}
	if p := c.Placement().Position; p != geometry.Pt(0, 0) {
		t.Fatalf("hidden overlay moved early: %v", p)
	}
	c.SetVisible(true)
	if p := c.Placement().Position; p != geometry.Pt(200, 200) {
		t.Fatalf("expected pending placement (200,200), got %v", p)
	}
}

func TestController_AutoShowOnCentroid(t *testing.T) {
	c := New(discardLogger, config.DefaultConfig())
	c.OnCentroid(geometry.Pt(400, 400))
	if !c.Visible() {
		t.Fatalf("centroid should show the overlay when auto show is enabled")
	}
	if p := c.Placement().Position; p != geometry.Pt(250, 250) {
		t.Fatalf("expected (250,250) for 300px chakra, got %v", p)
	}
}

func TestController_ClearCentroidDropsPending(t *testing.T) {
	c := New(discardLogger, nil)
	c.SetAutoShow(false)
	c.SetSize(geometry.Size{Width: 10, Height: 10})
	c.OnCentroid(geometry.Pt(100, 100))
	c.ClearCentroid()
	c.SetVisible(true)
	if p := c.Placement().Position; p != geometry.Pt(0, 0) {
		t.Fatalf("cleared centroid was applied: %v", p)
	}
}

func TestController_HiddenIgnoresPointer(t *testing.T) {
	c := New(discardLogger, nil)
	c.SetSize(geometry.Size{Width: 100, Height: 100})
	if c.HitTest(geometry.Pt(50, 50)) {
		t.Fatalf("hidden overlay must not be hit")
	}
	c.PointerDown(geometry.Pt(50, 50), false)
	if c.Mode() != ModeIdle {
		t.Fatalf("hidden overlay must not start a gesture")
	}
	c.SetVisible(true)
	c.PointerDown(geometry.Pt(50, 50), false)
	c.SetVisible(false)
	if c.Mode() != ModeIdle {
		t.Fatalf("hiding should abort the gesture")
	}
}

func TestController_ListenerNotified(t *testing.T) {
	c := newTestController()
	var got []State
	c.AddListener(func(s State) { got = append(got, s) })
	c.SetRotation(90)
	c.SetRotation(90) // unchanged, no event
	c.PointerDown(geometry.Pt(1, 1), false)
	c.PointerMove(geometry.Pt(2, 2))
	c.PointerUp()
	if len(got) != 4 {
		t.Fatalf("expected 4 notifications, got %d", len(got))
	}
	if got[0].RotationDegrees != 90 || got[2].Position != geometry.Pt(1, 1) || got[3].Mode != ModeIdle {
		t.Fatalf("unexpected notifications %+v", got)
	}
}
