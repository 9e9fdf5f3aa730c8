package presenter

import (
	"image"
	"io"
	"log/slog"

	"github.com/soocke/vaastu-overlay-go/config"
	"github.com/soocke/vaastu-overlay-go/domain/capture"
	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/model"
)

func discardLogger() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

type mockStatus struct {
	infos, errors []string
}

func (s *mockStatus) Info(msg string)  { s.infos = append(s.infos, msg) }
func (s *mockStatus) Error(msg string) { s.errors = append(s.errors, msg) }

type mockStatusView struct {
	calls   int
	text    string
	isError bool
}

func (v *mockStatusView) SetStatus(text string, isError bool) {
	v.calls++
	v.text, v.isError = text, isError
}

type mockTracingView struct {
	calls  int
	active bool
}

func (v *mockTracingView) SetTracingActive(b bool) { v.calls++; v.active = b }

type mockOverlayView struct {
	visibleCalls, rotationCalls int
	visible                     bool
	rotation                    int
}

func (v *mockOverlayView) SetOverlayVisible(b bool) { v.visibleCalls++; v.visible = b }
func (v *mockOverlayView) SetRotation(deg int)      { v.rotationCalls++; v.rotation = deg }

type mockSceneView struct {
	shown []image.Image
}

func (v *mockSceneView) ShowScene(img image.Image) { v.shown = append(v.shown, img) }

type mockCapturer struct {
	snap capture.Snapshot
	err  error
}

func (c *mockCapturer) Capture() (capture.Snapshot, error) { return c.snap, c.err }

// fixture wires real domain components behind the presenters under test.
type fixture struct {
	cfg     *config.Config
	tracer  *tracer.Tracer
	overlay *overlay.Controller
	floor   *model.FloorPlanModel
	status  *mockStatus
}

func newFixture(loaded bool) *fixture {
	cfg := config.DefaultConfig()
	cfg.ChakraSize = 100
	f := &fixture{
		cfg:     cfg,
		tracer:  tracer.New(discardLogger(), cfg),
		overlay: overlay.New(discardLogger(), cfg),
		floor:   model.NewFloorPlanModel(400, 400),
		status:  &mockStatus{},
	}
	if loaded {
		f.floor.SetImage(image.NewRGBA(image.Rect(0, 0, 400, 400)), "plan.png")
	}
	return f
}
