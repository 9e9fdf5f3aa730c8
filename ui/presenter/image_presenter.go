package presenter

import (
	"fmt"
	"image"
	"log/slog"
	"path/filepath"

	"github.com/soocke/vaastu-overlay-go/domain/capture"
)

// FloorPlanSink accepts a newly acquired floor plan.
type FloorPlanSink interface {
	SetImage(img image.Image, source string)
}

// ImageLoader decodes the image at path.
type ImageLoader func(path string) (image.Image, string, error)

// ScreenCapturer grabs the screen.
type ScreenCapturer interface {
	Capture() (capture.Snapshot, error)
}

// ImagePresenter acquires floor plans from disk or the screen.
type ImagePresenter struct {
	model   FloorPlanSink
	load    ImageLoader
	capture ScreenCapturer
	status  StatusSink
	logger  *slog.Logger
}

func NewImagePresenter(m FloorPlanSink, load ImageLoader, c ScreenCapturer, status StatusSink, logger *slog.Logger) *ImagePresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ImagePresenter{model: m, load: load, capture: c, status: status, logger: logger}
}

// LoadFile opens the image at path. An empty path (dialog cancelled) is a no-op.
func (p *ImagePresenter) LoadFile(path string) error {
	if p == nil || p.model == nil || p.load == nil || path == "" {
		return nil
	}
	img, format, err := p.load(path)
	if err != nil {
		p.logger.Error("floor plan load failed", "path", path, "error", err)
		p.report(fmt.Sprintf("Could not open %s: %v", filepath.Base(path), err), true)
		return err
	}
	b := img.Bounds()
	p.model.SetImage(img, path)
	p.logger.Info("floor plan loaded", "path", path, "format", format, "width", b.Dx(), "height", b.Dy())
	p.report(fmt.Sprintf("Loaded %s (%dx%d)", filepath.Base(path), b.Dx(), b.Dy()), false)
	return nil
}

// CaptureScreen uses a screen grab as the floor plan.
func (p *ImagePresenter) CaptureScreen() error {
	if p == nil || p.model == nil || p.capture == nil {
		return nil
	}
	snap, err := p.capture.Capture()
	if err != nil {
		p.report(fmt.Sprintf("Screen capture failed: %v", err), true)
		return err
	}
	b := snap.Image.Bounds()
	p.model.SetImage(snap.Image, "screen")
	p.logger.Info("floor plan captured", "width", b.Dx(), "height", b.Dy())
	p.report(fmt.Sprintf("Captured screen (%dx%d) at %s", b.Dx(), b.Dy(), snap.CapturedAt.Format("15:04:05")), false)
	return nil
}

func (p *ImagePresenter) report(msg string, isErr bool) {
	if p.status == nil {
		return
	}
	if isErr {
		p.status.Error(msg)
		return
	}
	p.status.Info(msg)
}
