package capture

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/vova616/screenshot"
)

// ErrEmptyCapture reports a grab that returned no pixels.
var ErrEmptyCapture = errors.New("capture: empty frame")

// Snapshot is a single screen grab.
type Snapshot struct {
	Image      *image.RGBA
	CapturedAt time.Time
}

// GrabFunc captures one frame.
type GrabFunc func() (*image.RGBA, error)

// Screen returns a capture of the primary monitor.
func Screen() (*image.RGBA, error) {
	return screenshot.CaptureScreen()
}

// Service takes screen snapshots to use as a floor plan.
type Service struct {
	grab   GrabFunc
	now    func() time.Time
	logger *slog.Logger
}

// NewService builds a Service. A nil grab uses Screen.
func NewService(logger *slog.Logger, grab GrabFunc) *Service {
	if grab == nil {
		grab = Screen
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{grab: grab, now: time.Now, logger: logger}
}

// Capture grabs one frame.
func (s *Service) Capture() (Snapshot, error) {
	start := s.now()
	img, err := s.grab()
	if err != nil {
		s.logger.Error("screen capture failed", slog.String("err", err.Error()))
		return Snapshot{}, fmt.Errorf("capture screen: %w", err)
	}
	if img == nil || img.Bounds().Empty() {
		s.logger.Warn("screen capture returned no pixels")
		return Snapshot{}, ErrEmptyCapture
	}
	end := s.now()
	s.logger.Debug("screen captured",
		slog.Int("width", img.Bounds().Dx()),
		slog.Int("height", img.Bounds().Dy()),
		slog.Duration("took", end.Sub(start)),
	)
	return Snapshot{Image: img, CapturedAt: end}, nil
}
