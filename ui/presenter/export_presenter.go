package presenter

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/render"
)

// ErrNoFloorPlan is returned when exporting before a plan is loaded.
var ErrNoFloorPlan = errors.New("no floor plan loaded")

// ErrNoCentroid is returned when copying before a centroid exists.
var ErrNoCentroid = errors.New("centroid unavailable")

// NaturalSource supplies the floor plan at natural resolution.
type NaturalSource interface {
	Loaded() bool
	Image() image.Image
}

// ExportPresenter writes the annotated plan to PNG and copies the centroid.
type ExportPresenter struct {
	floor   NaturalSource
	tracer  tracer.StateSource
	overlay overlay.StateSource
	chakra  ChakraFunc
	status  StatusSink
	logger  *slog.Logger
	style   render.Style
	dir     string

	now func() time.Time
	// WriteClipboard defaults to the system clipboard.
	WriteClipboard func(string) error
}

func NewExportPresenter(floor NaturalSource, t tracer.StateSource, ov overlay.StateSource, chakra ChakraFunc, status StatusSink, logger *slog.Logger, style render.Style, dir string) *ExportPresenter {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportPresenter{
		floor: floor, tracer: t, overlay: ov, chakra: chakra, status: status,
		logger: logger, style: style, dir: dir,
		now:            time.Now,
		WriteClipboard: clipboard.WriteAll,
	}
}

// SetStyle replaces the marker style used for exports.
func (p *ExportPresenter) SetStyle(s render.Style) {
	if p != nil {
		p.style = s
	}
}

// SetDir changes the directory used when ExportPNG gets no path.
func (p *ExportPresenter) SetDir(dir string) {
	if p != nil {
		p.dir = dir
	}
}

// DefaultExportPath names an export file after the current time.
func DefaultExportPath(dir string, now time.Time) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, "vaastu-"+now.Format("20060102-150405")+".png")
}

// ExportPNG renders the plan at natural resolution to path, or to a
// timestamped file in the export directory when path is empty. It returns
// the path written.
func (p *ExportPresenter) ExportPNG(path string) (string, error) {
	if p == nil || p.floor == nil || !p.floor.Loaded() {
		p.fail("Nothing to export: open a floor plan first", ErrNoFloorPlan)
		return "", ErrNoFloorPlan
	}
	if path == "" {
		path = DefaultExportPath(p.dir, p.now())
	}
	if err := render.Export(path, p.input()); err != nil {
		p.fail(fmt.Sprintf("Export failed: %v", err), err)
		return "", err
	}
	p.logger.Info("plan exported", "path", path)
	if p.status != nil {
		p.status.Info("Exported " + path)
	}
	return path, nil
}

// ExportDetail writes a close-up around the Bhramhasthan, sized to twice the
// chakra, next to the regular export. It returns the path written.
func (p *ExportPresenter) ExportDetail(path string) (string, error) {
	if p == nil || p.floor == nil || !p.floor.Loaded() {
		p.fail("Nothing to export: open a floor plan first", ErrNoFloorPlan)
		return "", ErrNoFloorPlan
	}
	in := p.input()
	if !in.Tracer.HasCentroid {
		p.fail("No Bhramhasthan yet: close a boundary first", ErrNoCentroid)
		return "", ErrNoCentroid
	}
	if path == "" {
		path = strings.TrimSuffix(DefaultExportPath(p.dir, p.now()), ".png") + "-detail.png"
	}
	size := int(math.Round(2 * in.Overlay.Size.Width))
	if err := render.ExportDetail(path, in, in.Tracer.Centroid, size); err != nil {
		p.fail(fmt.Sprintf("Export failed: %v", err), err)
		return "", err
	}
	p.logger.Info("detail exported", "path", path, "size", size)
	if p.status != nil {
		p.status.Info("Exported " + path)
	}
	return path, nil
}

func (p *ExportPresenter) input() render.Input {
	in := render.Input{Base: p.floor.Image(), Scale: 1, Style: p.style}
	if p.tracer != nil {
		in.Tracer = p.tracer.State()
	}
	if p.overlay != nil {
		in.Overlay = p.overlay.State()
		if in.Overlay.Visible && p.chakra != nil {
			in.Chakra = p.chakra(int(math.Round(in.Overlay.Size.Width)))
		}
	}
	in.Caption = Caption(in.Tracer, in.Overlay)
	return in
}

// CopyCentroid puts the centroid coordinates on the clipboard.
func (p *ExportPresenter) CopyCentroid() error {
	if p == nil || p.tracer == nil {
		return ErrNoCentroid
	}
	st := p.tracer.State()
	if !st.HasCentroid {
		p.fail("No Bhramhasthan yet: close a boundary first", ErrNoCentroid)
		return ErrNoCentroid
	}
	text := fmt.Sprintf("%.1f, %.1f", st.Centroid.X, st.Centroid.Y)
	if p.WriteClipboard == nil {
		return errors.New("clipboard unavailable")
	}
	if err := p.WriteClipboard(text); err != nil {
		p.fail(fmt.Sprintf("Clipboard: %v", err), err)
		return fmt.Errorf("copy centroid: %w", err)
	}
	if p.status != nil {
		p.status.Info("Copied " + text)
	}
	return nil
}

// Caption summarises the result for exported images. It is empty until a
// centroid exists.
func Caption(t tracer.State, o overlay.State) string {
	if !t.HasCentroid {
		return ""
	}
	s := fmt.Sprintf("Bhramhasthan (%.1f, %.1f)", t.Centroid.X, t.Centroid.Y)
	if o.Visible {
		s += fmt.Sprintf("  chakra %d deg", o.RotationDegrees)
	}
	return s
}

func (p *ExportPresenter) fail(msg string, err error) {
	if p == nil {
		return
	}
	if p.logger != nil {
		p.logger.Warn(msg, "error", err)
	}
	if p.status != nil {
		p.status.Error(msg)
	}
}
