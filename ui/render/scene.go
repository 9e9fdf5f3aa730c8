package render

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/soocke/vaastu-overlay-go/assets"
	"github.com/soocke/vaastu-overlay-go/domain/geometry"
	"github.com/soocke/vaastu-overlay-go/domain/overlay"
	"github.com/soocke/vaastu-overlay-go/domain/tracer"
	"github.com/soocke/vaastu-overlay-go/ui/images"
)

// Input is everything a frame depends on. Base is already at display size;
// tracer and overlay coordinates are local and get multiplied by Scale.
type Input struct {
	Base    image.Image
	Scale   float64
	Tracer  tracer.State
	Overlay overlay.State
	// Chakra is the diagram to draw for a visible overlay. When its size does
	// not match the overlay at this scale it is resampled.
	Chakra  image.Image
	Caption string
	Style   Style
}

// Scene composes the floor plan, boundary, centroid and chakra into a new
// image the size of Base. It returns nil when there is no base image.
func Scene(in Input) image.Image {
	if in.Base == nil || in.Base.Bounds().Empty() {
		return nil
	}
	s := in.Scale
	if s <= 0 {
		s = 1
	}
	b := in.Base.Bounds()
	dc := gg.NewContext(b.Dx(), b.Dy())
	dc.DrawImage(in.Base, -b.Min.X, -b.Min.Y)

	pts := make([]geometry.Point, len(in.Tracer.Points))
	for i, p := range in.Tracer.Points {
		pts[i] = p.Scale(s)
	}

	if in.Tracer.HasCentroid {
		drawArea(dc, pts, in.Style)
	}
	drawBoundary(dc, pts, in.Style)
	if in.Tracer.CanClose() {
		drawClosureRing(dc, pts[0], in.Tracer.ClosureThreshold*s, in.Style)
	}
	if in.Tracer.HasCentroid {
		c := in.Tracer.Centroid.Scale(s)
		in.Style.Centroid.apply(dc)
		dc.DrawCircle(c.X, c.Y, in.Style.CentroidSize)
		dc.Fill()
	}
	if in.Overlay.Visible {
		drawChakra(dc, in.Overlay, in.Chakra, s)
	}
	if in.Caption != "" {
		drawCaption(dc, in.Caption, in.Style)
	}
	return dc.Image()
}

// Export renders in at natural resolution and writes a PNG to path.
func Export(path string, in Input) error {
	img := Scene(in)
	if img == nil {
		return fmt.Errorf("export %s: no floor plan loaded", path)
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

// ExportDetail renders in, crops a size x size square around center (local
// coordinates at Scale 1) and writes it as PNG.
func ExportDetail(path string, in Input, center geometry.Point, size int) error {
	img := Scene(in)
	if img == nil {
		return fmt.Errorf("export %s: no floor plan loaded", path)
	}
	crop, _, err := images.CropAround(img, image.Pt(int(math.Round(center.X)), int(math.Round(center.Y))), size)
	if err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	if err := gg.SavePNG(path, crop); err != nil {
		return fmt.Errorf("export %s: %w", path, err)
	}
	return nil
}

func drawArea(dc *gg.Context, pts []geometry.Point, st Style) {
	tris, err := triangulate(pts)
	if err != nil {
		return
	}
	st.Area.apply(dc)
	for _, t := range tris {
		dc.MoveTo(t[0].X, t[0].Y)
		dc.LineTo(t[1].X, t[1].Y)
		dc.LineTo(t[2].X, t[2].Y)
		dc.ClosePath()
	}
	dc.Fill()
}

func drawBoundary(dc *gg.Context, pts []geometry.Point, st Style) {
	st.Segment.apply(dc)
	dc.SetLineWidth(st.SegmentWidth)
	dc.SetLineCap(gg.LineCapButt)
	for _, seg := range TrimmedSegments(pts, st.MarkerRadius) {
		dc.DrawLine(seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
		dc.Stroke()
	}
	dc.SetLineWidth(st.MarkerStroke)
	for _, p := range pts {
		dc.DrawCircle(p.X, p.Y, st.MarkerRadius)
		st.MarkerFill.apply(dc)
		dc.FillPreserve()
		st.MarkerEdge.apply(dc)
		dc.Stroke()
	}
}

// drawClosureRing outlines the area around the first point in which a click
// closes the boundary. It is drawn over the markers since at small view
// scales it is tighter than the marker itself.
func drawClosureRing(dc *gg.Context, first geometry.Point, radius float64, st Style) {
	if radius <= 0 {
		return
	}
	st.Segment.apply(dc)
	dc.SetLineWidth(2)
	dc.SetDash(4, 3)
	dc.DrawCircle(first.X, first.Y, radius)
	dc.Stroke()
	dc.SetDash()
}

func drawChakra(dc *gg.Context, ov overlay.State, chakra image.Image, s float64) {
	w := int(math.Round(ov.Size.Width * s))
	h := int(math.Round(ov.Size.Height * s))
	if w < 1 || h < 1 {
		return
	}
	if chakra == nil {
		chakra = assets.Chakra(w)
	}
	if cb := chakra.Bounds(); cb.Dx() != w || cb.Dy() != h {
		chakra = images.Resize(chakra, w, h)
	}
	c := ov.Center().Scale(s)
	dc.Push()
	dc.RotateAbout(gg.Radians(float64(ov.RotationDegrees)), c.X, c.Y)
	dc.DrawImageAnchored(chakra, int(math.Round(c.X)), int(math.Round(c.Y)), 0.5, 0.5)
	dc.Pop()
}

func drawCaption(dc *gg.Context, caption string, st Style) {
	face, err := assets.FontFace(st.CaptionSize)
	if err != nil {
		return
	}
	dc.SetFontFace(face)
	tw, th := dc.MeasureString(caption)
	pad := st.CaptionSize / 2
	y := float64(dc.Height()) - th - 2*pad
	st.CaptionBg.apply(dc)
	dc.DrawRectangle(0, y, tw+2*pad, th+2*pad)
	dc.Fill()
	st.CaptionFg.apply(dc)
	dc.DrawStringAnchored(caption, pad, y+pad+th/2, 0, 0.5)
}

// Placeholder returns a w x h card showing msg, used before a plan is loaded.
func Placeholder(w, h int, msg string, st Style) image.Image {
	if w < 1 || h < 1 {
		w, h = 1, 1
	}
	dc := gg.NewContext(w, h)
	st.CaptionBg.apply(dc)
	dc.Clear()
	if face, err := assets.FontFace(st.CaptionSize); err == nil && msg != "" {
		dc.SetFontFace(face)
		st.CaptionFg.apply(dc)
		dc.DrawStringAnchored(msg, float64(w)/2, float64(h)/2, 0.5, 0.5)
	}
	return dc.Image()
}
