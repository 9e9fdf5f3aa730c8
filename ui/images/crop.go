package images

import (
	"errors"
	"image"
	"image/draw"
)

// CropAround returns a square of side size centered on c, clamped to the
// image bounds (at least 1x1). The crop is copied into a fresh *image.RGBA
// with origin (0,0); the returned rectangle is in src coordinates.
func CropAround(src image.Image, c image.Point, size int) (*image.RGBA, image.Rectangle, error) {
	if src == nil {
		return nil, image.Rectangle{}, errors.New("images: nil source")
	}
	if size < 1 {
		size = 1
	}
	b := src.Bounds()
	half := size / 2
	x0 := max(c.X-half, b.Min.X)
	y0 := max(c.Y-half, b.Min.Y)
	x1 := min(x0+size, b.Max.X)
	y1 := min(y0+size, b.Max.Y)
	if x1 <= x0 {
		x0, x1 = max(b.Max.X-1, b.Min.X), b.Max.X
	}
	if y1 <= y0 {
		y0, y1 = max(b.Max.Y-1, b.Min.Y), b.Max.Y
	}
	rect := image.Rect(x0, y0, x1, y1)
	out := image.NewRGBA(image.Rect(0, 0, rect.Dx(), rect.Dy()))
	draw.Draw(out, out.Bounds(), src, rect.Min, draw.Src)
	return out, rect, nil
}
