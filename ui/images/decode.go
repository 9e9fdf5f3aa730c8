package images

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// floor plans arrive in whatever format the scanner or CAD export produced
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage reports an image that decoded to zero pixels.
var ErrEmptyImage = errors.New("images: empty image")

// Decode reads any registered image format and returns the image and format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// LoadFile opens and decodes the image at path.
func LoadFile(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()
	return Decode(f)
}
