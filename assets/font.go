package assets

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

// FontFace returns a Go Regular face at the given point size (72 DPI, so
// points equal pixels).
func FontFace(size float64) (font.Face, error) {
	regularOnce.Do(func() {
		regular, regularErr = truetype.Parse(goregular.TTF)
	})
	if regularErr != nil {
		return nil, fmt.Errorf("parse go regular: %w", regularErr)
	}
	if size <= 0 {
		size = 12
	}
	return truetype.NewFace(regular, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}
