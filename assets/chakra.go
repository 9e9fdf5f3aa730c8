package assets

import (
	"image"
	"math"
	"sync"

	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// Zones is the number of directional sectors on the chakra.
	Zones = 16
	// Padas is the number of tick marks around the outer ring.
	Padas = 32

	minChakraSize = 32
)

// Directions lists the compass labels clockwise from the reference axis.
var Directions = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

var (
	chakraMu    sync.Mutex
	chakraCache = map[int]image.Image{}
)

// Chakra returns the reference diagram rendered into a transparent
// size x size image. North points along +x; compass order runs clockwise in
// screen space. Results are cached per size and must not be mutated.
func Chakra(size int) image.Image {
	if size < minChakraSize {
		size = minChakraSize
	}
	chakraMu.Lock()
	defer chakraMu.Unlock()
	if img, ok := chakraCache[size]; ok {
		return img
	}
	img := drawChakra(size)
	chakraCache[size] = img
	return img
}

func drawChakra(size int) image.Image {
	dc := gg.NewContext(size, size)
	c := float64(size) / 2
	r := c - math.Max(1, float64(size)/100)

	half := math.Pi / Zones
	for i := 0; i < Zones; i++ {
		mid := 2 * math.Pi * float64(i) / Zones
		hc := colorful.Hsv(360*float64(i)/Zones, 0.45, 0.95)
		dc.SetRGBA(hc.R, hc.G, hc.B, 140.0/255)
		dc.MoveTo(c, c)
		dc.DrawArc(c, c, r, mid-half, mid+half)
		dc.ClosePath()
		dc.Fill()
	}

	line := math.Max(1, float64(size)/200)
	dc.SetRGBA(0.25, 0.1, 0.05, 0.9)
	dc.SetLineWidth(line)
	for _, k := range []float64{1, 0.62, 0.3} {
		dc.DrawCircle(c, c, r*k)
		dc.Stroke()
	}
	for i := 0; i < Zones; i++ {
		a := 2*math.Pi*float64(i)/Zones + half
		dc.DrawLine(c+0.3*r*math.Cos(a), c+0.3*r*math.Sin(a), c+r*math.Cos(a), c+r*math.Sin(a))
		dc.Stroke()
	}
	for i := 0; i < Padas; i++ {
		a := 2 * math.Pi * float64(i) / Padas
		dc.DrawLine(c+0.92*r*math.Cos(a), c+0.92*r*math.Sin(a), c+r*math.Cos(a), c+r*math.Sin(a))
		dc.Stroke()
	}

	if face, err := FontFace(float64(size) / 18); err == nil {
		dc.SetFontFace(face)
		dc.SetRGBA(0.1, 0.05, 0, 1)
		for i, label := range Directions {
			a := 2 * math.Pi * float64(i) / float64(len(Directions))
			dc.DrawStringAnchored(label, c+0.78*r*math.Cos(a), c+0.78*r*math.Sin(a), 0.5, 0.5)
		}
	}

	// north arrow
	tip := 0.6 * r
	head := 0.08 * r
	dc.SetRGBA(0.8, 0.05, 0.05, 0.95)
	dc.SetLineWidth(2 * line)
	dc.DrawLine(c, c, c+tip-head, c)
	dc.Stroke()
	dc.MoveTo(c+tip, c)
	dc.LineTo(c+tip-2*head, c-head)
	dc.LineTo(c+tip-2*head, c+head)
	dc.ClosePath()
	dc.Fill()

	dc.SetRGBA(0.25, 0.1, 0.05, 1)
	dc.DrawCircle(c, c, math.Max(2, 0.03*r))
	dc.Fill()
	return dc.Image()
}
