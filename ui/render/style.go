package render

import (
	"github.com/fogleman/gg"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/soocke/vaastu-overlay-go/config"
)

// Paint is a colour with its own opacity.
type Paint struct {
	Color colorful.Color
	Alpha float64
}

func (p Paint) apply(dc *gg.Context) {
	c := p.Color.Clamped()
	dc.SetRGBA(c.R, c.G, c.B, p.Alpha)
}

// Style controls how the boundary, centroid and caption are painted.
type Style struct {
	MarkerRadius float64
	MarkerStroke float64
	SegmentWidth float64
	CentroidSize float64
	CaptionSize  float64

	Segment    Paint
	MarkerFill Paint
	MarkerEdge Paint
	Centroid   Paint
	Area       Paint
	CaptionBg  Paint
	CaptionFg  Paint
}

var (
	red    = colorful.Color{R: 1}
	white  = colorful.Color{R: 1, G: 1, B: 1}
	yellow = colorful.Color{R: 1, G: 1}
	slate  = colorful.Color{R: 0.06, G: 0.09, B: 0.16}
)

// DefaultStyle returns the marker style for the given mode.
func DefaultStyle(dark bool) Style {
	s := Style{
		MarkerRadius: 10,
		MarkerStroke: 1,
		SegmentWidth: 5,
		CentroidSize: 10,
		CaptionSize:  16,
		Segment:      Paint{red, 1},
		MarkerFill:   Paint{white, 1},
		MarkerEdge:   Paint{red, 1},
		Centroid:     Paint{yellow, 1},
		Area:         Paint{red.BlendLab(white, 0.6), 0.25},
		CaptionBg:    Paint{white, 0.8},
		CaptionFg:    Paint{slate, 1},
	}
	if dark {
		s.Area = Paint{red.BlendLab(slate, 0.3), 0.3}
		s.CaptionBg = Paint{slate, 0.8}
		s.CaptionFg = Paint{white, 1}
	}
	return s
}

// StyleFromConfig applies marker dimensions and mode from cfg.
func StyleFromConfig(cfg *config.Config) Style {
	if cfg == nil {
		return DefaultStyle(false)
	}
	s := DefaultStyle(cfg.DarkMode)
	s.MarkerRadius = cfg.MarkerRadius
	s.CentroidSize = cfg.MarkerRadius
	s.SegmentWidth = cfg.SegmentWidth
	return s
}
