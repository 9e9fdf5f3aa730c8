package geometry

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// DegenerateAreaTolerance bounds the twice-area of a polygon, relative to the
// summed |a|·|b| of its shoelace terms taken from the first vertex, below which
// it encloses nothing. The ratio is a weighted sine, so it does not depend on
// how large the coordinates are.
const DegenerateAreaTolerance = 1e-9

// ErrDegeneratePolygon reports a polygon whose enclosed area is (near) zero or
// that has too few points to enclose anything.
var ErrDegeneratePolygon = errors.New("geometry: degenerate polygon")

// SignedArea returns the shoelace area of a closed polygon. The polygon must end
// with a copy of its first point; no implicit wrap-around edge is added.
// Positive for counterclockwise winding in y-up space (clockwise on screen).
func SignedArea(polygon []Point) float64 {
	var sum float64
	for i := 0; i+1 < len(polygon); i++ {
		sum += r2.Cross(polygon[i].vec(), polygon[i+1].vec())
	}
	return sum / 2
}

// Centroid returns the area-weighted centroid of a closed polygon (closing
// duplicate included). It returns ErrDegeneratePolygon instead of a non-finite
// point when the area is zero or the polygon has fewer than 4 points.
func Centroid(polygon []Point) (Point, error) {
	if len(polygon) < 4 {
		return Point{}, ErrDegeneratePolygon
	}
	// Work relative to the first vertex so large image coordinates do not
	// cancel in the cross products.
	origin := polygon[0].vec()
	var area, mag, cx, cy float64
	for i := 0; i+1 < len(polygon); i++ {
		p1 := r2.Sub(polygon[i].vec(), origin)
		p2 := r2.Sub(polygon[i+1].vec(), origin)
		cross := r2.Cross(p1, p2)
		area += cross
		mag += r2.Norm(p1) * r2.Norm(p2)
		cx += (p1.X + p2.X) * cross
		cy += (p1.Y + p2.Y) * cross
	}
	if math.Abs(area) <= DegenerateAreaTolerance*mag {
		return Point{}, ErrDegeneratePolygon
	}
	area /= 2
	c := Point{X: origin.X + cx/(6*area), Y: origin.Y + cy/(6*area)}
	if !c.IsFinite() {
		return Point{}, ErrDegeneratePolygon
	}
	return c, nil
}

// IsClosed reports whether the polygon has at least 3 vertices plus a closing
// point equal to the first.
func IsClosed(polygon []Point) bool {
	return len(polygon) >= 4 && polygon[0] == polygon[len(polygon)-1]
}
