package render

import "github.com/soocke/vaastu-overlay-go/domain/geometry"

// Segment is a boundary line between two consecutive markers.
type Segment struct {
	From, To geometry.Point
}

// TrimmedSegments returns the lines joining consecutive points, shortened by
// radius at both ends so they stop at the marker edge. Pairs closer than
// radius overlap and yield no segment.
func TrimmedSegments(points []geometry.Point, radius float64) []Segment {
	if len(points) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1], points[i]
		d := geometry.Distance(prev, cur)
		if d < radius || d == 0 {
			continue
		}
		step := cur.Sub(prev).Scale(radius / d)
		out = append(out, Segment{From: prev.Add(step), To: cur.Sub(step)})
	}
	return out
}
