package render

import (
	"fmt"

	"github.com/rclancey/earcut"

	"github.com/soocke/vaastu-overlay-go/domain/geometry"
)

// triangulate splits a simple polygon into triangles. A closing vertex equal
// to the first one is dropped before triangulation.
func triangulate(polygon []geometry.Point) ([][3]geometry.Point, error) {
	if geometry.IsClosed(polygon) {
		polygon = polygon[:len(polygon)-1]
	}
	if len(polygon) < 3 {
		return nil, fmt.Errorf("triangulate: %d vertices", len(polygon))
	}

	// [x0, y0, x1, y1, ...]
	coords := make([]float64, len(polygon)*2)
	for i, p := range polygon {
		coords[i*2] = p.X
		coords[i*2+1] = p.Y
	}
	indices, err := earcut.Earcut(coords, nil, 2)
	if err != nil {
		return nil, fmt.Errorf("triangulate %d vertices: %w", len(polygon), err)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("triangulate: %d indices not divisible by 3", len(indices))
	}

	tris := make([][3]geometry.Point, len(indices)/3)
	for t := range tris {
		for k := 0; k < 3; k++ {
			tris[t][k] = polygon[indices[t*3+k]]
		}
	}
	return tris, nil
}
