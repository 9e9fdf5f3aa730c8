package geometry

import "math"

// AngleDegrees returns the direction from origin to target in whole degrees,
// measured in screen space (y down) and normalized to [0,360).
func AngleDegrees(origin, target Point) int {
	d := target.Sub(origin)
	deg := math.Atan2(d.Y, d.X) * 180 / math.Pi
	// round half up, matching how the rotation slider snaps
	a := int(math.Floor(deg + 0.5))
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// ClampDegrees limits v to the closed range [0,360].
func ClampDegrees(v int) int {
	if v < 0 {
		return 0
	}
	if v > 360 {
		return 360
	}
	return v
}

// Radians converts whole degrees to radians.
func Radians(deg int) float64 { return float64(deg) * math.Pi / 180 }
