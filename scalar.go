package pga3d

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg Float) Float {
	return deg * (math.Pi / 180)
}
