package math

import "math"

// Pi mirrors math.Pi for callers of this package
const Pi = math.Pi

// Infinity is the open upper bound for ray parameter intervals
var Infinity = math.Inf(1)

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * Pi / 180.0
}

// Clamp limits x to [minVal, maxVal]
func Clamp(x, minVal, maxVal float64) float64 {
	return max(minVal, min(maxVal, x))
}
