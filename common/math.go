package common

import "math"

const (
	// TileSize is the edge length of one grid tile in world units.
	TileSize = 32.0

	// ArrivalThreshold is the distance under which a grid walker counts as arrived.
	ArrivalThreshold = 0.25
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
