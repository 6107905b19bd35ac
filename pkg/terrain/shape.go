package terrain

import (
	"math"

	"github.com/matzehuels/terramap/pkg/noise"
)

// Shape bends a raw fractal elevation with the power curve, multiplies in a
// low-frequency regional sample from layer, and clamps the result to [0,1].
// The clamp is what lets classification assume in-range input.
func Shape(raw float64, x, y int, f noise.Field, s Shaping, layer int) float64 {
	e := math.Pow(clamp01(raw), s.Exponent)
	region := f.At(float64(x)*s.RegionScale, float64(y)*s.RegionScale, layer)
	e *= 1 + region*s.RegionStrength
	return clamp01(e)
}

// Elevation computes the final elevation of cell (x, y).
func Elevation(f noise.Field, x, y int, c Config) float64 {
	raw := noise.Fractal(f, float64(x), float64(y), c.Octaves, c.Persistence, c.Scale)
	return Shape(raw, x, y, f, c.Shaping, c.regionLayer())
}

// clamp01 also maps NaN to 0.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
