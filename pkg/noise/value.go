package noise

import "math"

// Fade is the quintic smoothstep 6t^5 - 15t^4 + 10t^3. Its first and second
// derivatives vanish at 0 and 1, which hides the lattice.
func Fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

// Lerp interpolates linearly between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ValueNoise samples continuous value noise at (x, y). The four surrounding
// lattice corners are hashed with [Hash2D] and blended with [Fade] weights.
func ValueNoise(x, y float64, contribution uint32) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	xi, yi := int(fx), int(fy)
	xf, yf := x-fx, y-fy

	v00 := Hash2D(xi, yi, contribution)
	v10 := Hash2D(xi+1, yi, contribution)
	v01 := Hash2D(xi, yi+1, contribution)
	v11 := Hash2D(xi+1, yi+1, contribution)

	u := Fade(xf)
	top := Lerp(v00, v10, u)
	bottom := Lerp(v01, v11, u)
	return Lerp(top, bottom, Fade(yf))
}

// Field is a continuous 2D noise basis with independent layers.
type Field interface {
	At(x, y float64, layer int) float64
}

// ValueField is the default basis: [ValueNoise] keyed by the layer's
// contribution from Context.
type ValueField struct {
	Context SeedContext
}

// At implements Field.
func (f ValueField) At(x, y float64, layer int) float64 {
	return ValueNoise(x, y, f.Context.Contribution(layer))
}
