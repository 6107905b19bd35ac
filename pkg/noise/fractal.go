package noise

// Fractal sums octaves of f at (x*scale, y*scale). Each octave doubles the
// frequency and multiplies the amplitude by persistence; octave o reads layer o.
//
// The sum is divided by the total amplitude, so the result stays within the
// range of the basis (roughly [0,1] for [ValueField]) for any octave count.
// octaves must be at least 1.
func Fractal(f Field, x, y float64, octaves int, persistence, scale float64) float64 {
	amplitude, frequency := 1.0, 1.0
	var value, normalizer float64
	for o := 0; o < octaves; o++ {
		value += amplitude * f.At(x*scale*frequency, y*scale*frequency, o)
		normalizer += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return value / normalizer
}
