package noise

import (
	"github.com/aquilax/go-perlin"
)

// Perlin parameters for a single octave; octave stacking is left to [Fractal].
const (
	perlinAlpha   = 2
	perlinBeta    = 2
	perlinOctaves = 1
)

// PerlinField is a gradient-noise basis backed by go-perlin. Each layer gets
// its own generator seeded from the layer's contribution. Output is remapped
// from [-1,1] to [0,1].
//
// Unlike [ValueField] the bits depend on the go-perlin version; runs are
// deterministic for a given build.
type PerlinField struct {
	layers []*perlin.Perlin
}

// NewPerlinField builds generators for layers 0..layers-1.
func NewPerlinField(ctx SeedContext, layers int) *PerlinField {
	f := &PerlinField{layers: make([]*perlin.Perlin, max(layers, 1))}
	for i := range f.layers {
		f.layers[i] = perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, int64(ctx.Contribution(i)))
	}
	return f
}

// At implements Field.
func (f *PerlinField) At(x, y float64, layer int) float64 {
	v := (f.layers[layer].Noise2D(x, y) + 1) / 2
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
