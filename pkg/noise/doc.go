// Package noise implements the deterministic noise primitives behind terramap.
//
// Everything in this package is pure: the same inputs always produce the same
// bits, on every platform, which is what makes generated maps reproducible
// from a seed alone.
//
// # Building Blocks
//
//   - [Hash2D]: integer lattice hash mapping (x, y, seed contribution) to [0,1)
//   - [Mulberry32]: small 32-bit sequence generator used by [SequenceSeeding]
//   - [Seeding] / [SeedContext]: pluggable strategy deciding how a run seed
//     becomes the per-layer hash contribution
//   - [ValueNoise]: quintic-smoothed bilinear interpolation of four lattice hashes
//   - [Field]: a continuous noise basis ([ValueField] or [PerlinField])
//   - [Fractal]: multi-octave accumulation normalized by the amplitude sum
//
// # Layers
//
// A layer is one independent noise field. Fractal octave o samples layer o and
// callers are free to reserve further layers for their own passes (terramap's
// elevation shaper uses layer == octaves for its regional modulation). The
// [SeedContext] decides which hash contribution each layer receives.
//
// # Seeding Strategies
//
// The two strategies are deliberately incompatible: the same seed produces a
// different map under each. Pick one per run and record it next to the seed.
//
//	ctx := noise.SequenceSeeding{}.Context(seed, octaves+1)
//	field := noise.ValueField{Context: ctx}
//	e := noise.Fractal(field, 12, 7, 4, 0.5, 0.08)
package noise
