// Package terrain turns a seed into an elevation grid and a biome grid.
//
// # Pipeline
//
// Every cell is computed independently:
//
//  1. Fractal: [noise.Fractal] over the configured basis gives a raw elevation
//  2. Shape: a power curve plus a low-frequency regional modulation, clamped to [0,1]
//  3. Classify (optional): [biome.Table.Classify] maps the elevation to a biome
//
// [Generate] runs steps 1 and 2 for every cell, spreading rows across a
// bounded worker pool. Because cells share nothing but the immutable [Config],
// the result is bit-identical for any worker count.
//
// # Configuration
//
// [Config] is a plain value; nothing in this package reads mutable globals.
// Two presets ship with the package, "classic" and "wide". They differ in
// default dimensions, seeding strategy and biome table:
//
//	p, _ := terrain.Lookup("classic")
//	grid, err := terrain.Generate(ctx, 1, p.Width, p.Height, p.Config)
//	biomes := grid.Classify(p.Config.Table)
//
// # Errors
//
// Invalid dimensions and configs are rejected before any grid is allocated,
// with INVALID_DIMENSION and INVALID_CONFIG codes from pkg/errors. A
// successful call always returns a complete grid.
package terrain
