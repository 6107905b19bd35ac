// Package pkg provides the core libraries of terramap, a deterministic
// seeded terrain generator.
//
// # Overview
//
// Terramap turns a seed and a size into an elevation grid and a biome grid.
// Identical inputs always produce bit-identical output, on any machine and
// with any degree of parallelism. The pkg directory is organized leaf-first:
//
//  1. [noise] - Lattice hash, seeding strategies, value noise, fractal sum
//  2. [biome] - Threshold tables mapping elevation to a biome
//  3. [terrain] - Elevation shaping, presets and the parallel grid driver
//  4. [sink] - Output formats (JSON, CSV, PNG, ANSI)
//
// # Architecture
//
// The data flow for one map:
//
//	seed, size, preset
//	         ↓
//	    [gridshape] (fallback policy for seed and size text)
//	         ↓
//	    [terrain.Generate] (per cell: fractal → shape → clamp)
//	         ↓
//	    [terrain.Grid.Classify] (biome per cell)
//	         ↓
//	    [sink.Render] → bytes
//
// # Quick Start
//
//	preset := terrain.Classic()
//	grid, err := terrain.Generate(ctx, 42, preset.Width, preset.Height, preset.Config)
//	if err != nil {
//	    return err
//	}
//	png, err := sink.Render(ctx, sink.NewMap(grid, preset.Config), sink.FormatPNG)
//
// # Supporting Packages
//
// [config] - TOML and YAML preset override files.
//
// [server] - HTTP endpoint serving rendered maps, with a [cache] of results.
//
// [errors] - Structured error codes shared by the CLI and the server.
//
// [observability] - Hooks for metrics and tracing around generation,
// rendering and HTTP requests.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/noise/...     # Specific package
//	go test -run Example ./...  # Examples only
//	go test -bench . ./pkg/terrain
//
// [noise]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/noise
// [biome]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/biome
// [terrain]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/terrain
// [terrain.Generate]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/terrain#Generate
// [terrain.Grid.Classify]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/terrain#Grid.Classify
// [sink]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/sink
// [sink.Render]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/sink#Render
// [gridshape]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/gridshape
// [config]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/config
// [server]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/server
// [cache]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/terramap/pkg/buildinfo
package pkg
