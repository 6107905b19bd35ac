// Package sink renders generated maps into output formats.
//
// # Overview
//
// A "sink" turns a [Map] (an elevation grid plus its biome classification)
// into bytes. Every format preserves the grid shape: Height rows of Width
// cells, row-major, top row first.
//
//   - JSON: indented document with metadata, the biome legend and the cells
//   - CSV: one line per row, one field per cell
//   - PNG: one square per cell
//   - ANSI: colored terminal blocks via lipgloss
//
// # Cells
//
// [WithCells] picks what each cell carries:
//
//   - [Values]: the raw elevation in [0,1] (grayscale for image formats)
//   - [Colors]: the hex color of the cell's biome
//
// When unset, JSON and CSV default to values and PNG and ANSI to colors.
//
// Basic usage:
//
//	grid, _ := terrain.Generate(ctx, seed, w, h, cfg)
//	m := sink.NewMap(grid, cfg)
//	png, err := sink.Render(ctx, m, sink.FormatPNG, sink.WithCellSize(4))
//
// # Adding New Formats
//
//  1. Create a renderer: func renderFoo(m Map, o options) ([]byte, error)
//  2. Add a Format constant and register it in the renderers table
//  3. Add its content type to [ContentType]
package sink
