package terrain

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"

	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/errors"
)

// Grid is a row-major elevation map. Cells[y][x] is in [0,1].
type Grid struct {
	Seed   uint32
	Width  int
	Height int
	Cells  [][]float64
}

// At returns the elevation at (x, y).
func (g *Grid) At(x, y int) float64 {
	return g.Cells[y][x]
}

// Range returns the lowest and highest elevation in the grid.
func (g *Grid) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, row := range g.Cells {
		for _, v := range row {
			lo = min(lo, v)
			hi = max(hi, v)
		}
	}
	return lo, hi
}

// Digest returns a SHA-256 hex digest of the dimensions and the exact bits of
// every cell. Two grids with the same digest are bit-identical.
func (g *Grid) Digest() string {
	buf := make([]byte, 0, 16+8*g.Width*g.Height)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Width))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(g.Height))
	for _, row := range g.Cells {
		for _, v := range row {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v))
		}
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])
}

// Classify maps every cell through table. It never fails; cells no biome
// covers are recorded as unknown and reported by [BiomeGrid.Check].
func (g *Grid) Classify(table biome.Table) *BiomeGrid {
	b := &BiomeGrid{
		Width:  g.Width,
		Height: g.Height,
		Table:  table.Clone(),
		Cells:  make([][]int, g.Height),
	}
	for y, row := range g.Cells {
		out := make([]int, len(row))
		for x, v := range row {
			out[x] = table.Index(v)
		}
		b.Cells[y] = out
	}
	return b
}

// BiomeGrid has the shape of the elevation grid it was classified from.
// Cells hold indexes into Table, or -1 for unknown.
type BiomeGrid struct {
	Width  int
	Height int
	Table  biome.Table
	Cells  [][]int
}

// At returns the biome at (x, y).
func (b *BiomeGrid) At(x, y int) biome.Biome {
	if i := b.Cells[y][x]; i >= 0 {
		return b.Table[i]
	}
	return biome.Unknown
}

// Colors returns the display color of every cell, row-major.
func (b *BiomeGrid) Colors() [][]string {
	return b.mapCells(func(bm biome.Biome) string { return bm.Color })
}

// Names returns the biome name of every cell, row-major.
func (b *BiomeGrid) Names() [][]string {
	return b.mapCells(func(bm biome.Biome) string { return bm.Name })
}

func (b *BiomeGrid) mapCells(fn func(biome.Biome) string) [][]string {
	out := make([][]string, b.Height)
	for y := range b.Cells {
		row := make([]string, b.Width)
		for x := range row {
			row[x] = fn(b.At(x, y))
		}
		out[y] = row
	}
	return out
}

// Unclassified counts cells that fell outside every threshold.
func (b *BiomeGrid) Unclassified() int {
	n := 0
	for _, row := range b.Cells {
		for _, i := range row {
			if i < 0 {
				n++
			}
		}
	}
	return n
}

// Check returns an UNCLASSIFIABLE_ELEVATION error if any cell is unknown.
func (b *BiomeGrid) Check() error {
	if n := b.Unclassified(); n > 0 {
		return errors.New(errors.ErrCodeUnclassifiable, "%d of %d cells exceed every biome threshold", n, b.Width*b.Height)
	}
	return nil
}

// Share is one line of a biome distribution.
type Share struct {
	Biome   biome.Biome
	Count   int
	Percent float64
}

// Histogram returns the cell count of each biome in table order. An unknown
// entry is appended only when some cell is unclassified.
func (b *BiomeGrid) Histogram() []Share {
	counts := make([]int, len(b.Table)+1)
	for _, row := range b.Cells {
		for _, i := range row {
			if i < 0 {
				counts[len(b.Table)]++
			} else {
				counts[i]++
			}
		}
	}

	total := float64(b.Width * b.Height)
	shares := make([]Share, 0, len(counts))
	for i, bm := range b.Table {
		shares = append(shares, Share{Biome: bm, Count: counts[i], Percent: 100 * float64(counts[i]) / total})
	}
	if n := counts[len(b.Table)]; n > 0 {
		shares = append(shares, Share{Biome: biome.Unknown, Count: n, Percent: 100 * float64(n) / total})
	}
	return shares
}
