package sink

import (
	"encoding/json"

	"github.com/matzehuels/terramap/pkg/biome"
)

type jsonOutput struct {
	Preset  string        `json:"preset"`
	Seed    uint32        `json:"seed"`
	Width   int           `json:"width"`
	Height  int           `json:"height"`
	Seeding string        `json:"seeding"`
	Basis   string        `json:"basis"`
	Digest  string        `json:"digest"`
	Biomes  []biome.Biome `json:"biomes"`
	Cells   Cells         `json:"cells"`
	Values  [][]float64   `json:"values,omitempty"`
	Colors  [][]string    `json:"colors,omitempty"`
}

func renderJSON(m Map, o options) ([]byte, error) {
	out := jsonOutput{
		Preset:  m.Preset,
		Seed:    m.Grid.Seed,
		Width:   m.Grid.Width,
		Height:  m.Grid.Height,
		Seeding: m.Seeding,
		Basis:   m.Basis,
		Digest:  m.Grid.Digest(),
		Biomes:  m.Biomes.Table,
		Cells:   o.cells,
	}
	if o.cells == Colors {
		out.Colors = m.Biomes.Colors()
	} else {
		out.Values = m.Grid.Cells
	}
	return json.MarshalIndent(out, "", "  ")
}
