package biome

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/terramap/pkg/errors"
)

// Biome names used by the built-in tables.
const (
	DeepOcean = "deep ocean"
	Coast     = "coast"
	Grassland = "grassland"
	Forest    = "forest"
	Mountain  = "mountain"
)

// Biome is one terrain category with an inclusive upper elevation bound and a
// hex display color.
type Biome struct {
	Name  string  `json:"name" toml:"name" yaml:"name"`
	Max   float64 `json:"max" toml:"max" yaml:"max"`
	Color string  `json:"color" toml:"color" yaml:"color"`
}

// Unknown is returned when no biome bound covers an elevation. It is never
// produced for in-range elevations with a valid table.
var Unknown = Biome{Name: "unknown", Max: 0, Color: "#000000"}

// IsUnknown reports whether b is the [Unknown] sentinel.
func (b Biome) IsUnknown() bool {
	return b == Unknown
}

// RGBA resolves the hex color. Invalid colors resolve to opaque black.
func (b Biome) RGBA() color.RGBA {
	c, err := colorful.Hex(b.Color)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	r, g, bl := c.RGB255()
	return color.RGBA{R: r, G: g, B: bl, A: 0xff}
}

func (b Biome) String() string {
	return fmt.Sprintf("%s (<= %.2f, %s)", b.Name, b.Max, b.Color)
}

// Table is an ascending list of biomes.
type Table []Biome

var classic = Table{
	{Name: DeepOcean, Max: 0.35, Color: "#1565c0"},
	{Name: Coast, Max: 0.42, Color: "#42a5f5"},
	{Name: Grassland, Max: 0.51, Color: "#81c784"},
	{Name: Forest, Max: 0.60, Color: "#388e3c"},
	{Name: Mountain, Max: 1.00, Color: "#795548"},
}

var wide = Table{
	{Name: DeepOcean, Max: 0.30, Color: "#1565c0"},
	{Name: Coast, Max: 0.40, Color: "#42a5f5"},
	{Name: Grassland, Max: 0.52, Color: "#81c784"},
	{Name: Forest, Max: 0.65, Color: "#388e3c"},
	{Name: Mountain, Max: 1.00, Color: "#795548"},
}

// Classic returns the original five-band table.
func Classic() Table { return classic.Clone() }

// Wide returns a five-band table that shifts more of the range into lowlands
// and forest.
func Wide() Table { return wide.Clone() }

// Classify returns the first biome whose bound is >= e, or [Unknown].
func (t Table) Classify(e float64) Biome {
	if i := t.Index(e); i >= 0 {
		return t[i]
	}
	return Unknown
}

// Index returns the position of the biome covering e, or -1.
func (t Table) Index(e float64) int {
	for i, b := range t {
		if e <= b.Max {
			return i
		}
	}
	return -1
}

// Validate checks that t is usable for classification: at least one entry,
// bounds in (0,1], strictly ascending, the last bound exactly 1.0, and every
// color a valid hex string.
func (t Table) Validate() error {
	if len(t) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "biome table is empty")
	}
	prev := 0.0
	for i, b := range t {
		if b.Name == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "biome %d has no name", i)
		}
		if err := errors.ValidateUnitInterval(fmt.Sprintf("biome %q max", b.Name), b.Max); err != nil {
			return err
		}
		if i > 0 && b.Max <= prev {
			return errors.New(errors.ErrCodeInvalidConfig,
				"biome thresholds must be strictly ascending: %q (%v) follows %v", b.Name, b.Max, prev)
		}
		if _, err := colorful.Hex(b.Color); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "biome %q has invalid color %q", b.Name, b.Color)
		}
		prev = b.Max
	}
	if last := t[len(t)-1].Max; last != 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "last biome threshold must be 1.0, got %v", last)
	}
	return nil
}

// Names returns the biome names in table order.
func (t Table) Names() []string {
	names := make([]string, len(t))
	for i, b := range t {
		names[i] = b.Name
	}
	return names
}

// Clone returns a copy that can be modified without touching t.
func (t Table) Clone() Table {
	return append(Table(nil), t...)
}
