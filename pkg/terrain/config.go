package terrain

import (
	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/noise"
)

// Basis selects the continuous noise behind the fractal.
type Basis string

const (
	// BasisValue is hashed value noise; bit-reproducible everywhere.
	BasisValue Basis = "value"
	// BasisPerlin is gradient noise from go-perlin.
	BasisPerlin Basis = "perlin"
)

// ValidBases is the set of supported noise bases.
var ValidBases = map[Basis]bool{
	BasisValue:  true,
	BasisPerlin: true,
}

// Shaping holds the elevation curve parameters applied after the fractal.
type Shaping struct {
	// Exponent of the power curve. Values below 1 lift the midrange.
	Exponent float64
	// RegionScale is the frequency of the regional modulation noise.
	RegionScale float64
	// RegionStrength is how far the modulation can push an elevation up,
	// as a fraction of itself.
	RegionStrength float64
}

// DefaultShaping returns the standard curve: exponent 0.65, regional noise at
// frequency 0.02 with strength 0.3.
func DefaultShaping() Shaping {
	return Shaping{Exponent: 0.65, RegionScale: 0.02, RegionStrength: 0.3}
}

// Config is the immutable description of one generation run, minus the seed
// and dimensions.
type Config struct {
	// Name labels the config in logs and output metadata.
	Name string

	Octaves     int
	Persistence float64
	Scale       float64
	Shaping     Shaping

	Table   biome.Table
	Seeding noise.Seeding
	Basis   Basis
}

// Layers is the number of independent noise layers a run samples: one per
// octave plus the regional modulation layer.
func (c Config) Layers() int {
	return c.Octaves + 1
}

// regionLayer is the layer reserved for the shaper.
func (c Config) regionLayer() int {
	return c.Octaves
}

// Validate checks every parameter and returns an INVALID_CONFIG error for the
// first problem found.
func (c Config) Validate() error {
	if c.Octaves < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "octaves must be >= 1, got %d", c.Octaves)
	}
	if err := errors.ValidateUnitInterval("persistence", c.Persistence); err != nil {
		return err
	}
	if err := errors.ValidatePositive("scale", c.Scale); err != nil {
		return err
	}
	if err := errors.ValidatePositive("exponent", c.Shaping.Exponent); err != nil {
		return err
	}
	if err := errors.ValidatePositive("region scale", c.Shaping.RegionScale); err != nil {
		return err
	}
	if err := errors.ValidateFinite("region strength", c.Shaping.RegionStrength); err != nil {
		return err
	}
	if c.Shaping.RegionStrength < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "region strength must be >= 0, got %v", c.Shaping.RegionStrength)
	}
	if c.Seeding == nil {
		return errors.New(errors.ErrCodeInvalidConfig, "seeding strategy is required")
	}
	if !ValidBases[c.Basis] {
		return errors.New(errors.ErrCodeInvalidConfig, "invalid basis: %q (must be one of: value, perlin)", c.Basis)
	}
	return c.Table.Validate()
}

// Field builds the noise basis for one run.
func (c Config) Field(seed uint32) noise.Field {
	ctx := c.Seeding.Context(seed, c.Layers())
	if c.Basis == BasisPerlin {
		return noise.NewPerlinField(ctx, c.Layers())
	}
	return noise.ValueField{Context: ctx}
}

// WithTable returns a copy of c using table.
func (c Config) WithTable(table biome.Table) Config {
	c.Table = table.Clone()
	return c
}

// WithSeeding returns a copy of c using s.
func (c Config) WithSeeding(s noise.Seeding) Config {
	c.Seeding = s
	return c
}

// WithBasis returns a copy of c using b.
func (c Config) WithBasis(b Basis) Config {
	c.Basis = b
	return c
}
