// Package config loads preset override files.
//
// A config file names a base preset and overrides any subset of its fields.
// TOML and YAML are supported, chosen by file extension:
//
//	# terramap.toml
//	base = "classic"
//	name = "archipelago"
//	width = 200
//	height = 200
//	scale = 0.05
//	seeding = "mixed"
//
//	[[biomes]]
//	name = "sea"
//	max = 0.6
//	color = "#1565c0"
//
//	[[biomes]]
//	name = "land"
//	max = 1.0
//	color = "#81c784"
//
// Priority is defaults < file < flags; flags are applied by the caller.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/noise"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// Format is a config file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// File mirrors the on-disk layout. Zero values keep the base preset's value;
// RegionStrength is a pointer because zero is a meaningful setting.
type File struct {
	Base           string        `toml:"base,omitempty" yaml:"base,omitempty"`
	Name           string        `toml:"name,omitempty" yaml:"name,omitempty"`
	Width          int           `toml:"width,omitempty" yaml:"width,omitempty"`
	Height         int           `toml:"height,omitempty" yaml:"height,omitempty"`
	Octaves        int           `toml:"octaves,omitempty" yaml:"octaves,omitempty"`
	Persistence    float64       `toml:"persistence,omitempty" yaml:"persistence,omitempty"`
	Scale          float64       `toml:"scale,omitempty" yaml:"scale,omitempty"`
	Exponent       float64       `toml:"exponent,omitempty" yaml:"exponent,omitempty"`
	RegionScale    float64       `toml:"region_scale,omitempty" yaml:"region_scale,omitempty"`
	RegionStrength *float64      `toml:"region_strength,omitempty" yaml:"region_strength,omitempty"`
	Seeding        string        `toml:"seeding,omitempty" yaml:"seeding,omitempty"`
	Basis          string        `toml:"basis,omitempty" yaml:"basis,omitempty"`
	Biomes         []biome.Biome `toml:"biomes,omitempty" yaml:"biomes,omitempty"`
}

// FormatFromPath picks the encoding from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported config extension %q (must be .toml, .yaml or .yml)", filepath.Ext(path))
}

// Load reads path and applies it on top of its base preset.
func Load(path string) (terrain.Preset, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return terrain.Preset{}, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return terrain.Preset{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return terrain.Preset{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "reading %s", path)
	}
	f, err := Decode(data, format)
	if err != nil {
		return terrain.Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "loading config from %s", path)
	}
	return f.Apply()
}

// Decode parses a config document.
func Decode(data []byte, format Format) (File, error) {
	var f File
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &f); err != nil {
			return File{}, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &f); err != nil {
			return File{}, err
		}
	default:
		return File{}, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
	}
	return f, nil
}

// Apply overlays f on its base preset and validates the result.
func (f File) Apply() (terrain.Preset, error) {
	p, err := terrain.Lookup(f.Base)
	if err != nil {
		return terrain.Preset{}, err
	}
	c := &p.Config

	if f.Name != "" {
		c.Name = f.Name
	}
	if f.Width != 0 {
		p.Width = f.Width
	}
	if f.Height != 0 {
		p.Height = f.Height
	}
	if f.Octaves != 0 {
		c.Octaves = f.Octaves
	}
	if f.Persistence != 0 {
		c.Persistence = f.Persistence
	}
	if f.Scale != 0 {
		c.Scale = f.Scale
	}
	if f.Exponent != 0 {
		c.Shaping.Exponent = f.Exponent
	}
	if f.RegionScale != 0 {
		c.Shaping.RegionScale = f.RegionScale
	}
	if f.RegionStrength != nil {
		c.Shaping.RegionStrength = *f.RegionStrength
	}
	if f.Seeding != "" {
		s, err := noise.SeedingByName(f.Seeding)
		if err != nil {
			return terrain.Preset{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "seeding")
		}
		c.Seeding = s
	}
	if f.Basis != "" {
		c.Basis = terrain.Basis(f.Basis)
	}
	if len(f.Biomes) > 0 {
		c.Table = biome.Table(f.Biomes).Clone()
	}

	if p.Width <= 0 || p.Height <= 0 {
		return terrain.Preset{}, errors.New(errors.ErrCodeInvalidDimension, "default size must be positive, got %dx%d", p.Width, p.Height)
	}
	if err := c.Validate(); err != nil {
		return terrain.Preset{}, err
	}
	return p, nil
}

// FromPreset captures every field of p, suitable for [Encode].
func FromPreset(p terrain.Preset) File {
	c := p.Config
	strength := c.Shaping.RegionStrength
	base := terrain.DefaultPreset
	if _, err := terrain.Lookup(c.Name); err == nil {
		base = c.Name
	}
	return File{
		Base:           base,
		Name:           c.Name,
		Width:          p.Width,
		Height:         p.Height,
		Octaves:        c.Octaves,
		Persistence:    c.Persistence,
		Scale:          c.Scale,
		Exponent:       c.Shaping.Exponent,
		RegionScale:    c.Shaping.RegionScale,
		RegionStrength: &strength,
		Seeding:        c.Seeding.Name(),
		Basis:          string(c.Basis),
		Biomes:         c.Table.Clone(),
	}
}

// Encode writes f in the given format.
func Encode(f File, format Format) ([]byte, error) {
	switch format {
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(f); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatYAML:
		return yaml.Marshal(f)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported config format %q", format)
}
