package terrain

import (
	"sort"
	"strings"

	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/noise"
)

// Preset names.
const (
	PresetClassic = "classic"
	PresetWide    = "wide"

	// DefaultPreset is used when the caller does not pick one.
	DefaultPreset = PresetClassic
)

// Fractal defaults shared by both presets.
const (
	DefaultOctaves     = 4
	DefaultPersistence = 0.5
	DefaultScale       = 0.08
)

// Preset is a named config with default map dimensions.
type Preset struct {
	Config      Config
	Width       int
	Height      int
	Description string
}

// Name returns the preset's config name.
func (p Preset) Name() string { return p.Config.Name }

// Classic is 100x120 with sequence seeding and the classic biome table.
func Classic() Preset {
	return Preset{
		Config: Config{
			Name:        PresetClassic,
			Octaves:     DefaultOctaves,
			Persistence: DefaultPersistence,
			Scale:       DefaultScale,
			Shaping:     DefaultShaping(),
			Table:       biome.Classic(),
			Seeding:     noise.SequenceSeeding{},
			Basis:       BasisValue,
		},
		Width:       100,
		Height:      120,
		Description: "portrait map, per-layer sequence seeding",
	}
}

// Wide is 160x100 with mixed seeding and the wide biome table.
func Wide() Preset {
	return Preset{
		Config: Config{
			Name:        PresetWide,
			Octaves:     DefaultOctaves,
			Persistence: DefaultPersistence,
			Scale:       DefaultScale,
			Shaping:     DefaultShaping(),
			Table:       biome.Wide(),
			Seeding:     noise.MixedSeeding{},
			Basis:       BasisValue,
		},
		Width:       160,
		Height:      100,
		Description: "landscape map, mixed seed on a shared lattice",
	}
}

var presets = map[string]func() Preset{
	PresetClassic: Classic,
	PresetWide:    Wide,
}

// Lookup returns a fresh copy of the named preset.
func Lookup(name string) (Preset, error) {
	if name == "" {
		name = DefaultPreset
	}
	fn, ok := presets[strings.ToLower(name)]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset,
			"unknown preset %q (must be one of: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return fn(), nil
}

// PresetNames lists preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Presets returns every preset in name order.
func Presets() []Preset {
	names := PresetNames()
	out := make([]Preset, len(names))
	for i, n := range names {
		out[i] = presets[n]()
	}
	return out
}
