package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/noise"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "map.toml", `
base = "wide"
name = "archipelago"
width = 64
scale = 0.05
region_strength = 0.0
seeding = "sequence"

[[biomes]]
name = "sea"
max = 0.6
color = "#1565c0"

[[biomes]]
name = "land"
max = 1.0
color = "#81c784"
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name() != "archipelago" {
		t.Errorf("name = %q", p.Name())
	}
	if p.Width != 64 || p.Height != 100 {
		t.Errorf("size = %dx%d, want 64x100", p.Width, p.Height)
	}
	if p.Config.Scale != 0.05 {
		t.Errorf("scale = %v", p.Config.Scale)
	}
	if p.Config.Octaves != terrain.DefaultOctaves {
		t.Errorf("octaves = %d, want base value", p.Config.Octaves)
	}
	if p.Config.Shaping.RegionStrength != 0 {
		t.Errorf("region strength = %v, want explicit 0", p.Config.Shaping.RegionStrength)
	}
	if p.Config.Seeding.Name() != noise.SeedingSequence {
		t.Errorf("seeding = %s", p.Config.Seeding.Name())
	}
	if got := p.Config.Table.Names(); !reflect.DeepEqual(got, []string{"sea", "land"}) {
		t.Errorf("biomes = %v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "map.yml", `
base: classic
octaves: 6
persistence: 0.4
basis: perlin
`)
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.Name() != terrain.PresetClassic {
		t.Errorf("name = %q", p.Name())
	}
	if p.Config.Octaves != 6 || p.Config.Persistence != 0.4 {
		t.Errorf("octaves/persistence = %d/%v", p.Config.Octaves, p.Config.Persistence)
	}
	if p.Config.Basis != terrain.BasisPerlin {
		t.Errorf("basis = %s", p.Config.Basis)
	}
	if p.Config.Shaping.RegionStrength != 0.3 {
		t.Errorf("region strength = %v, want base value", p.Config.Shaping.RegionStrength)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		code    errors.Code
	}{
		{"extension", "map.ini", "base = classic", errors.ErrCodeInvalidFormat},
		{"syntax", "map.toml", "base = ", errors.ErrCodeInvalidConfig},
		{"preset", "map.toml", `base = "huge"`, errors.ErrCodeInvalidPreset},
		{"seeding", "map.yaml", "seeding: random", errors.ErrCodeInvalidConfig},
		{"basis", "map.yaml", "basis: simplex", errors.ErrCodeInvalidConfig},
		{"persistence", "map.yaml", "persistence: 1.5", errors.ErrCodeInvalidConfig},
		{"size", "map.yaml", "width: -3", errors.ErrCodeInvalidDimension},
		{"table", "map.yaml", "biomes:\n  - {name: low, max: 0.5, color: '#000000'}\n", errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTOML, FormatYAML} {
		for _, p := range terrain.Presets() {
			t.Run(string(format)+"/"+p.Name(), func(t *testing.T) {
				data, err := Encode(FromPreset(p), format)
				if err != nil {
					t.Fatalf("Encode: %v", err)
				}
				f, err := Decode(data, format)
				if err != nil {
					t.Fatalf("Decode: %v\n%s", err, data)
				}
				got, err := f.Apply()
				if err != nil {
					t.Fatalf("Apply: %v", err)
				}
				if got.Width != p.Width || got.Height != p.Height {
					t.Errorf("size = %dx%d, want %dx%d", got.Width, got.Height, p.Width, p.Height)
				}
				if got.Config.Seeding.Name() != p.Config.Seeding.Name() {
					t.Errorf("seeding = %s, want %s", got.Config.Seeding.Name(), p.Config.Seeding.Name())
				}
				if !reflect.DeepEqual(got.Config.Table, p.Config.Table) {
					t.Errorf("table = %v, want %v", got.Config.Table, p.Config.Table)
				}
				if got.Config.Shaping != p.Config.Shaping {
					t.Errorf("shaping = %+v, want %+v", got.Config.Shaping, p.Config.Shaping)
				}
			})
		}
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"a.toml":    FormatTOML,
		"b.YAML":    FormatYAML,
		"dir/c.yml": FormatYAML,
		"noext":     "",
		"d.json":    "",
	}
	for path, want := range tests {
		got, err := FormatFromPath(path)
		if got != want || (want == "") != (err != nil) {
			t.Errorf("FormatFromPath(%q) = %q, %v", path, got, err)
		}
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	chdir(t, t.TempDir())

	if got := Discover(); got != "" {
		t.Fatalf("Discover() = %q, want none", got)
	}
	if err := os.MkdirAll(filepath.Join(dir, "terramap"), 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "terramap", "terramap.yaml")
	if err := os.WriteFile(want, []byte("base: wide\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := Discover(); got != want {
		t.Errorf("Discover() = %q, want %q", got, want)
	}
}
