package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/terramap/pkg/config"
	"github.com/matzehuels/terramap/pkg/terrain"
)

func TestPresetsList(t *testing.T) {
	out, _, err := execute(t, "presets")
	if err != nil {
		t.Fatal(err)
	}
	for _, p := range terrain.Presets() {
		for _, want := range []string{p.Name(), p.Description, p.Config.Seeding.Name()} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q", want)
			}
		}
	}
}

func TestPresetsSingle(t *testing.T) {
	out, _, err := execute(t, "presets", "wide")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "160x100") || strings.Contains(out, "100x120") {
		t.Errorf("output should describe only wide:\n%s", out)
	}
	if _, _, err := execute(t, "presets", "huge"); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestPresetsExport(t *testing.T) {
	for _, format := range []config.Format{config.FormatTOML, config.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			out, _, err := execute(t, "presets", "wide", "--export", string(format))
			if err != nil {
				t.Fatal(err)
			}
			f, err := config.Decode([]byte(out), format)
			if err != nil {
				t.Fatalf("Decode: %v\n%s", err, out)
			}
			p, err := f.Apply()
			if err != nil {
				t.Fatal(err)
			}
			if p.Name() != terrain.PresetWide || p.Width != 160 || p.Config.Seeding.Name() != "mixed" {
				t.Errorf("exported preset = %s %dx%d %s", p.Name(), p.Width, p.Height, p.Config.Seeding.Name())
			}
		})
	}

	if _, _, err := execute(t, "presets", "--export", "ini"); err == nil {
		t.Error("unknown export format accepted")
	}
}
