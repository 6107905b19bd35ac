package biome

import (
	"image/color"
	"testing"

	"github.com/matzehuels/terramap/pkg/errors"
)

func TestClassifyClassic(t *testing.T) {
	table := Classic()
	tests := []struct {
		elevation float64
		want      string
	}{
		{0.0, DeepOcean},
		{0.35, DeepOcean},
		{0.350001, Coast},
		{0.42, Coast},
		{0.5, Grassland},
		{0.51, Grassland},
		{0.55, Forest},
		{0.6, Forest},
		{0.61, Mountain},
		{1.0, Mountain},
	}
	for _, tt := range tests {
		if got := table.Classify(tt.elevation); got.Name != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.elevation, got.Name, tt.want)
		}
	}
}

func TestClassifyWide(t *testing.T) {
	table := Wide()
	tests := []struct {
		elevation float64
		want      string
	}{
		{0.3, DeepOcean},
		{0.35, Coast},
		{0.52, Grassland},
		{0.6, Forest},
		{0.66, Mountain},
	}
	for _, tt := range tests {
		if got := table.Classify(tt.elevation); got.Name != tt.want {
			t.Errorf("Classify(%v) = %q, want %q", tt.elevation, got.Name, tt.want)
		}
	}
}

func TestClassifyUnknown(t *testing.T) {
	table := Classic()
	for _, e := range []float64{1.0000001, 2, 1e9} {
		got := table.Classify(e)
		if !got.IsUnknown() {
			t.Errorf("Classify(%v) = %v, want unknown", e, got)
		}
		if table.Index(e) != -1 {
			t.Errorf("Index(%v) = %d, want -1", e, table.Index(e))
		}
	}

	var empty Table
	if !empty.Classify(0.5).IsUnknown() {
		t.Error("empty table should classify as unknown")
	}
}

func TestClassifyTotality(t *testing.T) {
	tables := map[string]Table{
		"classic": Classic(),
		"wide":    Wide(),
		"single":  {{Name: "all", Max: 1, Color: "#ffffff"}},
		"many": {
			{Name: "a", Max: 0.1, Color: "#000001"},
			{Name: "b", Max: 0.2, Color: "#000002"},
			{Name: "c", Max: 0.9, Color: "#000003"},
			{Name: "d", Max: 0.95, Color: "#000004"},
			{Name: "e", Max: 1, Color: "#000005"},
		},
	}
	for name, table := range tables {
		t.Run(name, func(t *testing.T) {
			if err := table.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			for i := 0; i <= 10000; i++ {
				e := float64(i) / 10000
				if table.Classify(e).IsUnknown() {
					t.Fatalf("Classify(%v) returned unknown", e)
				}
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		table   Table
		wantErr bool
	}{
		{"classic", Classic(), false},
		{"wide", Wide(), false},
		{"empty", Table{}, true},
		{"not ending at one", Table{{Name: "a", Max: 0.5, Color: "#000000"}, {Name: "b", Max: 0.9, Color: "#000000"}}, true},
		{"descending", Table{{Name: "a", Max: 0.6, Color: "#000000"}, {Name: "b", Max: 0.5, Color: "#000000"}, {Name: "c", Max: 1, Color: "#000000"}}, true},
		{"duplicate bound", Table{{Name: "a", Max: 0.5, Color: "#000000"}, {Name: "b", Max: 0.5, Color: "#000000"}, {Name: "c", Max: 1, Color: "#000000"}}, true},
		{"zero bound", Table{{Name: "a", Max: 0, Color: "#000000"}, {Name: "b", Max: 1, Color: "#000000"}}, true},
		{"above one", Table{{Name: "a", Max: 1.5, Color: "#000000"}}, true},
		{"bad color", Table{{Name: "a", Max: 1, Color: "blue"}}, true},
		{"missing name", Table{{Max: 1, Color: "#000000"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("expected INVALID_CONFIG, got %v", errors.GetCode(err))
			}
		})
	}
}

func TestPresetsAreCopies(t *testing.T) {
	a := Classic()
	a[0].Max = 0.9
	if Classic()[0].Max != 0.35 {
		t.Error("mutating a returned table leaked into the preset")
	}
}

func TestRGBA(t *testing.T) {
	got := Classic()[0].RGBA()
	want := color.RGBA{R: 0x15, G: 0x65, B: 0xc0, A: 0xff}
	if got != want {
		t.Errorf("RGBA() = %v, want %v", got, want)
	}
	if Unknown.RGBA() != (color.RGBA{A: 0xff}) {
		t.Errorf("Unknown.RGBA() = %v, want opaque black", Unknown.RGBA())
	}
}

func TestNames(t *testing.T) {
	names := Classic().Names()
	want := []string{DeepOcean, Coast, Grassland, Forest, Mountain}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
