package gridshape

import (
	"testing"

	"github.com/matzehuels/terramap/pkg/terrain"
)

func TestParseSeed(t *testing.T) {
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"12345", 12345},
		{"  42", 42},
		{"7seas", 7},
		{"+9", 9},
		{"-1", 4294967295},
		{"4294967297", 1},
		{"99999999999999999999", 1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseSeed(tt.in); got != tt.want {
				t.Errorf("ParseSeed(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in           string
		wantW, wantH int
	}{
		{"", 100, 120},
		{"64x48", 64, 48},
		{"64X48", 64, 48},
		{"64×48", 64, 48},
		{" 64 x 48 ", 64, 48},
		{"64", 64, 120},
		{"x48", 100, 48},
		{"0x0", 100, 120},
		{"axb", 100, 120},
		{"-5x10", -5, 10},
		{"10x-5", 10, -5},
		{"32x16x8", 32, 16},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h := ParseSize(tt.in, 100, 120)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ParseSize(%q) = %dx%d, want %dx%d", tt.in, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolve(t *testing.T) {
	r := Resolve("", "", terrain.Wide())
	if r.Seed != 1 || r.Width != 160 || r.Height != 100 {
		t.Errorf("Resolve defaults = %v", r)
	}

	r = Resolve("8", "20x10", terrain.Classic())
	if r.Seed != 8 || r.Width != 20 || r.Height != 10 {
		t.Errorf("Resolve = %v", r)
	}
	if r.String() != "seed 8, 20x10" {
		t.Errorf("String() = %q", r.String())
	}
}
