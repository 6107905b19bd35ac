package cli

import (
	"bytes"
	"context"
	"encoding/csv"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/sink"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func readCSV(t *testing.T, s string) [][]string {
	t.Helper()
	records, err := csv.NewReader(strings.NewReader(s)).ReadAll()
	if err != nil {
		t.Fatalf("csv: %v", err)
	}
	return records
}

func TestGenerateCSV(t *testing.T) {
	out, _, err := execute(t, "generate", "--seed", "1", "--size", "4x2", "--format", "csv")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	records := readCSV(t, out)
	if len(records) != 2 || len(records[0]) != 4 {
		t.Fatalf("shape = %d rows", len(records))
	}
	want := []string{"1", "1", "0.9672551440140333", "0.8743100076659308"}
	for x, v := range want {
		if records[0][x] != v {
			t.Errorf("cell(%d,0) = %s, want %s", x, records[0][x], v)
		}
	}
}

func TestGenerateFallbacks(t *testing.T) {
	// Non-numeric seed means seed 1; a zero width means the preset width.
	a, _, err := execute(t, "generate", "--seed", "abc", "--size", "0x2", "--format", "csv")
	if err != nil {
		t.Fatal(err)
	}
	b, _, err := execute(t, "generate", "--size", "100x2", "--format", "csv")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("fallback seed/size should match explicit defaults")
	}
	if n := len(readCSV(t, a)[0]); n != terrain.Classic().Width {
		t.Errorf("width = %d, want %d", n, terrain.Classic().Width)
	}
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.png")
	out, _, err := execute(t, "generate", "--size", "6x5", "--cell-size", "3", "-o", path, "--digest", "--stats")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 18 || b.Dy() != 15 {
		t.Errorf("bounds = %v, want 18x15", b)
	}

	for _, want := range []string{path, "seed 1, 6x5", "mountain", "%"} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q:\n%s", want, out)
		}
	}

	grid, err := terrain.Generate(context.Background(), 1, 6, 5, terrain.Classic().Config)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, grid.Digest()) {
		t.Error("status output missing digest")
	}
}

func TestGenerateOverrides(t *testing.T) {
	seq, _, err := execute(t, "generate", "--preset", "wide", "--seed", "2", "--size", "4x1", "--format", "csv", "--seeding", "sequence")
	if err != nil {
		t.Fatal(err)
	}
	mixed, _, err := execute(t, "generate", "--preset", "wide", "--seed", "2", "--size", "4x1", "--format", "csv")
	if err != nil {
		t.Fatal(err)
	}
	if seq == mixed {
		t.Error("--seeding override had no effect")
	}
	want := "0.01994279440631813,0.06882354934293634,0.12338235666673063,0.1633676674781794"
	if got := strings.TrimSpace(mixed); got != want {
		t.Errorf("wide seed 2 = %s, want %s", got, want)
	}
}

func TestGenerateConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "island.yaml")
	if err := os.WriteFile(path, []byte("base: classic\nwidth: 3\nheight: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _, err := execute(t, "generate", "--config", path, "--format", "csv", "--cells", "colors")
	if err != nil {
		t.Fatal(err)
	}
	records := readCSV(t, out)
	if len(records) != 2 || len(records[0]) != 3 {
		t.Errorf("config size not applied: %v", records)
	}
	if !strings.HasPrefix(records[0][0], "#") {
		t.Errorf("cells = %v, want colors", records[0])
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"negative size", []string{"--size=-3x4"}, errors.ErrCodeInvalidDimension},
		{"unknown preset", []string{"--preset", "tiny"}, errors.ErrCodeInvalidPreset},
		{"unknown format", []string{"--format", "svg"}, errors.ErrCodeInvalidFormat},
		{"unknown seeding", []string{"--seeding", "random"}, errors.ErrCodeInvalidConfig},
		{"unknown basis", []string{"--basis", "simplex"}, errors.ErrCodeInvalidConfig},
		{"preset and config", []string{"--preset", "wide", "--config", "x.toml"}, errors.ErrCodeInvalidInput},
		{"missing config", []string{"--config", "absent.toml"}, errors.ErrCodeFileNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"generate"}, tt.args...)...)
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(withLogger(context.Background(), newLogger(io.Discard, LogInfo)))
	cancel()
	var out bytes.Buffer
	err := runGenerate(ctx, &out, io.Discard, &generateOpts{size: "50x50", format: "csv"})
	if err == nil {
		t.Fatal("cancelled run succeeded")
	}
	if out.Len() != 0 {
		t.Error("cancelled run wrote output")
	}
}

func TestFormatFor(t *testing.T) {
	tests := []struct {
		format, output string
		want           sink.Format
	}{
		{"", "", sink.FormatANSI},
		{"", "map.PNG", sink.FormatPNG},
		{"", "out/map.json", sink.FormatJSON},
		{"", "map.csv", sink.FormatCSV},
		{"", "map.txt", sink.FormatANSI},
		{"json", "map.png", sink.FormatJSON},
	}
	for _, tt := range tests {
		got, err := formatFor(tt.format, tt.output)
		if err != nil || got != tt.want {
			t.Errorf("formatFor(%q, %q) = %q, %v; want %q", tt.format, tt.output, got, err, tt.want)
		}
	}
}
