package sink

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/observability"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// Format names an output encoding.
type Format string

const (
	FormatANSI Format = "ansi"
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatPNG  Format = "png"
)

// Cells selects what each output cell carries.
type Cells string

const (
	// Auto uses the format's natural choice.
	Auto Cells = ""
	// Values emits raw elevations.
	Values Cells = "values"
	// Colors emits biome colors.
	Colors Cells = "colors"
)

// DefaultCellSize is the PNG square size in pixels.
const DefaultCellSize = 4

// Map is a generated map ready for rendering.
type Map struct {
	Preset  string
	Seeding string
	Basis   string
	Grid    *terrain.Grid
	Biomes  *terrain.BiomeGrid
}

// NewMap classifies grid with cfg's table and records cfg's identity.
func NewMap(grid *terrain.Grid, cfg terrain.Config) Map {
	return Map{
		Preset:  cfg.Name,
		Seeding: cfg.Seeding.Name(),
		Basis:   string(cfg.Basis),
		Grid:    grid,
		Biomes:  grid.Classify(cfg.Table),
	}
}

// Option configures [Render].
type Option func(*options)

type options struct {
	cells    Cells
	cellSize int
	renderer *lipgloss.Renderer
}

// WithCells selects raw elevations or biome colors.
func WithCells(c Cells) Option { return func(o *options) { o.cells = c } }

// WithCellSize sets the PNG square size in pixels. Values below 1 mean 1.
func WithCellSize(px int) Option { return func(o *options) { o.cellSize = max(px, 1) } }

// WithRenderer sets the lipgloss renderer used for ANSI output, which decides
// the color profile. The default targets stdout.
func WithRenderer(r *lipgloss.Renderer) Option { return func(o *options) { o.renderer = r } }

type renderFunc func(Map, options) ([]byte, error)

var renderers = map[Format]renderFunc{
	FormatANSI: renderANSI,
	FormatJSON: renderJSON,
	FormatCSV:  renderCSV,
	FormatPNG:  renderPNG,
}

// defaultCells is used when no [WithCells] option is given.
var defaultCells = map[Format]Cells{
	FormatANSI: Colors,
	FormatJSON: Values,
	FormatCSV:  Values,
	FormatPNG:  Colors,
}

// Formats lists the supported output formats.
func Formats() []Format {
	return []Format{FormatANSI, FormatJSON, FormatCSV, FormatPNG}
}

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := renderers[f]; !ok {
		return "", errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: ansi, json, csv, png)", s)
	}
	return f, nil
}

// ParseCells resolves a cell mode name. The empty string is [Auto].
func ParseCells(s string) (Cells, error) {
	switch c := Cells(strings.ToLower(strings.TrimSpace(s))); c {
	case Auto, Values, Colors:
		return c, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "invalid cells: %q (must be values or colors)", s)
}

// ContentType returns the MIME type of a format.
func ContentType(f Format) string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatPNG:
		return "image/png"
	}
	return "text/plain; charset=utf-8"
}

// Render encodes m in the given format.
func Render(ctx context.Context, m Map, format Format, opts ...Option) ([]byte, error) {
	render, ok := renderers[format]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q", format)
	}
	if m.Grid == nil || m.Biomes == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "map has no grid")
	}

	o := options{cellSize: DefaultCellSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cells == Auto {
		o.cells = defaultCells[format]
	}

	start := time.Now()
	data, err := render(m, o)
	observability.Sink().OnRender(ctx, string(format), len(data), time.Since(start), err)
	return data, err
}
