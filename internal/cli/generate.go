package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/terramap/pkg/config"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/gridshape"
	"github.com/matzehuels/terramap/pkg/noise"
	"github.com/matzehuels/terramap/pkg/sink"
	"github.com/matzehuels/terramap/pkg/terrain"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	seed     string // seed text; non-numeric or 0 falls back to 1
	size     string // "WxH"; unparsed parts fall back to the preset size
	preset   string // built-in preset name
	config   string // preset override file (.toml, .yaml)
	seeding  string // seeding strategy override
	basis    string // noise basis override
	format   string // output format; inferred from --output when empty
	cells    string // values or colors
	output   string // output file; stdout when empty
	workers  int    // row parallelism; 0 uses GOMAXPROCS
	cellSize int    // PNG pixels per cell
	digest   bool   // print the elevation digest
	stats    bool   // print the biome distribution
}

func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{cellSize: sink.DefaultCellSize}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a map",
		Long: `Generate a map from a seed, a size and a preset.

The seed defaults to 1 when it is missing, not a number, or 0. Each part of
the size falls back to the preset's dimension when it is missing or 0.`,
		Example: `  terramap generate --seed 42
  terramap generate --seed 7 --size 200x120 --preset wide -o map.png
  terramap generate --config island.toml --format json --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.seed, "seed", "s", "", "map seed (default 1)")
	f.StringVar(&opts.size, "size", "", "map size as WIDTHxHEIGHT (default from preset)")
	f.StringVarP(&opts.preset, "preset", "p", "", "preset: "+strings.Join(terrain.PresetNames(), ", ")+" (default "+terrain.DefaultPreset+")")
	f.StringVarP(&opts.config, "config", "c", "", "preset override file (.toml, .yaml)")
	f.StringVar(&opts.seeding, "seeding", "", "seeding strategy: "+strings.Join(noise.SeedingNames(), ", "))
	f.StringVar(&opts.basis, "basis", "", "noise basis: value, perlin")
	f.StringVarP(&opts.format, "format", "f", "", "output format: ansi, json, csv, png (default from --output, else ansi)")
	f.StringVar(&opts.cells, "cells", "", "cell content: values, colors (default per format)")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "rows generated in parallel (default GOMAXPROCS)")
	f.IntVar(&opts.cellSize, "cell-size", opts.cellSize, "PNG pixels per cell")
	f.BoolVar(&opts.digest, "digest", false, "print the SHA-256 digest of the elevation grid")
	f.BoolVar(&opts.stats, "stats", false, "print the biome distribution")

	_ = cmd.RegisterFlagCompletionFunc("preset", cobra.FixedCompletions(terrain.PresetNames(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("seeding", cobra.FixedCompletions(noise.SeedingNames(), cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions([]string{"ansi", "json", "csv", "png"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

// runGenerate writes the map to stdout or opts.output. Status lines go to
// stdout when the map goes to a file, otherwise to stderr.
func runGenerate(ctx context.Context, stdout, stderr io.Writer, opts *generateOpts) error {
	logger := loggerFromContext(ctx)

	preset, err := resolvePreset(ctx, opts.preset, opts.config)
	if err != nil {
		return err
	}
	if err := applyOverrides(&preset, opts.seeding, opts.basis); err != nil {
		return err
	}
	format, err := formatFor(opts.format, opts.output)
	if err != nil {
		return err
	}
	cells, err := sink.ParseCells(opts.cells)
	if err != nil {
		return err
	}

	req := gridshape.Resolve(opts.seed, opts.size, preset)
	logger.Debug("Resolved request", "preset", preset.Name(), "seed", req.Seed, "width", req.Width, "height", req.Height,
		"seeding", preset.Config.Seeding.Name(), "basis", preset.Config.Basis)

	info := stderr
	if opts.output != "" {
		info = stdout
	}

	var spin *Spinner
	if opts.output != "" && interactive(os.Stderr) {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Generating "+req.String())
		spin.Start()
		defer spin.Stop()
	}

	var genOpts []terrain.Option
	if opts.workers > 0 {
		genOpts = append(genOpts, terrain.WithWorkers(opts.workers))
	}
	prog := newProgress(logger)
	grid, err := terrain.Generate(ctx, req.Seed, req.Width, req.Height, preset.Config, genOpts...)
	if err != nil {
		return err
	}
	prog.done("Generated map", "cells", req.Width*req.Height)

	m := sink.NewMap(grid, preset.Config)
	if err := m.Biomes.Check(); err != nil {
		printWarning(info, "%s", errors.UserMessage(err))
	}

	if spin != nil {
		spin.Update("Rendering " + string(format))
	}
	prog = newProgress(logger)
	data, err := sink.Render(ctx, m, format, sink.WithCells(cells), sink.WithCellSize(opts.cellSize))
	if err != nil {
		return err
	}
	prog.done("Rendered map", "format", format, "bytes", len(data))

	if spin != nil {
		spin.Stop()
	}
	if opts.output == "" {
		if _, err := stdout.Write(data); err != nil {
			return err
		}
	} else {
		if err := os.WriteFile(opts.output, data, 0o644); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "writing %s", opts.output)
		}
		printSuccess(info, "Generated %s", req)
		printFile(info, opts.output)
	}

	if opts.digest {
		fmt.Fprintln(info, grid.Digest())
	}
	if opts.stats {
		lo, hi := grid.Range()
		printStats(info, preset.Name(), preset.Config.Seeding.Name(), string(preset.Config.Basis),
			fmt.Sprintf("elevation %.3f..%.3f", lo, hi))
		printHistogram(info, m.Biomes.Histogram())
	}
	return nil
}

// resolvePreset picks the preset in priority order: --config, --preset, a
// discovered config file, the default preset.
func resolvePreset(ctx context.Context, name, path string) (terrain.Preset, error) {
	logger := loggerFromContext(ctx)
	switch {
	case path != "" && name != "":
		return terrain.Preset{}, errors.New(errors.ErrCodeInvalidInput,
			"--preset and --config are mutually exclusive; set base in the config file instead")
	case path != "":
		return config.Load(path)
	case name != "":
		return terrain.Lookup(name)
	}
	if found := config.Discover(); found != "" {
		logger.Debug("Using discovered config", "path", found)
		return config.Load(found)
	}
	return terrain.Lookup(terrain.DefaultPreset)
}

// applyOverrides applies flag values on top of the preset.
func applyOverrides(p *terrain.Preset, seeding, basis string) error {
	if seeding != "" {
		s, err := noise.SeedingByName(seeding)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "--seeding")
		}
		p.Config = p.Config.WithSeeding(s)
	}
	if basis != "" {
		b := terrain.Basis(strings.ToLower(basis))
		if !terrain.ValidBases[b] {
			return errors.New(errors.ErrCodeInvalidConfig, "invalid basis: %q (must be one of: value, perlin)", basis)
		}
		p.Config = p.Config.WithBasis(b)
	}
	return nil
}

// formatFor returns the explicit format, or the one implied by the output
// extension, or ANSI.
func formatFor(format, output string) (sink.Format, error) {
	if format != "" {
		return sink.ParseFormat(format)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		return sink.FormatPNG, nil
	case ".json":
		return sink.FormatJSON, nil
	case ".csv":
		return sink.FormatCSV, nil
	}
	return sink.FormatANSI, nil
}
