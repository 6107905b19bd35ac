package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/terramap/pkg/biome"
	"github.com/matzehuels/terramap/pkg/errors"
)

func (c *CLI) classifyCommand() *cobra.Command {
	var preset, configPath string

	cmd := &cobra.Command{
		Use:   "classify <elevation>...",
		Short: "Print the biome of each elevation",
		Long: `Print the biome each elevation falls into under a preset's threshold table.

Elevations are compared against each biome's inclusive upper bound in
ascending order; the first match wins.`,
		Example: `  terramap classify 0.2 0.42 0.9
  terramap classify --preset wide 0.41`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolvePreset(cmd.Context(), preset, configPath)
			if err != nil {
				return err
			}
			return runClassify(cmd.OutOrStdout(), p.Config.Table, args)
		},
	}

	cmd.Flags().StringVarP(&preset, "preset", "p", "", "preset whose table to use")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "preset override file (.toml, .yaml)")
	return cmd
}

// runClassify parses every argument before printing anything.
func runClassify(w io.Writer, table biome.Table, args []string) error {
	values := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "elevation %q is not a number", a)
		}
		values[i] = v
	}

	unknown := 0
	for i, v := range values {
		b := table.Classify(v)
		if b.IsUnknown() {
			unknown++
			printWarning(w, "%-8s %s", args[i], b.Name)
			continue
		}
		fmt.Fprintf(w, "%s %-8s %s\n", swatch(b), args[i], StyleValue.Render(b.Name))
	}
	if unknown > 0 {
		return errors.New(errors.ErrCodeUnclassifiable, "%d of %d elevations exceed every biome threshold", unknown, len(values))
	}
	return nil
}
