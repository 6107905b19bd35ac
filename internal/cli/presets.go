package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/terramap/pkg/config"
	"github.com/matzehuels/terramap/pkg/errors"
	"github.com/matzehuels/terramap/pkg/terrain"
)

func (c *CLI) presetsCommand() *cobra.Command {
	var export string

	cmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "List presets or export one as a config file",
		Example: `  terramap presets
  terramap presets wide --export toml > wide.toml`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: terrain.PresetNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			if export != "" {
				name := terrain.DefaultPreset
				if len(args) == 1 {
					name = args[0]
				}
				return exportPreset(cmd.OutOrStdout(), name, export)
			}
			presets := terrain.Presets()
			if len(args) == 1 {
				p, err := terrain.Lookup(args[0])
				if err != nil {
					return err
				}
				presets = []terrain.Preset{p}
			}
			printPresets(cmd.OutOrStdout(), presets)
			return nil
		},
	}

	cmd.Flags().StringVar(&export, "export", "", "print the preset as a config file: toml, yaml")
	return cmd
}

func exportPreset(w io.Writer, name, format string) error {
	p, err := terrain.Lookup(name)
	if err != nil {
		return err
	}
	data, err := config.Encode(config.FromPreset(p), config.Format(strings.ToLower(format)))
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing %s export", format)
	}
	return nil
}

func printPresets(w io.Writer, presets []terrain.Preset) {
	for i, p := range presets {
		if i > 0 {
			fmt.Fprintln(w)
		}
		c := p.Config
		fmt.Fprintln(w, StyleTitle.Render(p.Name()))
		printDetail(w, "%s", p.Description)
		printKeyValue(w, "size", fmt.Sprintf("%dx%d", p.Width, p.Height))
		printKeyValue(w, "octaves", fmt.Sprint(c.Octaves))
		printKeyValue(w, "persistence", fmt.Sprint(c.Persistence))
		printKeyValue(w, "scale", fmt.Sprint(c.Scale))
		printKeyValue(w, "shaping", fmt.Sprintf("exp %v, region %v x %v", c.Shaping.Exponent, c.Shaping.RegionScale, c.Shaping.RegionStrength))
		printKeyValue(w, "seeding", c.Seeding.Name())
		printKeyValue(w, "basis", string(c.Basis))
		printTable(w, c.Table)
	}
	fmt.Fprintln(w)
	printNextStep(w, "Customize a preset", appName+" presets <name> --export toml > "+appName+".toml")
}
