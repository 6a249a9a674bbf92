package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gogpu/swatch/internal/theme"
)

func newThemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "theme <file>",
		Short: "Print a TOML/YAML theme with standouts",
		Long: `Loads a theme file (.toml, .yaml or .yml) with a "colors" table of
name = "#rrggbb" entries and prints each color next to its standout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			th, err := theme.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if th.Name != "" {
				fmt.Fprintln(out, th.Name)
			}

			title := cases.Title(language.English)
			width := 0
			for _, e := range th.Entries {
				if len(e.Name) > width {
					width = len(e.Name)
				}
			}
			for _, e := range th.Entries {
				fmt.Fprintf(out, "  %-*s  %s  %s\n", width, title.String(e.Name),
					formatHex(e.Base), formatHex(e.Standout))
			}
			return nil
		},
	}
}
