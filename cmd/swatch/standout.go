package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/swatch"
)

func newStandoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "standout <#rrggbb>...",
		Short: "Print a contrasting color for each input",
		Long: `Keeps hue and saturation and sets lightness to 0.3 for light inputs
or 0.8 for dark ones.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				c, err := swatch.ParseHex(arg)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", formatHex(c), formatHex(swatch.StandoutColor(c)))
			}
			return nil
		},
	}
}
