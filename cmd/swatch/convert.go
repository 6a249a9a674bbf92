package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/swatch"
)

func newHSLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hsl <#rrggbb>...",
		Short: "Print the HSL form of hex colors",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				c, err := swatch.ParseHex(arg)
				if err != nil {
					return err
				}
				hsl := c.HSL()
				fmt.Fprintf(cmd.OutOrStdout(), "%s  hsl(%.2f, %.2f%%, %.2f%%)\n",
					formatHex(c), hsl.H, hsl.S*100, hsl.L*100)
			}
			return nil
		},
	}
}

func newHexCmd() *cobra.Command {
	var wrap bool

	cmd := &cobra.Command{
		Use:   "hex <hue> <saturation> <lightness>",
		Short: "Print the hex form of an HSL color",
		Long: `Converts hue (degrees, [0, 360)), saturation and lightness ([0, 1])
to a "#rrggbb" color. Use --wrap to accept any hue.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var v [3]float64
			for i, arg := range args {
				f, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", arg, err)
				}
				v[i] = f
			}
			if wrap {
				v[0] = swatch.NormalizeHue(v[0])
			}
			c, err := swatch.FromHSL(v[0], v[1], v[2])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatHex(c))
			return nil
		},
	}

	cmd.Flags().BoolVar(&wrap, "wrap", false, "Wrap the hue into [0, 360)")
	return cmd
}
