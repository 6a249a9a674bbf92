package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/gogpu/swatch"
)

func newRandomCmd() *cobra.Command {
	var (
		count int
		seed  uint64
		start int
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print random, well separated colors",
		Long: `Each color is 137 degrees of hue away from the previous one, with
saturation in [0.3, 0.5) and lightness in [0.5, 0.7).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("count must be positive, got %d", count)
			}
			opts := []swatch.GeneratorOption{swatch.WithStart(start)}
			if seed != 0 {
				opts = append(opts, swatch.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}
			g := swatch.NewGenerator(opts...)
			for i := 0; i < count; i++ {
				fmt.Fprintln(cmd.OutOrStdout(), formatHex(g.NextColor()))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "Number of colors")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "RNG seed (0 = unseeded)")
	cmd.Flags().IntVar(&start, "start", 0, "Initial hue counter in degrees")
	return cmd
}
