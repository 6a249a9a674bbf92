// swatch converts between hex, RGB and HSL colors and generates
// contrasting and random colors.
//
// Usage:
//
//	swatch hsl <#rrggbb>...      - Print the HSL form of hex colors
//	swatch hex <h> <s> <l>       - Print the hex form of an HSL color
//	swatch standout <#rrggbb>... - Print a contrasting color for each input
//	swatch random                - Print random, well separated colors
//	swatch theme <file>          - Print a TOML/YAML theme with standouts
//
// Global flags:
//
//	--preview   - Render a colored block next to each hex value
//	--verbose   - Log library diagnostics to stderr
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/swatch"
)

var (
	// Global flags
	flagPreview bool
	flagVerbose bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swatch",
		Short: "Convert and generate colors",
		Long: `swatch converts colors between "#rrggbb" hex and HSL, and derives
contrasting (standout) and random colors.

Examples:
  swatch hsl "#3498db"
  swatch hex 204 0.7 0.53
  swatch standout "#ffffff" "#1a1a2e"
  swatch random -n 5 --seed 42
  swatch theme night.toml --preview`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(flagVerbose)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagPreview, "preview", false, "Render a colored block next to each hex value")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log library diagnostics to stderr")

	rootCmd.AddCommand(newHSLCmd())
	rootCmd.AddCommand(newHexCmd())
	rootCmd.AddCommand(newStandoutCmd())
	rootCmd.AddCommand(newRandomCmd())
	rootCmd.AddCommand(newThemeCmd())
	return rootCmd
}

// setupLogging routes swatch's slog output through charmbracelet/log.
func setupLogging(verbose bool) {
	if !verbose {
		swatch.SetLogger(nil)
		return
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  log.DebugLevel,
		Prefix: "swatch",
	})
	swatch.SetLogger(slog.New(logger))
}
