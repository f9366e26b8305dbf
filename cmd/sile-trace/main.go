package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mewbak/sile/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "sile-trace",
	Short: "Trace-stack tools for typesetter session logs",
	Long: `sile-trace replays and inspects the trace-stack sessions a typesetting
engine records while processing documents: where each warning happened,
which pushes were never popped, and what the stack looked like at any step`,
}

// main wires the version, subcommands and persistent flags, then executes
// the root command. Execution errors exit with status code 1.
func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().String("debug", "", "comma-separated debug categories (e.g. tracestack, or all)")
	rootCmd.PersistentFlags().String("debug-output", "", "debug output path (default stderr, .ndjson switches format)")
	rootCmd.PersistentFlags().String("debug-mode", "stream", "debug storage mode (stream|ring|both)")
	rootCmd.PersistentFlags().Int("debug-ring-size", 0, "ring buffer capacity for ring/both modes (0=default)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// useColor resolves the color persistent flag against the output terminal.
func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	return colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout)), nil
}
