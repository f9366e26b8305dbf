package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mewbak/sile/internal/diag"
	"github.com/mewbak/sile/internal/replay"
	"github.com/mewbak/sile/internal/sessionlog"
)

var replayCmd = &cobra.Command{
	Use:   "replay [flags] <session.ndjson|session.mp> [more sessions...]",
	Short: "Replay recorded sessions and report their trace diagnostics",
	Long: `Replay feeds recorded push/pop sequences into live trace stacks and
reports what the recording engine would have seen: marker locations,
imbalance warnings, and the final stack state of every session`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().Bool("traceback", false, "print full stack traces at markers")
	replayCmd.Flags().Int("jobs", 0, "max parallel sessions (0=auto)")
}

var sessionNameColor = color.New(color.Bold)

func runReplay(cmd *cobra.Command, args []string) error {
	fileCfg, err := loadTraceConfig(".")
	if err != nil {
		return err
	}

	traceback, err := cmd.Flags().GetBool("traceback")
	if err != nil {
		return fmt.Errorf("failed to get traceback flag: %w", err)
	}
	if !cmd.Flags().Changed("traceback") && fileCfg.Replay.Traceback {
		traceback = true
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !cmd.Flags().Changed("jobs") && fileCfg.Replay.Jobs > 0 {
		jobs = fileCfg.Replay.Jobs
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	colorized, err := useColor(cmd)
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	logger, cleanup, err := setupDebug(cmd, fileCfg)
	if err != nil {
		return err
	}
	defer cleanup()

	inputs := make([]replay.Input, 0, len(args))
	for _, path := range args {
		events, err := sessionlog.ReadFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, replay.Input{Name: path, Events: events})
	}

	results, err := replay.All(cmd.Context(), inputs, jobs, replay.Options{
		Traceback: traceback,
		Debug:     logger,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	totalWarnings := 0
	for _, res := range results {
		totalWarnings += len(res.Warnings)
		printResult(out, res, traceback, colorized, quiet)
	}
	if !quiet && len(results) > 1 {
		fmt.Fprintf(out, "%d sessions, %d warnings\n", len(results), totalWarnings)
	}
	return nil
}

func printResult(out io.Writer, res replay.Result, traceback, colorized, quiet bool) {
	name := res.Name
	if colorized {
		name = sessionNameColor.Sprint(name)
	}
	fmt.Fprintf(out, "%s: %d events, depth %d, %d warnings, %d markers\n",
		name, res.Events, res.Depth, len(res.Warnings), len(res.Markers))

	console := diag.NewConsoleReporter(out, colorized)
	dedup := diag.NewDedupReporter(console)
	for _, w := range res.Warnings {
		dedup.Warn(w.Message, w.Recoverable)
	}
	if n := dedup.Suppressed(); n > 0 && !quiet {
		fmt.Fprintf(out, "  (%d duplicate warnings suppressed)\n", n)
	}

	for _, m := range res.Markers {
		if traceback {
			fmt.Fprintf(out, "  mark %q:\n%s", m.Message, m.Location)
			continue
		}
		fmt.Fprintf(out, "  mark %q: %s\n", m.Message, m.Location)
	}

	if !quiet {
		fmt.Fprintf(out, "  final: %s\n", res.Location)
	}
}
