package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mewbak/sile/internal/sessionlog"
	"github.com/mewbak/sile/internal/ui"
)

var viewCmd = &cobra.Command{
	Use:   "view [flags] <session.ndjson|session.mp>",
	Short: "Step through a recorded session interactively",
	Long: `View opens a recorded session in a terminal viewer: arrow keys move
through the events one at a time while the stack, the current location
and the push/pop trace update in place`,
	Args: cobra.ExactArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().Bool("traceback", false, "markers capture full stack traces")
	viewCmd.Flags().Bool("autoplay", false, "start advancing through events immediately")
}

func runView(cmd *cobra.Command, args []string) error {
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

	autoplay, err := cmd.Flags().GetBool("autoplay")
	if err != nil {
		return fmt.Errorf("failed to get autoplay flag: %w", err)
	}
	if !cmd.Flags().Changed("autoplay") && fileCfg.View.Autoplay {
		autoplay = true
	}

	events, err := sessionlog.ReadFile(args[0])
	if err != nil {
		return err
	}

	model := ui.NewViewerModel(args[0], events, traceback, autoplay)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, err = program.Run()
	return err
}
