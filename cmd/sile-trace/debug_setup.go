package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mewbak/sile/internal/debug"
)

// setupDebug inspects the debug persistent flags, falling back to the config
// file for whatever the command line leaves unset, and initializes the
// logger. It returns a cleanup function alongside.
func setupDebug(cmd *cobra.Command, fileCfg traceConfig) (debug.Logger, func(), error) {
	root := cmd.Root()

	categoriesStr, err := root.PersistentFlags().GetString("debug")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get debug flag: %w", err)
	}
	outputPath, err := root.PersistentFlags().GetString("debug-output")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get debug-output flag: %w", err)
	}
	modeStr, err := root.PersistentFlags().GetString("debug-mode")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get debug-mode flag: %w", err)
	}
	ringSize, err := root.PersistentFlags().GetInt("debug-ring-size")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get debug-ring-size flag: %w", err)
	}

	if categoriesStr == "" {
		categoriesStr = fileCfg.Debug.Categories
	}
	if outputPath == "" {
		outputPath = fileCfg.Debug.Output
	}
	if !root.PersistentFlags().Changed("debug-mode") && fileCfg.Debug.Mode != "" {
		modeStr = fileCfg.Debug.Mode
	}
	if ringSize == 0 {
		ringSize = fileCfg.Debug.RingSize
	}

	categories := debug.ParseCategories(categoriesStr)
	if len(categories) == 0 {
		return debug.Nop, func() {}, nil
	}

	mode, err := debug.ParseMode(modeStr)
	if err != nil {
		return nil, nil, err
	}

	logger, err := debug.New(debug.Config{
		Categories: categories,
		Mode:       mode,
		OutputPath: outputPath,
		RingSize:   ringSize,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create debug logger: %w", err)
	}

	cleanup := func() {
		// Ring-only loggers have nowhere to stream; dump the retained tail.
		if ring, ok := logger.(*debug.RingLogger); ok {
			_ = ring.Dump(os.Stderr, debug.FormatText)
		}
		if err := logger.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "debug: flush error: %v\n", err)
		}
		if err := logger.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "debug: close error: %v\n", err)
		}
	}
	return logger, cleanup, nil
}
