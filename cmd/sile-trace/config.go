package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mewbak/sile/internal/debug"
)

// traceConfig is the optional siletrace.toml, discovered by walking up from
// the working directory. Every section is optional; flags override it.
type traceConfig struct {
	Debug  debugSection  `toml:"debug"`
	Replay replaySection `toml:"replay"`
	View   viewSection   `toml:"view"`
}

type debugSection struct {
	Categories string `toml:"categories"`
	Output     string `toml:"output"`
	Mode       string `toml:"mode"`
	RingSize   int    `toml:"ring_size"`
}

type replaySection struct {
	Jobs      int  `toml:"jobs"`
	Traceback bool `toml:"traceback"`
}

type viewSection struct {
	Autoplay bool `toml:"autoplay"`
}

func findSiletraceToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "siletrace.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadTraceConfig reads and validates a config file. A missing file is not
// an error; the zero config applies.
func loadTraceConfig(startDir string) (traceConfig, error) {
	path, ok, err := findSiletraceToml(startDir)
	if err != nil || !ok {
		return traceConfig{}, err
	}

	var cfg traceConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return traceConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if meta.IsDefined("debug", "mode") {
		if _, err := debug.ParseMode(cfg.Debug.Mode); err != nil {
			return traceConfig{}, fmt.Errorf("%s: [debug].mode: %w", path, err)
		}
	}
	if meta.IsDefined("debug", "ring_size") && cfg.Debug.RingSize < 0 {
		return traceConfig{}, fmt.Errorf("%s: [debug].ring_size must not be negative", path)
	}
	if meta.IsDefined("replay", "jobs") && cfg.Replay.Jobs < 0 {
		return traceConfig{}, fmt.Errorf("%s: [replay].jobs must not be negative", path)
	}
	return cfg, nil
}
