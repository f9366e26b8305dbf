package diag

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

var (
	warnLabelColor = color.New(color.FgYellow, color.Bold)
	errLabelColor  = color.New(color.FgRed, color.Bold)
)

// ConsoleReporter writes warnings in the engine's traditional console shape:
//
//	! Warning: message
//	! Error: message
//
// The "! Error:" label is used for non-recoverable warnings; neither form
// stops the caller.
type ConsoleReporter struct {
	mu       sync.Mutex
	w        io.Writer
	useColor bool
}

// NewConsoleReporter creates a reporter writing to w. Color applies to the
// label only, so messages stay grep-able.
func NewConsoleReporter(w io.Writer, useColor bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, useColor: useColor}
}

func (r *ConsoleReporter) Warn(message string, recoverable bool) {
	if r == nil || r.w == nil {
		return
	}

	label := "! Warning:"
	labelColor := warnLabelColor
	if !recoverable {
		label = "! Error:"
		labelColor = errLabelColor
	}
	if r.useColor {
		label = labelColor.Sprint(label)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	// Best-effort write - warning output must never fail the host engine
	if _, err := fmt.Fprintf(r.w, "%s %s\n", label, message); err != nil {
		_ = err
	}
}
