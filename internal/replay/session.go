// Package replay drives live trace stacks from recorded session logs.
//
// A session log carries the push IDs the recording engine saw; a replayed
// stack issues its own. Session keeps the mapping between the two, so a
// recorded pop targets the live frame corresponding to the recorded one,
// and a log recording an engine bug (a pop with a stale or bogus ID)
// reproduces the same imbalance warning on replay.
package replay

import (
	"github.com/mewbak/sile/internal/debug"
	"github.com/mewbak/sile/internal/diag"
	"github.com/mewbak/sile/internal/sessionlog"
	"github.com/mewbak/sile/internal/tracestack"
)

// Options configures how sessions replay.
type Options struct {
	// Traceback switches markers from the one-line location head to the
	// full multi-line stack trace.
	Traceback bool
	// Reporter additionally receives stack warnings as they happen; the
	// result collects them regardless. Must be safe for concurrent use when
	// replaying sessions in parallel.
	Reporter diag.Reporter
	// Debug is handed to the stack environment, so replaying with the
	// tracestack category enabled reproduces the engine's push/pop trace.
	Debug debug.Logger
	// MaxWarnings bounds the per-session warning collection.
	MaxWarnings int
}

// Marker is the diagnostic output captured at a mark event.
type Marker struct {
	Message  string
	Location string
}

// Result summarizes one replayed session.
type Result struct {
	Name     string
	Events   int
	Markers  []Marker
	Warnings []diag.Warning
	// Depth and Location describe the stack after the last event; a
	// balanced session ends at depth 0 with an "after ..." location.
	Depth    int
	Location string
}

// Session replays one event sequence onto one stack. Not safe for
// concurrent use; run parallel sessions through All.
type Session struct {
	opts    Options
	stack   *tracestack.Stack
	bag     *diag.Bag
	ids     map[uint64]tracestack.PushID
	file    string
	markers []Marker
	steps   int
}

// NewSession returns a session with a fresh stack wired to the options.
func NewSession(opts Options) *Session {
	s := &Session{
		opts: opts,
		bag:  diag.NewBag(opts.MaxWarnings),
		ids:  make(map[uint64]tracestack.PushID),
	}
	s.stack = tracestack.New(tracestack.Environment{
		CurrentFile: func() string { return s.file },
		Reporter:    diag.MultiReporter(s.bag, opts.Reporter),
		Debug:       opts.Debug,
	})
	return s
}

// Apply replays one event.
func (s *Session) Apply(ev sessionlog.Event) {
	s.steps++
	switch ev.Kind {
	case sessionlog.EventFile:
		s.file = ev.File
	case sessionlog.EventPushCommand:
		s.ids[ev.ID] = s.stack.PushCommand(ev.Command, positionOf(ev), ev.Options)
	case sessionlog.EventPushContent:
		s.ids[ev.ID] = s.stack.PushContent(&tracestack.Content{
			Command: ev.Command,
			Options: ev.Options,
			File:    ev.File,
			Lno:     ev.Lno,
			Col:     ev.Col,
		}, "")
	case sessionlog.EventPushText:
		s.ids[ev.ID] = s.stack.PushText(ev.Text)
	case sessionlog.EventPushFrame:
		s.ids[ev.ID] = s.stack.PushFrame(&tracestack.Frame{
			Kind:   tracestack.KindGeneric,
			File:   ev.File,
			Lno:    ev.Lno,
			Col:    ev.Col,
			Fields: ev.Fields,
		})
	case sessionlog.EventPop:
		// An unknown recorded ID maps to zero, which matches no frame; the
		// stack reports the imbalance exactly as the engine would have.
		s.stack.Pop(s.ids[ev.ID])
	case sessionlog.EventMark:
		location := s.stack.LocationInfo()
		if s.opts.Traceback {
			location = s.stack.LocationTrace()
		}
		s.markers = append(s.markers, Marker{Message: ev.Message, Location: location})
	}
}

// positionOf lifts a recorded position into the content argument of
// PushCommand. Events without one pass nil, exercising the stack's
// currently-processing-file fallback.
func positionOf(ev sessionlog.Event) *tracestack.Content {
	if ev.File == "" && ev.Lno == 0 && ev.Col == 0 {
		return nil
	}
	return &tracestack.Content{File: ev.File, Lno: ev.Lno, Col: ev.Col}
}

// Stack exposes the live stack, for viewers that inspect replayed state.
func (s *Session) Stack() *tracestack.Stack {
	return s.stack
}

// Result summarizes the session so far under the given name.
func (s *Session) Result(name string) Result {
	return Result{
		Name:     name,
		Events:   s.steps,
		Markers:  s.markers,
		Warnings: s.bag.Items(),
		Depth:    s.stack.Depth(),
		Location: s.stack.LocationInfo(),
	}
}

// Run replays a whole event sequence and returns its summary.
func Run(name string, events []sessionlog.Event, opts Options) Result {
	s := NewSession(opts)
	for _, ev := range events {
		s.Apply(ev)
	}
	return s.Result(name)
}
