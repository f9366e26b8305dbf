package replay

import (
	"strings"
	"testing"

	"github.com/mewbak/sile/internal/debug"
	"github.com/mewbak/sile/internal/sessionlog"
	"github.com/mewbak/sile/internal/testkit"
	"github.com/mewbak/sile/internal/tracestack"
)

func balancedSession() []sessionlog.Event {
	return []sessionlog.Event{
		{Kind: sessionlog.EventFile, File: "main.sil"},
		{Kind: sessionlog.EventPushCommand, ID: 1, Command: "chapter", File: "doc.tex", Lno: 3},
		{Kind: sessionlog.EventPushText, ID: 2, Text: "hello"},
		{Kind: sessionlog.EventMark, Message: "overfull line"},
		{Kind: sessionlog.EventPop, ID: 2},
		{Kind: sessionlog.EventPop, ID: 1},
	}
}

func TestRun_BalancedSession(t *testing.T) {
	res := Run("doc", balancedSession(), Options{})

	if res.Events != 6 {
		t.Fatalf("Events = %d, want 6", res.Events)
	}
	if res.Depth != 0 {
		t.Fatalf("Depth = %d, want 0", res.Depth)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("Warnings = %+v, want none", res.Warnings)
	}
	if !strings.HasPrefix(res.Location, "after ") {
		t.Fatalf("Location = %q, want an after head on the drained stack", res.Location)
	}
}

func TestSession_InvariantsHoldAtEveryStep(t *testing.T) {
	s := NewSession(Options{})
	for i, ev := range balancedSession() {
		s.Apply(ev)
		if err := testkit.CheckStackInvariants(s.Stack()); err != nil {
			t.Fatalf("after event %d (%v): %v", i, ev.Kind, err)
		}
	}
}

func TestSession_MapsRecordedIDsToLiveOnes(t *testing.T) {
	// The recording engine used IDs of its own; pops still pair up.
	events := []sessionlog.Event{
		{Kind: sessionlog.EventPushCommand, ID: 4070, Command: "chapter"},
		{Kind: sessionlog.EventPushText, ID: 4099, Text: "hello"},
		{Kind: sessionlog.EventPop, ID: 4099},
		{Kind: sessionlog.EventPop, ID: 4070},
	}

	res := Run("doc", events, Options{})

	if len(res.Warnings) != 0 {
		t.Fatalf("Warnings = %+v, want none", res.Warnings)
	}
	if res.Depth != 0 {
		t.Fatalf("Depth = %d, want 0", res.Depth)
	}
}

func TestRun_MarkerLocations(t *testing.T) {
	t.Run("one line head", func(t *testing.T) {
		res := Run("doc", balancedSession(), Options{})
		if len(res.Markers) != 1 {
			t.Fatalf("Markers = %d, want 1", len(res.Markers))
		}
		m := res.Markers[0]
		if m.Message != "overfull line" {
			t.Fatalf("Message = %q", m.Message)
		}
		if !strings.Contains(m.Location, `near doc.tex:3: in \chapter`) {
			t.Fatalf("Location = %q, want the positional ancestor", m.Location)
		}
		if strings.Contains(m.Location, "\n") {
			t.Fatalf("Location = %q, want a single line", m.Location)
		}
	})

	t.Run("traceback", func(t *testing.T) {
		res := Run("doc", balancedSession(), Options{Traceback: true})
		m := res.Markers[0]
		lines := strings.Split(strings.TrimRight(m.Location, "\n"), "\n")
		if len(lines) != 2 {
			t.Fatalf("trace lines = %d, want 2:\n%s", len(lines), m.Location)
		}
		for i, line := range lines {
			if !strings.HasPrefix(line, "\t") {
				t.Fatalf("line %d = %q, want a tab prefix", i, line)
			}
		}
		if !strings.Contains(lines[1], `doc.tex:3: in \chapter`) {
			t.Fatalf("second line = %q, want the outer frame", lines[1])
		}
	})
}

func TestRun_UnbalancedSession(t *testing.T) {
	events := []sessionlog.Event{
		{Kind: sessionlog.EventPushCommand, ID: 1, Command: "chapter", File: "doc.tex", Lno: 1},
		{Kind: sessionlog.EventPushText, ID: 2, Text: "hello"},
		{Kind: sessionlog.EventPop, ID: 1}, // wrong: 2 is on top
		{Kind: sessionlog.EventPop, ID: 7}, // never pushed
		{Kind: sessionlog.EventPop, ID: 2},
		{Kind: sessionlog.EventPop, ID: 1},
	}

	res := Run("doc", events, Options{})

	if got := len(res.Warnings); got != 2 {
		t.Fatalf("Warnings = %d, want one per bad pop:\n%+v", got, res.Warnings)
	}
	for _, w := range res.Warnings {
		if !strings.Contains(w.Message, "unbalanced") {
			t.Fatalf("warning = %q, want an imbalance warning", w.Message)
		}
		if !w.Recoverable {
			t.Fatalf("warning %q marked unrecoverable", w.Message)
		}
	}
	if res.Depth != 0 {
		t.Fatalf("Depth = %d, want 0 (good pops still land)", res.Depth)
	}
}

func TestRun_FileEventSetsCurrentFile(t *testing.T) {
	events := []sessionlog.Event{
		{Kind: sessionlog.EventFile, File: "main.sil"},
		{Kind: sessionlog.EventPushCommand, ID: 1, Command: "chapter"},
		{Kind: sessionlog.EventMark, Message: "check"},
		{Kind: sessionlog.EventPop, ID: 1},
		{Kind: sessionlog.EventMark, Message: "empty stack"},
		{Kind: sessionlog.EventFile, File: ""},
	}

	res := Run("doc", events, Options{})

	if !strings.Contains(res.Markers[0].Location, "main.sil") {
		t.Fatalf("marker = %q, want the command frame to inherit main.sil", res.Markers[0].Location)
	}
}

func TestRun_EmptySessionFallsBackToNowhere(t *testing.T) {
	res := Run("doc", []sessionlog.Event{{Kind: sessionlog.EventMark, Message: "lost"}}, Options{})

	if got := res.Markers[0].Location; got != tracestack.Nowhere {
		t.Fatalf("Location = %q, want %q", got, tracestack.Nowhere)
	}
}

func TestRun_DebugReproducesTrace(t *testing.T) {
	ring := debug.NewRingLogger(64, debug.ParseCategories(debug.CategoryStack))
	Run("doc", balancedSession(), Options{Debug: ring})

	lines := ring.Snapshot()
	if len(lines) != 4 {
		t.Fatalf("trace lines = %d, want 4 (two pushes, two pops)", len(lines))
	}
	if !strings.Contains(lines[0].Message, `\chapter`) {
		t.Fatalf("first trace line = %q", lines[0].Message)
	}
}
