package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mewbak/sile/internal/diag"
	"github.com/mewbak/sile/internal/replay"
)

func TestPrintResult(t *testing.T) {
	res := replay.Result{
		Name:   "doc.ndjson",
		Events: 6,
		Markers: []replay.Marker{
			{Message: "overfull line", Location: `in "hello" near doc.tex:5: in \chapter`},
		},
		Warnings: []diag.Warning{
			{Message: "unbalanced push/pop on the trace stack", Recoverable: true},
			{Message: "unbalanced push/pop on the trace stack", Recoverable: true},
		},
		Depth:    1,
		Location: `doc.tex:5: in \chapter`,
	}

	var buf bytes.Buffer
	printResult(&buf, res, false, false, false)
	got := buf.String()

	wants := []string{
		"doc.ndjson: 6 events, depth 1, 2 warnings, 1 markers\n",
		"! Warning: unbalanced push/pop on the trace stack\n",
		"(1 duplicate warnings suppressed)\n",
		"mark \"overfull line\": in \"hello\" near doc.tex:5: in \\chapter\n",
		"final: doc.tex:5: in \\chapter\n",
	}
	for _, want := range wants {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "! Warning:") != 1 {
		t.Fatalf("duplicate warning not suppressed:\n%s", got)
	}
}

func TestPrintResult_Traceback(t *testing.T) {
	res := replay.Result{
		Name:   "doc.mp",
		Events: 3,
		Markers: []replay.Marker{
			{Message: "check", Location: "\tin \"hello\"\n\tdoc.tex:5: in \\chapter\n"},
		},
		Location: `in "hello"`,
	}

	var buf bytes.Buffer
	printResult(&buf, res, true, false, true)
	got := buf.String()

	if !strings.Contains(got, "mark \"check\":\n\tin \"hello\"\n\tdoc.tex:5: in \\chapter\n") {
		t.Fatalf("traceback block malformed:\n%s", got)
	}
	if strings.Contains(got, "final:") {
		t.Fatalf("quiet output still shows the final line:\n%s", got)
	}
}
