package replay

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/mewbak/sile/internal/sessionlog"
)

func TestAll_ResultsKeepInputOrder(t *testing.T) {
	var inputs []Input
	for i := 0; i < 8; i++ {
		file := fmt.Sprintf("doc%d.tex", i)
		inputs = append(inputs, Input{
			Name: file,
			Events: []sessionlog.Event{
				{Kind: sessionlog.EventPushCommand, ID: 1, Command: "chapter", File: file, Lno: i + 1},
				{Kind: sessionlog.EventMark, Message: "check"},
				{Kind: sessionlog.EventPop, ID: 1},
			},
		})
	}

	results, err := All(context.Background(), inputs, 3, Options{})
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(results) != len(inputs) {
		t.Fatalf("results = %d, want %d", len(results), len(inputs))
	}
	for i, res := range results {
		if res.Name != inputs[i].Name {
			t.Fatalf("results[%d].Name = %q, want %q", i, res.Name, inputs[i].Name)
		}
		if !strings.Contains(res.Markers[0].Location, inputs[i].Name) {
			t.Fatalf("results[%d] marker = %q, want its own file %q (no cross-session state)",
				i, res.Markers[0].Location, inputs[i].Name)
		}
		if res.Depth != 0 {
			t.Fatalf("results[%d].Depth = %d, want 0", i, res.Depth)
		}
	}
}

func TestAll_DefaultJobs(t *testing.T) {
	inputs := []Input{{Name: "doc", Events: []sessionlog.Event{
		{Kind: sessionlog.EventPushText, ID: 1, Text: "x"},
		{Kind: sessionlog.EventPop, ID: 1},
	}}}

	results, err := All(context.Background(), inputs, 0, Options{})
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(results) != 1 || results[0].Events != 2 {
		t.Fatalf("results = %+v", results)
	}
}

func TestAll_NoInputs(t *testing.T) {
	results, err := All(context.Background(), nil, 4, Options{})
	if err != nil {
		t.Fatalf("All() error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("results = %d, want 0", len(results))
	}
}

func TestAll_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := []Input{{Name: "doc", Events: balancedSession()}}
	_, err := All(ctx, inputs, 1, Options{})
	if err == nil {
		t.Fatal("All() succeeded on a canceled context, want error")
	}
}
