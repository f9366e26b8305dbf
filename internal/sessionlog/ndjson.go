package sessionlog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"
)

// wireEvent is the NDJSON/msgpack shape of an Event. The kind travels as a
// string so logs stay readable and the numbering of EventKind can change
// without breaking recorded sessions.
type wireEvent struct {
	Kind    string            `json:"kind" msgpack:"kind"`
	ID      uint64            `json:"id,omitempty" msgpack:"id,omitempty"`
	Command string            `json:"command,omitempty" msgpack:"command,omitempty"`
	Text    string            `json:"text,omitempty" msgpack:"text,omitempty"`
	File    string            `json:"file,omitempty" msgpack:"file,omitempty"`
	Lno     int64             `json:"lno,omitempty" msgpack:"lno,omitempty"`
	Col     int64             `json:"col,omitempty" msgpack:"col,omitempty"`
	Options map[string]string `json:"options,omitempty" msgpack:"options,omitempty"`
	Fields  map[string]string `json:"fields,omitempty" msgpack:"fields,omitempty"`
	Message string            `json:"message,omitempty" msgpack:"message,omitempty"`
}

func toWire(ev Event) wireEvent {
	return wireEvent{
		Kind:    ev.Kind.String(),
		ID:      ev.ID,
		Command: ev.Command,
		Text:    ev.Text,
		File:    ev.File,
		Lno:     int64(ev.Lno),
		Col:     int64(ev.Col),
		Options: ev.Options,
		Fields:  ev.Fields,
		Message: ev.Message,
	}
}

// fromWire converts a decoded wire event back to the model. Line and column
// are narrowed with an overflow check, and text runs are normalized to NFC
// so frames render identically however the recording engine composed its
// strings.
func fromWire(we wireEvent) (Event, error) {
	kind, err := ParseEventKind(we.Kind)
	if err != nil {
		return Event{}, err
	}
	lno, err := safecast.Conv[int](we.Lno)
	if err != nil {
		return Event{}, fmt.Errorf("lno out of range: %w", err)
	}
	col, err := safecast.Conv[int](we.Col)
	if err != nil {
		return Event{}, fmt.Errorf("col out of range: %w", err)
	}
	return Event{
		Kind:    kind,
		ID:      we.ID,
		Command: we.Command,
		Text:    norm.NFC.String(we.Text),
		File:    we.File,
		Lno:     lno,
		Col:     col,
		Options: we.Options,
		Fields:  we.Fields,
		Message: we.Message,
	}, nil
}

// WriteNDJSON writes events one JSON object per line.
func WriteNDJSON(w io.Writer, events []Event) error {
	enc := json.NewEncoder(w)
	for i, ev := range events {
		if err := enc.Encode(toWire(ev)); err != nil {
			return fmt.Errorf("event %d: %w", i, err)
		}
	}
	return nil
}

// ReadNDJSON reads a newline-delimited JSON session log. Blank lines are
// skipped so hand-edited logs stay valid; errors carry the 1-based line
// number.
func ReadNDJSON(r io.Reader) ([]Event, error) {
	var events []Event
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var we wireEvent
		if err := json.Unmarshal([]byte(line), &we); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		ev, err := fromWire(we)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return events, nil
}
