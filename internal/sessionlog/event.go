// Package sessionlog reads and writes recorded trace-stack sessions.
//
// A session log is the flat event sequence an engine emitted while
// processing documents: pushes and pops with the push IDs the engine saw,
// file switches, and named markers where diagnostics were requested. The
// replay layer feeds these events back into a live stack; the log itself
// knows nothing about stack semantics.
//
// Two on-disk encodings are supported and chosen by file extension:
// newline-delimited JSON (".ndjson", editable by hand) and msgpack (".mp",
// compact, schema-versioned).
package sessionlog

import (
	"fmt"
	"strings"
)

// EventKind says what a recorded event did.
type EventKind uint8

const (
	EventPushCommand EventKind = iota + 1
	EventPushContent
	EventPushText
	EventPushFrame
	EventPop
	EventFile
	EventMark
)

func (k EventKind) String() string {
	switch k {
	case EventPushCommand:
		return "push_command"
	case EventPushContent:
		return "push_content"
	case EventPushText:
		return "push_text"
	case EventPushFrame:
		return "push_frame"
	case EventPop:
		return "pop"
	case EventFile:
		return "file"
	case EventMark:
		return "mark"
	default:
		return "unknown"
	}
}

// ParseEventKind converts a wire string to EventKind.
func ParseEventKind(s string) (EventKind, error) {
	switch strings.ToLower(s) {
	case "push_command":
		return EventPushCommand, nil
	case "push_content":
		return EventPushContent, nil
	case "push_text":
		return EventPushText, nil
	case "push_frame":
		return EventPushFrame, nil
	case "pop":
		return EventPop, nil
	case "file":
		return EventFile, nil
	case "mark":
		return EventMark, nil
	default:
		return 0, fmt.Errorf("invalid event kind: %q (expected: push_command|push_content|push_text|push_frame|pop|file|mark)", s)
	}
}

// Event is one recorded step of a session.
//
// ID is the push ID as the recording engine saw it: on push events it is the
// ID the engine was handed, on pop events the ID the engine passed back. IDs
// are log-local; the replayer maps them onto the IDs of its own stack, so a
// log reproduces the engine's pairing of pushes and pops, including a
// deliberately unbalanced one.
type Event struct {
	Kind    EventKind
	ID      uint64            // push events, pop
	Command string            // push_command, push_content
	Text    string            // push_text
	File    string            // frame position, or the file event payload
	Lno     int
	Col     int
	Options map[string]string // push_command, push_content
	Fields  map[string]string // push_frame
	Message string            // mark label
}
