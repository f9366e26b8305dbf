package debug

import (
	"encoding/json"
	"strings"
	"sync/atomic"
)

var globalSeq uint64

// NextSeq returns a monotonically increasing sequence number shared by all
// loggers in the process, so interleaved outputs can be ordered afterwards.
func NextSeq() uint64 {
	return atomic.AddUint64(&globalSeq, 1)
}

// Line is one recorded debug message.
type Line struct {
	Seq      uint64 // global sequence number (monotonic)
	Category string // category the producer tagged the message with
	Message  string // the message itself, already rendered
}

// Format represents the output format for debug lines.
type Format uint8

const (
	FormatAuto   Format = iota // detect from output path
	FormatText                 // human-readable text
	FormatNDJSON               // newline-delimited JSON
)

// FormatLine renders a line according to the specified format.
func FormatLine(l Line, format Format) []byte {
	switch format {
	case FormatNDJSON:
		return formatNDJSON(l)
	default:
		return formatText(l)
	}
}

// formatNDJSON renders a line as newline-delimited JSON.
func formatNDJSON(l Line) []byte {
	type jsonLine struct {
		Seq      uint64 `json:"seq"`
		Category string `json:"category"`
		Message  string `json:"message"`
	}

	data, _ := json.Marshal(jsonLine{
		Seq:      l.Seq,
		Category: l.Category,
		Message:  l.Message,
	})
	data = append(data, '\n')
	return data
}

// formatText renders a line as human-readable text.
// Format: [category] message
func formatText(l Line) []byte {
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(l.Category)
	sb.WriteString("] ")
	sb.WriteString(l.Message)
	sb.WriteByte('\n')
	return []byte(sb.String())
}
