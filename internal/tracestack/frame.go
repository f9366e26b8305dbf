package tracestack

import (
	"sort"
	"strconv"
	"strings"
)

// Kind discriminates what a frame describes.
type Kind uint8

const (
	// KindGeneric marks a frame built directly by a producer, described
	// only by its Fields. The zero value, so a zero Frame is valid.
	KindGeneric Kind = iota
	// KindCommand marks a command invocation such as \chapter[numbering=no].
	KindCommand
	// KindContent marks a structured content node carrying a command name.
	KindContent
	// KindText marks a run of document text.
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindGeneric:
		return "generic"
	case KindCommand:
		return "command"
	case KindContent:
		return "content"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Content is the structured source node handed to PushCommand and
// PushContent. It mirrors what the engine's parser attaches to every node:
// an optional command name, optional options, and an optional source
// position.
type Content struct {
	Command string
	Options map[string]string
	File    string
	Lno     int
	Col     int
}

// Frame is one entry on the trace stack. Producers may build Generic frames
// directly and hand them to PushFrame; the other kinds are built by the
// Push* helpers. Lno and Col use 1-based source coordinates; zero means
// unknown, and Col is only meaningful when Lno is set.
type Frame struct {
	Kind    Kind
	File    string
	Lno     int
	Col     int
	Command string            // KindCommand, KindContent
	Options map[string]string // KindCommand, KindContent
	Text    string            // KindText
	Fields  map[string]string // KindGeneric

	pushID PushID
}

// Render returns the frame as "[file:][lno:[col:]] in <body>", e.g.
// "doc.tex:3:14: in \chapter". Each location segment renders only when
// present and the column never renders without a line. The file segment is
// dropped when skipFile is set, for callers that already printed the file.
func (f *Frame) Render(skipFile bool) string {
	var sb strings.Builder
	if !skipFile && f.File != "" {
		sb.WriteString(f.File)
		sb.WriteByte(':')
	}
	if f.Lno > 0 {
		sb.WriteString(strconv.Itoa(f.Lno))
		sb.WriteByte(':')
		if f.Col > 0 {
			sb.WriteString(strconv.Itoa(f.Col))
			sb.WriteByte(':')
		}
	}
	if sb.Len() > 0 {
		sb.WriteByte(' ')
	}
	sb.WriteString("in ")
	sb.WriteString(f.body())
	return sb.String()
}

func (f *Frame) String() string {
	return f.Render(false)
}

func (f *Frame) body() string {
	switch f.Kind {
	case KindCommand, KindContent:
		var sb strings.Builder
		sb.WriteByte('\\')
		sb.WriteString(f.Command)
		if len(f.Options) > 0 {
			sb.WriteString(renderPairs(f.Options, '[', ']'))
		}
		return sb.String()
	case KindText:
		return quoteText(f.Text)
	default:
		if len(f.Fields) == 0 {
			return ""
		}
		return renderPairs(f.Fields, '{', '}')
	}
}

// renderPairs renders a key/value set as "[k1=v1, k2=v2]" with sorted keys,
// so frame output is stable across runs.
func renderPairs(pairs map[string]string, open, close byte) string {
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	sb.WriteByte(open)
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(pairs[k])
	}
	sb.WriteByte(close)
	return sb.String()
}

const (
	textLimit = 20
	textKeep  = 18
)

// quoteText renders a text run for a trace line: quoted, truncated to
// textKeep runes plus an ellipsis when longer than textLimit, and with
// whitespace control characters made visible. Truncation happens before
// substitution, so the budget counts source runes.
func quoteText(text string) string {
	runes := []rune(text)
	if len(runes) > textLimit {
		text = string(runes[:textKeep]) + "…"
	}
	text = whitespaceGlyphs.Replace(text)
	return "\"" + text + "\""
}

// whitespaceGlyphs maps control whitespace to its Control Pictures glyph so
// a trace line stays on one line.
var whitespaceGlyphs = strings.NewReplacer(
	"\n", "␤",
	"\t", "␉",
	"\v", "␋",
)
