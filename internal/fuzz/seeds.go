package fuzztests

import (
	"bytes"
	"testing"

	"github.com/mewbak/sile/internal/sessionlog"
)

func addCorpusSeeds(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte("\n\n"))
	for _, doc := range seedDocs {
		f.Add([]byte(doc))
	}
	addBinarySeed(f)
}

// Каждый сид содержит целый NDJSON-журнал одной сессии: сбалансированный
// прогон, намеренный дисбаланс, юникод в текстовых фреймах, пустые строки.
var seedDocs = []string{
	`{"kind":"file","file":"doc.tex"}
{"kind":"push_command","id":1,"command":"chapter","file":"doc.tex","lno":1,"options":{"numbering":"no"}}
{"kind":"push_text","id":2,"text":"hello world"}
{"kind":"pop","id":2}
{"kind":"mark","message":"overfull line"}
{"kind":"pop","id":1}
`,
	`{"kind":"push_content","id":7,"command":"font","lno":3,"col":14}

{"kind":"pop","id":9}
`,
	`{"kind":"push_frame","id":1,"fields":{"phase":"measure"}}
{"kind":"push_text","id":2,"text":"héllo\n\tworld"}
`,
}

func addBinarySeed(f *testing.F) {
	events := []sessionlog.Event{
		{Kind: sessionlog.EventFile, File: "doc.tex"},
		{Kind: sessionlog.EventPushCommand, ID: 1, Command: "chapter", File: "doc.tex", Lno: 1},
		{Kind: sessionlog.EventPop, ID: 1},
	}
	var buf bytes.Buffer
	if err := sessionlog.WriteBinary(&buf, events); err != nil {
		return
	}
	f.Add(buf.Bytes())
}
