package fuzztests

import (
	"bytes"
	"testing"

	"github.com/mewbak/sile/internal/sessionlog"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzNDJSONCodec(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		events, err := sessionlog.ReadNDJSON(bytes.NewReader(clampInput(input)))
		if err != nil {
			return
		}

		var buf bytes.Buffer
		if err := sessionlog.WriteNDJSON(&buf, events); err != nil {
			t.Fatalf("re-encode of a decoded log failed: %v", err)
		}
		again, err := sessionlog.ReadNDJSON(&buf)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if len(again) != len(events) {
			t.Fatalf("event count changed across a round trip: %d then %d", len(events), len(again))
		}
	})
}

func FuzzBinaryCodec(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		events, err := sessionlog.ReadBinary(bytes.NewReader(clampInput(input)))
		if err != nil {
			return
		}

		var buf bytes.Buffer
		if err := sessionlog.WriteBinary(&buf, events); err != nil {
			t.Fatalf("re-encode of a decoded log failed: %v", err)
		}
		again, err := sessionlog.ReadBinary(&buf)
		if err != nil {
			t.Fatalf("re-decode failed: %v", err)
		}
		if len(again) != len(events) {
			t.Fatalf("event count changed across a round trip: %d then %d", len(events), len(again))
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}
