package sessionlog

import (
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the wire format changes.
const binarySchemaVersion uint16 = 1

// binaryLog is the msgpack envelope: a schema version for safe invalidation,
// then the event sequence.
type binaryLog struct {
	Schema uint16
	Events []wireEvent
}

// WriteBinary writes events in the msgpack encoding.
func WriteBinary(w io.Writer, events []Event) error {
	lg := binaryLog{
		Schema: binarySchemaVersion,
		Events: make([]wireEvent, len(events)),
	}
	for i, ev := range events {
		lg.Events[i] = toWire(ev)
	}
	enc := msgpack.NewEncoder(w)
	return enc.Encode(&lg)
}

// ReadBinary reads a msgpack session log, rejecting unknown schema versions.
func ReadBinary(r io.Reader) ([]Event, error) {
	var lg binaryLog
	dec := msgpack.NewDecoder(r)
	if err := dec.Decode(&lg); err != nil {
		return nil, err
	}
	if lg.Schema != binarySchemaVersion {
		return nil, fmt.Errorf("unsupported session log schema: %d (expected %d)", lg.Schema, binarySchemaVersion)
	}
	events := make([]Event, len(lg.Events))
	for i, we := range lg.Events {
		ev, err := fromWire(we)
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		events[i] = ev
	}
	return events, nil
}
