package events

import (
	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

// JSONText holds a value that arrives JSON-encoded inside a JSON string,
// the double encoding SNS applies to published messages. When T is string
// the embedded text passes through untouched, so plain-text messages and
// JSON payloads share one field type.
type JSONText[T any] struct {
	// Raw is the embedded string exactly as it appeared on the wire.
	Raw string

	// Value is Raw decoded into T.
	Value T
}

func (t *JSONText[T]) UnmarshalJSON(data []byte) error {
	if err := jsoncodec.Unmarshal(data, &t.Raw); err != nil {
		return err
	}
	if s, ok := any(&t.Value).(*string); ok {
		*s = t.Raw
		return nil
	}
	return jsoncodec.Unmarshal([]byte(t.Raw), &t.Value)
}

func (t JSONText[T]) MarshalJSON() ([]byte, error) {
	return jsoncodec.Marshal(t.Raw)
}
