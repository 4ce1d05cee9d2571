package lambdaroute

import (
	"github.com/tidwall/gjson"
)

// View provides read-only field access over a raw record without decoding
// it into a concrete type. Paths use gjson syntax, so nested fields and
// array elements are addressable directly: "Records.0.eventSource".
type View interface {
	// HasField reports whether path exists in the record.
	HasField(path string) bool

	// GetString returns the string value at path. The second return is
	// false when the path is missing or holds a non-string value.
	GetString(path string) (string, bool)

	// GetBytes returns the raw JSON value at path, quotes included for
	// strings. The second return is false when the path is missing.
	GetBytes(path string) ([]byte, bool)
}

// Inspect wraps a raw record in a View. It returns ErrInvalidJSON when
// the payload is not well-formed JSON.
func Inspect(raw []byte) (View, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidJSON
	}
	return recordView{raw: raw}, nil
}

type recordView struct {
	raw []byte
}

func (v recordView) HasField(path string) bool {
	return gjson.GetBytes(v.raw, path).Exists()
}

func (v recordView) GetString(path string) (string, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() || r.Type != gjson.String {
		return "", false
	}
	return r.String(), true
}

func (v recordView) GetBytes(path string) ([]byte, bool) {
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return nil, false
	}
	return []byte(r.Raw), true
}
