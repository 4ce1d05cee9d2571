// Package jsoncodec centralizes JSON encoding for the module.
//
// All marshaling and unmarshaling goes through sonic configured for
// standard-library compatibility, so swapping the codec later is a
// one-line change and behavior stays uniform across packages.
package jsoncodec

import (
	"github.com/bytedance/sonic"
)

// api is sonic tuned to match encoding/json semantics (key sorting,
// HTML escaping, compact output).
var api = sonic.ConfigStd

// Marshal encodes v as JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}
