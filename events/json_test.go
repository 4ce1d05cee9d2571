package events

import (
	"testing"

	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

func TestJSONText(t *testing.T) {
	t.Run("decodes JSON embedded in a string", func(t *testing.T) {
		type payload struct {
			UserID string `json:"userId"`
		}

		var jt JSONText[payload]
		err := jt.UnmarshalJSON([]byte(`"{\"userId\": \"123\"}"`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if jt.Raw != `{"userId": "123"}` {
			t.Errorf("Raw = %q", jt.Raw)
		}
		if jt.Value.UserID != "123" {
			t.Errorf("Value.UserID = %q, want %q", jt.Value.UserID, "123")
		}
	})

	t.Run("passes plain text through when T is string", func(t *testing.T) {
		var jt JSONText[string]
		err := jt.UnmarshalJSON([]byte(`"hello, not JSON at all"`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if jt.Value != "hello, not JSON at all" {
			t.Errorf("Value = %q", jt.Value)
		}
		if jt.Raw != jt.Value {
			t.Errorf("Raw = %q, want same as Value", jt.Raw)
		}
	})

	t.Run("fails when embedded text is not valid for T", func(t *testing.T) {
		type payload struct {
			N int `json:"n"`
		}

		var jt JSONText[payload]
		if err := jt.UnmarshalJSON([]byte(`"plain text"`)); err == nil {
			t.Error("expected error decoding plain text into struct")
		}
	})

	t.Run("fails when outer value is not a string", func(t *testing.T) {
		var jt JSONText[string]
		if err := jt.UnmarshalJSON([]byte(`{"not": "a string"}`)); err == nil {
			t.Error("expected error for object input")
		}
	})

	t.Run("marshals back to the embedded form", func(t *testing.T) {
		type payload struct {
			UserID string `json:"userId"`
		}

		type wrapper struct {
			Message JSONText[payload] `json:"Message"`
		}

		in := []byte(`{"Message":"{\"userId\":\"123\"}"}`)
		var w wrapper
		if err := jsoncodec.Unmarshal(in, &w); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out, err := jsoncodec.Marshal(w)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(in) {
			t.Errorf("marshaled = %s, want %s", out, in)
		}
	})
}
