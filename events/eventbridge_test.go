package events

import (
	"encoding/json"
	"testing"

	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

func TestResourceName(t *testing.T) {
	tests := map[string]struct {
		arn  string
		want string
	}{
		"rule arn":            {"arn:aws:events:us-east-1:123456789012:rule/my-schedule", "my-schedule"},
		"nested name":         {"arn:aws:events:us-east-1:123456789012:rule/team/nightly", "team/nightly"},
		"no name segment":     {"arn:aws:events:us-east-1:123456789012:rule", ""},
		"empty":               {"", ""},
		"slash only at start": {"/leading", "leading"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := ResourceName(tt.arn); got != tt.want {
				t.Errorf("ResourceName(%q) = %q, want %q", tt.arn, got, tt.want)
			}
		})
	}
}

func TestEventBridgeEvent(t *testing.T) {
	raw := []byte(`{
		"version": "0",
		"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718",
		"detail-type": "Scheduled Event",
		"source": "aws.events",
		"account": "123456789012",
		"time": "2021-04-08T13:18:48Z",
		"region": "us-east-1",
		"resources": ["arn:aws:events:us-east-1:123456789012:rule/my-schedule"],
		"detail": {"job": "cleanup"}
	}`)

	t.Run("parses and routes by rule name", func(t *testing.T) {
		var ev EventBridgeEvent[json.RawMessage]
		if err := jsoncodec.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := ev.Validate(); err != nil {
			t.Fatalf("unexpected validation error: %v", err)
		}

		if ev.Type() != TypeEventBridge {
			t.Errorf("Type() = %q", ev.Type())
		}
		if ev.Key() != "my-schedule" {
			t.Errorf("Key() = %q, want %q", ev.Key(), "my-schedule")
		}
		if ev.DetailType != "Scheduled Event" {
			t.Errorf("DetailType = %q", ev.DetailType)
		}
	})

	t.Run("parses typed detail", func(t *testing.T) {
		type detail struct {
			Job string `json:"job"`
		}

		var ev EventBridgeEvent[detail]
		if err := jsoncodec.Unmarshal(raw, &ev); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Detail.Job != "cleanup" {
			t.Errorf("Detail.Job = %q", ev.Detail.Job)
		}
	})

	t.Run("key is empty without resources", func(t *testing.T) {
		var ev EventBridgeEvent[json.RawMessage]
		if ev.Key() != "" {
			t.Errorf("Key() = %q, want empty", ev.Key())
		}
	})

	t.Run("validation failures", func(t *testing.T) {
		tests := map[string]string{
			"wrong source":    `{"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718", "detail-type": "x", "source": "my.app", "account": "123456789012", "time": "2021-04-08T13:18:48Z", "region": "us-east-1", "resources": ["a/b"]}`,
			"short account":   `{"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718", "detail-type": "x", "source": "aws.events", "account": "1234", "time": "2021-04-08T13:18:48Z", "region": "us-east-1", "resources": ["a/b"]}`,
			"missing id":      `{"detail-type": "x", "source": "aws.events", "account": "123456789012", "time": "2021-04-08T13:18:48Z", "region": "us-east-1", "resources": ["a/b"]}`,
			"unnamed rule":    `{"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718", "detail-type": "x", "source": "aws.events", "account": "123456789012", "time": "2021-04-08T13:18:48Z", "region": "us-east-1", "resources": ["arn:aws:events:rule"]}`,
			"empty resources": `{"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718", "detail-type": "x", "source": "aws.events", "account": "123456789012", "time": "2021-04-08T13:18:48Z", "region": "us-east-1", "resources": []}`,
		}

		for name, raw := range tests {
			t.Run(name, func(t *testing.T) {
				var ev EventBridgeEvent[json.RawMessage]
				if err := jsoncodec.Unmarshal([]byte(raw), &ev); err != nil {
					t.Fatalf("unexpected decode error: %v", err)
				}
				if err := ev.Validate(); err == nil {
					t.Error("expected validation error")
				}
			})
		}
	})
}
