package events

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// ResourceName extracts the trailing name segment from an EventBridge
// resource ARN, e.g. "arn:aws:events:us-east-1:123456789012:rule/MyRule"
// yields "MyRule".
func ResourceName(arn string) string {
	if _, name, ok := strings.Cut(arn, "/"); ok {
		return name
	}
	return ""
}

// EventBridgeEvent is a scheduled or bus-delivered EventBridge event.
// M is the detail payload type.
type EventBridgeEvent[M any] struct {
	Version    string    `json:"version"`
	ID         uuid.UUID `json:"id"`
	DetailType string    `json:"detail-type"`
	Source     string    `json:"source"`
	Account    string    `json:"account"`
	Time       time.Time `json:"time"`
	Region     string    `json:"region"`
	Resources  []string  `json:"resources"`
	Detail     M         `json:"detail"`
	ReplayName string    `json:"replay-name,omitempty"`
}

func (EventBridgeEvent[M]) Type() Type { return TypeEventBridge }

// ResourceName returns the rule name taken from the first resource ARN.
func (e EventBridgeEvent[M]) ResourceName() string {
	if len(e.Resources) == 0 {
		return ""
	}
	return ResourceName(e.Resources[0])
}

// Key returns the rule name.
func (e EventBridgeEvent[M]) Key() string { return e.ResourceName() }

func (e EventBridgeEvent[M]) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.ID, validation.By(uuidRequired)),
		validation.Field(&e.DetailType, validation.Required),
		validation.Field(&e.Source, validation.Required, validation.In("aws.events")),
		validation.Field(&e.Account, validation.Required, validation.Length(12, 12), is.Digit),
		validation.Field(&e.Time, validation.Required),
		validation.Field(&e.Region, validation.Required),
		validation.Field(&e.Resources, validation.Required,
			validation.Each(validation.By(resourceHasName))),
	)
}

func resourceHasName(v any) error {
	s, _ := v.(string)
	if !strings.Contains(s, "/") {
		return errors.New("must include a resource name segment")
	}
	return nil
}

// uuidRequired rejects the nil UUID. The generic Required rule treats a
// fixed-size byte array as non-empty no matter its contents.
func uuidRequired(v any) error {
	id, ok := v.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return errors.New("cannot be blank")
	}
	return nil
}
