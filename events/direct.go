package events

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DirectInvocationDetail carries the caller-supplied invocation payload.
type DirectInvocationDetail[M any] struct {
	Trigger string  `json:"trigger"`
	Body    M       `json:"body"`
	Meta    *string `json:"meta,omitempty"`
}

func (d DirectInvocationDetail[M]) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Trigger, validation.Required),
	)
}

// DirectInvocationEvent is a hand-rolled record for invoking the function
// directly, outside any AWS messaging service. M is the body payload type.
type DirectInvocationEvent[M any] struct {
	DirectInvocation DirectInvocationDetail[M] `json:"direct_invocation"`
	Timestamp        SlashTime                 `json:"time_stamp"`
	Source           string                    `json:"source"`
}

func (DirectInvocationEvent[M]) Type() Type { return TypeDirectInvocation }

// Key returns the invocation trigger.
func (e DirectInvocationEvent[M]) Key() string { return e.DirectInvocation.Trigger }

func (e DirectInvocationEvent[M]) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.DirectInvocation, validation.Required),
		validation.Field(&e.Timestamp, validation.By(slashTimeRequired)),
		validation.Field(&e.Source, validation.Required),
	)
}

// slashTimeRequired rejects a zero timestamp. The generic Required rule
// only recognizes time.Time zero values, not named wrappers.
func slashTimeRequired(v any) error {
	t, ok := v.(SlashTime)
	if !ok || t.Time().IsZero() {
		return errors.New("cannot be blank")
	}
	return nil
}
