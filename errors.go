package lambdaroute

import (
	"errors"
	"fmt"

	"github.com/bjaus/lambdaroute/events"
)

var (
	// ErrInvalidJSON is returned when a record is not well-formed JSON.
	ErrInvalidJSON = errors.New("lambdaroute: invalid JSON")

	// ErrUnknownEventType is returned when no recognizer claims a record.
	ErrUnknownEventType = errors.New("lambdaroute: unknown event type")

	// ErrNoProxyConfigured is returned when an HTTP proxy record arrives
	// and no passthrough adapter was configured.
	ErrNoProxyConfigured = errors.New("lambdaroute: no proxy handler configured")

	// ErrUnparseableResponse is returned when a response record lacks the
	// status code field.
	ErrUnparseableResponse = errors.New("lambdaroute: response record has no status code")

	// ErrHandlerRequired is returned when a nil handler is registered.
	ErrHandlerRequired = errors.New("lambdaroute: handler is required")

	// ErrUnsupportedEventType is returned when a handler is registered for
	// an event type the routing table does not accept.
	ErrUnsupportedEventType = errors.New("lambdaroute: event type is not registrable")

	// ErrInvalidPrototype is returned when a handler's event parameter
	// cannot serve as a decode target.
	ErrInvalidPrototype = errors.New("lambdaroute: event parameter must be a struct type")

	// ErrNilResponse is returned when a typed handler returns neither a
	// response nor an error.
	ErrNilResponse = errors.New("lambdaroute: handler returned a nil response")

	// errNilProducer guards dependencies constructed without a producer.
	errNilProducer = errors.New("lambdaroute: dependency has no producer")
)

// ExistingRouteError reports a second registration of a (type, pattern)
// pair. Handler names the registration already holding the slot.
type ExistingRouteError struct {
	Type    events.Type
	Pattern string
	Handler string
}

func (e *ExistingRouteError) Error() string {
	return fmt.Sprintf("lambdaroute: route %q for event type %q is already registered by %s",
		e.Pattern, e.Type, e.Handler)
}

// InvalidRouteError reports that no registered pattern matched the key
// extracted from a dispatched record.
type InvalidRouteError struct {
	Type events.Type
	Key  string
}

func (e *InvalidRouteError) Error() string {
	return fmt.Sprintf("lambdaroute: no route for event type %q and event key %q", e.Type, e.Key)
}

// KeyMismatchError reports a typed handler invoked with a record whose
// key does not match the pattern it was registered under.
type KeyMismatchError struct {
	Key     string
	Pattern string
}

func (e *KeyMismatchError) Error() string {
	return fmt.Sprintf("lambdaroute: event key mismatch: %q does not match %q", e.Key, e.Pattern)
}

// ValidationError wraps a decode or schema failure for a record that
// structurally matched an event type.
type ValidationError struct {
	Type events.Type
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("lambdaroute: invalid %s record: %v", e.Type, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }
