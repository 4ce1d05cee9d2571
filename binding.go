package lambdaroute

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"regexp"

	"github.com/bjaus/lambdaroute/events"
	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

// Invoker is the uniform raw-in/raw-out shape the routing table stores.
// Registration returns the bound Invoker so a handler stays directly
// invocable and testable outside the dispatcher.
type Invoker func(ctx context.Context, record json.RawMessage) (json.RawMessage, error)

// Handler processes a typed event. The type parameter fixes which event
// type the route serves; a specialization such as SQSEvent[Order] narrows
// the payload without changing the route's logical type.
type Handler[T events.Event] interface {
	Handle(ctx context.Context, event T, deps Values) (*Response, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[T events.Event] func(ctx context.Context, event T, deps Values) (*Response, error)

// Handle calls f.
func (f HandlerFunc[T]) Handle(ctx context.Context, event T, deps Values) (*Response, error) {
	return f(ctx, event, deps)
}

// RawHandler processes a record without parsing, validation, or key
// enforcement. Dependencies are still resolved and injected.
type RawHandler func(ctx context.Context, record json.RawMessage, deps Values) (json.RawMessage, error)

// RouteOption configures one registration.
type RouteOption func(*routeConfig)

type routeConfig struct {
	name string
	deps map[string]*Dependency
}

// WithDependency attaches a named dependency to the route; the resolved
// value reaches the handler in its Values under that name.
func WithDependency(name string, dep *Dependency) RouteOption {
	return func(c *routeConfig) {
		if c.deps == nil {
			c.deps = make(map[string]*Dependency)
		}
		c.deps[name] = dep
	}
}

// WithName overrides the diagnostic handler name recorded in the table.
func WithName(name string) RouteOption {
	return func(c *routeConfig) { c.name = name }
}

func applyRouteOptions(h any, opts []RouteOption) routeConfig {
	cfg := routeConfig{name: handlerName(h)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Register binds a typed handler to (T's event type, pattern) and adds it
// to d's routing table. The returned Invoker parses and validates the
// record, enforces the key pattern, resolves dependencies, invokes h, and
// serializes its response.
func Register[T events.Event](d *Dispatcher, pattern string, h Handler[T], opts ...RouteOption) (Invoker, error) {
	typ, err := validateHandler[T](h)
	if err != nil {
		return nil, err
	}
	re, err := compileKeyPattern(pattern)
	if err != nil {
		return nil, err
	}
	cfg := applyRouteOptions(h, opts)
	inv := bindTyped(h, typ, re, pattern, cfg.deps)
	if err := d.routes.register(typ, pattern, re, cfg.name, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// RegisterFunc is Register for a bare function.
func RegisterFunc[T events.Event](d *Dispatcher, pattern string, fn func(ctx context.Context, event T, deps Values) (*Response, error), opts ...RouteOption) (Invoker, error) {
	if fn == nil {
		return nil, ErrHandlerRequired
	}
	return Register[T](d, pattern, HandlerFunc[T](fn), opts...)
}

// RegisterRaw binds a raw handler to (typ, pattern). The record reaches h
// unparsed and its return travels back unchanged.
func RegisterRaw(d *Dispatcher, typ events.Type, pattern string, h RawHandler, opts ...RouteOption) (Invoker, error) {
	if h == nil {
		return nil, ErrHandlerRequired
	}
	re, err := compileKeyPattern(pattern)
	if err != nil {
		return nil, err
	}
	cfg := applyRouteOptions(h, opts)
	inv := bindRaw(h, cfg.deps)
	if err := d.routes.register(typ, pattern, re, cfg.name, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

// validateHandler runs the registration-time checks left to the runtime
// after the type system has had its say: the handler must exist, T must
// be a plain struct the decoder can fill, and T's type tag must be
// registrable. This runs once per registration, never per call.
func validateHandler[T events.Event](h Handler[T]) (events.Type, error) {
	if h == nil {
		return "", ErrHandlerRequired
	}
	if v := reflect.ValueOf(h); v.Kind() == reflect.Func && v.IsNil() {
		return "", ErrHandlerRequired
	}
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return "", fmt.Errorf("%w: %s", ErrInvalidPrototype, rt)
	}
	var zero T
	typ := zero.Type()
	if !registrable[typ] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEventType, typ)
	}
	return typ, nil
}

// bindTyped builds the typed adapter: parse into the handler's own event
// type, validate, enforce the key pattern, inject dependencies, invoke,
// serialize. The key check runs before the user function body.
func bindTyped[T events.Event](h Handler[T], typ events.Type, re *regexp.Regexp, pattern string, deps map[string]*Dependency) Invoker {
	return func(ctx context.Context, record json.RawMessage) (json.RawMessage, error) {
		var ev T
		if err := jsoncodec.Unmarshal(record, &ev); err != nil {
			return nil, &ValidationError{Type: typ, Err: err}
		}
		if v, ok := any(ev).(interface{ Validate() error }); ok {
			if err := v.Validate(); err != nil {
				return nil, &ValidationError{Type: typ, Err: err}
			}
		}
		if key := ev.Key(); !re.MatchString(key) {
			return nil, &KeyMismatchError{Key: key, Pattern: pattern}
		}
		values, err := resolveValues(deps)
		if err != nil {
			return nil, err
		}
		resp, err := h.Handle(ctx, ev, values)
		if err != nil {
			return nil, err
		}
		if resp == nil {
			return nil, ErrNilResponse
		}
		return resp.Record()
	}
}

// bindRaw builds the passthrough adapter: dependencies in, record
// untouched.
func bindRaw(h RawHandler, deps map[string]*Dependency) Invoker {
	return func(ctx context.Context, record json.RawMessage) (json.RawMessage, error) {
		values, err := resolveValues(deps)
		if err != nil {
			return nil, err
		}
		return h(ctx, record, values)
	}
}
