package lambdaroute

import (
	"fmt"
	"reflect"
	"regexp"
	"runtime"

	"github.com/bjaus/lambdaroute/events"
)

// registrable is the set of event types the routing table accepts. Proxy
// records go to the passthrough adapter, never the table.
var registrable = map[events.Type]bool{
	events.TypeDirectInvocation: true,
	events.TypeEventBridge:      true,
	events.TypeSQS:              true,
	events.TypeSNS:              true,
	events.TypeS3:               true,
}

// routeEntry is one registered (type, pattern) slot. Entries live in a
// slice so lookup walks them in registration order.
type routeEntry struct {
	typ     events.Type
	pattern string
	re      *regexp.Regexp
	name    string
	fn      Invoker
}

// routeTable is the write-once routing table: populated during startup
// registration, read-only during dispatch, entries never removed.
// Registration is not safe for concurrent use.
type routeTable struct {
	entries []routeEntry
}

func (t *routeTable) register(typ events.Type, pattern string, re *regexp.Regexp, name string, fn Invoker) error {
	if !registrable[typ] {
		return fmt.Errorf("%w: %q", ErrUnsupportedEventType, typ)
	}
	for _, e := range t.entries {
		if e.typ == typ && e.pattern == pattern {
			return &ExistingRouteError{Type: typ, Pattern: pattern, Handler: e.name}
		}
	}
	t.entries = append(t.entries, routeEntry{typ: typ, pattern: pattern, re: re, name: name, fn: fn})
	return nil
}

// find returns the first entry, in registration order, whose pattern
// matches key for the given type. First registered wins when several
// patterns could match.
func (t *routeTable) find(typ events.Type, key string) (Invoker, error) {
	for _, e := range t.entries {
		if e.typ != typ {
			continue
		}
		if e.re.MatchString(key) {
			return e.fn, nil
		}
	}
	return nil, &InvalidRouteError{Type: typ, Key: key}
}

// compileKeyPattern anchors pattern at the start of the key. Trailing
// content is allowed: an exact name matches only itself, while a prefix
// like "ObjectCreated.*" matches a whole family of keys.
func compileKeyPattern(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return nil, fmt.Errorf("lambdaroute: invalid key pattern %q: %w", pattern, err)
	}
	return re, nil
}

// handlerName derives a diagnostic name for a handler: the function
// symbol for funcs, the concrete type otherwise.
func handlerName(h any) string {
	v := reflect.ValueOf(h)
	if v.Kind() == reflect.Func {
		if fn := runtime.FuncForPC(v.Pointer()); fn != nil {
			return fn.Name()
		}
	}
	return fmt.Sprintf("%T", h)
}
