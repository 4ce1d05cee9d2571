package lambdaroute

import (
	"fmt"
	"iter"
	"sync"
)

// Values carries resolved dependency values into a handler call, keyed by
// the name each dependency was registered under.
type Values map[string]any

// Dependency is a named value producer attached to a route at
// registration time. By default the first resolved value is memoized on
// the Dependency itself, so a single instance shared by several routes
// produces exactly once; WithoutCache makes the producer run on every
// call instead.
//
// Dependencies are flat: a producer may not declare dependencies of its
// own. Producer panics are not recovered.
type Dependency struct {
	producer func() any
	cache    bool

	once  sync.Once
	value any
}

// DependencyOption configures a Dependency.
type DependencyOption func(*Dependency)

// WithoutCache disables memoization so the producer runs on every call.
func WithoutCache() DependencyOption {
	return func(d *Dependency) { d.cache = false }
}

// NewDependency builds a dependency from a plain producer function.
func NewDependency(producer func() any, opts ...DependencyOption) *Dependency {
	d := &Dependency{producer: producer, cache: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// NewDependencySeq builds a dependency from a sequence producer. Exactly
// the first value is taken; the sequence is never resumed and no release
// hook runs. An empty sequence yields nil.
func NewDependencySeq(seq iter.Seq[any], opts ...DependencyOption) *Dependency {
	if seq == nil {
		return NewDependency(nil, opts...)
	}
	return NewDependency(func() any {
		for v := range seq {
			return v
		}
		return nil
	}, opts...)
}

// resolve returns the dependency's value for one handler call. Cached
// dependencies produce under a sync.Once so concurrent first calls are
// safe.
func (d *Dependency) resolve() (any, error) {
	if d.producer == nil {
		return nil, errNilProducer
	}
	if !d.cache {
		return d.producer(), nil
	}
	d.once.Do(func() { d.value = d.producer() })
	return d.value, nil
}

// resolveValues evaluates every dependency declared on a route for one
// call. Order is unspecified.
func resolveValues(deps map[string]*Dependency) (Values, error) {
	if len(deps) == 0 {
		return nil, nil
	}
	values := make(Values, len(deps))
	for name, dep := range deps {
		v, err := dep.resolve()
		if err != nil {
			return nil, fmt.Errorf("resolve dependency %q: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}
