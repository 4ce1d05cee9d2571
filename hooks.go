package lambdaroute

import (
	"context"
	"time"

	"github.com/bjaus/lambdaroute/events"
)

// Hooks observe the dispatch lifecycle. They never alter control flow:
// errors propagate to the caller whether or not a hook saw them, and a
// hook cannot skip, retry, or reroute a dispatch.

// OnResolveFunc is called after type resolution succeeds and before
// routing. The returned context is used for the rest of the dispatch, so
// the hook can attach correlation values; returning nil keeps the
// current context.
type OnResolveFunc func(ctx context.Context, typ events.Type, key string) context.Context

// OnDispatchFunc is called just before the bound handler (or the proxy
// adapter) executes.
type OnDispatchFunc func(ctx context.Context, typ events.Type, key string)

// OnSuccessFunc is called after the handler completes successfully.
type OnSuccessFunc func(ctx context.Context, typ events.Type, key string, elapsed time.Duration)

// OnFailureFunc is called after the handler fails. The error still
// propagates unchanged.
type OnFailureFunc func(ctx context.Context, typ events.Type, key string, err error, elapsed time.Duration)

// hooks holds all configured hook functions.
type hooks struct {
	onResolve  []OnResolveFunc
	onDispatch []OnDispatchFunc
	onSuccess  []OnSuccessFunc
	onFailure  []OnFailureFunc
}

func (h hooks) resolve(ctx context.Context, typ events.Type, key string) context.Context {
	for _, fn := range h.onResolve {
		if next := fn(ctx, typ, key); next != nil {
			ctx = next
		}
	}
	return ctx
}

func (h hooks) dispatch(ctx context.Context, typ events.Type, key string) {
	for _, fn := range h.onDispatch {
		fn(ctx, typ, key)
	}
}

func (h hooks) success(ctx context.Context, typ events.Type, key string, elapsed time.Duration) {
	for _, fn := range h.onSuccess {
		fn(ctx, typ, key, elapsed)
	}
}

func (h hooks) failure(ctx context.Context, typ events.Type, key string, err error, elapsed time.Duration) {
	for _, fn := range h.onFailure {
		fn(ctx, typ, key, err, elapsed)
	}
}

// WithOnResolve adds a resolution hook. Multiple hooks run in order with
// the context chaining through each.
//
// Example:
//
//	lambdaroute.WithOnResolve(func(ctx context.Context, typ events.Type, key string) context.Context {
//	    return context.WithValue(ctx, traceKey, typ.String()+"/"+key)
//	})
func WithOnResolve(fn OnResolveFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onResolve = append(d.hooks.onResolve, fn)
	}
}

// WithOnDispatch adds a pre-invocation hook. Multiple hooks run in order.
func WithOnDispatch(fn OnDispatchFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onDispatch = append(d.hooks.onDispatch, fn)
	}
}

// WithOnSuccess adds a hook called after the handler completes.
// Multiple hooks run in order.
//
// Example:
//
//	lambdaroute.WithOnSuccess(func(ctx context.Context, typ events.Type, key string, elapsed time.Duration) {
//	    logger.Info("handled", zap.String("key", key), zap.Duration("elapsed", elapsed))
//	})
func WithOnSuccess(fn OnSuccessFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onSuccess = append(d.hooks.onSuccess, fn)
	}
}

// WithOnFailure adds a hook called after the handler fails. Multiple
// hooks run in order; the error propagates regardless.
func WithOnFailure(fn OnFailureFunc) Option {
	return func(d *Dispatcher) {
		d.hooks.onFailure = append(d.hooks.onFailure, fn)
	}
}
