package lambdaroute

import (
	"context"
	"encoding/json"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/bjaus/lambdaroute/events"
)

// ProxyFunc receives HTTP proxy records whole, together with the
// invocation context, and produces the raw response record. The
// httpadapter package builds one from any net/http handler.
type ProxyFunc func(ctx context.Context, record json.RawMessage) (json.RawMessage, error)

// Dispatcher routes raw Lambda records to registered handlers.
//
// Construct one with New, register handlers during startup, then hand
// Invoke to the Lambda runtime (or call Start). Registration is not safe
// for concurrent use; once registration is done, concurrent dispatch is.
type Dispatcher struct {
	routes *routeTable
	proxy  ProxyFunc
	logger *zap.Logger
	hooks  hooks
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithProxy sets the passthrough adapter that receives HTTP proxy
// records. A dispatcher holds at most one; the last one set wins.
func WithProxy(fn ProxyFunc) Option {
	return func(d *Dispatcher) { d.proxy = fn }
}

// WithLogger sets the structured logger. The default discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New returns an empty dispatcher ready for registration.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		routes: &routeTable{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetProxy replaces the passthrough adapter after construction.
func (d *Dispatcher) SetProxy(fn ProxyFunc) { d.proxy = fn }

// Dispatch resolves the record's logical type, routes it, and returns
// the raw response record.
//
// Proxy records are delegated whole to the passthrough adapter, which
// fails with ErrNoProxyConfigured when none is set. Every other type is
// routed by its extracted key; the bound handler receives the original
// raw record and re-parses internally, keeping the stored handler shape
// uniform. Resolution, routing, and handler errors propagate unchanged:
// no retries, no fallback routing.
func (d *Dispatcher) Dispatch(ctx context.Context, record json.RawMessage) (json.RawMessage, error) {
	ev, err := Resolve(record)
	if err != nil {
		return nil, err
	}
	typ, key := ev.Type(), ev.Key()
	d.logger.Info("resolved event type",
		zap.String("event_type", typ.String()),
		zap.String("event_key", key),
		zap.String("invocation_id", invocationID(ctx)),
	)
	ctx = d.hooks.resolve(ctx, typ, key)

	if typ == events.TypeAPIGateway {
		if d.proxy == nil {
			return nil, ErrNoProxyConfigured
		}
		d.logger.Debug("delegating proxy record")
		return d.run(ctx, typ, key, Invoker(d.proxy), record)
	}

	fn, err := d.routes.find(typ, key)
	if err != nil {
		return nil, err
	}
	return d.run(ctx, typ, key, fn, record)
}

// run invokes fn around the dispatch hooks and timing.
func (d *Dispatcher) run(ctx context.Context, typ events.Type, key string, fn Invoker, record json.RawMessage) (json.RawMessage, error) {
	d.hooks.dispatch(ctx, typ, key)
	start := time.Now()
	resp, err := fn(ctx, record)
	elapsed := time.Since(start)
	if err != nil {
		d.hooks.failure(ctx, typ, key, err, elapsed)
		d.logger.Debug("dispatch failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return nil, err
	}
	d.hooks.success(ctx, typ, key, elapsed)
	d.logger.Debug("dispatch complete", zap.Duration("elapsed", elapsed))
	return resp, nil
}

// Invoke is the Lambda entry point shape: hand it to lambda.Start, or
// call it directly in tests.
func (d *Dispatcher) Invoke(ctx context.Context, record json.RawMessage) (json.RawMessage, error) {
	return d.Dispatch(ctx, record)
}

// Start hands the dispatcher to the Lambda runtime and blocks.
func (d *Dispatcher) Start() {
	lambda.Start(d.Invoke)
}

// invocationID returns the Lambda request id when the context carries
// one, otherwise a fresh ULID so local runs still correlate.
func invocationID(ctx context.Context) string {
	if lc, ok := lambdacontext.FromContext(ctx); ok && lc.AwsRequestID != "" {
		return lc.AwsRequestID
	}
	return ulid.Make().String()
}
