// Package lambdaroute routes raw AWS Lambda event records to typed handlers.
//
// A Lambda function wired to several triggers receives queue batches,
// topic notifications, object-storage events, scheduled events, direct
// invocations, and HTTP proxy requests through a single entry point, all
// as untyped JSON. lambdaroute infers which kind of record arrived,
// parses and validates it, routes it by a per-type key (queue name,
// topic name, trigger, rule name, object event name), injects declared
// dependencies, and serializes the handler's response back into the raw
// shape the runtime expects.
//
// # Quick Start
//
// Define a payload and a handler for the event type you consume:
//
//	type Order struct {
//	    ID    string  `json:"id"`
//	    Total float64 `json:"total"`
//	}
//
//	func HandleOrder(ctx context.Context, e events.SQSEvent[events.JSONText[Order]], deps lambdaroute.Values) (*lambdaroute.Response, error) {
//	    order := e.Records[0].Body.Value
//	    // ... business logic ...
//	    return lambdaroute.NewResponse(200, map[string]any{"id": order.ID}), nil
//	}
//
// Create a dispatcher, register the handler under a key pattern, and hand
// the dispatcher to the Lambda runtime:
//
//	d := lambdaroute.New()
//
//	if _, err := lambdaroute.RegisterFunc(d, "order-queue", HandleOrder); err != nil {
//	    log.Fatal(err)
//	}
//
//	d.Start()
//
// # Event Type Resolution
//
// Incoming records carry no type tag, so the dispatcher infers the type
// structurally: an ordered list of recognizers checks cheap field
// signals ("direct_invocation" present, source == "aws.events",
// Records.0.Sns present, and so on) and the first match wins. Order is
// deliberate and fixed: specific signals come first and the API Gateway
// catch-all comes last, because a lone "pathParameters" field is the
// weakest signal of the set.
//
// Once a recognizer claims a record, its parser runs. A record that
// matches structurally but fails schema validation is a *ValidationError,
// not a fall-through: recognition and validation are separate verdicts.
// Records nothing claims fail with ErrUnknownEventType.
//
// Resolution is exposed directly as Resolve for callers that want the
// typed event without dispatching it.
//
// # Routing
//
// Handlers are registered under a (event type, key pattern) pair. The
// pattern is a regular expression anchored at the start of the key, so
// an exact name matches only itself and "ObjectCreated.*" matches a
// family of object events:
//
//	lambdaroute.RegisterFunc(d, "my-queue", handleQueue)          // SQS, exact queue
//	lambdaroute.RegisterFunc(d, "ObjectCreated.*", handleUpload)  // S3, event-name prefix
//
// Lookups walk entries in registration order and take the first match,
// so when several patterns could match a key, the earliest registration
// wins. Registering the same (type, pattern) twice fails with
// *ExistingRouteError naming the handler already holding the slot; the
// table is write-once and entries are never replaced or removed.
//
// # Typed and Raw Handlers
//
// Typed handlers declare the event shape they want, including payload
// specializations, and receive a parsed, validated event. The bound
// adapter re-checks at call time that the record's extracted key matches
// the registered pattern and fails with *KeyMismatchError before the
// handler body runs, so a handler invoked directly (the registration
// returns the bound Invoker) keeps the same guarantees it has under
// dispatch.
//
// Raw handlers skip all of that: the record goes in untouched and the
// returned bytes come back unchanged. Use them for passthrough or for
// shapes the schema types don't model:
//
//	lambdaroute.RegisterRaw(d, events.TypeSQS, "audit-.*",
//	    func(ctx context.Context, record json.RawMessage, deps lambdaroute.Values) (json.RawMessage, error) {
//	        return record, nil
//	    })
//
// # Dependencies
//
// A Dependency is a named value producer attached to a route. Producers
// run when the handler is invoked, not at registration, and by default
// the first produced value is memoized and shared across every route
// referencing the same Dependency instance:
//
//	db := lambdaroute.NewDependency(func() any { return openPool() })
//
//	lambdaroute.RegisterFunc(d, "order-queue", HandleOrder,
//	    lambdaroute.WithDependency("db", db))
//
// WithoutCache turns memoization off for per-call values. Sequence
// producers (NewDependencySeq) contribute exactly their first value and
// are never resumed; there is no release hook. Dependencies are flat:
// producers cannot declare dependencies of their own.
//
// # Responses
//
// Typed handlers return *Response. Record serializes it into the
// API-Gateway-compatible shape {isBase64Encoded, statusCode, headers,
// body} with the body JSON-encoded into a string and headers defaulting
// to a permissive CORS set. ParseResponse reads a raw record back and
// fails with ErrUnparseableResponse when the status code field is
// missing.
//
// # API Gateway Passthrough
//
// HTTP proxy records are never parsed here. When resolution identifies
// one, the dispatcher hands the whole record and context to the
// configured ProxyFunc and returns its result unchanged; without one,
// dispatch fails with ErrNoProxyConfigured. The httpadapter subpackage
// turns any net/http handler into a ProxyFunc:
//
//	d := lambdaroute.New(
//	    lambdaroute.WithProxy(httpadapter.Wrap(mux)),
//	)
//
// # Hooks and Logging
//
// Hooks observe the dispatch lifecycle without coupling the dispatcher
// to a metrics or tracing system:
//
//	d := lambdaroute.New(
//	    lambdaroute.WithOnResolve(func(ctx context.Context, typ events.Type, key string) context.Context {
//	        return tracing.Start(ctx, typ.String())
//	    }),
//	    lambdaroute.WithOnFailure(func(ctx context.Context, typ events.Type, key string, err error, elapsed time.Duration) {
//	        metrics.Incr("dispatch.error", "type:"+typ.String())
//	    }),
//	)
//
// Hooks observe; they cannot skip a record, swallow an error, or reroute
// a dispatch. Structured logging goes through a zap.Logger supplied with
// WithLogger and is silent by default.
//
// # Error Handling
//
// Every failure is terminal for the current dispatch and surfaces to the
// caller: ErrUnknownEventType, *ValidationError, *InvalidRouteError,
// ErrNoProxyConfigured, *KeyMismatchError, and whatever the handler
// itself returns. The dispatcher performs no retries and no fallback
// routing, and it never translates handler errors, so the runtime's own
// error path observes the true failure.
//
// # Thread Safety
//
// A Dispatcher is safe for concurrent dispatch after registration is
// complete. Register everything during startup, before the runtime
// begins delivering events; registration itself is not locked. Cached
// dependencies memoize under a once guard, so concurrent first
// resolutions are safe.
package lambdaroute
