package lambdaroute

import (
	"encoding/json"
	"fmt"

	"github.com/bjaus/lambdaroute/events"
	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

// source pairs an event type's structural predicate with its parser.
type source struct {
	typ   events.Type
	match Discriminator
	parse func(raw json.RawMessage) (events.Event, error)
}

// standardSources lists every recognized event type in resolution order.
// Order is a contract: most specific signal first, and the API Gateway
// predicate last because a lone "pathParameters" field is the weakest
// signal of the set.
var standardSources = []source{
	{
		typ:   events.TypeDirectInvocation,
		match: HasFields("direct_invocation"),
		parse: parseAs[events.DirectInvocationEvent[json.RawMessage]],
	},
	{
		typ:   events.TypeEventBridge,
		match: FieldEquals("source", "aws.events"),
		parse: parseAs[events.EventBridgeEvent[json.RawMessage]],
	},
	{
		typ:   events.TypeS3,
		match: HasFields("Records.0.s3"),
		parse: parseAs[events.S3Event],
	},
	{
		typ:   events.TypeSNS,
		match: HasFields("Records.0.Sns"),
		parse: parseAs[events.SNSEvent[string]],
	},
	{
		typ:   events.TypeSQS,
		match: FieldEquals("Records.0.eventSource", "aws:sqs"),
		parse: parseAs[events.SQSEvent[json.RawMessage]],
	},
	{
		typ:   events.TypeAPIGateway,
		match: HasFields("pathParameters"),
		parse: func(raw json.RawMessage) (events.Event, error) {
			return events.APIGatewayEvent{Raw: raw}, nil
		},
	},
}

// parseAs decodes raw into T and runs its schema validation.
func parseAs[T events.Event](raw json.RawMessage) (events.Event, error) {
	var ev T
	if err := jsoncodec.Unmarshal(raw, &ev); err != nil {
		return nil, &ValidationError{Type: ev.Type(), Err: err}
	}
	if v, ok := any(ev).(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return nil, &ValidationError{Type: ev.Type(), Err: err}
		}
	}
	return ev, nil
}

// Resolve infers the logical type of a raw record and parses it into the
// matching event shape. The first source whose predicate matches wins;
// a parse failure from that source surfaces as a *ValidationError rather
// than falling through to later sources. Records no source claims fail
// with ErrUnknownEventType.
func Resolve(raw json.RawMessage) (events.Event, error) {
	view, err := Inspect(raw)
	if err != nil {
		return nil, err
	}
	for _, src := range standardSources {
		if src.match.Match(view) {
			return src.parse(raw)
		}
	}
	return nil, fmt.Errorf("%w: cannot parse event %s", ErrUnknownEventType, snippet(raw))
}

// snippet truncates a record for error text.
func snippet(raw []byte) string {
	const max = 256
	if len(raw) > max {
		return string(raw[:max]) + "..."
	}
	return string(raw)
}
