// Package events defines the Lambda event shapes the dispatcher
// recognizes: direct invocations, EventBridge events, SQS batches, SNS
// notifications, S3 object notifications, and API Gateway proxy records.
//
// Every shape satisfies Event, which ties a parsed record to its logical
// Type tag and exposes the routing key (queue name, topic name, trigger,
// rule name, or object event name). Shapes that carry a caller-defined
// payload are generic over it, so a handler can narrow the payload to a
// concrete struct while the dispatcher works against json.RawMessage.
package events

// Type tags one logical kind of event. Tags are stable identifiers used
// in routing, errors, and logs; they are not derived from Go type names.
type Type string

const (
	TypeDirectInvocation Type = "direct-invocation"
	TypeEventBridge      Type = "event-bridge"
	TypeSQS              Type = "sqs"
	TypeSNS              Type = "sns"
	TypeS3               Type = "s3"
	TypeAPIGateway       Type = "api-gateway"
)

func (t Type) String() string { return string(t) }

// Event is the contract every recognized event shape satisfies.
type Event interface {
	// Type reports the logical kind of the event.
	Type() Type

	// Key returns the routing sub-key extracted from the parsed record:
	// the trigger, rule, queue, topic, or object event name.
	Key() string
}
