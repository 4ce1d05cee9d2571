package lambdaroute

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/bjaus/lambdaroute/events"
)

// Canonical records used across the resolution and dispatch tests. Each
// one both matches its type's structural predicate and passes schema
// validation.

const directFixture = `{
	"direct_invocation": {
		"trigger": "my-trigger",
		"body": {"action": "sync"}
	},
	"time_stamp": "2021/04/08 13:18:48",
	"source": "ops-script"
}`

const eventBridgeFixture = `{
	"version": "0",
	"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718",
	"detail-type": "Scheduled Event",
	"source": "aws.events",
	"account": "123456789012",
	"time": "2021-04-08T13:18:48Z",
	"region": "us-east-1",
	"resources": ["arn:aws:events:us-east-1:123456789012:rule/my-schedule"],
	"detail": {"job": "cleanup"}
}`

const s3Fixture = `{
	"Records": [
		{
			"eventVersion": "2.1",
			"eventSource": "aws:s3",
			"awsRegion": "us-east-1",
			"eventTime": "2021-04-08T13:18:48.000Z",
			"eventName": "ObjectCreated:Put",
			"userIdentity": {"principalId": "AWS:EXAMPLE"},
			"requestParameters": {"sourceIPAddress": "205.255.255.255"},
			"responseElements": {"x-amz-request-id": "D82B88E5F771F645"},
			"s3": {
				"s3SchemaVersion": "1.0",
				"configurationId": "cfg",
				"bucket": {"name": "my-bucket", "ownerIdentity": {"principalId": "p"}, "arn": "arn:aws:s3:::my-bucket"},
				"object": {"key": "reports/report.pdf", "size": 1024, "sequencer": "01"}
			}
		}
	]
}`

const snsFixture = `{
	"Records": [
		{
			"EventSource": "aws:sns",
			"EventVersion": "1.0",
			"EventSubscriptionArn": "arn:aws:sns:us-east-1:123456789012:my-topic:6e13f59e-3b4a-4b0f-a6a2-70f9c72c9f9a",
			"Sns": {
				"Type": "Notification",
				"MessageId": "95df01b4-ee98-5cb9-9903-4c221d41eb5e",
				"TopicArn": "arn:aws:sns:us-east-1:123456789012:my-topic",
				"Message": "{\"state\": \"ok\"}",
				"Timestamp": "2021-04-08T13:18:48.000Z",
				"SignatureVersion": "1",
				"SigningCertUrl": "https://sns.us-east-1.amazonaws.com/cert.pem",
				"UnsubscribeUrl": "https://sns.us-east-1.amazonaws.com/?Action=Unsubscribe"
			}
		}
	]
}`

const sqsFixture = `{
	"Records": [
		{
			"messageId": "059f36b4-87a3-44ab-83d2-661975830a7d",
			"receiptHandle": "AQEBwJnKyrHigUMZj6rYigCgxlaS3SLy0a",
			"body": "{\"id\": 42}",
			"attributes": {
				"ApproximateReceiveCount": "1",
				"SentTimestamp": "1634638736226",
				"SenderId": "AIDAIENQZJOLO23YVJ4VO",
				"ApproximateFirstReceiveTimestamp": "1634638736230"
			},
			"md5OfBody": "e4e68fb7bd0e697a0ae8f1bb342846b3",
			"eventSource": "aws:sqs",
			"eventSourceARN": "arn:aws:sqs:us-east-2:123456789012:my-queue",
			"awsRegion": "us-east-2"
		}
	]
}`

const apiGatewayFixture = `{
	"resource": "/orders/{id}",
	"path": "/orders/42",
	"httpMethod": "GET",
	"headers": {"Host": "api.example.com", "Accept": "application/json"},
	"queryStringParameters": {"expand": "items"},
	"pathParameters": {"id": "42"},
	"requestContext": {
		"requestId": "c6af9ac6-7b61-11e6-9a41-93e8deadbeef",
		"identity": {"sourceIp": "205.255.255.255"}
	},
	"body": null,
	"isBase64Encoded": false
}`

func TestResolve(t *testing.T) {
	t.Run("classifies canonical records", func(t *testing.T) {
		tests := map[string]struct {
			raw string
			typ events.Type
			key string
		}{
			"direct invocation": {directFixture, events.TypeDirectInvocation, "my-trigger"},
			"event bridge":      {eventBridgeFixture, events.TypeEventBridge, "my-schedule"},
			"s3":                {s3Fixture, events.TypeS3, "ObjectCreated:Put"},
			"sns":               {snsFixture, events.TypeSNS, "my-topic"},
			"sqs":               {sqsFixture, events.TypeSQS, "my-queue"},
			"api gateway":       {apiGatewayFixture, events.TypeAPIGateway, ""},
		}

		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				ev, err := Resolve([]byte(tt.raw))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if ev.Type() != tt.typ {
					t.Errorf("Type() = %q, want %q", ev.Type(), tt.typ)
				}
				if ev.Key() != tt.key {
					t.Errorf("Key() = %q, want %q", ev.Key(), tt.key)
				}
			})
		}
	})

	t.Run("returns the canonical event shapes", func(t *testing.T) {
		ev, err := Resolve([]byte(sqsFixture))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sqs, ok := ev.(events.SQSEvent[json.RawMessage])
		if !ok {
			t.Fatalf("event = %T, want SQSEvent[json.RawMessage]", ev)
		}
		if len(sqs.Records) != 1 {
			t.Errorf("records = %d, want 1", len(sqs.Records))
		}

		ev, err = Resolve([]byte(apiGatewayFixture))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		proxy, ok := ev.(events.APIGatewayEvent)
		if !ok {
			t.Fatalf("event = %T, want APIGatewayEvent", ev)
		}
		if string(proxy.Raw) != apiGatewayFixture {
			t.Error("proxy record was not preserved verbatim")
		}
	})

	t.Run("proxy predicate is checked last", func(t *testing.T) {
		// A record carrying both a specific signal and the pathParameters
		// field classifies by the specific signal.
		raw := []byte(`{
			"direct_invocation": {"trigger": "t", "body": {}},
			"time_stamp": "2021/04/08 13:18:48",
			"source": "ops",
			"pathParameters": {"id": "42"}
		}`)

		ev, err := Resolve(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ev.Type() != events.TypeDirectInvocation {
			t.Errorf("Type() = %q, want %q", ev.Type(), events.TypeDirectInvocation)
		}
	})

	t.Run("structural match with invalid schema is a validation error", func(t *testing.T) {
		// Looks like a queue batch, but the record is missing everything a
		// real one carries. It must not fall through to another type.
		raw := []byte(`{"Records": [{"eventSource": "aws:sqs"}]}`)

		_, err := Resolve(raw)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if verr.Type != events.TypeSQS {
			t.Errorf("ValidationError.Type = %q, want %q", verr.Type, events.TypeSQS)
		}
	})

	t.Run("event bridge with bad account is a validation error", func(t *testing.T) {
		raw := []byte(`{
			"version": "0",
			"id": "6a7e8feb-b491-4cf7-a9f1-bf3703467718",
			"detail-type": "Scheduled Event",
			"source": "aws.events",
			"account": "1234",
			"time": "2021-04-08T13:18:48Z",
			"region": "us-east-1",
			"resources": ["arn:aws:events:us-east-1:123456789012:rule/my-schedule"],
			"detail": {}
		}`)

		_, err := Resolve(raw)

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("error = %v, want *ValidationError", err)
		}
		if verr.Type != events.TypeEventBridge {
			t.Errorf("ValidationError.Type = %q, want %q", verr.Type, events.TypeEventBridge)
		}
	})

	t.Run("unclaimed record fails with unknown event type", func(t *testing.T) {
		_, err := Resolve([]byte(`{"foo": "bar"}`))

		if !errors.Is(err, ErrUnknownEventType) {
			t.Errorf("error = %v, want ErrUnknownEventType", err)
		}
	})

	t.Run("malformed JSON fails before classification", func(t *testing.T) {
		_, err := Resolve([]byte(`{not json`))

		if !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("error = %v, want ErrInvalidJSON", err)
		}
	})
}
