package events

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// SQSMessageAttribute is one user-supplied attribute on a queue message.
type SQSMessageAttribute struct {
	StringValue      *string  `json:"stringValue"`
	BinaryValue      *string  `json:"binaryValue"`
	StringListValues []string `json:"stringListValues,omitempty"`
	BinaryListValues []string `json:"binaryListValues,omitempty"`
	DataType         string   `json:"dataType"`
}

// SQSRecordAttributes are the system attributes SQS stamps on each record.
type SQSRecordAttributes struct {
	ApproximateReceiveCount          string  `json:"ApproximateReceiveCount"`
	ApproximateFirstReceiveTimestamp Millis  `json:"ApproximateFirstReceiveTimestamp"`
	MessageDeduplicationID           *string `json:"MessageDeduplicationId,omitempty"`
	MessageGroupID                   *string `json:"MessageGroupId,omitempty"`
	SenderID                         string  `json:"SenderId"`
	SentTimestamp                    Millis  `json:"SentTimestamp"`
	SequenceNumber                   *string `json:"SequenceNumber,omitempty"`
	AWSTraceHeader                   *string `json:"AWSTraceHeader,omitempty"`
}

func (a SQSRecordAttributes) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.ApproximateReceiveCount, validation.Required),
		validation.Field(&a.SenderID, validation.Required),
		validation.Field(&a.SentTimestamp, validation.Required),
	)
}

// SQSRecord is a single queue message inside an event batch.
type SQSRecord[M any] struct {
	MessageID              string                         `json:"messageId"`
	ReceiptHandle          string                         `json:"receiptHandle"`
	Body                   M                              `json:"body"`
	Attributes             SQSRecordAttributes            `json:"attributes"`
	MessageAttributes      map[string]SQSMessageAttribute `json:"messageAttributes,omitempty"`
	MD5OfBody              string                         `json:"md5OfBody"`
	MD5OfMessageAttributes *string                        `json:"md5OfMessageAttributes,omitempty"`
	EventSource            string                         `json:"eventSource"`
	EventSourceARN         string                         `json:"eventSourceARN"`
	AWSRegion              string                         `json:"awsRegion"`
}

func (r SQSRecord[M]) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.MessageID, validation.Required),
		validation.Field(&r.ReceiptHandle, validation.Required),
		validation.Field(&r.Attributes),
		validation.Field(&r.MD5OfBody, validation.Required),
		validation.Field(&r.EventSource, validation.Required, validation.In("aws:sqs")),
		validation.Field(&r.EventSourceARN, validation.Required),
		validation.Field(&r.AWSRegion, validation.Required),
	)
}

// SQSEvent is a batch of queue messages. M is the body payload type:
// string bodies pass through as-is, and JSONText[T] decodes JSON carried
// inside the body string.
type SQSEvent[M any] struct {
	Records []SQSRecord[M] `json:"Records"`
}

func (SQSEvent[M]) Type() Type { return TypeSQS }

// QueueName returns the queue name, the final segment of the first
// record's source ARN.
func (e SQSEvent[M]) QueueName() string {
	if len(e.Records) == 0 {
		return ""
	}
	arn := e.Records[0].EventSourceARN
	return arn[strings.LastIndex(arn, ":")+1:]
}

// Key returns the queue name.
func (e SQSEvent[M]) Key() string { return e.QueueName() }

func (e SQSEvent[M]) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Records, validation.Required, validation.Length(1, 0)),
	)
}
