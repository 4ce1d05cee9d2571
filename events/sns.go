package events

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SNSMessageAttribute is one attribute attached to a published message.
type SNSMessageAttribute struct {
	Type  string `json:"Type"`
	Value string `json:"Value"`
}

// SNSMessage is the notification payload inside an SNS record.
type SNSMessage[M any] struct {
	Type              string                         `json:"Type"`
	MessageID         string                         `json:"MessageId"`
	TopicARN          string                         `json:"TopicArn"`
	Subject           *string                        `json:"Subject,omitempty"`
	Message           JSONText[M]                    `json:"Message"`
	Timestamp         time.Time                      `json:"Timestamp"`
	SignatureVersion  string                         `json:"SignatureVersion"`
	Signature         string                         `json:"Signature"`
	SigningCertURL    string                         `json:"SigningCertUrl"`
	UnsubscribeURL    string                         `json:"UnsubscribeUrl"`
	MessageAttributes map[string]SNSMessageAttribute `json:"MessageAttributes,omitempty"`
}

func (m SNSMessage[M]) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Type, validation.Required, validation.In("Notification")),
		validation.Field(&m.MessageID, validation.Required),
		validation.Field(&m.TopicARN, validation.Required),
		validation.Field(&m.Timestamp, validation.Required),
		validation.Field(&m.SignatureVersion, validation.Required),
		validation.Field(&m.SigningCertURL, validation.Required, is.URL),
		validation.Field(&m.UnsubscribeURL, validation.Required, is.URL),
	)
}

// SNSRecord wraps one notification delivered to the function.
type SNSRecord[M any] struct {
	EventSource          string        `json:"EventSource"`
	EventVersion         string        `json:"EventVersion"`
	EventSubscriptionARN string        `json:"EventSubscriptionArn,omitempty"`
	SNS                  SNSMessage[M] `json:"Sns"`
}

func (r SNSRecord[M]) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventSource, validation.Required, validation.In("aws:sns")),
		validation.Field(&r.EventVersion, validation.Required),
		validation.Field(&r.SNS, validation.Required),
	)
}

// SNSEvent is a topic notification batch. M is the embedded message
// payload type; see JSONText for how the double encoding is handled.
type SNSEvent[M any] struct {
	Records []SNSRecord[M] `json:"Records"`
}

func (SNSEvent[M]) Type() Type { return TypeSNS }

// TopicName returns the topic name, the final segment of the first
// record's topic ARN.
func (e SNSEvent[M]) TopicName() string {
	if len(e.Records) == 0 {
		return ""
	}
	arn := e.Records[0].SNS.TopicARN
	return arn[strings.LastIndex(arn, ":")+1:]
}

// Key returns the topic name.
func (e SNSEvent[M]) Key() string { return e.TopicName() }

func (e SNSEvent[M]) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Records, validation.Required, validation.Length(1, 0)),
	)
}
