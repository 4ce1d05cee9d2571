package events

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// S3RestoreEventData describes a completed Glacier restore.
type S3RestoreEventData struct {
	LifecycleRestorationExpiryTime time.Time `json:"lifecycleRestorationExpiryTime"`
	LifecycleRestoreStorageClass   string    `json:"lifecycleRestoreStorageClass"`
}

// S3GlacierEventData is present only on Glacier restore notifications.
type S3GlacierEventData struct {
	RestoreEventData S3RestoreEventData `json:"restoreEventData"`
}

// S3Identity identifies the principal behind a request.
type S3Identity struct {
	PrincipalID string `json:"principalId"`
}

// S3RequestParameters carries request metadata from the notification.
type S3RequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

// S3ResponseElements carries the request ids S3 stamped on the response.
type S3ResponseElements struct {
	RequestID string `json:"x-amz-request-id,omitempty"`
	ID2       string `json:"x-amz-id-2,omitempty"`
}

// S3Bucket identifies the bucket the notification concerns.
type S3Bucket struct {
	Name          string     `json:"name"`
	OwnerIdentity S3Identity `json:"ownerIdentity"`
	ARN           string     `json:"arn"`
}

func (b S3Bucket) Validate() error {
	return validation.ValidateStruct(&b,
		validation.Field(&b.Name, validation.Required),
		validation.Field(&b.ARN, validation.Required),
	)
}

// S3Object identifies the object the notification concerns.
type S3Object struct {
	Key       string   `json:"key"`
	Size      *float64 `json:"size,omitempty"`
	ETag      *string  `json:"eTag,omitempty"`
	Sequencer string   `json:"sequencer"`
	VersionID *string  `json:"versionId,omitempty"`
}

func (o S3Object) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Key, validation.Required),
	)
}

// S3Entity is the "s3" element of a record: the bucket/object pair plus
// notification configuration metadata.
type S3Entity struct {
	SchemaVersion   string   `json:"s3SchemaVersion"`
	ConfigurationID string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

func (s S3Entity) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Bucket, validation.Required),
		validation.Field(&s.Object, validation.Required),
	)
}

// S3Record is a single object notification inside an event batch.
type S3Record struct {
	EventVersion      string              `json:"eventVersion"`
	EventSource       string              `json:"eventSource"`
	AWSRegion         string              `json:"awsRegion"`
	EventTime         time.Time           `json:"eventTime"`
	EventName         string              `json:"eventName"`
	UserIdentity      S3Identity          `json:"userIdentity"`
	RequestParameters S3RequestParameters `json:"requestParameters"`
	ResponseElements  S3ResponseElements  `json:"responseElements"`
	S3                S3Entity            `json:"s3"`
	GlacierEventData  *S3GlacierEventData `json:"glacierEventData,omitempty"`
}

func (r S3Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EventSource, validation.Required, validation.In("aws:s3")),
		validation.Field(&r.AWSRegion, validation.Required),
		validation.Field(&r.EventTime, validation.Required),
		validation.Field(&r.EventName, validation.Required),
		validation.Field(&r.S3, validation.Required),
	)
}

// S3Event is an object-storage notification batch.
type S3Event struct {
	Records []S3Record `json:"Records"`
}

func (S3Event) Type() Type { return TypeS3 }

// EventName returns the first record's event name, e.g. "ObjectCreated:Put".
func (e S3Event) EventName() string {
	if len(e.Records) == 0 {
		return ""
	}
	return e.Records[0].EventName
}

// Key returns the event name.
func (e S3Event) Key() string { return e.EventName() }

func (e S3Event) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Records, validation.Required, validation.Length(1, 0)),
	)
}
