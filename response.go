package lambdaroute

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/bjaus/lambdaroute/internal/jsoncodec"
)

// defaultHeaders is the permissive CORS set applied when a response does
// not set its own headers.
func defaultHeaders() map[string]any {
	return map[string]any{
		"Access-Control-Allow-Origin":      "*",
		"Access-Control-Allow-Headers":     "*",
		"Access-Control-Allow-Credentials": true,
		"Content-Type":                     "application/json",
		"X-Requested-With":                 "*",
	}
}

// Response is what typed handlers return. Body may be any JSON-encodable
// value; it is serialized into the record's body string. A nil Headers
// map gets the default CORS set.
type Response struct {
	StatusCode int
	Body       any
	Headers    map[string]any
}

// NewResponse returns a response carrying status and body with default
// headers.
func NewResponse(status int, body any) *Response {
	return &Response{StatusCode: status, Body: body}
}

type responseRecord struct {
	IsBase64Encoded bool           `json:"isBase64Encoded"`
	StatusCode      int            `json:"statusCode"`
	Headers         map[string]any `json:"headers"`
	Body            string         `json:"body"`
}

// Record serializes the response into the raw shape the Lambda runtime
// expects. Bodies are JSON-encoded into a string payload; a nil body
// produces an empty string.
func (r *Response) Record() (json.RawMessage, error) {
	rec := responseRecord{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
	}
	if rec.Headers == nil {
		rec.Headers = defaultHeaders()
	}
	if r.Body != nil {
		body, err := jsoncodec.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("lambdaroute: encode response body: %w", err)
		}
		rec.Body = string(body)
	}
	return jsoncodec.Marshal(rec)
}

// ParseResponse reads a raw record back into a Response. The body comes
// back as the raw string payload. Records that are not JSON objects fail
// outright; records without a status code fail with
// ErrUnparseableResponse. Numeric-string status codes are accepted.
func ParseResponse(raw json.RawMessage) (*Response, error) {
	parsed := gjson.ParseBytes(raw)
	if !gjson.ValidBytes(raw) || !parsed.IsObject() {
		return nil, fmt.Errorf("lambdaroute: response record must be a JSON object")
	}
	status := parsed.Get("statusCode")
	if !status.Exists() {
		return nil, ErrUnparseableResponse
	}
	resp := &Response{StatusCode: int(status.Int())}
	if body := parsed.Get("body"); body.Exists() && body.String() != "" {
		resp.Body = body.String()
	}
	if headers := parsed.Get("headers"); headers.Exists() && headers.IsObject() {
		var h map[string]any
		if err := jsoncodec.Unmarshal([]byte(headers.Raw), &h); err != nil {
			return nil, fmt.Errorf("lambdaroute: decode response headers: %w", err)
		}
		resp.Headers = h
	}
	return resp, nil
}
