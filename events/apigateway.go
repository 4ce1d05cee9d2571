package events

import "encoding/json"

// APIGatewayEvent marks an HTTP proxy record. The dispatcher never parses
// proxy records; it hands the raw payload to the configured passthrough
// adapter whole, so this type only carries the bytes it was built from.
type APIGatewayEvent struct {
	Raw json.RawMessage
}

func (APIGatewayEvent) Type() Type { return TypeAPIGateway }

// Key is always empty; proxy records are not routed by key.
func (APIGatewayEvent) Key() string { return "" }
