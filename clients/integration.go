package clients

import (
	"context"
	"fmt"

	"github.com/reaich/cabreaich-common/models"
)

// IntegrationClient talks to the integration API.
type IntegrationClient struct {
	*BaseClient
}

// NewIntegrationClient creates a client for the integration API at baseURL.
func NewIntegrationClient(baseURL string, opts ...Option) *IntegrationClient {
	return &IntegrationClient{BaseClient: NewBaseClient(baseURL, opts...)}
}

// PostEvent sends a VAD event to the integration event endpoint and returns
// the acknowledgement payload.
func (c *IntegrationClient) PostEvent(ctx context.Context, event models.VADEventData) (map[string]interface{}, error) {
	raw, err := c.postJSON(ctx, "/integration/event", event)
	if err != nil {
		return nil, fmt.Errorf("posting %s event: %w", event.EventType, err)
	}

	var ack map[string]interface{}
	if err := decode(raw, &ack); err != nil {
		return nil, fmt.Errorf("posting %s event: %w", event.EventType, err)
	}
	return ack, nil
}
