package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
)

// MetricsClient covers /metrics/overview.
type MetricsClient struct {
	client *Client
}

var _ service.MetricsAPI = (*MetricsClient)(nil)

// NewMetricsClient is the constructor for MetricsClient.
func NewMetricsClient(client *Client) *MetricsClient {
	return &MetricsClient{client: client}
}

// Overview returns the dashboard summary.
func (m *MetricsClient) Overview(ctx context.Context) (*entity.MetricsOverview, error) {
	res, err := m.client.Get(ctx, "/metrics/overview", nil)
	if err != nil {
		return nil, err
	}

	overview := parseMetricsOverview(res.JSON())

	return &overview, nil
}
