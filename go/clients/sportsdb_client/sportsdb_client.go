package sportsdb_client

import (
	"context"
	"fmt"

	"github.com/mcdev12/sportsfed/go/clients"
)

type SportsDBClient struct {
	*clients.BaseClient
	apiKey string
}

func NewSportsDBClient(apiKey string) *SportsDBClient {
	return NewSportsDBClientWithBaseURL(BaseURL, apiKey)
}

// NewSportsDBClientWithBaseURL points the client at a different host, used
// by tests with fixture servers.
func NewSportsDBClientWithBaseURL(baseURL, apiKey string) *SportsDBClient {
	if apiKey == "" {
		apiKey = FreeTierKey
	}

	client := &SportsDBClient{
		BaseClient: clients.NewBaseClient(baseURL),
		apiKey:     apiKey,
	}

	client.SetHeader(JsonHeader, JsonContentType)

	return client
}

// Get overrides the base Get method to inject the API key path segment.
// TheSportsDB keys endpoints as /api/v1/json/{key}/{endpoint}.
func (c *SportsDBClient) Get(ctx context.Context, endpoint string) ([]byte, error) {
	endpointWithKey := fmt.Sprintf("/api/v1/json/%s/%s", c.apiKey, endpoint)

	return c.BaseClient.Get(ctx, endpointWithKey)
}
