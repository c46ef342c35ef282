package espn_client

import (
	"github.com/mcdev12/sportsfed/go/clients"
)

// EspnClient talks to the public ESPN site API. No API key is required,
// but the API is rate limited, so callers should cache aggressively.
type EspnClient struct {
	*clients.BaseClient
}

func NewEspnClient() *EspnClient {
	return NewEspnClientWithBaseURL(BaseURL)
}

// NewEspnClientWithBaseURL points the client at a different host, used by
// tests with fixture servers.
func NewEspnClientWithBaseURL(baseURL string) *EspnClient {
	client := &EspnClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}

	client.SetHeader(AcceptHeader, JsonContentType)

	return client
}
