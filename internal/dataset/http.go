package dataset

import (
	"context"
	"fmt"

	"resty.dev/v3"

	"github.com/Nixie-Tech-LLC/biblemind/internal/reading"
)

// HTTPSource downloads a JSON export of the dataset from a URL.
type HTTPSource struct {
	client *resty.Client
	url    string
}

func NewHTTPSource(url string) *HTTPSource {
	client := resty.New()
	client.SetHeader("Accept", "application/json")
	return &HTTPSource{client: client, url: url}
}

func (hs *HTTPSource) Fetch(ctx context.Context) ([]reading.Record, error) {
	response, err := hs.client.R().
		SetContext(ctx).
		Get(hs.url)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	if response.IsError() {
		return nil, fmt.Errorf("fetch dataset: response error %d", response.StatusCode())
	}
	return Decode([]byte(response.String()))
}

func (hs *HTTPSource) Close() error {
	return hs.client.Close()
}
