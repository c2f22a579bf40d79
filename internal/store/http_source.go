package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hance08/wallet/internal/model"
	"github.com/hashicorp/go-cleanhttp"
)

type HTTPSource struct {
	url    string
	client *http.Client
}

// NewHTTPSource uses a cleanhttp client when client is nil.
func NewHTTPSource(url string, client *http.Client) *HTTPSource {
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	return &HTTPSource{url: url, client: client}
}

func (s *HTTPSource) Location() string {
	return s.url
}

func (s *HTTPSource) Load(ctx context.Context) (*model.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrSnapshotUnavailable, s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: GET %s: unexpected status %s", ErrSnapshotUnavailable, s.url, resp.Status)
	}

	doc, err := decodeDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotUnavailable, s.url, err)
	}
	return doc, nil
}
