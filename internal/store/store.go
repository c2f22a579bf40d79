package store

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hance08/wallet/internal/model"
)

// NewSource picks an HTTP source for http(s) URLs and a file source otherwise.
func NewSource(location string) (Source, error) {
	if location == "" {
		return nil, fmt.Errorf("snapshot source is not configured")
	}

	lower := strings.ToLower(location)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTPSource(location, nil), nil
	}

	return NewFileSource(strings.TrimPrefix(location, "file://"))
}

func decodeDocument(r io.Reader) (*model.Document, error) {
	var doc model.Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &doc, nil
}
