package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/wallet/internal/model"
)

type FileSource struct {
	path string
}

func NewFileSource(path string) (*FileSource, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, fmt.Errorf("can not resolve snapshot path %s: %w", path, err)
	}
	return &FileSource{path: expanded}, nil
}

func (s *FileSource) Location() string {
	return s.path
}

func (s *FileSource) Load(ctx context.Context) (*model.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: can not open %s: %v", ErrSnapshotUnavailable, s.path, err)
	}
	defer f.Close()

	doc, err := decodeDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSnapshotUnavailable, s.path, err)
	}
	return doc, nil
}

// ExpandPath resolves a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}
