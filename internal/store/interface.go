package store

import (
	"context"

	"github.com/hance08/wallet/internal/model"
)

// Source loads the wallet snapshot. Implementations do not cache: every call
// reads the document again.
type Source interface {
	Load(ctx context.Context) (*model.Document, error)
	Location() string
}
