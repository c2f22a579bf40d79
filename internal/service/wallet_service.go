package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hance08/wallet/internal/metrics"
	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/store"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
)

// WalletService reads the snapshot on every call and derives the views from
// it. Nothing is cached between calls.
type WalletService struct {
	source store.Source
	loc    *time.Location
	log    zerolog.Logger
}

func NewWalletService(source store.Source, loc *time.Location, log zerolog.Logger) *WalletService {
	if loc == nil {
		loc = time.UTC
	}
	return &WalletService{source: source, loc: loc, log: log}
}

func (ws *WalletService) Source() string {
	return ws.source.Location()
}

func (ws *WalletService) load(ctx context.Context) (*model.Document, []model.Transaction, error) {
	doc, err := ws.source.Load(ctx)
	if err != nil {
		metrics.SnapshotLoads.WithLabelValues(metrics.ResultError).Inc()
		ws.log.Error().Err(err).Str("source", ws.source.Location()).Msg("failed to load snapshot")
		return nil, nil, fmt.Errorf("failed to load wallet: %w", err)
	}
	metrics.SnapshotLoads.WithLabelValues(metrics.ResultOK).Inc()

	records, decodeErr := DecodeRecords(doc.Transactions)
	txs, normErr := Normalize(records, ws.loc)

	skipped := SkippedRecords(multierror.Append(decodeErr, normErr).ErrorOrNil())
	for _, e := range skipped {
		ws.log.Warn().Err(e).Msg("skipping transaction record")
	}
	metrics.SkippedRecords.Add(float64(len(skipped)))

	ws.log.Debug().
		Int("transactions", len(txs)).
		Int("skipped", len(skipped)).
		Str("source", ws.source.Location()).
		Msg("snapshot loaded")

	return doc, txs, nil
}

func (ws *WalletService) Summary(ctx context.Context) (model.WalletSummary, error) {
	doc, txs, err := ws.load(ctx)
	if err != nil {
		return model.WalletSummary{}, err
	}

	return model.WalletSummary{
		CurrentBalance: doc.Balance.Current,
		Limit:          doc.Balance.Limit,
		HasPaymentDue:  doc.PaymentDue,
		Transactions:   txs,
	}, nil
}

// Transactions returns every valid transaction, most recent first.
func (ws *WalletService) Transactions(ctx context.Context) ([]model.Transaction, error) {
	_, txs, err := ws.load(ctx)
	return txs, err
}

// Transaction looks up one transaction; a miss wraps store.ErrRecordNotFound.
func (ws *WalletService) Transaction(ctx context.Context, id int64) (model.Transaction, error) {
	_, txs, err := ws.load(ctx)
	if err != nil {
		return model.Transaction{}, err
	}

	tx, ok := FindTransaction(id, txs)
	if !ok {
		return model.Transaction{}, fmt.Errorf("transaction %d: %w", id, store.ErrRecordNotFound)
	}
	return tx, nil
}
