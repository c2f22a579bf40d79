package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/model"
	"github.com/hashicorp/go-multierror"
)

var ErrInvalidRecord = errors.New("invalid transaction record")

// DecodeRecords decodes each raw record on its own. Records that do not
// decode are left out and reported in the returned error.
func DecodeRecords(raw []json.RawMessage) ([]model.TransactionRecord, error) {
	var errs *multierror.Error
	records := make([]model.TransactionRecord, 0, len(raw))

	for i, msg := range raw {
		var rec model.TransactionRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: record #%d: %v", ErrInvalidRecord, i, err))
			continue
		}
		records = append(records, rec)
	}

	return records, errs.ErrorOrNil()
}

// Normalize turns records into transactions ordered most recent first.
// Zone-less dates are read in loc. Records with an unparseable date are
// skipped and reported in the returned error; the rest are still returned.
func Normalize(records []model.TransactionRecord, loc *time.Location) ([]model.Transaction, error) {
	if loc == nil {
		loc = time.UTC
	}

	var errs *multierror.Error
	txs := make([]model.Transaction, 0, len(records))

	for _, rec := range records {
		date, err := config.ParseTime(rec.Date, loc)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%w: id %d: %v", ErrInvalidRecord, rec.ID, err))
			continue
		}

		txs = append(txs, model.Transaction{
			ID:           rec.ID,
			Type:         rec.Type,
			Amount:       rec.Amount,
			Name:         rec.Name,
			Description:  rec.Description,
			Date:         date,
			Status:       rec.Status,
			AuthorizedBy: rec.AuthorizedBy,
			TotalAward:   rec.TotalAward,
			Icon:         rec.Icon,
		})
	}

	return SortByDateDesc(txs), errs.ErrorOrNil()
}

// SortByDateDesc returns a sorted copy; equal dates keep their input order.
func SortByDateDesc(txs []model.Transaction) []model.Transaction {
	out := slices.Clone(txs)
	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// FindTransaction scans txs for id. A miss is reported through ok, not an
// error.
func FindTransaction(id int64, txs []model.Transaction) (model.Transaction, bool) {
	for _, tx := range txs {
		if tx.ID == id {
			return tx, true
		}
	}
	return model.Transaction{}, false
}

// SkippedRecords lists the per-record errors carried by err.
func SkippedRecords(err error) []error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return merr.WrappedErrors()
	}
	return []error{err}
}
