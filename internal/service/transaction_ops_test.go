package service_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
	"github.com/shopspring/decimal"
)

func record(id int64, date string) model.TransactionRecord {
	return model.TransactionRecord{
		ID:          id,
		Type:        "Credit",
		Amount:      decimal.NewFromInt(id),
		Name:        "Merchant",
		Description: "Apple Pay",
		Date:        date,
		Status:      model.StatusPosted,
		Icon:        "apple",
	}
}

func ids(txs []model.Transaction) []int64 {
	out := make([]int64, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func TestNormalize_SortsMostRecentFirst(t *testing.T) {
	records := []model.TransactionRecord{
		record(1, "2025-10-14T09:00:00Z"),
		record(2, "2025-10-21T09:00:00Z"),
		record(3, "2025-10-17T09:00:00Z"),
	}

	txs, err := service.Normalize(records, time.UTC)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int64{2, 3, 1}, ids(txs)); diff != "" {
		t.Errorf("Unexpected order (-want +got):\n%s", diff)
	}
}

func TestNormalize_StableForEqualDates(t *testing.T) {
	records := []model.TransactionRecord{
		record(10, "2025-10-20T12:00:00Z"),
		record(11, "2025-10-21T12:00:00Z"),
		record(12, "2025-10-20T12:00:00Z"),
		record(13, "2025-10-20T14:00:00+02:00"),
	}

	txs, err := service.Normalize(records, time.UTC)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if diff := cmp.Diff([]int64{11, 10, 12, 13}, ids(txs)); diff != "" {
		t.Errorf("Unexpected order (-want +got):\n%s", diff)
	}
}

func TestNormalize_CopiesFields(t *testing.T) {
	rec := model.TransactionRecord{
		ID:           7,
		Type:         "Payment",
		Amount:       decimal.RequireFromString("-50"),
		Name:         "Payment",
		Description:  "From JPMorgan Chase Bank",
		Date:         "2025-10-21",
		Status:       model.StatusPending,
		AuthorizedBy: "Diana",
		TotalAward:   decimal.NewFromInt(5),
		Icon:         "university",
	}

	txs, err := service.Normalize([]model.TransactionRecord{rec}, time.UTC)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := model.Transaction{
		ID:           7,
		Type:         "Payment",
		Amount:       decimal.RequireFromString("-50"),
		Name:         "Payment",
		Description:  "From JPMorgan Chase Bank",
		Date:         time.Date(2025, time.October, 21, 0, 0, 0, 0, time.UTC),
		Status:       model.StatusPending,
		AuthorizedBy: "Diana",
		TotalAward:   decimal.NewFromInt(5),
		Icon:         "university",
	}
	if diff := cmp.Diff(want, txs[0]); diff != "" {
		t.Errorf("Unexpected transaction (-want +got):\n%s", diff)
	}
}

func TestNormalize_SkipsBadDates(t *testing.T) {
	records := []model.TransactionRecord{
		record(1, "2025-10-21T09:00:00Z"),
		record(2, "not a date"),
		record(3, ""),
	}

	txs, err := service.Normalize(records, time.UTC)
	if err == nil {
		t.Fatal("Expected error for malformed dates")
	}
	if !errors.Is(err, service.ErrInvalidRecord) {
		t.Errorf("Expected ErrInvalidRecord, got %v", err)
	}
	if got := len(service.SkippedRecords(err)); got != 2 {
		t.Errorf("Expected 2 skipped records, got %d", got)
	}
	if diff := cmp.Diff([]int64{1}, ids(txs)); diff != "" {
		t.Errorf("Unexpected transactions (-want +got):\n%s", diff)
	}
}

func TestSortByDateDesc_Idempotent(t *testing.T) {
	records := []model.TransactionRecord{
		record(1, "2025-10-20T12:00:00Z"),
		record(2, "2025-10-22T12:00:00Z"),
		record(3, "2025-10-20T12:00:00Z"),
		record(4, "2025-09-30T12:00:00Z"),
	}
	once, err := service.Normalize(records, time.UTC)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	twice := service.SortByDateDesc(once)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Errorf("Expected sorting a sorted list to be a no-op (-once +twice):\n%s", diff)
	}
}

func TestSortByDateDesc_DoesNotMutateInput(t *testing.T) {
	in := []model.Transaction{
		{ID: 1, Date: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Date: time.Date(2025, 10, 2, 0, 0, 0, 0, time.UTC)},
	}

	out := service.SortByDateDesc(in)
	if in[0].ID != 1 || out[0].ID != 2 {
		t.Errorf("Expected input untouched and output sorted, got in=%v out=%v", ids(in), ids(out))
	}
}

func TestDecodeRecords(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{"id": 1, "amount": 12.5, "date": "2025-10-21", "totalAward": 0}`),
		json.RawMessage(`{"id": 2, "amount": "abc", "date": "2025-10-21", "totalAward": 0}`),
		json.RawMessage(`{"id": 3, "amount": -4, "date": "2025-10-20", "totalAward": 1, "authorizedBy": "Diana"}`),
		json.RawMessage(`[]`),
	}

	records, err := service.DecodeRecords(raw)
	if got := len(service.SkippedRecords(err)); got != 2 {
		t.Fatalf("Expected 2 skipped records, got %d (%v)", got, err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].AuthorizedBy != "" {
		t.Errorf("Expected missing authorizedBy to be empty, got %q", records[0].AuthorizedBy)
	}
	if records[1].AuthorizedBy != "Diana" {
		t.Errorf("Expected authorizedBy Diana, got %q", records[1].AuthorizedBy)
	}
	if !records[0].Amount.Equal(decimal.RequireFromString("12.5")) {
		t.Errorf("Expected amount 12.5, got %s", records[0].Amount)
	}
}

func TestFindTransaction(t *testing.T) {
	txs := []model.Transaction{{ID: 4, Name: "Apple"}, {ID: 9, Name: "Target"}}

	tx, ok := service.FindTransaction(9, txs)
	if !ok {
		t.Fatal("Expected to find transaction 9")
	}
	if tx.Name != "Target" {
		t.Errorf("Expected Target, got %s", tx.Name)
	}

	if _, ok := service.FindTransaction(42, txs); ok {
		t.Error("Expected no match for id 42")
	}
	if _, ok := service.FindTransaction(1, nil); ok {
		t.Error("Expected no match in empty list")
	}
}

func TestSkippedRecords(t *testing.T) {
	if got := service.SkippedRecords(nil); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
	plain := errors.New("boom")
	if got := service.SkippedRecords(plain); len(got) != 1 || got[0] != plain {
		t.Errorf("Expected plain error to be returned as single entry, got %v", got)
	}
}
