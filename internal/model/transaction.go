package model

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending = "Pending"
	StatusPosted  = "Posted"

	cardNumberUsedMarker = "Card Number Used"
)

// TransactionRecord is one raw entry of the snapshot's transactions array.
type TransactionRecord struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
	AuthorizedBy string          `json:"authorizedBy,omitempty"`
	TotalAward   decimal.Decimal `json:"totalAward"`
	Icon         string          `json:"icon"`
}

// Transaction is a normalized record. Non-negative amounts are charges,
// negative amounts are credits or refunds.
type Transaction struct {
	ID           int64           `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Date         time.Time       `json:"date"`
	Status       string          `json:"status"`
	AuthorizedBy string          `json:"authorizedBy,omitempty"`
	TotalAward   decimal.Decimal `json:"totalAward"`
	Icon         string          `json:"icon"`
}

func (t Transaction) IsCredit() bool {
	return t.Amount.IsNegative()
}

func (t Transaction) IsPending() bool {
	return t.Status == StatusPending
}

// IsCardNumberUsed reports whether the charge was made with the bare card
// number rather than a wallet device. Views render its icon muted.
func (t Transaction) IsCardNumberUsed() bool {
	return strings.Contains(t.Description, cardNumberUsedMarker)
}

type Balance struct {
	Current decimal.Decimal `json:"current"`
	Limit   decimal.Decimal `json:"limit"`
}

// Document is the raw snapshot. Transactions stay undecoded so that one
// malformed record cannot fail the whole document.
type Document struct {
	Balance      Balance           `json:"balance"`
	PaymentDue   bool              `json:"paymentDue"`
	Transactions []json.RawMessage `json:"transactions"`
}

type WalletSummary struct {
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Limit          decimal.Decimal `json:"limit"`
	HasPaymentDue  bool            `json:"hasPaymentDue"`
	Transactions   []Transaction   `json:"transactions"`
}

// Available is the unused part of the credit limit.
func (s WalletSummary) Available() decimal.Decimal {
	return s.Limit.Sub(s.CurrentBalance)
}

type RowKind string

const (
	RowHeader      RowKind = "header"
	RowTransaction RowKind = "transaction"
)

// Row is one element of a grouped transaction list: either a day header or
// a transaction together with its display label.
type Row struct {
	Kind        RowKind      `json:"kind"`
	Label       string       `json:"label"`
	Transaction *Transaction `json:"transaction,omitempty"`
}
