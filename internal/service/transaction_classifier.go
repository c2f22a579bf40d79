package service

import (
	"fmt"
	"math"
	"time"

	"github.com/hance08/wallet/internal/model"
)

const LabelYesterday = "Yesterday"

const day = 24 * time.Hour

// DaysBetween is the number of whole days from txDate to now, rounded down.
func DaysBetween(txDate, now time.Time) int {
	return int(math.Floor(float64(now.Sub(txDate)) / float64(day)))
}

// DisplayLabel names txDate relative to now: "MM/DD" for the same day,
// "Yesterday", a weekday name up to a week back, "D Mon" beyond that.
// Calendar fields are read in now's location. Dates after now are treated as
// the same day.
func DisplayLabel(txDate, now time.Time) string {
	diffDays := max(DaysBetween(txDate, now), 0)
	d := txDate.In(now.Location())

	switch {
	case diffDays == 0:
		return fmt.Sprintf("%02d/%02d", int(d.Month()), d.Day())
	case diffDays == 1:
		return LabelYesterday
	case diffDays <= 7:
		return d.Weekday().String()[:3]
	default:
		return fmt.Sprintf("%d %s", d.Day(), d.Month().String()[:3])
	}
}

type groupState struct {
	last string
	rows []model.Row
}

func (s groupState) fold(tx model.Transaction, now time.Time) groupState {
	label := DisplayLabel(tx.Date, now)
	if label != s.last {
		s.rows = append(s.rows, model.Row{Kind: model.RowHeader, Label: label})
		s.last = label
	}
	s.rows = append(s.rows, model.Row{Kind: model.RowTransaction, Label: label, Transaction: &tx})
	return s
}

// Group walks txs once and puts a header before the first transaction of
// every run that shares a label. txs is expected to be sorted already.
func Group(txs []model.Transaction, now time.Time) []model.Row {
	state := groupState{rows: make([]model.Row, 0, len(txs)*2)}
	for _, tx := range txs {
		state = state.fold(tx, now)
	}
	return state.rows
}

// Headers returns the header labels of rows in order.
func Headers(rows []model.Row) []string {
	var labels []string
	for _, r := range rows {
		if r.Kind == model.RowHeader {
			labels = append(labels, r.Label)
		}
	}
	return labels
}
