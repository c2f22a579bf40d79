package service

import (
	"fmt"
	"math"
	"time"

	"github.com/hance08/wallet/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatPoints abbreviates values of 1000 and more to whole thousands with a
// K suffix and prints smaller values with two decimals.
func FormatPoints(points float64) string {
	if points >= 1000 {
		return fmt.Sprintf("%.0fK", math.Round(points/1000))
	}
	return fmt.Sprintf("%.2f", points)
}

func FormatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}

// FormatAmount prints charges as "$12.34" and credits as "+$12.34".
func FormatAmount(tx model.Transaction) string {
	if tx.IsCredit() {
		return "+" + FormatMoney(tx.Amount.Abs())
	}
	return FormatMoney(tx.Amount)
}

// Percent is the reward as a whole percentage of the amount, e.g. "10%".
// It is empty when there is no reward or the amount is zero.
func Percent(tx model.Transaction) string {
	if !tx.TotalAward.IsPositive() || tx.Amount.IsZero() {
		return ""
	}
	pct := tx.TotalAward.Div(tx.Amount.Abs()).Mul(hundred).Round(0)
	return pct.String() + "%"
}

func Subtitle(tx model.Transaction) string {
	if tx.IsPending() {
		return "Pending - " + tx.Description
	}
	return tx.Description
}

// Trailing is the small print under a list item: who authorized it, then its
// day label.
func Trailing(tx model.Transaction, label string) string {
	if tx.AuthorizedBy != "" {
		return tx.AuthorizedBy + " - " + label
	}
	return label
}

// FormatDetailDate prints "10/21/25, 10:15" in loc.
func FormatDetailDate(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format("1/2/06, 15:04")
}

// PaymentStatus returns the title and caption of the payment card. The
// statement month is the month before now.
func PaymentStatus(hasPaymentDue bool, now time.Time) (string, string) {
	statement := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -1, 0).Month()
	if hasPaymentDue {
		return "Payment Due", fmt.Sprintf("Your %s balance is due.", statement)
	}
	return "No Payment Due", fmt.Sprintf("You've paid your %s balance.", statement)
}
