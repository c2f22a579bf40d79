package service_test

import (
	"testing"
	"time"

	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
	"github.com/shopspring/decimal"
)

func tx(amount, award string) model.Transaction {
	return model.Transaction{
		Amount:     decimal.RequireFromString(amount),
		TotalAward: decimal.RequireFromString(award),
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		award  string
		want   string
	}{
		{"credit with award", "-50", "5", "10%"},
		{"charge with award", "200", "3", "2%"},
		{"rounds half up", "8", "1", "13%"},
		{"rounds down", "3", "1", "33%"},
		{"no award", "-50", "0", ""},
		{"negative award", "40", "-1", ""},
		{"zero amount", "0", "5", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := service.Percent(tx(tt.amount, tt.award)); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	if got := service.FormatAmount(tx("12.3", "0")); got != "$12.30" {
		t.Errorf("Expected $12.30, got %s", got)
	}
	if got := service.FormatAmount(tx("0", "0")); got != "$0.00" {
		t.Errorf("Expected $0.00, got %s", got)
	}
	if got := service.FormatAmount(tx("-50", "0")); got != "+$50.00" {
		t.Errorf("Expected +$50.00, got %s", got)
	}
}

func TestFormatPoints(t *testing.T) {
	tests := map[float64]string{
		0:       "0.00",
		2.01:    "2.01",
		999.99:  "999.99",
		1000:    "1K",
		1500:    "2K",
		2500:    "3K",
		45000:   "45K",
		123_456: "123K",
	}
	for in, want := range tests {
		if got := service.FormatPoints(in); got != want {
			t.Errorf("FormatPoints(%v): expected %q, got %q", in, want, got)
		}
	}
}

func TestSubtitleAndTrailing(t *testing.T) {
	pending := model.Transaction{Description: "Card Number Used", Status: model.StatusPending, AuthorizedBy: "Diana"}
	posted := model.Transaction{Description: "Apple Pay", Status: model.StatusPosted}

	if got := service.Subtitle(pending); got != "Pending - Card Number Used" {
		t.Errorf("Unexpected subtitle %q", got)
	}
	if got := service.Subtitle(posted); got != "Apple Pay" {
		t.Errorf("Unexpected subtitle %q", got)
	}
	if got := service.Trailing(pending, "Yesterday"); got != "Diana - Yesterday" {
		t.Errorf("Unexpected trailing %q", got)
	}
	if got := service.Trailing(posted, "Mon"); got != "Mon" {
		t.Errorf("Unexpected trailing %q", got)
	}
}

func TestFormatDetailDate(t *testing.T) {
	d := time.Date(2025, time.October, 5, 12, 47, 0, 0, time.UTC)
	if got := service.FormatDetailDate(d, time.UTC); got != "10/5/25, 12:47" {
		t.Errorf("Expected 10/5/25, 12:47, got %s", got)
	}
}

func TestPaymentStatus(t *testing.T) {
	ref := time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC)

	title, text := service.PaymentStatus(false, ref)
	if title != "No Payment Due" || text != "You've paid your September balance." {
		t.Errorf("Unexpected payment card %q / %q", title, text)
	}

	title, text = service.PaymentStatus(true, time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC))
	if title != "Payment Due" || text != "Your December balance is due." {
		t.Errorf("Unexpected payment card %q / %q", title, text)
	}
}

func TestWalletSummary_Available(t *testing.T) {
	s := model.WalletSummary{
		CurrentBalance: decimal.RequireFromString("17.30"),
		Limit:          decimal.NewFromInt(1500),
	}
	if got := service.FormatMoney(s.Available()); got != "$1482.70" {
		t.Errorf("Expected $1482.70, got %s", got)
	}
}
