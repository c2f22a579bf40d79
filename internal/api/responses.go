package api

import (
	"time"

	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
)

type TransactionView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Amount   string `json:"amount"`
	Subtitle string `json:"subtitle"`
	Trailing string `json:"trailing"`
	Percent  string `json:"percent,omitempty"`
	Icon     string `json:"icon"`
	Muted    bool   `json:"muted"`
	Credit   bool   `json:"credit"`
}

type RowView struct {
	Kind        model.RowKind    `json:"kind"`
	Label       string           `json:"label"`
	Transaction *TransactionView `json:"transaction,omitempty"`
}

type PaymentView struct {
	Due   bool   `json:"due"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type SummaryResponse struct {
	CurrentBalance string      `json:"currentBalance"`
	Limit          string      `json:"limit"`
	Available      string      `json:"available"`
	Payment        PaymentView `json:"payment"`
	DailyPoints    float64     `json:"dailyPoints"`
	DailyDisplay   string      `json:"dailyPointsDisplay"`
	Rows           []RowView   `json:"rows"`
}

type TransactionsResponse struct {
	Rows   []RowView `json:"rows"`
	Count  int       `json:"count"`
	Groups int       `json:"groups"`
}

type DetailResponse struct {
	model.Transaction
	DisplayAmount string `json:"displayAmount"`
	DisplayDate   string `json:"displayDate"`
	Percent       string `json:"percent,omitempty"`
}

type PointsResponse struct {
	Date        string  `json:"date"`
	DayOfSeason int     `json:"dayOfSeason"`
	Points      float64 `json:"points"`
	Display     string  `json:"display"`
	Override    bool    `json:"override"`
}

func toRowViews(rows []model.Row) []RowView {
	out := make([]RowView, 0, len(rows))
	for _, row := range rows {
		view := RowView{Kind: row.Kind, Label: row.Label}
		if row.Transaction != nil {
			tx := *row.Transaction
			view.Transaction = &TransactionView{
				ID:       tx.ID,
				Name:     tx.Name,
				Amount:   service.FormatAmount(tx),
				Subtitle: service.Subtitle(tx),
				Trailing: service.Trailing(tx, row.Label),
				Percent:  service.Percent(tx),
				Icon:     tx.Icon,
				Muted:    tx.IsCardNumberUsed(),
				Credit:   tx.IsCredit(),
			}
		}
		out = append(out, view)
	}
	return out
}

func toDetail(tx model.Transaction, loc *time.Location) DetailResponse {
	return DetailResponse{
		Transaction:   tx,
		DisplayAmount: service.FormatAmount(tx),
		DisplayDate:   service.FormatDetailDate(tx.Date, loc),
		Percent:       service.Percent(tx),
	}
}
