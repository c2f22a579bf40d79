package views

import (
	"fmt"

	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/ui"
	"github.com/pterm/pterm"
)

type TransactionListView struct {
	title string
}

func NewTransactionListView(title string) *TransactionListView {
	return &TransactionListView{title: title}
}

// Render prints each header followed by a table of the transactions under it.
func (v *TransactionListView) Render(rows []model.Row) error {
	if len(rows) == 0 {
		pterm.Warning.Println("No transactions found")
		return nil
	}

	pterm.DefaultSection.Println(v.title)

	var table pterm.TableData
	flush := func() error {
		if len(table) == 0 {
			return nil
		}
		err := pterm.DefaultTable.WithData(table).Render()
		table = nil
		return err
	}

	count := 0
	for _, row := range rows {
		if row.Kind == model.RowHeader {
			if err := flush(); err != nil {
				return err
			}
			ui.PrintDayHeader(row.Label)
			continue
		}

		tx := *row.Transaction
		count++
		table = append(table, []string{
			ui.Icon(tx.Icon, tx.IsCardNumberUsed()),
			fmt.Sprintf("#%d", tx.ID),
			pterm.Bold.Sprint(tx.Name),
			service.Subtitle(tx),
			pterm.Gray(service.Trailing(tx, row.Label)),
			pterm.Magenta(service.Percent(tx)),
			ui.Amount(service.FormatAmount(tx), tx.IsCredit()),
		})
	}
	if err := flush(); err != nil {
		return err
	}

	pterm.Info.Printf("Total: %d transactions in %d groups\n", count, len(service.Headers(rows)))
	return nil
}
