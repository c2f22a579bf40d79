package views

import (
	"time"

	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/ui"
	"github.com/pterm/pterm"
)

func RenderTransactionDetail(tx model.Transaction, loc *time.Location) error {
	amount := service.FormatAmount(tx)

	pterm.Println()
	pterm.Println(pterm.Bold.Sprint(ui.Amount(amount, tx.IsCredit())))
	pterm.Println(tx.Name)
	pterm.Println(pterm.Gray(service.FormatDetailDate(tx.Date, loc)))
	pterm.Println()

	infoData := pterm.TableData{
		{"Field", "Value"},
		{"Status", tx.Status},
		{"Description", tx.Description},
		{"Type", tx.Type},
	}
	if tx.AuthorizedBy != "" {
		infoData = append(infoData, []string{"Authorized By", tx.AuthorizedBy})
	}
	if pct := service.Percent(tx); pct != "" {
		infoData = append(infoData, []string{"Reward", pct})
	}
	infoData = append(infoData, []string{pterm.Bold.Sprint("Total"), pterm.Bold.Sprint(amount)})

	return pterm.DefaultTable.
		WithHasHeader().
		WithHeaderStyle(pterm.NewStyle(pterm.FgGray)).
		WithData(infoData).
		Render()
}
