package views

import (
	"github.com/hance08/wallet/internal/ui"
	"github.com/pterm/pterm"
)

type SummaryItem struct {
	Balance      string
	Available    string
	DailyPoints  string
	PaymentTitle string
	PaymentText  string
	PaymentDue   bool
}

func RenderSummary(data SummaryItem) error {
	ui.PrintCardTitle("Card Balance")
	balance := pterm.TableData{
		{pterm.Blue("Current"), pterm.Bold.Sprint(data.Balance)},
		{pterm.Blue("Available"), data.Available + " Available"},
	}
	if err := pterm.DefaultTable.WithData(balance).Render(); err != nil {
		return err
	}

	ui.Separator()
	ui.PrintCardTitle("Daily Points")
	pterm.Println(pterm.Bold.Sprint(data.DailyPoints))

	ui.Separator()
	ui.PrintCardTitle("%s", data.PaymentTitle)
	if data.PaymentDue {
		pterm.Warning.Println(data.PaymentText)
	} else {
		pterm.Success.Println(data.PaymentText)
	}

	ui.Separator()
	return nil
}
