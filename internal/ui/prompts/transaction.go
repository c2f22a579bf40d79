package prompts

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/hance08/wallet/internal/model"
	"github.com/hance08/wallet/internal/service"
)

// PromptTransaction lets the user pick one of txs and returns its id.
func PromptTransaction(txs []model.Transaction, now time.Time) (int64, error) {
	if len(txs) == 0 {
		return 0, fmt.Errorf("no transactions to choose from")
	}

	options := make([]huh.Option[int64], 0, len(txs))
	for _, tx := range txs {
		label := fmt.Sprintf("%-8s %-24s %10s", service.DisplayLabel(tx.Date, now), tx.Name, service.FormatAmount(tx))
		options = append(options, huh.NewOption(label, tx.ID))
	}

	var id int64
	err := huh.NewSelect[int64]().
		Title("Select a transaction").
		Options(options...).
		Height(12).
		Value(&id).
		Run()

	return id, err
}
