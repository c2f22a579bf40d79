package transaction

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/store"
	"github.com/hance08/wallet/internal/ui/prompts"
	"github.com/hance08/wallet/internal/ui/views"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type showRunner struct {
	app *app.App
}

func NewShowCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [transaction-id]",
		Short: "Show transaction details",
		Long: `Show the details of one transaction.

Without an id, an interactive list lets you pick the transaction.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &showRunner{
				app: application,
			}
			return runner.Run(cmd, args)
		},
	}
}

func (r *showRunner) Run(cmd *cobra.Command, args []string) error {
	svc := r.app.Service
	ctx := cmd.Context()

	var txID int64
	if len(args) == 1 {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid transaction ID: %s", args[0])
		}
		txID = id
	} else {
		now, err := svc.Config.Now()
		if err != nil {
			return err
		}
		txs, err := svc.Wallet.Transactions(ctx)
		if err != nil {
			return fmt.Errorf("failed to get transactions: %w", err)
		}
		txID, err = prompts.PromptTransaction(txs, now)
		if err != nil {
			return err
		}
	}

	tx, err := svc.Wallet.Transaction(ctx, txID)
	if errors.Is(err, store.ErrRecordNotFound) {
		pterm.Warning.Printf("Transaction #%d not found\n", txID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	loc, err := svc.Config.Location()
	if err != nil {
		return err
	}
	return views.RenderTransactionDetail(tx, loc)
}
