package transaction

import (
	"fmt"

	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Limit int
}

type listRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(application *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "List transactions grouped by day",
		Long: `List transactions from the wallet snapshot, most recent first.

Transactions are grouped under day headers such as "Yesterday", a weekday
name or a short date, relative to the reference time (--now).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &listRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Maximum number of transactions to display (0 = all)")

	return cmd
}

func (r *listRunner) Run(cmd *cobra.Command) error {
	svc := r.app.Service

	now, err := svc.Config.Now()
	if err != nil {
		return err
	}

	txs, err := svc.Wallet.Transactions(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to get transactions: %w", err)
	}

	if r.flags.Limit > 0 {
		txs = txs[:min(r.flags.Limit, len(txs))]
	}

	title := fmt.Sprintf("Transactions (%d)", len(txs))
	return views.NewTransactionListView(title).Render(service.Group(txs, now))
}
