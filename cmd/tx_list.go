package cmd

import (
	"github.com/hance08/wallet/cmd/transaction"
	"github.com/hance08/wallet/internal/app"
	"github.com/spf13/cobra"
)

// NewTxListCmd is a root-level shortcut for "transaction list".
func NewTxListCmd(application *app.App) *cobra.Command {
	cmd := transaction.NewListCmd(application)
	cmd.Use = "tx-list"
	cmd.Aliases = []string{"tls"}
	cmd.Short = "List transactions grouped by day (alias: tls)"
	return cmd
}
