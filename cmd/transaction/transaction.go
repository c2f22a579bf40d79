/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package transaction

import (
	"github.com/hance08/wallet/internal/app"
	"github.com/spf13/cobra"
)

func NewTransactionCmd(application *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "transaction",
		Aliases: []string{"tx"},
		Short:   "Browse transactions",
		Long:    "Browse transactions: list them grouped by day or show the details of one.",
	}

	cmd.AddCommand(NewListCmd(application))
	cmd.AddCommand(NewShowCmd(application))

	return cmd
}
