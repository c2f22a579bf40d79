package cmd

import (
	"fmt"

	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/ui/views"
	"github.com/spf13/cobra"
)

type summaryFlags struct {
	Limit int
}

type summaryRunner struct {
	app   *app.App
	flags *summaryFlags
}

func NewSummaryCmd(application *app.App) *cobra.Command {
	flags := &summaryFlags{}

	cmd := &cobra.Command{
		Use:     "summary",
		Aliases: []string{"home"},
		Short:   "Show balance, daily points and latest transactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &summaryRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run(cmd)
		},
	}

	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0, "Number of latest transactions to show (default display.limit)")

	return cmd
}

func (r *summaryRunner) Run(cmd *cobra.Command) error {
	svc := r.app.Service

	now, err := svc.Config.Now()
	if err != nil {
		return err
	}

	summary, err := svc.Wallet.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load wallet: %w", err)
	}

	limit := r.flags.Limit
	if limit <= 0 {
		limit = svc.Config.Limit()
	}

	daily := svc.Points.DailyPoints(now)
	title, text := service.PaymentStatus(summary.HasPaymentDue, now)

	if err := views.RenderSummary(views.SummaryItem{
		Balance:      service.FormatMoney(summary.CurrentBalance),
		Available:    service.FormatMoney(summary.Available()),
		DailyPoints:  service.FormatPoints(daily),
		PaymentTitle: title,
		PaymentText:  text,
		PaymentDue:   summary.HasPaymentDue,
	}); err != nil {
		return err
	}

	latest := summary.Transactions[:min(limit, len(summary.Transactions))]
	return views.NewTransactionListView("Latest Transactions").Render(service.Group(latest, now))
}
