package cmd

import (
	"fmt"
	"time"

	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/config"
	"github.com/hance08/wallet/internal/logic/points"
	"github.com/hance08/wallet/internal/service"
	"github.com/hance08/wallet/internal/ui/views"
	"github.com/spf13/cobra"
)

type pointsFlags struct {
	Date string
}

type pointsRunner struct {
	app   *app.App
	flags *pointsFlags
}

func NewPointsCmd(application *app.App) *cobra.Command {
	flags := &pointsFlags{}

	cmd := &cobra.Command{
		Use:   "points",
		Short: "Show the daily points for a day of the season",
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &pointsRunner{
				app:   application,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Date, "date", "d", "", "Day to evaluate, YYYY-MM-DD (default: reference time)")

	return cmd
}

func (r *pointsRunner) Run() error {
	svc := r.app.Service

	date, err := r.date()
	if err != nil {
		return err
	}

	engine := svc.Points
	_, override := engine.Override(date)
	value := engine.DailyPoints(date)

	return views.RenderPoints(views.PointsItem{
		Date:        date.Format(points.DateLayout),
		DayOfSeason: engine.DayOfSeason(date),
		Points:      value,
		Formatted:   service.FormatPoints(value),
		Override:    override,
	})
}

func (r *pointsRunner) date() (time.Time, error) {
	cfg := r.app.Service.Config
	if r.flags.Date == "" {
		return cfg.Now()
	}

	loc, err := cfg.Location()
	if err != nil {
		return time.Time{}, err
	}
	d, err := config.ParseTime(r.flags.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date: %w", err)
	}
	return d, nil
}
