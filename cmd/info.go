package cmd

import (
	"github.com/hance08/wallet/internal/app"
	"github.com/hance08/wallet/internal/ui/views"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
}

func NewInfoCmd(application *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, snapshot source and season settings.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: application,
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	svc := r.app.Service

	configPath := svc.Config.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	items := views.SystemInfoItem{
		ConfigPath:  configPath,
		Source:      svc.Wallet.Source(),
		SeasonStart: svc.Points.SeasonStart().Format("2006-01-02"),
		Overrides:   len(svc.Points.Overrides()),
		Clock:       svc.Config.Clock.Now,
		Timezone:    svc.Config.Display.Timezone,
		AppDataDir:  getAppDataDirOrUnknown(),
	}

	return views.RenderSystemInfo(items)
}

func getAppDataDirOrUnknown() string {
	dir, err := app.GetAppDataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
