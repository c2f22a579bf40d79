package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath  string
	Source      string
	SeasonStart string
	Overrides   int
	Clock       string
	Timezone    string
	AppDataDir  string
}

func RenderSystemInfo(data SystemInfoItem) error {
	clock := data.Clock
	if clock == "" {
		clock = pterm.Green("wall clock")
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Snapshot Source", data.Source},
		{"Season Start", data.SeasonStart},
		{"Point Overrides", pterm.Sprint(data.Overrides)},
		{"Clock", clock},
		{"Timezone", data.Timezone},
		{"AppData Directory", data.AppDataDir},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
