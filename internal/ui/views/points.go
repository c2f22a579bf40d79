package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type PointsItem struct {
	Date        string
	DayOfSeason int
	Points      float64
	Formatted   string
	Override    bool
}

func RenderPoints(data PointsItem) error {
	day := fmt.Sprintf("%d", data.DayOfSeason)
	if data.DayOfSeason <= 0 {
		day = pterm.Gray("before season")
	}

	source := "recurrence"
	if data.Override {
		source = pterm.Yellow("override")
	}

	tableData := pterm.TableData{
		{pterm.Blue("Date"), data.Date},
		{pterm.Blue("Day of Season"), day},
		{pterm.Blue("Points"), fmt.Sprintf("%.2f", data.Points)},
		{pterm.Blue("Display"), pterm.Bold.Sprint(data.Formatted)},
		{pterm.Blue("Source"), source},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
