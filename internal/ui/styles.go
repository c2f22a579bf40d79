package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	dayHeaderStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)
	cardTitleStyle = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
)

func PrintCardTitle(format string, a ...interface{}) {
	cardTitleStyle.Println(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func PrintDayHeader(label string) {
	dayHeaderStyle.Println(fmt.Sprintf("# %s", label))
}

func Separator() {
	pterm.Println()
}

var iconGlyphs = map[string]string{
	"apple":      "◆",
	"university": "⌂",
	"cubes":      "▦",
	"bullseye":   "◎",
}

// Icon renders a category key as a glyph. Unknown keys fall back to a dot;
// muted icons are drawn gray.
func Icon(key string, muted bool) string {
	glyph, ok := iconGlyphs[key]
	if !ok {
		glyph = "•"
	}
	if muted {
		return pterm.Gray(glyph)
	}
	return pterm.LightCyan(glyph)
}

// Amount colors credits green and leaves charges plain.
func Amount(text string, credit bool) string {
	if credit {
		return pterm.Green(text)
	}
	return text
}
