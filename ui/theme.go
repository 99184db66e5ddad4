package ui

import "github.com/charmbracelet/lipgloss"

// Rosé Pine Moon palette.
// https://rosepinetheme.com/palette/
var (
	// Base tones
	colorBase    = lipgloss.Color("#232136")
	colorOverlay = lipgloss.Color("#393552")
	colorMuted   = lipgloss.Color("#6e6a86")
	colorSubtle  = lipgloss.Color("#908caa")
	colorText    = lipgloss.Color("#e0def4")

	// Semantic colors
	colorLove = lipgloss.Color("#eb6f92") // error, danger
	colorGold = lipgloss.Color("#f6c177") // warning, pending filter
	colorFoam = lipgloss.Color("#9ccfd8") // info, selection
	colorIris = lipgloss.Color("#c4a7e7") // highlight, primary
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorIris).
			MarginBottom(1)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOverlay).
			Padding(0, 1)

	focusedPaneStyle = paneStyle.
				BorderForeground(colorIris)

	itemStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(colorText)

	selectedItemStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(colorFoam).
				Foreground(colorBase)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	statusStyle = lipgloss.NewStyle().
			Foreground(colorSubtle).
			MarginTop(1)

	pendingStyle = lipgloss.NewStyle().
			Foreground(colorGold).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLove).
			Bold(true)
)

// swatch renders a two-cell block in the given color next to its token, so
// the inventory reads as actual colors instead of hex soup. Markers get no
// block; there is nothing to show.
func swatch(token string) string {
	if len(token) == 7 && token[0] == '#' {
		return lipgloss.NewStyle().Background(lipgloss.Color(token)).Render("  ") + " " + token
	}
	return mutedStyle.Render("·· ") + token
}
