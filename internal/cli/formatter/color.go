package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Nord-inspired color palette.
var (
	ColorRed    = lipgloss.Color("#bf616a")
	ColorOrange = lipgloss.Color("#d08770")
	ColorYellow = lipgloss.Color("#ebcb8b")
	ColorGreen  = lipgloss.Color("#a3be8c")
	ColorCyan   = lipgloss.Color("#88c0d0")
	ColorBlue   = lipgloss.Color("#81a1c1")
	ColorPurple = lipgloss.Color("#b48ead")
	ColorDim    = lipgloss.Color("#616e88")
	ColorFg     = lipgloss.Color("#d8dee9")
)

// Predefined lipgloss styles.
var (
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorOrange).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// barStyles is the accent cycle for chart rows. The unplanned remainder is
// always drawn dim instead of taking an accent.
var barStyles = []lipgloss.Style{
	StyleCyan,
	StyleGreen,
	StyleYellow,
	lipgloss.NewStyle().Foreground(ColorBlue),
	lipgloss.NewStyle().Foreground(ColorPurple),
	lipgloss.NewStyle().Foreground(ColorOrange),
}

// BarStyle returns the accent style for the i-th chart row.
func BarStyle(i int) lipgloss.Style {
	if i < 0 {
		i = 0
	}
	return barStyles[i%len(barStyles)]
}

// Header renders a section heading in caps with a dim underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the normal foreground.
func Bold(text string) string {
	return StyleBold.Render(text)
}
