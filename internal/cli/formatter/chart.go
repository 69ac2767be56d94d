package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/st325a1114/bokunokada/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"

	// ShareBarWidth is the cell count of one allocation bar.
	ShareBarWidth = 24
)

// RenderShareBar renders a fixed-width allocation bar filled to pct (0..1),
// with the filled run in the given accent and the rest dimmed.
func RenderShareBar(pct float64, width int, accent lipgloss.Style) string {
	if width < 2 {
		width = 2
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	filled := int(pct*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return accent.Render(strings.Repeat(filledBlock, filled)) +
		StyleDim.Render(strings.Repeat(emptyBlock, width-filled))
}

// FormatDaySummary renders the reconciled day as a boxed bar chart: one row
// per bucket with its share of the total and its minutes. A day within
// bounds is charted against the full 24 hours; an overflowing day is charted
// against the recorded total and gains a warning footer.
func FormatDaySummary(s *domain.DaySummary) string {
	title := "24-hour breakdown"
	if s.Overflow {
		title = "recorded-time breakdown"
	}

	total := s.Total()
	if total <= 0 {
		total = domain.MinutesPerDay
	}

	labelWidth := 0
	for _, b := range s.Buckets {
		if w := lipgloss.Width(b.Label); w > labelWidth {
			labelWidth = w
		}
	}

	var lines []string
	accent := 0
	for _, b := range s.Buckets {
		pct := float64(b.Minutes) / float64(total)
		var bar string
		if b.Label == domain.UnplannedLabel {
			bar = RenderShareBar(pct, ShareBarWidth, StyleDim)
		} else {
			bar = RenderShareBar(pct, ShareBarWidth, BarStyle(accent))
			accent++
		}
		label := fmt.Sprintf("%-*s", labelWidth, b.Label)
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s",
			StyleFg.Render(label), bar, FormatShare(pct), Dim(FormatMinutes(b.Minutes))))
	}

	lines = append(lines, "")
	if s.Overflow {
		over := s.RecordedMin - domain.MinutesPerDay
		lines = append(lines, StyleRed.Render(fmt.Sprintf("⚠ recorded %s — %s beyond 24h",
			FormatMinutes(s.RecordedMin), FormatMinutes(over))))
	} else {
		lines = append(lines, Dim(fmt.Sprintf("recorded %s of 24h", FormatMinutes(s.RecordedMin))))
	}

	return RenderBox(title, strings.Join(lines, "\n"))
}
