package formatter

import (
	"strings"
	"testing"

	"github.com/st325a1114/bokunokada/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderShareBar_Fill(t *testing.T) {
	bar := stripANSI(RenderShareBar(0.5, 4, StyleGreen))
	assert.Equal(t, 2, strings.Count(bar, filledBlock))
	assert.Equal(t, 2, strings.Count(bar, emptyBlock))
}

func TestRenderShareBar_Clamps(t *testing.T) {
	full := stripANSI(RenderShareBar(1.5, 4, StyleGreen))
	assert.Equal(t, 4, strings.Count(full, filledBlock))
	assert.Zero(t, strings.Count(full, emptyBlock))

	none := stripANSI(RenderShareBar(-0.5, 4, StyleGreen))
	assert.Zero(t, strings.Count(none, filledBlock))
	assert.Equal(t, 4, strings.Count(none, emptyBlock))

	tiny := stripANSI(RenderShareBar(1.0, 0, StyleGreen))
	assert.Equal(t, 2, strings.Count(tiny, filledBlock), "width clamps to 2")
}

func TestFormatDaySummary_PartialDay(t *testing.T) {
	s := domain.Reconcile([]domain.Bucket{
		{Label: "lunch", Minutes: 60},
		{Label: "work", Minutes: 480},
	})
	out := stripANSI(FormatDaySummary(&s))

	assert.Contains(t, out, "24-HOUR BREAKDOWN")
	assert.Contains(t, out, "lunch")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, domain.UnplannedLabel)
	assert.Contains(t, out, "33%", "work holds a third of the day")
	assert.Contains(t, out, "recorded 9h of 24h")
	assert.NotContains(t, out, "⚠")
}

func TestFormatDaySummary_EmptyLedger(t *testing.T) {
	s := domain.Reconcile(nil)
	out := stripANSI(FormatDaySummary(&s))

	assert.Contains(t, out, domain.UnplannedLabel)
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "recorded 0m of 24h")
}

func TestFormatDaySummary_Overflow(t *testing.T) {
	s := domain.Reconcile([]domain.Bucket{
		{Label: "work", Minutes: 1080},
		{Label: "sleep", Minutes: 600},
	})
	require.True(t, s.Overflow)
	out := stripANSI(FormatDaySummary(&s))

	assert.Contains(t, out, "RECORDED-TIME BREAKDOWN", "overflow switches the chart title")
	assert.Contains(t, out, "⚠ recorded 28h")
	assert.Contains(t, out, "4h beyond 24h")
	assert.NotContains(t, out, domain.UnplannedLabel)
}

func TestFormatDaySummary_BarsScaleToRecordedTotal(t *testing.T) {
	s := domain.Reconcile([]domain.Bucket{
		{Label: "a", Minutes: 1440},
		{Label: "b", Minutes: 1440},
	})
	out := stripANSI(FormatDaySummary(&s))
	assert.Contains(t, out, " 50%", "each half of an overflowing total, not of 24h")
}
