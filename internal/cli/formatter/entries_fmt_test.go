package formatter

import (
	"testing"

	"github.com/st325a1114/bokunokada/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatEntries_Empty(t *testing.T) {
	out := stripANSI(FormatEntries(nil))
	assert.Contains(t, out, "No activities recorded yet.")
}

func TestFormatEntries_Table(t *testing.T) {
	entries := []*domain.Entry{
		{Seq: 1, Name: "work", Start: 540, End: 1020, DurationMin: 480},
		{Seq: 2, Name: "sleep", Start: 1380, End: 60, DurationMin: 120},
	}
	out := stripANSI(FormatEntries(entries))

	assert.Contains(t, out, "ACTIVITY")
	assert.Contains(t, out, "DURATION")
	assert.Contains(t, out, "work")
	assert.Contains(t, out, "09:00")
	assert.Contains(t, out, "17:00")
	assert.Contains(t, out, "8h")
	assert.Contains(t, out, "23:00")
	assert.Contains(t, out, "01:00 +1d", "a wrapping block is marked on its end time")
}

func TestRenderTable_Alignment(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{{"x", "y"}}))
	assert.Equal(t, "A  BB\n─  ──\nx  y\n", out)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, nil))
}
