package formatter

import (
	"strconv"

	"github.com/st325a1114/bokunokada/internal/domain"
)

// FormatEntries renders the raw ledger as a table in recording order.
// Endpoints are shown exactly as entered; a block that crosses midnight is
// marked on its end time.
func FormatEntries(entries []*domain.Entry) string {
	if len(entries) == 0 {
		return Dim("No activities recorded yet.")
	}

	headers := []string{"#", "ACTIVITY", "START", "END", "DURATION"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		end := e.End.String()
		if e.Wraps() {
			end += Dim(" +1d")
		}
		rows = append(rows, []string{
			Dim(strconv.Itoa(e.Seq)),
			StyleFg.Render(e.Name),
			e.Start.String(),
			end,
			FormatMinutes(e.DurationMin),
		})
	}
	return RenderTable(headers, rows)
}
