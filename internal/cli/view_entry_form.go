package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/st325a1114/bokunokada/internal/cli/formatter"
	"github.com/st325a1114/bokunokada/internal/domain"
)

func formErrorStatus(err error) tea.Msg {
	return boardStatusMsg{text: formatter.StyleRed.Render("✗ " + err.Error())}
}

// submitEntry records one block from the form's raw field values and returns
// the status message for the board. Clock syntax was validated inline by the
// form; ledger rules (blank name, equal endpoints) are enforced here by the
// service so every path reports them identically.
func submitEntry(app *App, name, startStr, endStr string) tea.Msg {
	start, err := domain.ParseClock(strings.TrimSpace(startStr))
	if err != nil {
		return formErrorStatus(err)
	}
	end, err := domain.ParseClock(strings.TrimSpace(endStr))
	if err != nil {
		return formErrorStatus(err)
	}

	entry, err := app.Ledger.AddEntry(context.Background(), name, start, end)
	if err != nil {
		return formErrorStatus(err)
	}

	span := entry.Start.String() + "–" + entry.End.String()
	if entry.Wraps() {
		span += " +1d"
	}
	return boardStatusMsg{text: fmt.Sprintf("%s Recorded %s  %s (%s)",
		formatter.StyleGreen.Render("✔"),
		formatter.Bold(entry.Name),
		formatter.Dim(span),
		formatter.FormatMinutes(entry.DurationMin))}
}

// applyClear wipes the ledger when confirmed and reports what happened.
func applyClear(app *App, confirmed bool) tea.Msg {
	if !confirmed {
		return boardStatusMsg{text: formatter.Dim("Kept everything.")}
	}
	if err := app.Ledger.ClearAll(context.Background()); err != nil {
		return formErrorStatus(err)
	}
	return boardStatusMsg{text: fmt.Sprintf("%s Cleared the day.",
		formatter.StyleGreen.Render("✔"))}
}

// newEntryFormView creates a wizard form for recording one activity block.
// It collects the activity name and its start/end wall-clock times, then
// persists the block via LedgerService.
func newEntryFormView(state *SharedState) View {
	var name string
	start := "12:00"
	end := "13:00"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Activity").
				Placeholder("deep work").
				Value(&name).
				Validate(validateActivityName),
			huh.NewInput().
				Title("Start (HH:MM)").
				Placeholder("12:00").
				Value(&start).
				Validate(validateClock),
			huh.NewInput().
				Title("End (HH:MM)").
				Placeholder("13:00").
				Value(&end).
				Validate(validateClock),
		),
	).WithTheme(ledgerHuhTheme()).WithShowHelp(false)

	done := func() tea.Cmd {
		return func() tea.Msg { return submitEntry(state.App, name, start, end) }
	}

	return newWizardView(state, "Add Activity", form, done)
}

// startClearWizard returns a tea.Cmd that pushes a confirmation wizard for
// wiping the ledger. Declining leaves the ledger untouched.
func startClearWizard(state *SharedState) tea.Cmd {
	confirmed := new(bool)
	form := wizardConfirm("Clear all recorded activities?", confirmed)

	done := func() tea.Cmd {
		return func() tea.Msg { return applyClear(state.App, *confirmed) }
	}

	return pushView(newWizardView(state, "Clear Day", form, done))
}
