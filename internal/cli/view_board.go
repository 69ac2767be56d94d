package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/st325a1114/bokunokada/internal/cli/formatter"
	"github.com/st325a1114/bokunokada/internal/domain"
)

// ── messages ─────────────────────────────────────────────────────────────────

// boardLoadedMsg signals that ledger data has been loaded.
type boardLoadedMsg struct {
	entries []*domain.Entry
	summary *domain.DaySummary
	err     error
}

// boardStatusMsg sets the transient status line under the board content.
type boardStatusMsg struct {
	text string
}

// boardStatus returns a tea.Cmd that emits a boardStatusMsg.
func boardStatus(text string) tea.Cmd {
	return func() tea.Msg { return boardStatusMsg{text: text} }
}

// ── view ─────────────────────────────────────────────────────────────────────

// boardView is the home screen of the TUI. It shows the reconciled day chart,
// the recorded activities, and a transient status line for the outcome of the
// last action. Content taller than the terminal scrolls in a viewport.
type boardView struct {
	state   *SharedState
	vp      viewport.Model
	ready   bool // vp has been sized by a WindowSizeMsg
	entries []*domain.Entry
	summary *domain.DaySummary
	loading bool
	err     error
	status  string
}

func newBoardView(state *SharedState) *boardView {
	vp := viewport.New(0, 0)
	vp.KeyMap = boardScrollKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return &boardView{
		state:   state,
		vp:      vp,
		loading: true,
	}
}

func (v *boardView) ID() ViewID    { return ViewBoard }
func (v *boardView) Title() string { return "Board" }

func (v *boardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "scroll")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *boardView) Init() tea.Cmd {
	return v.loadData()
}

// ── data loading ─────────────────────────────────────────────────────────────

func (v *boardView) loadData() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()

		entries, err := app.Ledger.Entries(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}

		summary, err := app.Ledger.Summarize(ctx)
		if err != nil {
			return boardLoadedMsg{err: err}
		}

		return boardLoadedMsg{entries: entries, summary: summary}
	}
}

// ── update ───────────────────────────────────────────────────────────────────

func (v *boardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.vp.Width = msg.Width
		v.vp.Height = v.state.ContentHeight()
		v.ready = true
		v.syncContent()
		return v, nil

	case boardLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			v.syncContent()
			return v, nil
		}
		v.err = nil
		v.entries = msg.entries
		v.summary = msg.summary
		v.syncContent()
		return v, nil

	case boardStatusMsg:
		v.status = msg.text
		v.syncContent()
		return v, nil

	case refreshViewMsg:
		v.loading = true
		v.syncContent()
		return v, v.loadData()

	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			v.status = ""
			return v, pushView(newEntryFormView(v.state))
		case "c":
			v.status = ""
			return v, startClearWizard(v.state)
		case "r":
			v.status = ""
			v.loading = true
			v.err = nil
			v.syncContent()
			return v, v.loadData()
		}
		if isBoardScrollKey(msg) {
			var cmd tea.Cmd
			v.vp, cmd = v.vp.Update(msg)
			return v, cmd
		}

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.vp, cmd = v.vp.Update(msg)
		return v, cmd
	}

	return v, nil
}

// syncContent pushes the current board content into the viewport.
func (v *boardView) syncContent() {
	if v.ready {
		v.vp.SetContent(v.content())
	}
}

// ── view rendering ───────────────────────────────────────────────────────────

func (v *boardView) View() string {
	if !v.ready {
		return v.content()
	}
	return v.vp.View()
}

func (v *boardView) content() string {
	if v.loading {
		return "\n  " + formatter.Dim("Loading...")
	}
	if v.err != nil {
		return "\n  " + formatter.StyleRed.Render("Error: "+v.err.Error())
	}
	if v.summary == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(v.renderIndented(formatter.FormatDaySummary(v.summary)))
	b.WriteString("\n\n")

	if len(v.entries) == 0 {
		b.WriteString("  " + formatter.Dim("Nothing recorded yet. Press 'a' to add an activity."))
		b.WriteString("\n")
	} else {
		b.WriteString(v.renderIndented(formatter.FormatEntries(v.entries)))
		b.WriteString("\n")
	}

	if v.status != "" {
		b.WriteString("\n  " + v.status + "\n")
	}

	return b.String()
}

// renderIndented shifts a multi-line block two columns right so it lines up
// with the rest of the board.
func (v *boardView) renderIndented(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}

// boardScrollKeyMap returns a restricted keymap for the board viewport.
// Only arrow/page keys scroll — letter keys stay free for shortcuts.
func boardScrollKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

// isBoardScrollKey returns true if the key should scroll the board viewport.
func isBoardScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown,
		tea.KeyHome, tea.KeyEnd, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}
