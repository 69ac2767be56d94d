package cli

import (
	"testing"

	"github.com/st325a1114/bokunokada/internal/teatest"
)

// TestDriver wraps teatest.Driver with board-specific inspection methods.
// It provides access to appModel internals (view stack, shared state)
// that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init()
// (which loads the board synchronously via in-memory SQLite).
func NewTestDriver(t *testing.T, app *App, opts ...teatest.Option) *TestDriver {
	t.Helper()

	if len(opts) == 0 {
		opts = []teatest.Option{teatest.WithSize(100, 32)}
	}

	m := newAppModel(app)
	d := teatest.New(t, m, opts...)
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().viewStack)
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app has signaled a quit, either via the
// model's own flag (q/Ctrl+C) or a tea.QuitMsg caught by the driver.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// Board returns the root board view for direct inspection, or nil.
func (d *TestDriver) Board() *boardView {
	m := d.appModel()
	if len(m.viewStack) == 0 {
		return nil
	}
	board, _ := m.viewStack[0].(*boardView)
	return board
}

// BoardStatus returns the board's transient status line.
func (d *TestDriver) BoardStatus() string {
	board := d.Board()
	if board == nil {
		return ""
	}
	return board.status
}
