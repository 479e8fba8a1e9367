package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/engine"
	"github.com/Rorical/roricalc/internal/input"
	"github.com/Rorical/roricalc/internal/models"
)

// keyActions maps keyboard shortcuts to calculator actions.
var keyActions = map[string]input.Action{
	".":         input.Decimal(),
	"+":         input.Operator(engine.OpAdd),
	"-":         input.Operator(engine.OpSubtract),
	"*":         input.Operator(engine.OpMultiply),
	"/":         input.Operator(engine.OpDivide),
	"=":         input.Equals(),
	"enter":     input.Equals(),
	" ":         input.Equals(),
	"%":         input.Percent(),
	"p":         input.Pi(),
	"r":         input.Unary(engine.OpReciprocal),
	"s":         input.Unary(engine.OpSquare),
	"v":         input.Unary(engine.OpSqrt),
	"n":         input.Negate(),
	"alt+-":     input.Negate(),
	"backspace": input.Backspace(),
	"esc":       input.Clear(),
	"c":         input.Clear(),
	"C":         input.Clear(),
	"q":         input.Quit(),
	"Q":         input.Quit(),
	"ctrl+c":    input.Quit(),
}

// ActionForKey returns the action bound to a key, if any.
func ActionForKey(keyMsg tea.KeyMsg) (input.Action, bool) {
	key := keyMsg.String()
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		return input.Digit(int(key[0] - '0')), true
	}
	a, ok := keyActions[key]
	return a, ok
}

// HandleKeyMsg forwards a key press to the session and refreshes the UI state.
func HandleKeyMsg(appModel *models.AppModel, keyMsg tea.KeyMsg, session *core.Session) tea.Cmd {
	a, ok := ActionForKey(keyMsg)
	if !ok {
		return nil
	}
	if a.Kind == input.KindQuit {
		return tea.Quit
	}

	session.Press(a)
	Sync(appModel, session)
	return nil
}

// Sync copies the session's display, pending operation and tape into the UI state.
func Sync(appModel *models.AppModel, session *core.Session) {
	appModel.Display = session.Display()
	appModel.Pending = string(session.Pending())

	if err := session.LastError(); err != nil {
		appModel.Failed = true
		appModel.Status = "Press a digit to start over, C to clear"
	} else {
		appModel.Failed = false
		appModel.Status = "Ready"
		if appModel.Pending != "" {
			appModel.Status = "Pending " + appModel.Pending
		}
	}

	entries := session.Tape()
	appModel.Tape = make([]models.TapeLine, len(entries))
	for i, e := range entries {
		appModel.Tape[i] = models.TapeLine{Key: e.Token, Display: e.Display, Failed: e.Failed}
	}
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
}

func HandleUpdate(appModel *models.AppModel, msg tea.Msg, session *core.Session) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsg(appModel, msg, session)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	}
	return nil
}
