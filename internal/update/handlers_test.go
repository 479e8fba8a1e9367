package update

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/roricalc/internal/core"
	"github.com/Rorical/roricalc/internal/engine"
	"github.com/Rorical/roricalc/internal/input"
	"github.com/Rorical/roricalc/internal/models"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestActionForKey(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want input.Action
	}{
		{"digit", runes("7"), input.Digit(7)},
		{"plus", runes("+"), input.Operator(engine.OpAdd)},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, input.Equals()},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, input.Equals()},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, input.Backspace()},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, input.Clear()},
		{"alt minus", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-"), Alt: true}, input.Negate()},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, input.Quit()},
		{"pi", runes("p"), input.Pi()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ActionForKey(tt.key)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := ActionForKey(runes("z"))
	assert.False(t, ok)
}

func TestHandleKeyMsg(t *testing.T) {
	session := core.NewSession()
	var m models.AppModel

	for _, k := range []string{"2", "5", "+"} {
		assert.Nil(t, HandleKeyMsg(&m, runes(k), session))
	}
	assert.Equal(t, "25", m.Display)
	assert.Equal(t, "+", m.Pending)
	assert.Equal(t, "Pending +", m.Status)

	for _, k := range []string{"1", "0"} {
		HandleKeyMsg(&m, runes(k), session)
	}
	HandleKeyMsg(&m, tea.KeyMsg{Type: tea.KeyEnter}, session)
	assert.Equal(t, "35", m.Display)
	assert.Equal(t, "Ready", m.Status)
	assert.Len(t, m.Tape, 6)

	assert.Nil(t, HandleKeyMsg(&m, runes("z"), session))
	assert.Len(t, m.Tape, 6)
}

func TestHandleKeyMsgError(t *testing.T) {
	session := core.NewSession()
	var m models.AppModel
	for _, k := range []string{"5", "/", "0", "="} {
		HandleKeyMsg(&m, runes(k), session)
	}
	assert.True(t, m.Failed)
	assert.Equal(t, "Error: Division by zero", m.Display)
	assert.True(t, m.Tape[len(m.Tape)-1].Failed)

	HandleKeyMsg(&m, runes("7"), session)
	assert.False(t, m.Failed)
	assert.Equal(t, "7", m.Display)
}

func TestQuit(t *testing.T) {
	session := core.NewSession()
	var m models.AppModel
	cmd := HandleKeyMsg(&m, runes("q"), session)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHandleUpdate(t *testing.T) {
	session := core.NewSession()
	var m models.AppModel
	assert.Nil(t, HandleUpdate(&m, tea.WindowSizeMsg{Width: 80, Height: 24}, session))
	assert.Equal(t, 80, m.Width)
	assert.Equal(t, 24, m.Height)

	HandleUpdate(&m, runes("9"), session)
	assert.Equal(t, "9", m.Display)
}
