package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/roricalc/internal/update"
	"github.com/Rorical/roricalc/ui/components"
)

const (
	defaultWidth = 40
	tapeRows     = 10
	helpLine     = "digits . + - * / = │ % p r s v n │ ⌫ esc │ q quit"
)

func (m *AppModel) Init() tea.Cmd {
	return nil
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := update.HandleUpdate(&m.appModel, msg, m.session)
	return m, cmd
}

func (m *AppModel) View() string {
	width := m.appModel.Width
	if width <= 0 {
		width = defaultWidth
	}
	displayWidth := min(width, defaultWidth) - 4

	calculator := lipgloss.JoinVertical(lipgloss.Left,
		components.RenderDisplay(m.appModel.Display, m.appModel.Pending, m.appModel.Failed, m.theme, displayWidth),
		components.RenderKeypad(m.appModel.Pending, m.theme),
	)

	var b strings.Builder
	if len(m.appModel.Tape) > 0 {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			calculator,
			components.RenderTape(m.appModel.Tape, tapeRows, m.theme),
		))
	} else {
		b.WriteString(calculator)
	}
	b.WriteString("\n\n")
	b.WriteString(helpLine)
	b.WriteString("\n")
	b.WriteString(components.RenderStatus(m.appModel.Status, m.theme, width))

	return b.String()
}
