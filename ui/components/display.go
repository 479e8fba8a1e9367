package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/roricalc/internal/config"
	"github.com/Rorical/roricalc/internal/models"
	"github.com/Rorical/roricalc/ui/styles"
)

// RenderDisplay draws the result line with the pending operation beside it.
func RenderDisplay(display, pending string, failed bool, theme config.Theme, width int) string {
	style := styles.DisplayStyle(theme, width)
	if failed {
		style = styles.ErrorDisplayStyle(theme, width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		style.Render(display),
		styles.PendingStyle(theme).Render(pending),
	)
}

func RenderStatus(status string, theme config.Theme, width int) string {
	return styles.StatusStyle(theme, width).Render(status)
}

// RenderTape lists the last keys pressed, newest at the bottom.
func RenderTape(lines []models.TapeLine, rows int, theme config.Theme) string {
	if len(lines) > rows {
		lines = lines[len(lines)-rows:]
	}

	var b strings.Builder
	for i, line := range lines {
		text := line.Key + "  → " + line.Display
		if line.Failed {
			text = styles.TapeErrorStyle().Render(text)
		}
		b.WriteString(text)
		if i < len(lines)-1 {
			b.WriteString("\n")
		}
	}
	return styles.TapeStyle(theme).Render(b.String())
}
