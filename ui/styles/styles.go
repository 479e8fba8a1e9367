package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/roricalc/internal/config"
)

// KeyCategory picks the color of a keypad button.
type KeyCategory int

const (
	DigitKey KeyCategory = iota
	OperatorKey
	FunctionKey
	EqualsKey
	ClearKey
)

const keyWidth = 7

func DisplayStyle(theme config.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Display)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Right).
		Width(width)
}

func ErrorDisplayStyle(theme config.Theme, width int) lipgloss.Style {
	return DisplayStyle(theme, width).
		Foreground(lipgloss.Color("196"))
}

func PendingStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Operator)).
		Padding(0, 1)
}

// KeyStyle renders a keypad button. Light keys get dark text and the
// colored ones white text.
func KeyStyle(theme config.Theme, category KeyCategory, active bool) lipgloss.Style {
	background, foreground := theme.Digit, "#000000"
	switch category {
	case OperatorKey:
		background = theme.Operator
	case FunctionKey:
		background, foreground = theme.Function, "#ffffff"
	case EqualsKey:
		background, foreground = theme.Equals, "#ffffff"
	case ClearKey:
		background, foreground = theme.Clear, "#ffffff"
	}

	style := lipgloss.NewStyle().
		Background(lipgloss.Color(background)).
		Foreground(lipgloss.Color(foreground)).
		Align(lipgloss.Center).
		Width(keyWidth).
		MarginRight(1)
	if active {
		style = style.Bold(true).Underline(true)
	}
	return style
}

func TapeStyle(theme config.Theme) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Status)).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Display)).
		Padding(0, 1).
		MarginLeft(2)
}

func TapeErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))
}

func StatusStyle(theme config.Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Status)).
		Background(lipgloss.Color("235")).
		Padding(0, 1).
		Width(width)
}
