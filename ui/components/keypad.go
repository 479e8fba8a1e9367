package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/roricalc/internal/config"
	"github.com/Rorical/roricalc/internal/input"
	"github.com/Rorical/roricalc/ui/styles"
)

// Keypad is the button board, row by row.
var Keypad = [6][4]string{
	{"%", "π", "C", "⌫"},
	{"1/x", "x²", "√", "/"},
	{"7", "8", "9", "*"},
	{"4", "5", "6", "-"},
	{"1", "2", "3", "+"},
	{"±", "0", ".", "="},
}

// Category classifies a keypad label by the action it triggers.
func Category(label string) styles.KeyCategory {
	a, err := input.ParseAction(label)
	if err != nil {
		return styles.FunctionKey
	}
	switch a.Kind {
	case input.KindDigit, input.KindDecimal:
		return styles.DigitKey
	case input.KindOperator:
		return styles.OperatorKey
	case input.KindEquals:
		return styles.EqualsKey
	case input.KindClear, input.KindBackspace:
		return styles.ClearKey
	default:
		return styles.FunctionKey
	}
}

// RenderKeypad draws the button board, highlighting the pending operator.
func RenderKeypad(pending string, theme config.Theme) string {
	rows := make([]string, 0, len(Keypad))
	for _, row := range Keypad {
		keys := make([]string, 0, len(row))
		for _, label := range row {
			active := pending != "" && label == pending
			keys = append(keys, styles.KeyStyle(theme, Category(label), active).Render(label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	return strings.Join(rows, "\n")
}
