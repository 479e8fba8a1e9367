package input

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/roricalc/internal/engine"
)

// press runs space-separated tokens from the power-on state.
func press(t *testing.T, keys string) State {
	t.Helper()
	s := New()
	for _, tok := range strings.Fields(keys) {
		a, err := ParseAction(tok)
		require.NoError(t, err, tok)
		s = Step(s, a)
	}
	return s
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		keys string
		want string
	}{
		{"add", "2 5 + 1 0 =", "35"},
		{"reciprocal", "8 1/x", "0.125"},
		{"sqrt then square", "9 √ x²", "9"},
		{"chained operator", "1 2 + 3 * 2 =", "30"},
		{"subtract to negative", "3 - 1 0 =", "-7"},
		{"decimal result", "7 / 2 =", "3.5"},
		{"pi ignores display", "5 π", engine.Format(math.Pi)},
		{"pi then operator", "π * 2 =", engine.Format(2 * math.Pi)},
		{"equals without operation", "4 2 =", "42"},
		{"equals normalizes", "4 . 0 =", "4"},
		{"result feeds next operation", "2 + 3 = * 4 =", "20"},
		{"digit after result starts fresh", "2 + 3 = 9", "9"},
		{"operator pressed twice applies it", "1 2 + +", "24"},
		{"sqrt of typed number", "1 6 √", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, press(t, tt.keys).Display())
		})
	}
}

func TestDigitEntry(t *testing.T) {
	assert.Equal(t, "7", press(t, "7").Display())
	assert.Equal(t, "123", press(t, "1 2 3").Display())
	assert.Equal(t, "00", press(t, "0").Display(), "zero appends to a zero display")
	assert.Equal(t, "0.5", press(t, ". 5").Display())
	assert.Equal(t, "1.5", press(t, "1 . 5 .").Display())
	assert.Equal(t, "0.", press(t, "2 + .").Display())
	assert.Equal(t, ModeEntry, press(t, "1 2").Mode())
}

func TestEqualsTwice(t *testing.T) {
	for _, keys := range []string{"2 + 3 =", "7 =", "9 √", "π"} {
		once := press(t, keys)
		twice := Step(once, Equals())
		assert.Equal(t, once.Display(), twice.Display(), keys)
		assert.Equal(t, ModeResult, twice.Mode())
	}
}

func TestDivisionByZero(t *testing.T) {
	s := press(t, "5 / 0 =")
	assert.Equal(t, "Error: Division by zero", s.Display())
	var dz *engine.DivisionByZeroError
	assert.ErrorAs(t, s.Err(), &dz)
	assert.Equal(t, engine.Engine{}, s.Engine(), "equals failure resets the engine")
	assert.Equal(t, ModeAwaiting, s.Mode())

	s = Step(s, Digit(4))
	assert.Equal(t, "4", s.Display())
	assert.NoError(t, s.Err())
}

func TestOperatorFailureKeepsEngine(t *testing.T) {
	s := press(t, "5 / 0 +")
	assert.Equal(t, "Error: Division by zero", s.Display())
	assert.Equal(t, engine.OpDivide, s.Pending())

	s = press(t, "5 / 0 = +")
	assert.Equal(t, "Error: Invalid input", s.Display())
}

func TestUnaryErrors(t *testing.T) {
	s := press(t, "4 ± √")
	assert.Equal(t, "Error: Cannot calculate square root of negative number", s.Display())
	assert.Equal(t, ModeAwaiting, s.Mode())
	assert.Equal(t, "3", Step(s, Digit(3)).Display())

	s = press(t, "0 1/x")
	assert.Equal(t, "Error: Division by zero", s.Display())

	s = Step(New(), Operator("^"))
	var uo *engine.UnsupportedOperationError
	assert.ErrorAs(t, s.Err(), &uo)
	assert.Equal(t, "Error: Unsupported operation: ^", s.Display())

	s = Step(press(t, "3"), Unary(engine.OpAdd))
	assert.ErrorAs(t, s.Err(), &uo)
}

func TestClear(t *testing.T) {
	for _, keys := range []string{"", "1 2", "5 / 0 =", "2 + 3", "9 √", "8 %", "1 ."} {
		s := Step(press(t, keys), Clear())
		assert.Equal(t, "0", s.Display(), keys)
		assert.Equal(t, engine.Engine{}, s.Engine(), keys)
		assert.Equal(t, "7", Step(s, Digit(7)).Display(), keys)
	}
}

func TestPercent(t *testing.T) {
	s := press(t, "5 0 %")
	assert.Equal(t, "0.5", s.Display())
	first, ok := s.Engine().FirstOperand()
	require.True(t, ok)
	assert.Equal(t, 0.5, first)
	assert.Equal(t, ModeAwaiting, s.Mode())

	s = press(t, "2 0 0 + 1 0 %")
	assert.Equal(t, "20", s.Display())
	first, _ = s.Engine().FirstOperand()
	assert.Equal(t, 200.0, first, "preview leaves the first operand alone")
	assert.Equal(t, "220", Step(s, Equals()).Display())
}

func TestNegate(t *testing.T) {
	assert.Equal(t, "-5", press(t, "5 ±").Display())
	assert.Equal(t, "-53", press(t, "5 ± 3").Display())
	assert.Equal(t, "0", press(t, "±").Display())
	assert.Equal(t, "2.5", press(t, "2 . 5 ± neg").Display())

	s := press(t, "2 + 3 = ±")
	assert.Equal(t, "-5", s.Display())
	assert.Equal(t, ModeResult, s.Mode())

	s = Step(press(t, "2"), Unary(engine.OpNegate))
	assert.Equal(t, "-2", s.Display())
	assert.Equal(t, ModeEntry, s.Mode())
}

func TestBackspace(t *testing.T) {
	tests := []struct {
		keys string
		want string
		mode Mode
	}{
		{"1 2 3 ⌫", "12", ModeEntry},
		{"1 . ⌫", "1", ModeEntry},
		{"7 ⌫", "0", ModeEntry},
		{"⌫", "0", ModeEntry},
		{"2 + ⌫", "0", ModeEntry},
		{"2 + 3 = ⌫", "0", ModeEntry},
		{"5 ± ⌫", "0", ModeEntry},
		{"5 2 ± ⌫", "-5", ModeEntry},
	}
	for _, tt := range tests {
		s := press(t, tt.keys)
		assert.Equal(t, tt.want, s.Display(), tt.keys)
		assert.Equal(t, tt.mode, s.Mode(), tt.keys)
	}
}

func TestChainedIntermediate(t *testing.T) {
	s := press(t, "1 2 + 3 *")
	assert.Equal(t, "15", s.Display())
	first, _ := s.Engine().FirstOperand()
	assert.Equal(t, 15.0, first)
	assert.Equal(t, engine.OpMultiply, s.Pending())
	assert.Equal(t, ModeAwaiting, s.Mode())
}

func TestStepIsPure(t *testing.T) {
	before := press(t, "1 2 + 3")
	after := Step(before, Clear())
	assert.Equal(t, "3", before.Display())
	assert.Equal(t, engine.OpAdd, before.Pending())
	assert.Equal(t, "0", after.Display())

	assert.Equal(t, before, Step(before, Quit()))
}

func TestRun(t *testing.T) {
	s := Run(Digit(2), Digit(5), Operator(engine.OpAdd), Digit(1), Digit(0), Equals())
	assert.Equal(t, "35", s.Display())
}
