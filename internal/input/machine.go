// Package input interprets a stream of key presses against a calculator
// engine and produces the text to display.
//
// Step is a pure transition: it takes a State and an Action and returns
// the next State. The display of a State is always either a decimal numeral
// or the message of the last error.
package input

import (
	"strings"

	"github.com/Rorical/roricalc/internal/engine"
)

// Mode governs how the next digit or decimal point is applied.
type Mode int

const (
	// ModeEntry appends digits to the number being typed.
	ModeEntry Mode = iota
	// ModeAwaiting follows an operator, percent or error; the next digit starts a new number.
	ModeAwaiting
	// ModeResult follows equals or a unary result; the next digit starts a new
	// number and a repeated equals does nothing.
	ModeResult
)

func (m Mode) String() string {
	switch m {
	case ModeEntry:
		return "entry"
	case ModeAwaiting:
		return "awaiting"
	case ModeResult:
		return "result"
	default:
		return "unknown"
	}
}

// State is the display text, the entry mode and the engine behind them.
type State struct {
	display string
	mode    Mode
	eng     engine.Engine
	err     error
}

// New returns the power-on state: display "0", nothing pending.
func New() State {
	return State{display: "0", mode: ModeEntry}
}

func (s State) Display() string { return s.display }
func (s State) Mode() Mode      { return s.mode }

// Err returns the error surfaced by the last Step, or nil.
func (s State) Err() error { return s.err }

// Pending returns the operation waiting for its second operand.
func (s State) Pending() engine.Op { return s.eng.Pending() }

// Engine returns a copy of the engine state.
func (s State) Engine() engine.Engine { return s.eng }

func (s State) fresh() bool { return s.mode != ModeEntry }

// Run applies actions in order starting from New.
func Run(actions ...Action) State {
	s := New()
	for _, a := range actions {
		s = Step(s, a)
	}
	return s
}

// Step applies one action.
func Step(s State, a Action) State {
	s.err = nil
	switch a.Kind {
	case KindDigit:
		return s.digit(a.Digit)
	case KindDecimal:
		return s.decimal()
	case KindOperator:
		return s.operator(a.Op)
	case KindEquals:
		return s.equals()
	case KindUnary:
		switch a.Op {
		case engine.OpPi:
			return s.pi()
		case engine.OpNegate:
			return s.negate()
		}
		return s.unary(a.Op)
	case KindPercent:
		return s.percent()
	case KindNegate:
		return s.negate()
	case KindClear:
		s.eng.Reset()
		s.display = "0"
		s.mode = ModeEntry
		return s
	case KindBackspace:
		return s.backspace()
	}
	// quit and unknown kinds belong to the caller
	return s
}

// fail shows err and makes the next digit start a new number.
func (s State) fail(err error) State {
	s.display = err.Error()
	s.mode = ModeAwaiting
	s.err = err
	return s
}

func (s State) digit(d byte) State {
	if d < '0' || d > '9' {
		return s
	}
	switch {
	case s.fresh():
		s.display = string(d)
	case s.display == "0" && d != '0':
		s.display = string(d)
	default:
		s.display += string(d)
	}
	s.mode = ModeEntry
	return s
}

func (s State) decimal() State {
	switch {
	case s.fresh():
		s.display = "0."
	case !strings.Contains(s.display, "."):
		s.display += "."
	}
	s.mode = ModeEntry
	return s
}

// operator commits any pending operation before queueing op.
func (s State) operator(op engine.Op) State {
	value, err := engine.Parse(s.display)
	if err != nil {
		return s.fail(err)
	}

	if _, ok := s.eng.FirstOperand(); ok && s.eng.Pending() != "" {
		s.eng.SetSecondOperand(value)
		result, err := s.eng.Calculate()
		if err != nil {
			return s.fail(err)
		}
		s.display = engine.Format(result)
		s.eng.SetFirstOperand(result)
	} else {
		s.eng.SetFirstOperand(value)
	}

	if err := s.eng.SetOperation(op); err != nil {
		return s.fail(err)
	}
	s.mode = ModeAwaiting
	return s
}

// equals fails by clearing the engine as well as showing the error.
func (s State) equals() State {
	if s.mode == ModeResult {
		return s
	}

	value, err := engine.Parse(s.display)
	if err != nil {
		s.eng.Reset()
		return s.fail(err)
	}

	if s.eng.Pending() == "" {
		s.eng.SetFirstOperand(value)
		s.display = engine.Format(value)
		s.mode = ModeResult
		return s
	}

	s.eng.SetSecondOperand(value)
	result, err := s.eng.Calculate()
	if err != nil {
		s.eng.Reset()
		return s.fail(err)
	}
	s.display = engine.Format(result)
	s.eng.SetFirstOperand(result)
	_ = s.eng.SetOperation("")
	s.mode = ModeResult
	return s
}

func (s State) unary(op engine.Op) State {
	value, err := engine.Parse(s.display)
	if err != nil {
		return s.fail(err)
	}
	result, err := s.eng.ApplyUnary(op, value)
	if err != nil {
		return s.fail(err)
	}
	s.display = engine.Format(result)
	s.eng.SetFirstOperand(result)
	s.mode = ModeResult
	return s
}

// pi ignores whatever is on the display.
func (s State) pi() State {
	result, err := s.eng.ApplyUnary(engine.OpPi, 0)
	if err != nil {
		return s.fail(err)
	}
	s.display = engine.Format(result)
	s.eng.SetFirstOperand(result)
	s.mode = ModeResult
	return s
}

// percent previews first*display/100 mid-calculation without committing it;
// otherwise it replaces the display and the first operand with display/100.
func (s State) percent() State {
	value, err := engine.Parse(s.display)
	if err != nil {
		return s.fail(err)
	}

	first, ok := s.eng.FirstOperand()
	if ok && s.eng.Pending() != "" {
		preview, err := engine.Execute(engine.OpPercent, first, value)
		if err != nil {
			return s.fail(err)
		}
		s.display = engine.Format(preview)
	} else {
		result, err := engine.Execute(engine.OpPercent, value)
		if err != nil {
			return s.fail(err)
		}
		s.display = engine.Format(result)
		s.eng.SetFirstOperand(result)
	}
	s.mode = ModeAwaiting
	return s
}

// negate only touches the display.
func (s State) negate() State {
	value, err := engine.Parse(s.display)
	if err != nil {
		return s.fail(err)
	}
	s.display = engine.Format(s.eng.Negate(value))
	return s
}

func (s State) backspace() State {
	switch {
	case s.fresh():
		s.display = "0"
		s.mode = ModeEntry
	case len(s.display) > 1 && !isSignedDigit(s.display):
		s.display = s.display[:len(s.display)-1]
	default:
		s.display = "0"
	}
	return s
}

// isSignedDigit reports text like "-7", whose trim would leave a bare sign.
func isSignedDigit(text string) bool {
	return len(text) == 2 && text[0] == '-'
}
