package input

import (
	"fmt"

	"github.com/Rorical/roricalc/internal/engine"
)

// Kind identifies a user action.
type Kind int

const (
	KindDigit Kind = iota
	KindDecimal
	KindOperator
	KindEquals
	KindUnary
	KindPercent
	KindNegate
	KindClear
	KindBackspace
	KindQuit
)

// Action is a single discrete user input.
type Action struct {
	Kind  Kind
	Digit byte      // '0'-'9' for KindDigit
	Op    engine.Op // for KindOperator and KindUnary
}

func Digit(d int) Action {
	if d < 0 || d > 9 {
		panic(fmt.Sprintf("bad digit %d", d))
	}
	return Action{Kind: KindDigit, Digit: byte('0' + d)}
}

func Decimal() Action              { return Action{Kind: KindDecimal} }
func Operator(op engine.Op) Action { return Action{Kind: KindOperator, Op: op} }
func Equals() Action               { return Action{Kind: KindEquals} }
func Unary(op engine.Op) Action    { return Action{Kind: KindUnary, Op: op} }
func Pi() Action                   { return Unary(engine.OpPi) }
func Percent() Action              { return Action{Kind: KindPercent} }
func Negate() Action               { return Action{Kind: KindNegate} }
func Clear() Action                { return Action{Kind: KindClear} }
func Backspace() Action            { return Action{Kind: KindBackspace} }
func Quit() Action                 { return Action{Kind: KindQuit} }

// tokens maps every non-digit token spelling to its action.
var tokens = map[string]Action{
	".":     Decimal(),
	"+":     Operator(engine.OpAdd),
	"-":     Operator(engine.OpSubtract),
	"*":     Operator(engine.OpMultiply),
	"/":     Operator(engine.OpDivide),
	"=":     Equals(),
	"1/x":   Unary(engine.OpReciprocal),
	"x²":    Unary(engine.OpSquare),
	"sq":    Unary(engine.OpSquare),
	"√":     Unary(engine.OpSqrt),
	"sqrt":  Unary(engine.OpSqrt),
	"π":     Pi(),
	"pi":    Pi(),
	"%":     Percent(),
	"±":     Negate(),
	"neg":   Negate(),
	"C":     Clear(),
	"c":     Clear(),
	"clear": Clear(),
	"⌫":     Backspace(),
	"back":  Backspace(),
	"q":     Quit(),
	"quit":  Quit(),
}

// ParseAction converts a token such as "7", "+", "1/x" or "clear" into an Action.
func ParseAction(token string) (Action, error) {
	if len(token) == 1 && token[0] >= '0' && token[0] <= '9' {
		return Digit(int(token[0] - '0')), nil
	}
	if a, ok := tokens[token]; ok {
		return a, nil
	}
	return Action{}, fmt.Errorf("unknown key %q", token)
}

// String returns the canonical token for the action.
func (a Action) String() string {
	switch a.Kind {
	case KindDigit:
		return string(a.Digit)
	case KindDecimal:
		return "."
	case KindOperator:
		return string(a.Op)
	case KindEquals:
		return "="
	case KindUnary:
		return string(a.Op)
	case KindPercent:
		return "%"
	case KindNegate:
		return "±"
	case KindClear:
		return "C"
	case KindBackspace:
		return "⌫"
	case KindQuit:
		return "q"
	default:
		return "?"
	}
}
