package engine

import (
	"math"
	"sort"
)

// Op is the symbolic key an operation is registered under.
type Op string

// Binary operations.
const (
	OpAdd      Op = "+"
	OpSubtract Op = "-"
	OpMultiply Op = "*"
	OpDivide   Op = "/"
	OpPercent  Op = "%"
)

// Unary operations. Pi ignores its operand.
const (
	OpReciprocal Op = "1/x"
	OpSquare     Op = "x²"
	OpSqrt       Op = "√"
	OpPi         Op = "π"
	OpNegate     Op = "±"
)

// Arity tells which table an operation belongs to.
type Arity int

const (
	Binary Arity = iota
	Unary
)

func (a Arity) String() string {
	switch a {
	case Binary:
		return "binary"
	case Unary:
		return "unary"
	default:
		return "unknown"
	}
}

// operand is a number that may not have been provided yet.
type operand struct {
	value float64
	set   bool
}

func some(v float64) operand { return operand{value: v, set: true} }

// operation evaluates x and an optional y.
type operation func(x float64, y operand) (float64, error)

type entry struct {
	arity Arity
	fn    operation
}

// needY adapts a two-operand function so a missing y is reported.
func needY(fn func(x, y float64) (float64, error)) operation {
	return func(x float64, y operand) (float64, error) {
		if !y.set {
			return 0, &MissingOperandError{Operand: "Second"}
		}
		return fn(x, y.value)
	}
}

func add(x, y float64) (float64, error)      { return x + y, nil }
func subtract(x, y float64) (float64, error) { return x - y, nil }
func multiply(x, y float64) (float64, error) { return x * y, nil }

func divide(x, y float64) (float64, error) {
	if y == 0 {
		return 0, &DivisionByZeroError{}
	}
	return x / y, nil
}

// percent is x percent of y, or x/100 when y is absent.
func percent(x float64, y operand) (float64, error) {
	if y.set {
		return (x * y.value) / 100, nil
	}
	return x / 100, nil
}

func reciprocal(x float64, _ operand) (float64, error) {
	if x == 0 {
		return 0, &DivisionByZeroError{}
	}
	return 1 / x, nil
}

func square(x float64, _ operand) (float64, error) { return x * x, nil }

func sqrt(x float64, _ operand) (float64, error) {
	if x < 0 {
		return 0, &DomainError{Op: OpSqrt, Value: x}
	}
	return math.Sqrt(x), nil
}

func pi(float64, operand) (float64, error) { return math.Pi, nil }

func negate(x float64, _ operand) (float64, error) { return -x, nil }

var registry = map[Op]entry{
	OpAdd:      {Binary, needY(add)},
	OpSubtract: {Binary, needY(subtract)},
	OpMultiply: {Binary, needY(multiply)},
	OpDivide:   {Binary, needY(divide)},
	OpPercent:  {Binary, percent},

	OpReciprocal: {Unary, reciprocal},
	OpSquare:     {Unary, square},
	OpSqrt:       {Unary, sqrt},
	OpPi:         {Unary, pi},
	OpNegate:     {Unary, negate},
}

// Lookup reports whether op is registered and in which table.
func Lookup(op Op) (Arity, bool) {
	e, ok := registry[op]
	return e.arity, ok
}

// Symbols lists the registered keys of the given arity in sorted order.
func Symbols(arity Arity) []Op {
	ops := make([]Op, 0, len(registry))
	for op, e := range registry {
		if e.arity == arity {
			ops = append(ops, op)
		}
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}

func (e entry) eval(x float64, y operand) (float64, error) {
	r, err := e.fn(x, y)
	if err != nil {
		return 0, wrap(err)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &CalculationError{Msg: "Result out of range"}
	}
	return r, nil
}

// Execute applies op to x and, for binary operations, the first value of y.
// Unary operations ignore y.
func Execute(op Op, x float64, y ...float64) (float64, error) {
	e, ok := registry[op]
	if !ok {
		return 0, &UnsupportedOperationError{Op: op}
	}
	var arg operand
	if len(y) > 0 && e.arity == Binary {
		arg = some(y[0])
	}
	return e.eval(x, arg)
}
