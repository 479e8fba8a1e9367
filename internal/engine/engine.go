package engine

// Engine holds the two-operand calculation state. The zero value is an
// engine with nothing set. Engine has no reference fields, so copying it
// yields an independent state.
type Engine struct {
	first   operand
	second  operand
	pending Op
	last    operand
}

// New returns a cleared engine.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) SetFirstOperand(v float64)  { e.first = some(v) }
func (e *Engine) SetSecondOperand(v float64) { e.second = some(v) }

// SetOperation sets the pending operation. An empty op clears it.
func (e *Engine) SetOperation(op Op) error {
	if op != "" {
		if _, ok := registry[op]; !ok {
			return &UnsupportedOperationError{Op: op}
		}
	}
	e.pending = op
	return nil
}

// FirstOperand returns the first operand and whether it is set.
func (e Engine) FirstOperand() (float64, bool) { return e.first.value, e.first.set }

// SecondOperand returns the second operand and whether it is set.
func (e Engine) SecondOperand() (float64, bool) { return e.second.value, e.second.set }

// LastResult returns the result of the last successful Calculate.
func (e Engine) LastResult() (float64, bool) { return e.last.value, e.last.set }

// Pending returns the pending operation, or "" when there is none.
func (e Engine) Pending() Op { return e.pending }

// Calculate evaluates the pending operation against the stored operands.
// With no pending operation the first operand is returned unchanged. Unary
// operations only read the first operand.
func (e *Engine) Calculate() (float64, error) {
	if !e.first.set {
		return 0, &MissingOperandError{Operand: "First"}
	}
	if e.pending == "" {
		e.last = e.first
		return e.first.value, nil
	}

	op := registry[e.pending]
	var y operand
	if op.arity == Binary {
		if !e.second.set {
			return 0, &MissingOperandError{Operand: "Second"}
		}
		y = e.second
	}
	r, err := op.eval(e.first.value, y)
	if err != nil {
		return 0, err
	}
	e.last = some(r)
	return r, nil
}

// ApplyUnary applies a unary operation to x without touching the engine state.
func (e *Engine) ApplyUnary(op Op, x float64) (float64, error) {
	u, ok := registry[op]
	if !ok || u.arity != Unary {
		return 0, &UnsupportedOperationError{Op: op}
	}
	return u.eval(x, operand{})
}

// Negate flips the sign of v.
func (e *Engine) Negate(v float64) float64 {
	return -v
}

// Reset clears every field.
func (e *Engine) Reset() {
	*e = Engine{}
}
