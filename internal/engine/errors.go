package engine

import (
	"errors"
	"fmt"
)

// ErrCalculator matches every error produced by this package via errors.Is.
var ErrCalculator = errors.New("calculator error")

// UnsupportedOperationError reports an operation key missing from the registry.
type UnsupportedOperationError struct {
	Op Op
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("Error: Unsupported operation: %s", e.Op)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrCalculator }

// MissingOperandError reports a calculation attempted before its operands were set.
type MissingOperandError struct {
	Operand string // "First" or "Second"
}

func (e *MissingOperandError) Error() string {
	return fmt.Sprintf("Error: %s operand not set", e.Operand)
}

func (e *MissingOperandError) Is(target error) bool { return target == ErrCalculator }

// DivisionByZeroError is returned by divide and reciprocal for a zero divisor.
type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string { return "Error: Division by zero" }

func (e *DivisionByZeroError) Is(target error) bool { return target == ErrCalculator }

// DomainError reports an operand outside the domain of an operation.
type DomainError struct {
	Op    Op
	Value float64
}

func (e *DomainError) Error() string {
	return "Error: Cannot calculate square root of negative number"
}

func (e *DomainError) Is(target error) bool { return target == ErrCalculator }

// CalculationError is the catch-all for failures without a more specific kind.
type CalculationError struct {
	Msg string
	Err error
}

func (e *CalculationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Error: %s: %v", e.Msg, e.Err)
	}
	return "Error: " + e.Msg
}

func (e *CalculationError) Unwrap() error { return e.Err }

func (e *CalculationError) Is(target error) bool { return target == ErrCalculator }

// wrap passes typed errors through and folds anything else into a CalculationError.
func wrap(err error) error {
	if err == nil || errors.Is(err, ErrCalculator) {
		return err
	}
	return &CalculationError{Msg: "Calculation error", Err: err}
}
