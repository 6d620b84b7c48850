package interp

import "errors"

var (
	// ErrStackUnderflow is returned when an operator needs more operands
	// than the stack holds.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrEmptyStack is returned when a result is requested from an empty
	// stack, which happens for empty input.
	ErrEmptyStack = errors.New("stack is empty")
	// ErrUndefinedVariable is returned by Variables.Get. The evaluator never
	// surfaces it; a missed lookup pushes the raw name instead.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrInvalidOperand is returned when an operator receives a value that
	// is not a number.
	ErrInvalidOperand = errors.New("invalid operand")
	// ErrDivisionByZero is only returned with Options.StrictDivision.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidAssignment is only returned with Options.StrictAssignment.
	ErrInvalidAssignment = errors.New("invalid assignment target")
)
