package interp

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rpn/vm"
)

// Options switch on stricter checking. The zero value keeps IEEE division
// and positional assignment.
type Options struct {
	// StrictDivision makes x 0 / fail with ErrDivisionByZero instead of
	// producing ±Inf or NaN.
	StrictDivision bool
	// StrictAssignment requires the slot under the assigned value to be a
	// variable name. Without it, "5 x =" stores under the key "5", and an
	// already bound name is replaced by its value before = sees it.
	StrictAssignment bool
}

var DefaultOptions = Options{}

// Step applies a single token to the stack.
func Step(opts Options, stack *Stack, vars *Variables, token string) error {
	switch vm.Classify(token) {
	case vm.NumberToken:
		f, _ := vm.ParseNumber(token)
		stack.Push(vm.NumberValue(f))
		log.Trace().Str("token", token).Float64("value", f).Int("stack_depth", stack.Len()).Msg("  PUSH")
		return nil
	case vm.OperatorToken:
		op, _ := vm.ParseOpcode(token)
		if !op.IsArithmetic() {
			return assign(opts, stack, vars)
		}
		b, err := stack.Pop()
		if err != nil {
			return fmt.Errorf("%w: %s needs two operands", err, token)
		}
		a, err := stack.Pop()
		if err != nil {
			return fmt.Errorf("%w: %s needs two operands", err, token)
		}
		v, err := numericOp(opts, op, a, b)
		if err != nil {
			log.Trace().Str("op", op.String()).Interface("a", a).Interface("b", b).Err(err).Msg("  NUMERIC_OP: error")
			return err
		}
		stack.Push(v)
		log.Trace().Str("op", op.String()).Interface("a", a).Interface("b", b).Interface("result", v).Int("stack_depth", stack.Len()).Msg("  NUMERIC_OP")
		return nil
	}

	if val, ok := vars.Lookup(token); ok {
		stack.Push(vm.RefValue{Name: token, Number: val})
		log.Trace().Str("variable", token).Float64("value", val).Int("stack_depth", stack.Len()).Msg("  GETVAL")
		return nil
	}
	// Unbound: keep the name around for a later =.
	stack.Push(vm.NameValue(token))
	log.Trace().Str("name", token).Int("stack_depth", stack.Len()).Msg("  PUSHNAME")
	return nil
}

func assign(opts Options, stack *Stack, vars *Variables) error {
	val, err := stack.Pop()
	if err != nil {
		return fmt.Errorf("%w: = needs a name and a value", err)
	}
	target, err := stack.Pop()
	if err != nil {
		return fmt.Errorf("%w: = needs a name and a value", err)
	}
	f, ok := vm.AsNumber(val)
	if !ok {
		return fmt.Errorf("%w: cannot assign %s", ErrInvalidOperand, describe(val))
	}
	name, err := assignmentKey(opts, target)
	if err != nil {
		return err
	}
	vars.Insert(name, f)
	log.Trace().Str("variable", name).Float64("value", f).Int("stack_depth", stack.Len()).Msg("  SETVAL")
	return nil
}

func assignmentKey(opts Options, target vm.Value) (string, error) {
	switch t := target.(type) {
	case vm.NameValue:
		return string(t), nil
	case vm.RefValue:
		if opts.StrictAssignment {
			return t.Name, nil
		}
		return FormatNumber(t.Number, -1), nil
	case vm.NumberValue:
		if opts.StrictAssignment {
			return "", fmt.Errorf("%w: %s is a number", ErrInvalidAssignment, describe(t))
		}
		return FormatNumber(float64(t), -1), nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidAssignment, describe(target))
}

func numericOp(opts Options, op vm.Opcode, a, b vm.Value) (vm.Value, error) {
	av, ok := vm.AsNumber(a)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects numbers, got %s", ErrInvalidOperand, op.Symbol(), describe(a))
	}
	bv, ok := vm.AsNumber(b)
	if !ok {
		return nil, fmt.Errorf("%w: %s expects numbers, got %s", ErrInvalidOperand, op.Symbol(), describe(b))
	}
	if op == vm.DIVIDE && bv == 0 && opts.StrictDivision {
		return nil, ErrDivisionByZero
	}
	return floatOp(op, av, bv), nil
}

func floatOp(op vm.Opcode, a, b float64) vm.Value {
	switch op {
	case vm.ADD:
		return vm.NumberValue(a + b)
	case vm.SUBTRACT:
		return vm.NumberValue(a - b)
	case vm.MULTIPLY:
		return vm.NumberValue(a * b)
	case vm.DIVIDE:
		return vm.NumberValue(a / b)
	}
	panic("Unhandled floatOp code")
}

func describe(v vm.Value) string {
	switch val := v.(type) {
	case vm.NameValue:
		return fmt.Sprintf("undefined name %q", string(val))
	default:
		return FormatValue(v)
	}
}
