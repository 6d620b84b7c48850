package vm

type Value interface {
	isValue()
}

// NumberValue is a numeric literal or the result of an arithmetic operator.
type NumberValue float64

func (NumberValue) isValue() {}

// NameValue is a token that was not a literal, an operator, or a bound
// variable. It sits on the stack until an assignment consumes it.
type NameValue string

func (NameValue) isValue() {}

// RefValue is the value of a variable at the time it was looked up.
type RefValue struct {
	Name   string
	Number float64
}

func (RefValue) isValue() {}

// NoneValue is what a line evaluates to when nothing is left on the stack.
type NoneValue struct{}

func (NoneValue) isValue() {}

var None = NoneValue{}

// AsNumber unwraps the numeric content of v. Names and None are not numeric.
func AsNumber(v Value) (float64, bool) {
	switch val := v.(type) {
	case NumberValue:
		return float64(val), true
	case RefValue:
		return val.Number, true
	}
	return 0, false
}

func IsNone(v Value) bool {
	_, ok := v.(NoneValue)
	return ok
}
