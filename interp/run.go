package interp

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rpn/vm"
)

// Observer is called after every successful step with the 0-based token
// index. The stack must not be modified.
type Observer func(index int, token string, stack *Stack)

// Evaluate runs a line of postfix tokens against vars with the default
// options. It returns vm.None if the line left nothing on the stack.
func Evaluate(tokens []string, vars *Variables) (vm.Value, error) {
	return EvaluateWith(DefaultOptions, tokens, vars, nil)
}

// EvaluateWith runs tokens left to right on a fresh stack. Any failure
// aborts the line, but assignments made before it are kept in vars.
func EvaluateWith(opts Options, tokens []string, vars *Variables, observe Observer) (vm.Value, error) {
	if len(tokens) == 0 {
		return nil, ErrEmptyStack
	}
	stack := NewStack()
	for i, tok := range tokens {
		err := Step(opts, stack, vars, tok)
		if err != nil {
			log.Trace().Int("index", i).Str("token", tok).Err(err).Msg("Evaluate: step error")
			return nil, fmt.Errorf("token %d %q: %w", i+1, tok, err)
		}
		if observe != nil {
			observe(i, tok, stack)
		}
	}
	if stack.Len() == 0 {
		log.Trace().Int("tokens", len(tokens)).Msg("Evaluate: no result")
		return vm.None, nil
	}
	top, err := stack.Peek()
	if err != nil {
		return nil, err
	}
	if ref, ok := top.(vm.RefValue); ok {
		return vm.NumberValue(ref.Number), nil
	}
	return top, nil
}
