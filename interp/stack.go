package interp

import (
	"github.com/edwingeng/deque"
	"github.com/timewinder-dev/rpn/vm"
)

// Stack is the operand stack for a single line. It is not reused across
// lines.
type Stack struct {
	items deque.Deque
}

func NewStack() *Stack {
	return &Stack{
		items: deque.NewDeque(),
	}
}

func (s *Stack) Push(v vm.Value) {
	s.items.PushBack(v)
}

func (s *Stack) Pop() (vm.Value, error) {
	if s.items.Len() == 0 {
		return nil, ErrStackUnderflow
	}
	return s.items.PopBack().(vm.Value), nil
}

func (s *Stack) Peek() (vm.Value, error) {
	if s.items.Len() == 0 {
		return nil, ErrEmptyStack
	}
	return s.items.Back().(vm.Value), nil
}

func (s *Stack) Len() int {
	return s.items.Len()
}

// Values returns a copy of the stack, bottom first.
func (s *Stack) Values() []vm.Value {
	n := s.items.Len()
	out := make([]vm.Value, 0, n)
	// One full rotation leaves the deque in its original order.
	for i := 0; i < n; i++ {
		v := s.items.PopFront()
		out = append(out, v.(vm.Value))
		s.items.PushBack(v)
	}
	return out
}
