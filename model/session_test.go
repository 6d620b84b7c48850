package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timewinder-dev/rpn/cas"
	"github.com/timewinder-dev/rpn/interp"
	"github.com/timewinder-dev/rpn/vm"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	s, err := DefaultConfig().BuildSession()
	require.NoError(t, err)
	return s
}

func TestSessionSharesVariables(t *testing.T) {
	s := newSession(t)
	result, err := s.EvalLine("x 5 =")
	require.NoError(t, err)
	assert.True(t, vm.IsNone(result))

	result, err = s.EvalLine("x")
	require.NoError(t, err)
	assert.Equal(t, vm.NumberValue(5), result)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := newSession(t)
	b := newSession(t)
	assert.NotEqual(t, a.ID, b.ID)

	_, err := a.EvalLine("x 1 =")
	require.NoError(t, err)
	result, err := b.EvalLine("x")
	require.NoError(t, err)
	assert.Equal(t, vm.NameValue("x"), result)
}

func TestSessionHistory(t *testing.T) {
	s := newSession(t)
	_, err := s.EvalLine("3 4 +")
	require.NoError(t, err)
	_, err = s.EvalLine("x 5 =")
	require.NoError(t, err)
	_, err = s.EvalLine("y 1 +")
	require.ErrorIs(t, err, interp.ErrInvalidOperand)

	h := s.History()
	require.Len(t, h, 3)
	assert.Equal(t, vm.NumberValue(7), h[0].Result)
	assert.False(t, h[0].Mutated())
	assert.True(t, h[1].Mutated())
	assert.Equal(t, h[1].After, h[2].Before)
	assert.False(t, h[2].Mutated())
	assert.ErrorIs(t, h[2].Err, interp.ErrInvalidOperand)

	out := FormatHistory(h, -1)
	assert.Contains(t, out, "3 4 +  => 7")
	assert.Contains(t, out, "y 1 +  ! ")
}

func TestSessionHistoryBounded(t *testing.T) {
	s, err := NewSession(interp.DefaultOptions, 2)
	require.NoError(t, err)
	for _, line := range []string{"1", "2", "3", "4"} {
		_, err := s.EvalLine(line)
		require.NoError(t, err)
	}
	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "3", h[0].Line)
	assert.Equal(t, "4", h[1].Line)
}

func TestSessionUndo(t *testing.T) {
	s := newSession(t)
	_, err := s.EvalLine("x 1 =")
	require.NoError(t, err)
	_, err = s.EvalLine("y 2 =")
	require.NoError(t, err)
	_, err = s.EvalLine("x y +")
	require.NoError(t, err)

	entry, err := s.Undo()
	require.NoError(t, err)
	assert.Equal(t, "y 2 =", entry.Line)
	assert.Equal(t, []string{"x"}, s.Variables().Names())
	require.Len(t, s.History(), 1)

	// The restored table keeps working with later lines.
	_, err = s.EvalLine("z 3 =")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "z"}, s.Variables().Names())

	_, err = s.Undo()
	require.NoError(t, err)
	_, err = s.Undo()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Variables().Len())
	_, err = s.Undo()
	require.ErrorIs(t, err, ErrNothingToUndo)
}

func TestSessionUndoFailedAssignment(t *testing.T) {
	s := newSession(t)
	_, err := s.EvalLine("x 1 = +")
	require.ErrorIs(t, err, interp.ErrStackUnderflow)
	v, ok := s.Variables().Lookup("x")
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	entry, err := s.Undo()
	require.NoError(t, err)
	assert.Error(t, entry.Err)
	assert.Equal(t, 0, s.Variables().Len())
}

func TestSessionStrictOptions(t *testing.T) {
	c := DefaultConfig()
	c.StrictDivision = true
	s, err := c.BuildSession()
	require.NoError(t, err)
	_, err = s.EvalLine("1 0 /")
	require.ErrorIs(t, err, interp.ErrDivisionByZero)
}

func TestSessionTrace(t *testing.T) {
	s := newSession(t)
	var steps []string
	result, err := s.TraceLine("2 3 *", func(i int, tok string, stack *interp.Stack) {
		steps = append(steps, FormatTraceStep(i, tok, stack))
	})
	require.NoError(t, err)
	assert.Equal(t, vm.NumberValue(6), result)
	require.Len(t, steps, 3)
	assert.Contains(t, steps[2], "[6]")
}

var errStoreFull = errors.New("store full")

// brokenStore refuses every write.
type brokenStore struct {
	cas.CAS
}

func (brokenStore) Put(item cas.Hashable) (cas.Hash, error) {
	return 0, errStoreFull
}

func TestSessionSnapshotFailureKeepsEvalError(t *testing.T) {
	s := newSession(t)
	s.store = brokenStore{CAS: s.store}

	_, err := s.EvalLine("y 1 +")
	require.ErrorIs(t, err, interp.ErrInvalidOperand)
	require.ErrorIs(t, err, errStoreFull)

	result, err := s.EvalLine("x 5 =")
	require.ErrorIs(t, err, errStoreFull)
	assert.Nil(t, result)

	h := s.History()
	require.Len(t, h, 2)
	assert.Equal(t, "y 1 +", h[0].Line)
	assert.ErrorIs(t, h[0].Err, interp.ErrInvalidOperand)
	assert.Equal(t, "x 5 =", h[1].Line)
	assert.False(t, h[1].Mutated())
}
