package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/timewinder-dev/rpn/cas"
	"github.com/timewinder-dev/rpn/interp"
	"github.com/timewinder-dev/rpn/vm"
)

var ErrNothingToUndo = errors.New("nothing to undo")

// HistoryEntry records one evaluated line and the variable table hashes
// around it.
type HistoryEntry struct {
	Line   string
	Result vm.Value
	Err    error
	Before cas.Hash
	After  cas.Hash
}

// Mutated is true when the line changed the variable table, including lines
// that failed after an assignment.
func (h HistoryEntry) Mutated() bool {
	return h.Before != h.After
}

// A Session owns one variable table and evaluates lines against it in order.
// It is not safe for concurrent use; concurrent users each get their own.
type Session struct {
	ID      uuid.UUID
	Options interp.Options

	vars       *interp.Variables
	store      cas.CAS
	current    cas.Hash
	history    []HistoryEntry
	maxHistory int
	log        zerolog.Logger
}

func NewSession(opts interp.Options, historySize int) (*Session, error) {
	if historySize <= 0 {
		historySize = 100
	}
	id := uuid.New()
	s := &Session{
		ID:         id,
		Options:    opts,
		vars:       interp.NewVariables(),
		store:      cas.NewLRUCache(cas.NewMemoryCAS(), historySize),
		maxHistory: historySize,
		log:        log.With().Str("session", id.String()).Logger(),
	}
	h, err := s.store.Put(s.vars)
	if err != nil {
		return nil, fmt.Errorf("snapshotting empty table: %w", err)
	}
	s.current = h
	s.log.Debug().Interface("options", opts).Msg("Session started")
	return s, nil
}

func (s *Session) Variables() *interp.Variables {
	return s.vars
}

// History returns the recorded lines, oldest first.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// EvalLine tokenizes and evaluates a single line. The result is vm.None when
// the line leaves nothing to display.
func (s *Session) EvalLine(line string) (vm.Value, error) {
	return s.eval(line, nil)
}

// TraceLine is EvalLine with an observer called after every token.
func (s *Session) TraceLine(line string, observe interp.Observer) (vm.Value, error) {
	return s.eval(line, observe)
}

func (s *Session) eval(line string, observe interp.Observer) (vm.Value, error) {
	tokens := vm.Tokenize(line)
	result, evalErr := interp.EvaluateWith(s.Options, tokens, s.vars, observe)

	entry := HistoryEntry{
		Line:   line,
		Result: result,
		Err:    evalErr,
		Before: s.current,
	}
	after, err := s.store.Put(s.vars)
	if err != nil {
		// Without a snapshot the line can't be undone; keep it in the
		// history anyway.
		entry.After = entry.Before
		s.record(entry)
		s.log.Error().Str("line", line).Err(err).Msg("Snapshot failed")
		return nil, errors.Join(evalErr, fmt.Errorf("snapshotting variables: %w", err))
	}
	entry.After = after
	s.current = after
	s.record(entry)

	if evalErr != nil {
		s.log.Debug().Str("line", line).Err(evalErr).Msg("Line failed")
		return nil, evalErr
	}
	s.log.Debug().Str("line", line).Str("result", interp.FormatValue(result)).Bool("mutated", entry.Mutated()).Msg("Line evaluated")
	return result, nil
}

func (s *Session) record(entry HistoryEntry) {
	s.history = append(s.history, entry)
	if len(s.history) > s.maxHistory {
		s.history = s.history[len(s.history)-s.maxHistory:]
	}
}

// Undo puts the variable table back the way it was before the most recent
// line that changed it, and forgets that line and everything after it.
func (s *Session) Undo() (HistoryEntry, error) {
	for i := len(s.history) - 1; i >= 0; i-- {
		entry := s.history[i]
		if !entry.Mutated() {
			continue
		}
		snap, err := cas.Retrieve[interp.Variables](s.store, entry.Before)
		if err != nil {
			return HistoryEntry{}, fmt.Errorf("restoring %s: %w", entry.Before, err)
		}
		s.vars.Restore(snap)
		s.current = entry.Before
		s.history = s.history[:i]
		s.log.Debug().Str("line", entry.Line).Str("restored", entry.Before.String()).Msg("Undo")
		return entry, nil
	}
	return HistoryEntry{}, ErrNothingToUndo
}
