package assistant

import (
	"context"
	"fmt"
	"sync"

	"edease/pkg/store"
	"edease/pkg/timetable"
)

// HistoryLimit is the number of chat lines kept (three exchanges)
const HistoryLimit = 6

// Persister loads and saves session state. *store.Store satisfies it.
type Persister interface {
	Load() (*store.State, error)
	Save(state *store.State) error
}

// Session owns the slot set and chat history of one user.
// Submissions are applied one at a time in arrival order.
type Session struct {
	mu      sync.Mutex
	interp  *timetable.Interpreter
	persist Persister
	slots   []timetable.Slot
	history []store.HistoryEntry
}

// NewSession creates a session and restores saved state when persist is non-nil
func NewSession(interp *timetable.Interpreter, persist Persister) (*Session, error) {
	s := &Session{
		interp:  interp,
		persist: persist,
		slots:   []timetable.Slot{},
	}

	if persist == nil {
		return s, nil
	}

	state, err := persist.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to restore session: %w", err)
	}
	s.slots = timetable.Clone(state.Slots)
	s.history = trimHistory(state.History)

	return s, nil
}

// Grid returns the grid the session's interpreter works on
func (s *Session) Grid() timetable.Grid {
	return s.interp.Grid()
}

// Submit interprets command against the current slots, records the exchange
// and persists the result. The returned error only reports persistence
// failures; the in-memory state is updated regardless.
func (s *Session) Submit(ctx context.Context, command string) (timetable.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.interp.Interpret(ctx, command, s.slots)
	s.slots = timetable.Clone(res.Slots)
	s.history = trimHistory(append(s.history,
		store.HistoryEntry{Role: store.RoleUser, Text: command},
		store.HistoryEntry{Role: store.RoleAssistant, Text: res.Message},
	))

	return res, s.save()
}

// Reset empties the schedule and the conversation
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.slots = []timetable.Slot{}
	s.history = nil
	return s.save()
}

// Slots returns a copy of the current slot set
func (s *Session) Slots() []timetable.Slot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return timetable.Clone(s.slots)
}

// History returns a copy of the recent chat lines, oldest first
func (s *Session) History() []store.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]store.HistoryEntry(nil), s.history...)
}

func (s *Session) save() error {
	if s.persist == nil {
		return nil
	}
	state := &store.State{
		Slots:   timetable.Clone(s.slots),
		History: append([]store.HistoryEntry(nil), s.history...),
	}
	if err := s.persist.Save(state); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func trimHistory(h []store.HistoryEntry) []store.HistoryEntry {
	if len(h) <= HistoryLimit {
		return h
	}
	return append([]store.HistoryEntry(nil), h[len(h)-HistoryLimit:]...)
}
