package assistant

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edease/pkg/store"
	"edease/pkg/timetable"
)

// memoryPersister keeps the last saved state in memory
type memoryPersister struct {
	state   *store.State
	saves   int
	saveErr error
}

func (m *memoryPersister) Load() (*store.State, error) {
	if m.state == nil {
		return &store.State{}, nil
	}
	return m.state, nil
}

func (m *memoryPersister) Save(state *store.State) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.state = state
	return nil
}

func newTestSession(t *testing.T, p Persister) *Session {
	t.Helper()
	s, err := NewSession(timetable.NewInterpreter(timetable.DefaultGrid()), p)
	require.NoError(t, err)
	return s
}

func TestSession_SubmitUpdatesSlotsAndHistory(t *testing.T) {
	p := &memoryPersister{}
	s := newTestSession(t, p)

	res, err := s.Submit(context.Background(), "add Science at 10 AM on Monday")
	require.NoError(t, err)
	assert.True(t, res.Changed)

	assert.Equal(t, []timetable.Slot{{Day: "Monday", Time: "10 AM", Subject: "Science"}}, s.Slots())
	assert.Equal(t, []store.HistoryEntry{
		{Role: store.RoleUser, Text: "add Science at 10 AM on Monday"},
		{Role: store.RoleAssistant, Text: "Added Science at 10 AM on Monday"},
	}, s.History())

	require.NotNil(t, p.state)
	assert.Equal(t, s.Slots(), p.state.Slots)
	assert.Equal(t, 1, p.saves)
}

func TestSession_HistoryKeepsLastSixLines(t *testing.T) {
	s := newTestSession(t, nil)

	for i := 1; i <= 4; i++ {
		_, err := s.Submit(context.Background(), fmt.Sprintf("add Subject%d at %d AM on Monday", i, i+7))
		require.NoError(t, err)
	}

	h := s.History()
	require.Len(t, h, HistoryLimit)
	assert.Equal(t, "add Subject2 at 9 AM on Monday", h[0].Text)
	assert.Equal(t, "Added Subject4 at 11 AM on Monday", h[5].Text)
}

func TestSession_RestoresSavedState(t *testing.T) {
	p := &memoryPersister{state: &store.State{
		Slots: []timetable.Slot{{Day: "Friday", Time: "2 PM", Subject: "Art"}},
		History: []store.HistoryEntry{
			{Role: store.RoleUser, Text: "add Art at 2 PM on Friday"},
			{Role: store.RoleAssistant, Text: "Added Art at 2 PM on Friday"},
		},
	}}

	s := newTestSession(t, p)

	assert.Equal(t, p.state.Slots, s.Slots())
	assert.Len(t, s.History(), 2)

	res, err := s.Submit(context.Background(), "clear schedule")
	require.NoError(t, err)
	assert.Equal(t, timetable.ClearedMessage, res.Message)
	assert.Empty(t, s.Slots())
}

func TestSession_SaveFailureIsReported(t *testing.T) {
	p := &memoryPersister{saveErr: errors.New("disk full")}
	s := newTestSession(t, p)

	_, err := s.Submit(context.Background(), "add Science at 10 AM on Monday")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	// The command still applies in memory
	assert.Len(t, s.Slots(), 1)
}

func TestSession_Reset(t *testing.T) {
	p := &memoryPersister{}
	s := newTestSession(t, p)

	_, err := s.Submit(context.Background(), "add History as first class everyday")
	require.NoError(t, err)
	require.Len(t, s.Slots(), 5)

	require.NoError(t, s.Reset())
	assert.Empty(t, s.Slots())
	assert.Empty(t, s.History())
	assert.Empty(t, p.state.Slots)
}

func TestSession_ConcurrentSubmitsAreSerialised(t *testing.T) {
	s := newTestSession(t, nil)
	days := timetable.DefaultDays

	var wg sync.WaitGroup
	for _, day := range days {
		for _, tm := range timetable.DefaultTimes {
			wg.Add(1)
			go func(day, tm string) {
				defer wg.Done()
				_, _ = s.Submit(context.Background(), fmt.Sprintf("add Study at %s on %s", tm, day))
			}(day, tm)
		}
	}
	wg.Wait()

	assert.Len(t, s.Slots(), len(days)*len(timetable.DefaultTimes))
}

func TestSession_WithFileStore(t *testing.T) {
	st := store.New(filepath.Join(t.TempDir(), "session.json"))

	s := newTestSession(t, st)
	_, err := s.Submit(context.Background(), "add Math as last class everyday")
	require.NoError(t, err)

	reopened := newTestSession(t, st)
	assert.Equal(t, s.Slots(), reopened.Slots())
	assert.Equal(t, s.History(), reopened.History())
}
