package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"edease/pkg/timetable"
)

// Roles used in chat history entries
const (
	RoleUser      = "You"
	RoleAssistant = "AI"
)

// HistoryEntry is one line of the assistant conversation
type HistoryEntry struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// State represents the disk data format of a session
type State struct {
	SavedAt time.Time        `json:"saved_at"`
	Slots   []timetable.Slot `json:"slots"`
	History []HistoryEntry   `json:"history,omitempty"`
}

// Store mirrors session state to a single JSON file
type Store struct {
	path string
}

// New returns a store backed by the file at path
func New(path string) *Store {
	return &Store{path: path}
}

// Open returns a store at the default location (~/.edease/session.json)
func Open() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return New(path), nil
}

// DefaultPath returns the absolute path of the session file
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".edease", "session.json"), nil
}

// Path returns the file the store reads and writes
func (s *Store) Path() string {
	return s.path
}

// Load reads the saved session. A missing file yields an empty state.
func (s *Store) Load() (*State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &State{Slots: []timetable.Slot{}}, nil
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse session JSON: %w", err)
	}
	if state.Slots == nil {
		state.Slots = []timetable.Slot{}
	}

	return &state, nil
}

// Save writes the session to disk, stamping SavedAt
func (s *Store) Save(state *State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("could not create session directory: %w", err)
	}

	state.SavedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize session: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}

	return nil
}

// Reset deletes the saved session, if any
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
