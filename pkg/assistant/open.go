package assistant

import (
	"log/slog"

	"edease/pkg/gemini"
	"edease/pkg/store"
	"edease/pkg/timetable"
)

// Open builds a session on the default grid, backed by the Gemini API and
// the session file in the user's home directory. Without an API key the
// session still works; collaborator calls fall back to their fixed replies.
func Open(apiKey, model string) (*Session, error) {
	st, err := store.Open()
	if err != nil {
		return nil, err
	}

	client := gemini.NewClient(apiKey, model)
	opts := append(New(client).Options(), timetable.WithLogger(slog.Default()))

	slog.Debug("opening session", "store", st.Path(), "model", client.Model(), "api_key_set", apiKey != "")
	return NewSession(timetable.NewInterpreter(timetable.DefaultGrid(), opts...), st)
}
