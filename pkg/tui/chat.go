package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"edease/pkg/assistant"
	"edease/pkg/store"
	"edease/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// CommandTimeout bounds a single command, including any model call
const CommandTimeout = 60 * time.Second

const welcome = `Hello! I can help you manage your timetable. Try:
  • Add classes at specific times
  • Add first/last daily classes
  • Schedule breaks
  • Add classes in time ranges
  • Get schedule optimization
Type "exit" or leave the line empty to go back.`

// RunChatTUI runs the conversational loop until the user leaves
func RunChatTUI(session *assistant.Session) error {
	fmt.Println(accentStyle.Render("EdEase Assistant"))
	fmt.Println(welcome)
	fmt.Println()

	for _, h := range session.History() {
		printLine(h)
	}
	printGrid(session)

	for {
		var message string

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Your message").
					Placeholder("add Science at 10 AM on Monday").
					Value(&message),
			),
		).WithTheme(GetTheme())

		if err := form.Run(); err != nil {
			return ignoreAbort(err)
		}

		message = strings.TrimSpace(message)
		if message == "" || strings.EqualFold(message, "exit") || strings.EqualFold(message, "quit") {
			return nil
		}

		res, err := Submit(session, message)
		printLine(store.HistoryEntry{Role: store.RoleUser, Text: message})
		printLine(store.HistoryEntry{Role: store.RoleAssistant, Text: res.Message})
		if err != nil {
			fmt.Println(errorStyle.Render(err.Error()))
		}

		if res.Changed {
			printGrid(session)
		}
	}
}

// Submit runs one command behind a spinner, bounded by CommandTimeout
func Submit(session *assistant.Session, message string) (timetable.Result, error) {
	var (
		res  timetable.Result
		err  error
		once sync.Once
	)

	submit := func() {
		ctx, cancel := context.WithTimeout(context.Background(), CommandTimeout)
		defer cancel()
		res, err = session.Submit(ctx, message)
	}

	if spinErr := spinner.New().
		Title("Thinking...").
		Action(func() { once.Do(submit) }).
		Run(); spinErr != nil {
		slog.Debug("spinner unavailable", "error", spinErr)
	}

	// Runs the command when the spinner never started it, and waits for it otherwise
	once.Do(submit)

	return res, err
}

func printLine(h store.HistoryEntry) {
	if h.Role == store.RoleUser {
		fmt.Printf("%s %s\n", mutedStyle.Render("You:"), h.Text)
		return
	}
	fmt.Printf("%s %s\n\n", accentStyle.Render("EdEase:"), h.Text)
}
