package tui

import (
	"errors"
	"fmt"

	"edease/pkg/assistant"
	"edease/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	classStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	breakStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Italic(true)
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
)

// RenderGrid draws the weekly timetable as a bordered table, times down and days across
func RenderGrid(grid timetable.Grid, slots []timetable.Slot) string {
	headers := append([]string{""}, grid.Days...)

	rows := make([][]string, 0, len(grid.Times))
	for _, t := range grid.Times {
		row := []string{mutedStyle.Render(t)}
		for _, day := range grid.Days {
			s, ok := timetable.Find(slots, day, t)
			switch {
			case !ok:
				row = append(row, emptyStyle.Render("·"))
			case s.IsBreak():
				row = append(row, breakStyle.Render(s.Subject))
			default:
				row = append(row, classStyle.Render(s.Subject))
			}
		}
		rows = append(rows, row)
	}

	headerStyle := accentStyle.Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Render()
}

func printGrid(session *assistant.Session) {
	slots := session.Slots()
	fmt.Println(RenderGrid(session.Grid(), slots))
	if len(slots) == 0 {
		fmt.Println(mutedStyle.Render("The timetable is empty. Try 'add Science at 10 AM on Monday'."))
	}
}

// ignoreAbort treats ctrl+c in a form as a normal exit
func ignoreAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
