package exporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"edease/pkg/timetable"
)

// CSVTitle is the first line of every CSV export
const CSVTitle = "EdEase Timetable"

// emptyCell marks a grid cell with no slot
const emptyCell = "-"

// WriteCSV writes the timetable as a grid: one row per time label, one column per day
func WriteCSV(grid timetable.Grid, slots []timetable.Slot, w io.Writer) error {
	cw := csv.NewWriter(w)

	header := append([]string{"Time"}, grid.Days...)
	records := [][]string{{CSVTitle}, {}, header}

	for _, t := range grid.Times {
		row := []string{t}
		for _, day := range grid.Days {
			cell := emptyCell
			if s, ok := timetable.Find(slots, day, t); ok && s.Subject != "" {
				cell = s.Subject
			}
			row = append(row, cell)
		}
		records = append(records, row)
	}

	if err := cw.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}
