package exporter

import (
	"bytes"
	"strings"
	"testing"

	"edease/pkg/timetable"
)

func TestWriteCSV(t *testing.T) {
	slots := []timetable.Slot{
		{Day: "Monday", Time: "8 AM", Subject: "Math"},
		{Day: "Friday", Time: "3 PM", Subject: "Art, Design"},
		{Day: "Saturday", Time: "8 AM", Subject: "Not on grid"},
	}

	var buf bytes.Buffer
	if err := WriteCSV(timetable.DefaultGrid(), slots, &buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	if len(lines) != 11 {
		t.Fatalf("expected title, blank line, header and 8 rows, got %d lines:\n%s", len(lines), buf.String())
	}

	expected := map[int]string{
		0:  "EdEase Timetable",
		1:  "",
		2:  "Time,Monday,Tuesday,Wednesday,Thursday,Friday",
		3:  "8 AM,Math,-,-,-,-",
		4:  "9 AM,-,-,-,-,-",
		10: `3 PM,-,-,-,-,"Art, Design"`,
	}
	for i, want := range expected {
		if lines[i] != want {
			t.Errorf("line %d: expected %q, got %q", i, want, lines[i])
		}
	}
}
