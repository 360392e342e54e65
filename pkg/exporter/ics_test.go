package exporter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"edease/pkg/timetable"
)

func TestGenerateICS(t *testing.T) {
	slots := []timetable.Slot{
		{Day: "Monday", Time: "9 AM", Subject: "Lineare Algebra"},
		{Day: "Wednesday", Time: "2 PM", Subject: timetable.BreakLabel},
		{Day: "Someday", Time: "9 AM", Subject: "Skipped day"},
		{Day: "Friday", Time: "noon", Subject: "Skipped time"},
	}

	// Wednesday 4 March 2026; the week starts on Monday 2 March
	weekStart := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)

	var buf bytes.Buffer
	err := GenerateICS(slots, weekStart, &buf)
	if err != nil {
		t.Fatalf("GenerateICS failed: %v", err)
	}

	output := buf.String()

	if !strings.Contains(output, "SUMMARY:Lineare Algebra") {
		t.Errorf("Expected ICS to contain slot summary, got: \n%s", output)
	}

	if !strings.Contains(output, "DTSTART:20260302T090000Z") {
		t.Errorf("Expected Monday 9 AM start in ICS, got: \n%s", output)
	}

	if !strings.Contains(output, "DTSTART:20260304T140000Z") {
		t.Errorf("Expected Wednesday 2 PM start in ICS, got: \n%s", output)
	}

	if !strings.Contains(output, "RRULE:FREQ=WEEKLY") {
		t.Errorf("Expected weekly recurrence rule in ICS")
	}

	if n := strings.Count(output, "BEGIN:VEVENT"); n != 2 {
		t.Errorf("Expected 2 events (unplaceable slots skipped), got %d", n)
	}
}

func TestStartOfWeek(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC)
	got := startOfWeek(sunday)

	want := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
