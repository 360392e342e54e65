package exporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"edease/pkg/timetable"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"
)

// hourLayout parses grid labels such as "8 AM" or "12 PM"
const hourLayout = "3 PM"

// GenerateICS writes every slot as a weekly recurring one-hour event, anchored
// to the week containing weekStart and in weekStart's location.
// Slots whose day or time label cannot be placed are skipped.
func GenerateICS(slots []timetable.Slot, weekStart time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//EdEase//Timetable//EN")

	monday := startOfWeek(weekStart)
	now := time.Now()

	for _, s := range slots {
		offset, ok := weekdayOffset(s.Day)
		if !ok {
			continue
		}

		hour, err := time.Parse(hourLayout, s.Time)
		if err != nil {
			continue // Skip labels outside the "3 PM" form
		}

		day := monday.AddDate(0, 0, offset)
		start := time.Date(day.Year(), day.Month(), day.Day(), hour.Hour(), 0, 0, 0, monday.Location())

		event := cal.AddEvent(uuid.NewString())
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(start.Add(time.Hour))
		event.SetSummary(s.Subject)
		event.AddRrule("FREQ=WEEKLY")

		if s.IsBreak() {
			event.SetDescription("Break")
		} else {
			event.SetDescription(fmt.Sprintf("%s, %s", s.Day, s.Time))
		}
	}

	return cal.SerializeTo(w)
}

// startOfWeek returns midnight on the Monday of t's week
func startOfWeek(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, t.Location())
}

// weekdayOffset maps a day name to its distance from Monday
func weekdayOffset(day string) (int, bool) {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		if strings.EqualFold(wd.String(), day) {
			return (int(wd) + 6) % 7, true
		}
	}
	return 0, false
}
