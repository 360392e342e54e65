package timetable

// BreakLabel is the subject written into every cell of a scheduled break
const BreakLabel = "⏸ Break"

// DefaultDays are the weekdays shown in the grid, in display order
var DefaultDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// DefaultTimes are the hour labels of the grid. Order matters: ranges and
// ordinals are resolved by position in this list, not by clock time.
var DefaultTimes = []string{"8 AM", "9 AM", "10 AM", "11 AM", "12 PM", "1 PM", "2 PM", "3 PM"}

// Slot is a single subject assignment in the weekly grid, keyed by Day and Time
type Slot struct {
	Day     string `json:"day"`
	Time    string `json:"time"`
	Subject string `json:"subject"`
}

// IsBreak reports whether the slot holds a break rather than a class
func (s Slot) IsBreak() bool {
	return s.Subject == BreakLabel
}

// Grid describes the ordered days and time labels a timetable is laid out on
type Grid struct {
	Days  []string
	Times []string
}

// DefaultGrid returns the five-day, eight-hour grid
func DefaultGrid() Grid {
	return Grid{
		Days:  append([]string(nil), DefaultDays...),
		Times: append([]string(nil), DefaultTimes...),
	}
}

// TimeIndex returns the position of label in the grid's time list, or -1
func (g Grid) TimeIndex(label string) int {
	for i, t := range g.Times {
		if t == label {
			return i
		}
	}
	return -1
}

// FirstTime returns the first time label of the grid
func (g Grid) FirstTime() string {
	if len(g.Times) == 0 {
		return ""
	}
	return g.Times[0]
}

// LastTime returns the last time label of the grid
func (g Grid) LastTime() string {
	if len(g.Times) == 0 {
		return ""
	}
	return g.Times[len(g.Times)-1]
}

// Find returns the slot occupying (day, time), if any
func Find(slots []Slot, day, time string) (Slot, bool) {
	for _, s := range slots {
		if s.Day == day && s.Time == time {
			return s, true
		}
	}
	return Slot{}, false
}

// Clone returns a copy of slots that shares no backing array with the input
func Clone(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out
}

// Assign returns a new slot set where every slot in added replaces whatever
// occupied its (day, time) in current. Existing occupants are filtered out
// first and the new slots are appended in order, so a later entry in added
// also wins over an earlier one with the same key.
func Assign(current []Slot, added ...Slot) []Slot {
	type key struct{ day, time string }

	taken := make(map[key]int, len(added))
	for i, s := range added {
		taken[key{s.Day, s.Time}] = i
	}

	out := make([]Slot, 0, len(current)+len(added))
	for _, s := range current {
		if _, ok := taken[key{s.Day, s.Time}]; !ok {
			out = append(out, s)
		}
	}
	for i, s := range added {
		// Only the last assignment for a key survives
		if taken[key{s.Day, s.Time}] == i {
			out = append(out, s)
		}
	}
	return out
}

// ReplaceHour drops every slot at time, whatever its day, and appends added
func ReplaceHour(current []Slot, time string, added ...Slot) []Slot {
	out := make([]Slot, 0, len(current)+len(added))
	for _, s := range current {
		if s.Time != time {
			out = append(out, s)
		}
	}
	return append(out, added...)
}
