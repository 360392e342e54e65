package timetable

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	timeAtRe  = regexp.MustCompile(`(?i)at\s+(\d{1,2})\s*(am|pm)`)
	anyTimeRe = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
	rangeRe   = regexp.MustCompile(`(?i)between\s+(\d{1,2})\s*(am|pm)\s+and\s+(\d{1,2})\s*(am|pm)`)
	andRe     = regexp.MustCompile(`(?i)\s+and\s+`)
)

// ordinalIndex maps ordinal words to a position in the time list; "last" is resolved per grid
var ordinalIndex = map[string]int{
	"first":   0,
	"second":  1,
	"third":   2,
	"fourth":  3,
	"fifth":   4,
	"sixth":   5,
	"seventh": 6,
	"eighth":  7,
}

var errNoOptimizer = errors.New("no optimizer configured")

// patterns holds the regular expressions that depend on the grid's day names
type patterns struct {
	rangeDays *regexp.Regexp
	ordinal   *regexp.Regexp
	onDay     *regexp.Regexp
}

func compilePatterns(days []string) patterns {
	alts := make([]string, 0, len(days))
	for _, d := range days {
		alts = append(alts, regexp.QuoteMeta(strings.ToLower(d)))
	}
	day := strings.Join(alts, "|")

	return patterns{
		rangeDays: regexp.MustCompile(fmt.Sprintf(`(?i)on\s+((?:%s)(?:\s+and\s+(?:%s))*)`, day, day)),
		ordinal:   regexp.MustCompile(fmt.Sprintf(`(?i)as\s+(first|second|third|fourth|fifth|sixth|seventh|eighth|last)\s+class\s+on\s+(%s)`, day)),
		onDay:     regexp.MustCompile(fmt.Sprintf(`(?i)on\s+(%s)`, day)),
	}
}

// command is the input text in both its original and lowercased form
type command struct {
	raw   string
	lower string
}

func newCommand(input string) command {
	return command{raw: input, lower: strings.ToLower(input)}
}

// rule pairs a cheap keyword predicate with an extractor. The extractor may
// still decline (ok == false), in which case evaluation moves on.
type rule struct {
	name  string
	when  func(command) bool
	apply func(ctx context.Context, cmd command, slots []Slot) (Result, bool)
}

// ruleTable lists the rules in precedence order; the first one to apply wins
func (in *Interpreter) ruleTable() []rule {
	return []rule{
		{name: RuleOptimize, when: containsAny("optimize", "suggest"), apply: in.optimizeSchedule},
		{name: RuleClear, when: containsAny("clear schedule", "reset schedule"), apply: in.clearSchedule},
		{name: RuleLastEveryday, when: containsAny("last class everyday"), apply: in.lastClassEveryday},
		{name: RuleBreak, when: containsAny("break"), apply: in.breakEveryday},
		{name: RuleRange, when: containsAny("between"), apply: in.betweenRange},
		{name: RuleFirstEveryday, when: containsAny("first class everyday"), apply: in.firstClassEveryday},
		{name: RuleEveryDayAt, when: containsAll("every day", " at "), apply: in.everyDayAt},
		{name: RuleOrdinal, apply: in.ordinalClass},
		{name: RuleDayAndTime, apply: in.dayAndTime},
	}
}

func containsAny(subs ...string) func(command) bool {
	return func(c command) bool {
		for _, s := range subs {
			if strings.Contains(c.lower, s) {
				return true
			}
		}
		return false
	}
}

func containsAll(subs ...string) func(command) bool {
	return func(c command) bool {
		for _, s := range subs {
			if !strings.Contains(c.lower, s) {
				return false
			}
		}
		return true
	}
}

func (in *Interpreter) optimizeSchedule(ctx context.Context, _ command, slots []Slot) (Result, bool) {
	var (
		reply string
		err   = errNoOptimizer
	)
	if in.optimize != nil {
		reply, err = in.optimize(ctx, Clone(slots))
	}
	if err != nil {
		in.logger.Warn("optimization suggestions failed", "error", err)
		reply = OptimizeFallback
	}
	return Result{Slots: slots, Message: reply}, true
}

func (in *Interpreter) clearSchedule(_ context.Context, _ command, _ []Slot) (Result, bool) {
	return Result{Slots: []Slot{}, Message: ClearedMessage, Changed: true}, true
}

func (in *Interpreter) lastClassEveryday(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	if len(in.grid.Times) == 0 {
		return Result{}, false
	}
	subject := stripAdd(before(cmd.raw, " as "))
	return Result{
		Slots:   ReplaceHour(slots, in.grid.LastTime(), in.everyDay(in.grid.LastTime(), subject)...),
		Message: fmt.Sprintf("Added %s as the last class every day", subject),
		Changed: true,
	}, true
}

func (in *Interpreter) firstClassEveryday(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	if len(in.grid.Times) == 0 {
		return Result{}, false
	}
	subject := stripAdd(before(cmd.raw, " as "))
	return Result{
		Slots:   ReplaceHour(slots, in.grid.FirstTime(), in.everyDay(in.grid.FirstTime(), subject)...),
		Message: fmt.Sprintf("Added %s as the first class every day", subject),
		Changed: true,
	}, true
}

func (in *Interpreter) breakEveryday(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	m := timeAtRe.FindStringSubmatch(cmd.raw)
	if m == nil {
		return Result{}, false
	}
	if !strings.Contains(cmd.lower, "everyday") && !strings.Contains(cmd.lower, "every day") {
		return Result{}, false
	}

	time := hourLabel(m[1], m[2])
	return Result{
		Slots:   ReplaceHour(slots, time, in.everyDay(time, BreakLabel)...),
		Message: fmt.Sprintf("Added break at %s every day", time),
		Changed: true,
	}, true
}

func (in *Interpreter) betweenRange(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	rm := rangeRe.FindStringSubmatch(cmd.raw)
	dm := in.patterns.rangeDays.FindStringSubmatch(cmd.raw)
	if rm == nil || dm == nil {
		return Result{}, false
	}

	start := hourLabel(rm[1], rm[2])
	end := hourLabel(rm[3], rm[4])
	subject := stripAdd(strings.Replace(before(cmd.raw, " between "), "add a ", "", 1))

	var (
		added  []Slot
		filled []string
	)
	for _, d := range andRe.Split(dm[1], -1) {
		day := titleDay(d)
		// Free slots are judged against the schedule as it was before this command
		if slices.Contains(filled, day) {
			continue
		}
		if time, ok := in.firstFree(slots, day, start, end); ok {
			added = append(added, Slot{Day: day, Time: time, Subject: subject})
			filled = append(filled, day)
		}
	}

	if len(added) == 0 {
		return Result{
			Slots:   slots,
			Message: fmt.Sprintf("No available slots found between %s and %s on the specified days", start, end),
		}, true
	}

	return Result{
		Slots:   Assign(slots, added...),
		Message: fmt.Sprintf("Added %s to available slots between %s and %s on %s", subject, start, end, strings.Join(filled, " and ")),
		Changed: true,
	}, true
}

func (in *Interpreter) everyDayAt(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	m := timeAtRe.FindStringSubmatch(cmd.raw)
	if m == nil {
		return Result{}, false
	}

	time := hourLabel(m[1], m[2])
	subject := stripAdd(before(cmd.raw, " at "))
	return Result{
		Slots:   ReplaceHour(slots, time, in.everyDay(time, subject)...),
		Message: fmt.Sprintf("Added %s at %s every day", subject, time),
		Changed: true,
	}, true
}

func (in *Interpreter) ordinalClass(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	m := in.patterns.ordinal.FindStringSubmatch(cmd.raw)
	if m == nil {
		return Result{}, false
	}

	ordinal := strings.ToLower(m[1])
	idx, ok := ordinalIndex[ordinal]
	if ordinal == "last" {
		idx, ok = len(in.grid.Times)-1, true
	}
	if !ok || idx < 0 || idx >= len(in.grid.Times) {
		return Result{}, false
	}

	day := titleDay(m[2])
	time := in.grid.Times[idx]
	subject := strings.TrimSpace(stripAdd(before(cmd.raw, " as ")))
	return Result{
		Slots:   Assign(slots, Slot{Day: day, Time: time, Subject: subject}),
		Message: fmt.Sprintf("Added %s as the %s class on %s", subject, ordinal, day),
		Changed: true,
	}, true
}

func (in *Interpreter) dayAndTime(_ context.Context, cmd command, slots []Slot) (Result, bool) {
	tm := anyTimeRe.FindStringSubmatch(cmd.raw)
	dm := in.patterns.onDay.FindStringSubmatch(cmd.raw)
	if tm == nil || dm == nil {
		return Result{}, false
	}

	time := hourLabel(tm[1], tm[2])
	day := upperFirst(dm[1])
	subject := stripAdd(before(cmd.raw, " at "))
	return Result{
		Slots:   Assign(slots, Slot{Day: day, Time: time, Subject: subject}),
		Message: fmt.Sprintf("Added %s at %s on %s", subject, time, day),
		Changed: true,
	}, true
}

// everyDay builds one slot per grid day at the given time
func (in *Interpreter) everyDay(time, subject string) []Slot {
	out := make([]Slot, 0, len(in.grid.Days))
	for _, day := range in.grid.Days {
		out = append(out, Slot{Day: day, Time: time, Subject: subject})
	}
	return out
}

// firstFree finds the first unoccupied time for day within [start, end] by
// list position. Labels missing from the grid, or a start after the end,
// give an empty range.
func (in *Interpreter) firstFree(slots []Slot, day, start, end string) (string, bool) {
	lo, hi := in.grid.TimeIndex(start), in.grid.TimeIndex(end)
	if lo < 0 || hi < 0 {
		return "", false
	}
	for i := lo; i <= hi; i++ {
		if _, taken := Find(slots, day, in.grid.Times[i]); !taken {
			return in.grid.Times[i], true
		}
	}
	return "", false
}

// hourLabel renders "10", "am" as "10 AM"
func hourLabel(hour, meridiem string) string {
	return hour + " " + strings.ToUpper(meridiem)
}

// before returns the text preceding the first sep, or s when sep is absent
func before(s, sep string) string {
	head, _, _ := strings.Cut(s, sep)
	return head
}

// stripAdd removes the first "add " in s
func stripAdd(s string) string {
	return strings.Replace(s, "add ", "", 1)
}

// titleDay normalises "wEDNESDAY" to "Wednesday"
func titleDay(s string) string {
	return cases.Title(language.English).String(s)
}

// upperFirst capitalises the first letter and leaves the rest untouched
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
