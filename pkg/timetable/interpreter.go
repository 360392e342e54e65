package timetable

import (
	"context"
	"log/slog"
	"strings"
)

// Fixed replies used when a command cannot be handled or a collaborator fails
const (
	HelpMessage = "I couldn't understand that command. Try:\n" +
		"- 'add Science at 10 AM on Monday'\n" +
		"- 'add History as first class everyday'\n" +
		"- 'add Math as last class everyday'\n" +
		"- 'add short break at 10 AM everyday'\n" +
		"- 'add a Geography class between 10 AM and 2 PM on Wednesday and Thursday'\n" +
		"- 'optimize schedule'\n" +
		"- 'clear schedule'"
	ClearedMessage   = "Schedule cleared successfully"
	GeneralFallback  = "I'm having trouble understanding that right now. Would you like help with your timetable?"
	OptimizeFallback = "I encountered an error while analyzing the schedule. Please try again."
)

// Names reported in Result.Rule, one per interpreter rule
const (
	RuleGeneral       = "general"
	RuleOptimize      = "optimize"
	RuleClear         = "clear"
	RuleLastEveryday  = "last-class-everyday"
	RuleBreak         = "break-everyday"
	RuleRange         = "between-range"
	RuleFirstEveryday = "first-class-everyday"
	RuleEveryDayAt    = "every-day-at"
	RuleOrdinal       = "ordinal-class"
	RuleDayAndTime    = "day-and-time"
	RuleHelp          = "help"
)

// schedulingKeywords decide whether input is handled by the rules at all
var schedulingKeywords = []string{"add", "schedule", "class", "optimize", "clear", "break"}

// Responder answers free text that is not a scheduling command
type Responder func(ctx context.Context, input string) (string, error)

// Optimizer produces free-text suggestions for a complete slot set
type Optimizer func(ctx context.Context, slots []Slot) (string, error)

// Result is the outcome of interpreting a single command
type Result struct {
	// Slots is the slot set after the command. It never aliases the input.
	Slots []Slot
	// Message is the human-readable reply for the user
	Message string
	// Rule names the rule (or delegation) that produced the result
	Rule string
	// Changed is true when the command mutated the slot set
	Changed bool
}

// Option configures an Interpreter
type Option func(*Interpreter)

// WithResponder wires the collaborator used for non-scheduling input.
// Without one, such input is answered with HelpMessage.
func WithResponder(r Responder) Option {
	return func(in *Interpreter) { in.respond = r }
}

// WithOptimizer wires the collaborator behind "optimize schedule"
func WithOptimizer(o Optimizer) Option {
	return func(in *Interpreter) { in.optimize = o }
}

// WithLogger sets the logger used for rule tracing and collaborator failures
func WithLogger(l *slog.Logger) Option {
	return func(in *Interpreter) { in.logger = l }
}

// Interpreter turns free-text instructions into timetable mutations.
// It holds no slot state: every call takes the current slots and returns new ones.
type Interpreter struct {
	grid     Grid
	respond  Responder
	optimize Optimizer
	logger   *slog.Logger
	patterns patterns
	rules    []rule
}

// NewInterpreter builds an interpreter for the given grid
func NewInterpreter(grid Grid, opts ...Option) *Interpreter {
	in := &Interpreter{
		grid:     grid,
		logger:   slog.Default(),
		patterns: compilePatterns(grid.Days),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.rules = in.ruleTable()
	return in
}

// Grid returns the grid the interpreter resolves days and times against
func (in *Interpreter) Grid() Grid {
	return in.grid
}

// IsSchedulingCommand reports whether input contains any scheduling keyword
func IsSchedulingCommand(input string) bool {
	lower := strings.ToLower(input)
	for _, kw := range schedulingKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Interpret classifies input and applies the first matching rule to current.
// Collaborator failures are turned into fixed fallback messages, so the only
// blocking work is the optional collaborator call bounded by ctx.
func (in *Interpreter) Interpret(ctx context.Context, input string, current []Slot) Result {
	slots := Clone(current)

	if !IsSchedulingCommand(input) {
		return in.general(ctx, input, slots)
	}

	cmd := newCommand(input)
	for _, r := range in.rules {
		if r.when != nil && !r.when(cmd) {
			continue
		}
		res, ok := r.apply(ctx, cmd, slots)
		if !ok {
			continue
		}
		res.Rule = r.name
		in.logger.Debug("command interpreted", "rule", r.name, "changed", res.Changed, "slots", len(res.Slots))
		return res
	}

	in.logger.Debug("command not understood", "input", input)
	return Result{Slots: slots, Message: HelpMessage, Rule: RuleHelp}
}

func (in *Interpreter) general(ctx context.Context, input string, slots []Slot) Result {
	if in.respond == nil {
		return Result{Slots: slots, Message: HelpMessage, Rule: RuleHelp}
	}

	reply, err := in.respond(ctx, input)
	if err != nil {
		in.logger.Warn("general response failed", "error", err)
		reply = GeneralFallback
	}
	return Result{Slots: slots, Message: reply, Rule: RuleGeneral}
}
