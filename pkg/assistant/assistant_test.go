package assistant

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edease/pkg/timetable"
)

// fakeGenerator records prompts and replies with a fixed answer or error
type fakeGenerator struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func TestGeneralPrompt(t *testing.T) {
	p := GeneralPrompt("how are you?")

	assert.Contains(t, p, `"how are you?"`)
	assert.Contains(t, p, "timetable management assistant")

	p = GeneralPrompt("say \"hi\"\nplease")
	assert.Contains(t, p, "\"say \"hi\"\nplease\"")
	assert.NotContains(t, p, `\"`)
}

func TestOptimizationPrompt_EmbedsScheduleJSON(t *testing.T) {
	p, err := OptimizationPrompt([]timetable.Slot{{Day: "Monday", Time: "9 AM", Subject: "Math"}})

	require.NoError(t, err)
	assert.Contains(t, p, `"day": "Monday"`)
	assert.Contains(t, p, `"subject": "Math"`)
	assert.Contains(t, p, "Distribution of subjects")

	empty, err := OptimizationPrompt(nil)
	require.NoError(t, err)
	assert.Contains(t, empty, "[]")
}

func TestAssistant_WiresInterpreter(t *testing.T) {
	gen := &fakeGenerator{reply: "Try spacing out Math."}
	in := timetable.NewInterpreter(timetable.DefaultGrid(), New(gen).Options()...)

	res := in.Interpret(context.Background(), "optimize schedule", []timetable.Slot{{Day: "Monday", Time: "9 AM", Subject: "Math"}})
	assert.Equal(t, "Try spacing out Math.", res.Message)

	res = in.Interpret(context.Background(), "good morning", nil)
	assert.Equal(t, timetable.RuleGeneral, res.Rule)

	require.Len(t, gen.prompts, 2)
	assert.True(t, strings.HasPrefix(gen.prompts[0], "As an AI timetable assistant, analyze this schedule"))
	assert.Contains(t, gen.prompts[1], `"good morning"`)
}

func TestAssistant_GeneratorFailureBecomesFallback(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("network down")}
	in := timetable.NewInterpreter(timetable.DefaultGrid(), New(gen).Options()...)

	res := in.Interpret(context.Background(), "good morning", nil)
	assert.Equal(t, timetable.GeneralFallback, res.Message)

	res = in.Interpret(context.Background(), "optimize schedule", nil)
	assert.Equal(t, timetable.OptimizeFallback, res.Message)
}
