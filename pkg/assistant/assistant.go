// Package assistant connects the timetable interpreter to a generative
// language model and keeps the conversational state of a session.
package assistant

import (
	"context"
	"encoding/json"
	"fmt"

	"edease/pkg/timetable"
)

// Generator produces text for a prompt. *gemini.Client satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Assistant builds collaborator prompts and forwards them to a Generator
type Assistant struct {
	gen Generator
}

// New returns an Assistant backed by gen
func New(gen Generator) *Assistant {
	return &Assistant{gen: gen}
}

// Respond answers a general, non-scheduling remark
func (a *Assistant) Respond(ctx context.Context, input string) (string, error) {
	return a.gen.GenerateContent(ctx, GeneralPrompt(input))
}

// Optimize asks for suggestions on the given schedule
func (a *Assistant) Optimize(ctx context.Context, slots []timetable.Slot) (string, error) {
	prompt, err := OptimizationPrompt(slots)
	if err != nil {
		return "", err
	}
	return a.gen.GenerateContent(ctx, prompt)
}

// Options wires both collaborators into a timetable.Interpreter
func (a *Assistant) Options() []timetable.Option {
	return []timetable.Option{
		timetable.WithResponder(a.Respond),
		timetable.WithOptimizer(a.Optimize),
	}
}

// GeneralPrompt frames free text for a short, friendly reply
func GeneralPrompt(input string) string {
	return fmt.Sprintf(`As an AI timetable assistant, respond to this message in a helpful and concise way: "%s"
Context: You are a timetable management assistant that can also engage in general conversation.
Keep the response friendly and brief.`, input)
}

// OptimizationPrompt embeds the schedule as JSON and asks for practical suggestions
func OptimizationPrompt(slots []timetable.Slot) (string, error) {
	if slots == nil {
		slots = []timetable.Slot{}
	}
	data, err := json.MarshalIndent(slots, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize schedule: %w", err)
	}

	return fmt.Sprintf(`As an AI timetable assistant, analyze this schedule and provide brief optimization suggestions:
%s
Consider:
1. Distribution of subjects
2. Break times
3. Subject difficulty levels
Keep the response concise and practical.`, data), nil
}
