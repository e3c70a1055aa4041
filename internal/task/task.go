// Package task implements the model-backed text tasks: summarization,
// code generation, and entity extraction. Each task renders a configured
// prompt template, invokes the model once, and post-processes the reply.
package task

//go:generate mockgen -source=task.go -destination=mocks/mock_generator.go -package=mocks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"text/template"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// Generator produces a completion for one prompt. *bedrock.Client
// implements it; tests substitute a mock so no real API calls are made.
type Generator interface {
	Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.Completion, error)
}

// ErrEmptyInput is returned when a task is run on blank input text.
var ErrEmptyInput = errors.New("input text is empty")

// PromptData is the value rendered into task prompt templates.
type PromptData struct {
	Text string
	Tag  string
}

func renderPrompt(tmpl *template.Template, data PromptData) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}
