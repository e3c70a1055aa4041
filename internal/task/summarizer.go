package task

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/config"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// Summarizer condenses a text into a short summary.
type Summarizer struct {
	name      string
	tmpl      *template.Template
	system    string
	modelCfg  model.GenerationConfig
	generator Generator
	logger    *zerolog.Logger
}

func NewSummarizer(taskCfg config.TaskConfiguration, generator Generator, logger *zerolog.Logger) (*Summarizer, error) {
	tmpl, err := template.New(taskCfg.Name).Parse(taskCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for task %s: %w", taskCfg.Name, err)
	}

	if taskCfg.Model == nil {
		return nil, fmt.Errorf("task %s has nil model config (should be populated by config loader)", taskCfg.Name)
	}

	return &Summarizer{
		name:      taskCfg.Name,
		tmpl:      tmpl,
		system:    taskCfg.System,
		modelCfg:  taskCfg.Model.GenerationConfig(),
		generator: generator,
		logger:    logger,
	}, nil
}

// Summarize runs the task on text and returns the model's summary. Blank
// input is rejected before any model call; invocation errors propagate to
// the caller unmodified.
func (s *Summarizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	now := time.Now()

	prompt, err := renderPrompt(s.tmpl, PromptData{Text: text})
	if err != nil {
		return "", err
	}

	completion, err := s.generator.Generate(ctx, model.Prompt{Text: prompt, System: s.system}, s.modelCfg)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("task", s.name).
			Msg("model invocation failed")
		return "", err
	}

	summary := strings.TrimSpace(completion.Text)

	s.logger.Info().
		Str("task", s.name).
		Int("input_chars", len(text)).
		Int("summary_chars", len(summary)).
		Dur("duration", time.Since(now)).
		Msg("summarization completed")

	return summary, nil
}
