package task

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/config"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/extract"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// EntityExtractor asks the model to copy entities from a text into the
// task's answer tag, then pulls the tagged spans back out of the reply.
// A reply without the tag is a not-found result, never an error.
type EntityExtractor struct {
	name      string
	tmpl      *template.Template
	system    string
	tag       string
	modelCfg  model.GenerationConfig
	generator Generator
	logger    *zerolog.Logger
}

func NewEntityExtractor(taskCfg config.TaskConfiguration, generator Generator, logger *zerolog.Logger) (*EntityExtractor, error) {
	tmpl, err := template.New(taskCfg.Name).Parse(taskCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for task %s: %w", taskCfg.Name, err)
	}

	if taskCfg.Model == nil {
		return nil, fmt.Errorf("task %s has nil model config (should be populated by config loader)", taskCfg.Name)
	}

	if taskCfg.Tag == "" {
		return nil, fmt.Errorf("task %s has no answer tag configured", taskCfg.Name)
	}

	return &EntityExtractor{
		name:      taskCfg.Name,
		tmpl:      tmpl,
		system:    taskCfg.System,
		tag:       taskCfg.Tag,
		modelCfg:  taskCfg.Model.GenerationConfig(),
		generator: generator,
		logger:    logger,
	}, nil
}

// Tag returns the answer tag the extractor looks for in replies.
func (e *EntityExtractor) Tag() string {
	return e.tag
}

// Extract runs the task on text and returns the content of the last answer
// tag in the reply. Found is false when the reply carries no tag.
func (e *EntityExtractor) Extract(ctx context.Context, text string) (entity string, found bool, err error) {
	reply, err := e.invoke(ctx, text)
	if err != nil {
		return "", false, err
	}

	entity, found = extract.ByTag(reply, e.tag)
	if !found {
		e.logger.Info().
			Str("task", e.name).
			Str("tag", e.tag).
			Msg("no tagged entity in model reply")
		return "", false, nil
	}

	return strings.TrimSpace(entity), true, nil
}

// ExtractAll runs the task on text and returns the content of every answer
// tag in the reply, in document order. It returns nil when the reply
// carries no tag.
func (e *EntityExtractor) ExtractAll(ctx context.Context, text string) ([]string, error) {
	reply, err := e.invoke(ctx, text)
	if err != nil {
		return nil, err
	}

	tagged := extract.AllByTag(reply, e.tag)
	entities := make([]string, 0, len(tagged))
	for _, entity := range tagged {
		entities = append(entities, strings.TrimSpace(entity))
	}
	if len(entities) == 0 {
		return nil, nil
	}

	return entities, nil
}

func (e *EntityExtractor) invoke(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}

	now := time.Now()

	prompt, err := renderPrompt(e.tmpl, PromptData{Text: text, Tag: e.tag})
	if err != nil {
		return "", err
	}

	completion, err := e.generator.Generate(ctx, model.Prompt{Text: prompt, System: e.system}, e.modelCfg)
	if err != nil {
		e.logger.Error().
			Err(err).
			Str("task", e.name).
			Msg("model invocation failed")
		return "", err
	}

	e.logger.Info().
		Str("task", e.name).
		Str("tag", e.tag).
		Dur("duration", time.Since(now)).
		Msg("entity extraction completed")

	return completion.Text, nil
}
