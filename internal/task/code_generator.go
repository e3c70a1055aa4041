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

// CodeGenerator turns a task description into a program. The reply is
// unwrapped from the configured answer tag (when one is set) and from a
// markdown code fence before it is returned.
type CodeGenerator struct {
	name      string
	tmpl      *template.Template
	system    string
	tag       string
	modelCfg  model.GenerationConfig
	generator Generator
	logger    *zerolog.Logger
}

func NewCodeGenerator(taskCfg config.TaskConfiguration, generator Generator, logger *zerolog.Logger) (*CodeGenerator, error) {
	tmpl, err := template.New(taskCfg.Name).Parse(taskCfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template for task %s: %w", taskCfg.Name, err)
	}

	if taskCfg.Model == nil {
		return nil, fmt.Errorf("task %s has nil model config (should be populated by config loader)", taskCfg.Name)
	}

	return &CodeGenerator{
		name:      taskCfg.Name,
		tmpl:      tmpl,
		system:    taskCfg.System,
		tag:       taskCfg.Tag,
		modelCfg:  taskCfg.Model.GenerationConfig(),
		generator: generator,
		logger:    logger,
	}, nil
}

// GenerateCode runs the task on a program description and returns the bare
// program text.
func (g *CodeGenerator) GenerateCode(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", ErrEmptyInput
	}

	now := time.Now()

	prompt, err := renderPrompt(g.tmpl, PromptData{Text: description, Tag: g.tag})
	if err != nil {
		return "", err
	}

	completion, err := g.generator.Generate(ctx, model.Prompt{Text: prompt, System: g.system}, g.modelCfg)
	if err != nil {
		g.logger.Error().
			Err(err).
			Str("task", g.name).
			Msg("model invocation failed")
		return "", err
	}

	code := completion.Text
	if g.tag != "" {
		if tagged, ok := extract.ByTag(code, g.tag); ok {
			code = tagged
		}
	}
	code = stripCodeFence(code)

	g.logger.Info().
		Str("task", g.name).
		Int("code_chars", len(code)).
		Dur("duration", time.Since(now)).
		Msg("code generation completed")

	return code, nil
}

// stripCodeFence removes a wrapping markdown code fence (```python ... ```)
// from a model reply, if present.
func stripCodeFence(reply string) string {
	reply = strings.TrimSpace(reply)
	if !strings.HasPrefix(reply, "```") {
		return reply
	}

	firstNewline := strings.Index(reply, "\n")
	closing := strings.LastIndex(reply, "```")
	if firstNewline == -1 || closing <= firstNewline {
		return reply
	}

	return strings.TrimSpace(reply[firstNewline+1 : closing])
}
