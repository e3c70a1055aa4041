package config

import (
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// TasksConfig is the root of configs/tasks.yaml.
type TasksConfig struct {
	Tasks Tasks `yaml:"tasks"`
}

// Tasks holds the shared model defaults and the task definitions.
type Tasks struct {
	DefaultModel ModelConfig         `yaml:"default_model"`
	Runners      []TaskConfiguration `yaml:"runners"`
}

// ModelConfig carries the generation parameters for one task. Zero-valued
// fields inherit from the default model when defaults are applied.
type ModelConfig struct {
	ModelID       string   `yaml:"model_id,omitempty"`
	MaxTokens     int      `yaml:"max_tokens"`
	Temperature   float64  `yaml:"temperature"`
	TopP          float64  `yaml:"top_p"`
	TopK          int      `yaml:"top_k"`
	StopSequences []string `yaml:"stop_sequences,omitempty"`
}

// GenerationConfig converts the YAML parameters to the request form.
func (m ModelConfig) GenerationConfig() model.GenerationConfig {
	return model.GenerationConfig{
		MaxTokens:     m.MaxTokens,
		Temperature:   m.Temperature,
		TopP:          m.TopP,
		TopK:          m.TopK,
		StopSequences: m.StopSequences,
	}
}

// TaskConfiguration defines a single text task: its prompt template, an
// optional system instruction, the answer tag for extraction-style tasks,
// and an optional per-task model override.
type TaskConfiguration struct {
	Name        string       `yaml:"name"`
	Enabled     bool         `yaml:"enabled"`
	Description string       `yaml:"description"`
	System      string       `yaml:"system,omitempty"`
	Tag         string       `yaml:"tag,omitempty"`
	Prompt      string       `yaml:"prompt"`
	Model       *ModelConfig `yaml:"model,omitempty"`
}
