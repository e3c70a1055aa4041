package config

import (
	"fmt"
	"os"
	"text/template"

	"go.yaml.in/yaml/v3"
)

const defaultTasksConfigPath = "configs/tasks.yaml"

// LoadTasksConfig reads the task definitions from TASKS_CONFIG_PATH, or
// from configs/tasks.yaml when the variable is unset. Defaults are merged
// into each task's model block before validation, so a loaded config is
// always complete.
func LoadTasksConfig() (*TasksConfig, error) {
	path := os.Getenv("TASKS_CONFIG_PATH")
	if path == "" {
		path = defaultTasksConfigPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg TasksConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func applyDefaults(cfg *TasksConfig) {
	def := &cfg.Tasks.DefaultModel
	if def.MaxTokens == 0 {
		def.MaxTokens = 512
	}
	if def.TopP == 0 {
		def.TopP = 0.9
	}

	for i := range cfg.Tasks.Runners {
		runner := &cfg.Tasks.Runners[i]
		if runner.Model == nil {
			merged := *def
			runner.Model = &merged
			continue
		}
		if runner.Model.ModelID == "" {
			runner.Model.ModelID = def.ModelID
		}
		if runner.Model.MaxTokens == 0 {
			runner.Model.MaxTokens = def.MaxTokens
		}
		if runner.Model.Temperature == 0 {
			runner.Model.Temperature = def.Temperature
		}
		if runner.Model.TopP == 0 {
			runner.Model.TopP = def.TopP
		}
		if runner.Model.TopK == 0 {
			runner.Model.TopK = def.TopK
		}
		if runner.Model.StopSequences == nil {
			runner.Model.StopSequences = def.StopSequences
		}
	}
}

func (c *TasksConfig) Validate() error {
	if len(c.Tasks.Runners) == 0 {
		return fmt.Errorf("no tasks configured")
	}

	seen := make(map[string]bool)
	for _, runner := range c.Tasks.Runners {
		if runner.Name == "" {
			return fmt.Errorf("task missing name")
		}
		if seen[runner.Name] {
			return fmt.Errorf("duplicate task name: %s", runner.Name)
		}
		seen[runner.Name] = true

		if runner.Prompt == "" {
			return fmt.Errorf("task %s missing prompt", runner.Name)
		}
		if _, err := template.New(runner.Name).Parse(runner.Prompt); err != nil {
			return fmt.Errorf("task %s has invalid prompt template: %w", runner.Name, err)
		}

		if runner.Model != nil {
			if err := runner.Model.GenerationConfig().Validate(); err != nil {
				return fmt.Errorf("task %s: %w", runner.Name, err)
			}
		}
	}

	return nil
}
