package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTasksConfig(t *testing.T, content string) string {
	t.Helper()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "tasks.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return configPath
}

func TestLoadTasksConfig_Success(t *testing.T) {
	configContent := `tasks:
  default_model:
    max_tokens: 512
    temperature: 0.5
    top_p: 0.9

  runners:
    - name: summarize
      enabled: true
      description: "Summarizes a text"
      prompt: |
        Please provide a summary of the following text.
        {{.Text}}
      model:
        max_tokens: 300
        temperature: 0.3
        top_p: 0.1
        top_k: 20

    - name: extract
      enabled: true
      description: "Extracts tagged entities"
      tag: book
      prompt: |
        Extract the book titles from the text below.
        {{.Text}}
`

	configPath := writeTasksConfig(t, configContent)
	os.Setenv("TASKS_CONFIG_PATH", configPath)
	defer os.Unsetenv("TASKS_CONFIG_PATH")

	cfg, err := LoadTasksConfig()
	if err != nil {
		t.Fatalf("LoadTasksConfig() failed: %v", err)
	}

	if len(cfg.Tasks.Runners) != 2 {
		t.Fatalf("Expected 2 runners, got %d", len(cfg.Tasks.Runners))
	}

	summarize := cfg.Tasks.Runners[0]
	if summarize.Name != "summarize" {
		t.Errorf("Expected task name 'summarize', got '%s'", summarize.Name)
	}
	if summarize.Model.MaxTokens != 300 {
		t.Errorf("Expected summarize max_tokens=300, got %d", summarize.Model.MaxTokens)
	}
	if summarize.Model.TopK != 20 {
		t.Errorf("Expected summarize top_k=20, got %d", summarize.Model.TopK)
	}

	// No model block: populated entirely from default_model.
	extract := cfg.Tasks.Runners[1]
	if extract.Tag != "book" {
		t.Errorf("Expected extract tag 'book', got '%s'", extract.Tag)
	}
	if extract.Model == nil {
		t.Fatal("Expected extract.Model to be populated with defaults")
	}
	if extract.Model.MaxTokens != 512 {
		t.Errorf("Expected extract max_tokens=512 (default), got %d", extract.Model.MaxTokens)
	}
	if extract.Model.Temperature != 0.5 {
		t.Errorf("Expected extract temperature=0.5 (default), got %f", extract.Model.Temperature)
	}
}

func TestLoadTasksConfig_DefaultPath(t *testing.T) {
	os.Unsetenv("TASKS_CONFIG_PATH")

	_, err := LoadTasksConfig()
	if err == nil {
		// The config file shipped with the repo was found from the
		// working directory, which is fine.
		t.Log("Default config file loaded successfully")
		return
	}

	if !strings.Contains(err.Error(), "configs/tasks.yaml") {
		t.Errorf("Expected error to mention default path 'configs/tasks.yaml', got: %v", err)
	}
}

func TestLoadTasksConfig_FileNotFound(t *testing.T) {
	os.Setenv("TASKS_CONFIG_PATH", "/nonexistent/path/tasks.yaml")
	defer os.Unsetenv("TASKS_CONFIG_PATH")

	_, err := LoadTasksConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}

	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadTasksConfig_InvalidYAML(t *testing.T) {
	configPath := writeTasksConfig(t, `tasks:
  runners:
    - name: test
      prompt: "test"
      invalid_indent:
    wrong_level
`)

	os.Setenv("TASKS_CONFIG_PATH", configPath)
	defer os.Unsetenv("TASKS_CONFIG_PATH")

	_, err := LoadTasksConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}

	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestLoadTasksConfig_InvalidModelParams(t *testing.T) {
	configPath := writeTasksConfig(t, `tasks:
  runners:
    - name: summarize
      enabled: true
      prompt: "Summarize {{.Text}}"
      model:
        max_tokens: 300
        temperature: 1.5
`)

	os.Setenv("TASKS_CONFIG_PATH", configPath)
	defer os.Unsetenv("TASKS_CONFIG_PATH")

	_, err := LoadTasksConfig()
	if err == nil {
		t.Fatal("Expected error for out-of-range temperature")
	}

	if !strings.Contains(err.Error(), "temperature") {
		t.Errorf("Expected temperature range error, got: %v", err)
	}
}

func TestValidate_NoTasks(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			Runners: []TaskConfiguration{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for empty runners list")
	}

	if !strings.Contains(err.Error(), "no tasks configured") {
		t.Errorf("Expected 'no tasks configured' error, got: %v", err)
	}
}

func TestValidate_MissingName(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			Runners: []TaskConfiguration{
				{Name: "", Prompt: "test"},
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for missing name")
	}

	if !strings.Contains(err.Error(), "missing name") {
		t.Errorf("Expected 'missing name' error, got: %v", err)
	}
}

func TestValidate_MissingPrompt(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			Runners: []TaskConfiguration{
				{Name: "test", Prompt: ""},
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for missing prompt")
	}

	if !strings.Contains(err.Error(), "missing prompt") {
		t.Errorf("Expected 'missing prompt' error, got: %v", err)
	}
}

func TestValidate_InvalidPromptTemplate(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			Runners: []TaskConfiguration{
				{Name: "test", Prompt: "{{.InvalidSyntax"},
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for invalid template syntax")
	}

	if !strings.Contains(err.Error(), "invalid prompt template") {
		t.Errorf("Expected 'invalid prompt template' error, got: %v", err)
	}
}

func TestValidate_DuplicateNames(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			Runners: []TaskConfiguration{
				{Name: "summarize", Prompt: "test1"},
				{Name: "summarize", Prompt: "test2"},
			},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected validation error for duplicate names")
	}

	if !strings.Contains(err.Error(), "duplicate task name") {
		t.Errorf("Expected 'duplicate task name' error, got: %v", err)
	}
}

func TestApplyDefaults_CreatesModelForTasks(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			DefaultModel: ModelConfig{
				ModelID:     "amazon.nova-lite-v1:0",
				MaxTokens:   300,
				Temperature: 0.7,
			},
			Runners: []TaskConfiguration{
				{Name: "test", Prompt: "test", Model: nil},
			},
		},
	}

	applyDefaults(cfg)

	runner := cfg.Tasks.Runners[0]
	if runner.Model == nil {
		t.Fatal("Expected runner.Model to be created")
	}
	if runner.Model.ModelID != "amazon.nova-lite-v1:0" {
		t.Errorf("Expected model_id inherited, got %q", runner.Model.ModelID)
	}
	if runner.Model.MaxTokens != 300 {
		t.Errorf("Expected max_tokens=300, got %d", runner.Model.MaxTokens)
	}
	if runner.Model.Temperature != 0.7 {
		t.Errorf("Expected temperature=0.7, got %f", runner.Model.Temperature)
	}
	if runner.Model.TopP != 0.9 {
		t.Errorf("Expected top_p=0.9 (fallback default), got %f", runner.Model.TopP)
	}
}

func TestApplyDefaults_MergesPartialOverrides(t *testing.T) {
	cfg := &TasksConfig{
		Tasks: Tasks{
			DefaultModel: ModelConfig{
				MaxTokens:   256,
				Temperature: 0.5,
				TopP:        0.8,
			},
			Runners: []TaskConfiguration{
				{
					Name:   "test",
					Prompt: "test",
					Model: &ModelConfig{
						MaxTokens: 2048,
					},
				},
			},
		},
	}

	applyDefaults(cfg)

	runner := cfg.Tasks.Runners[0]
	if runner.Model.MaxTokens != 2048 {
		t.Errorf("Expected max_tokens=2048 (override), got %d", runner.Model.MaxTokens)
	}
	if runner.Model.Temperature != 0.5 {
		t.Errorf("Expected temperature=0.5 (merged from default), got %f", runner.Model.Temperature)
	}
	if runner.Model.TopP != 0.8 {
		t.Errorf("Expected top_p=0.8 (merged from default), got %f", runner.Model.TopP)
	}
}
