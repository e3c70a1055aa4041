package setup

import (
	"context"
	"fmt"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/config"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/task"
)

type Config struct {
	AWSRegion      string
	DefaultModelID string
	APIPort        string
	LogLevel       string
}

type Dependencies struct {
	Summarizer      *task.Summarizer
	CodeGenerator   *task.CodeGenerator
	EntityExtractor *task.EntityExtractor
	Logger          *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		DefaultModelID: getEnv("MODEL_ID", ""),
		APIPort:        getEnv("TEXTGEN_API_PORT", "18082"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the task runners from the tasks config. One Bedrock runtime
// handle is created up front and shared; each distinct model ID gets its
// own thin client over it.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	tasksCfg, err := config.LoadTasksConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load tasks config: %w", err)
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}
	runtime := bedrockruntime.NewFromConfig(awsCfg)

	clients := make(map[string]*bedrock.Client)
	clientFor := func(modelID string) (*bedrock.Client, error) {
		if modelID == "" {
			modelID = cfg.DefaultModelID
		}
		if client, ok := clients[modelID]; ok {
			return client, nil
		}
		client, err := bedrock.NewClientWithAPI(runtime, modelID)
		if err != nil {
			return nil, err
		}
		clients[modelID] = client
		return client, nil
	}

	deps := &Dependencies{Logger: logger}

	for _, runner := range tasksCfg.Tasks.Runners {
		if !runner.Enabled {
			logger.Info().Str("task", runner.Name).Msg("Task disabled, skipping")
			continue
		}

		var modelID string
		if runner.Model != nil {
			modelID = runner.Model.ModelID
		}
		client, err := clientFor(modelID)
		if err != nil {
			return nil, fmt.Errorf("failed to create Bedrock client for task %s: %w", runner.Name, err)
		}

		switch runner.Name {
		case "summarize":
			deps.Summarizer, err = task.NewSummarizer(runner, client, logger)
		case "code":
			deps.CodeGenerator, err = task.NewCodeGenerator(runner, client, logger)
		case "extract":
			deps.EntityExtractor, err = task.NewEntityExtractor(runner, client, logger)
		default:
			logger.Warn().Str("task", runner.Name).Msg("Unknown task name, skipping")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to build task %s: %w", runner.Name, err)
		}
	}

	if deps.Summarizer == nil {
		return nil, fmt.Errorf("task summarize is missing or disabled in the tasks config")
	}
	if deps.CodeGenerator == nil {
		return nil, fmt.Errorf("task code is missing or disabled in the tasks config")
	}
	if deps.EntityExtractor == nil {
		return nil, fmt.Errorf("task extract is missing or disabled in the tasks config")
	}

	return deps, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
