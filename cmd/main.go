package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/config"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/input"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/setup"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/task"
)

func main() {
	taskName := flag.String("task", "", "Task to run: summarize, code, or extract")
	inputPath := flag.String("input", "", "Input text file relative path")
	text := flag.String("text", "", "Inline input text (alternative to -input)")
	tag := flag.String("tag", "", "Override the task's answer tag")
	model := flag.String("model", "", "Override the task's model ID")
	all := flag.Bool("all", false, "Extract every entity instead of the last one")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if *taskName == "" {
		fmt.Fprintln(os.Stderr, "Usage: textgen -task <summarize|code|extract> [-input <file> | -text <text>]")
		flag.PrintDefaults()
		os.Exit(1)
	}
	if (*inputPath == "") == (*text == "") {
		fmt.Fprintln(os.Stderr, "Exactly one of -input or -text is required")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := run(*taskName, *inputPath, *text, *tag, *model, *all); err != nil {
		// An access failure is almost always an account setup problem, not
		// a bug. Print the remediation notice where the operator will see it.
		if bedrock.IsAccessDenied(err) {
			fmt.Fprintf(os.Stderr, "\x1b[41m%s\x1b[0m\n", bedrock.AccessDeniedNotice(err))
			os.Exit(1)
		}
		log.Error().Err(err).Msg("Task failed")
		os.Exit(1)
	}
}

func run(taskName, inputPath, inlineText, tagOverride, modelOverride string, all bool) error {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}
	logger := log.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()

	tasksCfg, err := config.LoadTasksConfig()
	if err != nil {
		return err
	}

	runner, err := findRunner(tasksCfg, taskName)
	if err != nil {
		return err
	}
	if tagOverride != "" {
		runner.Tag = tagOverride
	}
	if modelOverride != "" {
		runner.Model.ModelID = modelOverride
	}

	text := inlineText
	if inputPath != "" {
		doc, err := input.ReadTextFile(inputPath)
		if err != nil {
			return err
		}
		text = doc.Content
		logger.Info().
			Str("file", doc.Path).
			Str("title", doc.Title).
			Int("chars", len(doc.Content)).
			Msg("Loaded input file")
	}

	modelID := runner.Model.ModelID
	if modelID == "" {
		modelID = cfg.DefaultModelID
	}
	client, err := bedrock.NewClient(ctx, cfg.AWSRegion, modelID)
	if err != nil {
		return err
	}

	logger.Info().
		Str("region", cfg.AWSRegion).
		Str("model", modelID).
		Str("task", runner.Name).
		Msg("Bedrock client initialized")

	switch runner.Name {
	case "summarize":
		summarizer, err := task.NewSummarizer(*runner, client, &logger)
		if err != nil {
			return err
		}
		summary, err := summarizer.Summarize(ctx, text)
		if err != nil {
			return err
		}
		fmt.Println(summary)

	case "code":
		codegen, err := task.NewCodeGenerator(*runner, client, &logger)
		if err != nil {
			return err
		}
		code, err := codegen.GenerateCode(ctx, text)
		if err != nil {
			return err
		}
		fmt.Println(code)

	case "extract":
		extractor, err := task.NewEntityExtractor(*runner, client, &logger)
		if err != nil {
			return err
		}
		if all {
			entities, err := extractor.ExtractAll(ctx, text)
			if err != nil {
				return err
			}
			if len(entities) == 0 {
				logger.Info().Str("tag", extractor.Tag()).Msg("No tagged entity in the model reply")
				return nil
			}
			for _, entity := range entities {
				fmt.Println(entity)
			}
			return nil
		}
		entity, found, err := extractor.Extract(ctx, text)
		if err != nil {
			return err
		}
		if !found {
			logger.Info().Str("tag", extractor.Tag()).Msg("No tagged entity in the model reply")
			return nil
		}
		fmt.Println(entity)

	default:
		return fmt.Errorf("no runner for task %s (expected summarize, code, or extract)", taskName)
	}

	return nil
}

func findRunner(cfg *config.TasksConfig, name string) (*config.TaskConfiguration, error) {
	for i := range cfg.Tasks.Runners {
		if cfg.Tasks.Runners[i].Name == name {
			if !cfg.Tasks.Runners[i].Enabled {
				return nil, fmt.Errorf("task %s is disabled in the tasks config", name)
			}
			return &cfg.Tasks.Runners[i], nil
		}
	}
	return nil, fmt.Errorf("task %s not found in the tasks config", name)
}
