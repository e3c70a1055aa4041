package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/setup"
	setuplogger "github.com/povarna/generative-ai-agents/textgen-agent/internal/setup/logger"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	_ = godotenv.Load()

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load Config
	cfg := setup.LoadConfig()
	log.Logger = setuplogger.New(cfg.LogLevel)
	logger := log.Logger

	// Wire dependencies
	deps, err := setup.Wire(ctx, cfg, &logger)
	if err != nil {
		logger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	// Create MCP Server
	server := createMCPServer(deps)

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/textgen-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			logger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		logger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}

func createMCPServer(deps *setup.Dependencies) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "textgen-agent",
			Version: "1.0.0",
		}, nil,
	)

	// Add Tools
	mcp.AddTool(server, &mcp.Tool{
		Name:        "summarize_text",
		Description: "Summarize a text into a short paragraph",
	}, mcpadapter.NewSummarizeHandler(deps.Summarizer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_code",
		Description: "Write a program from a plain-language description of what it should do",
	}, mcpadapter.NewGenerateCodeHandler(deps.CodeGenerator))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "extract_entities",
		Description: "Extract tagged entities (for example book titles) from a text. Returns the last entity, or every entity with all=true.",
	}, mcpadapter.NewExtractHandler(deps.EntityExtractor))

	return server
}
