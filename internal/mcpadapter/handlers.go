package mcpadapter

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/bedrock"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/models"
	"github.com/povarna/generative-ai-agents/textgen-agent/internal/task"
)

// SummarizeInput is the MCP tool input schema (matches HTTP API field names).
type SummarizeInput struct {
	Text string `json:"text" jsonschema:"required,description=Text to summarize"`
}

// GenerateCodeInput is the MCP tool input schema for code generation.
type GenerateCodeInput struct {
	Description string `json:"description" jsonschema:"required,description=Plain-language description of the program to write"`
}

// ExtractInput is the MCP tool input schema for entity extraction.
type ExtractInput struct {
	Text string `json:"text" jsonschema:"required,description=Text to extract entities from"`
	All  bool   `json:"all,omitempty" jsonschema:"description=Return every entity instead of the last one"`
}

// NewSummarizeHandler returns a tool handler that uses the given summarizer.
// Pass the returned function to mcp.AddTool.
func NewSummarizeHandler(summarizer *task.Summarizer) func(context.Context, *mcp.CallToolRequest, SummarizeInput) (*mcp.CallToolResult, models.SummarizeResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SummarizeInput) (*mcp.CallToolResult, models.SummarizeResponse, error) {
		summary, err := summarizer.Summarize(ctx, input.Text)
		if err != nil {
			return nil, models.SummarizeResponse{}, taskError(err)
		}

		return nil, models.SummarizeResponse{
			RequestID: uuid.New().String(),
			Summary:   summary,
		}, nil
	}
}

// NewGenerateCodeHandler returns a tool handler that uses the given code
// generator. Pass the returned function to mcp.AddTool.
func NewGenerateCodeHandler(codegen *task.CodeGenerator) func(context.Context, *mcp.CallToolRequest, GenerateCodeInput) (*mcp.CallToolResult, models.CodeGenerationResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input GenerateCodeInput) (*mcp.CallToolResult, models.CodeGenerationResponse, error) {
		code, err := codegen.GenerateCode(ctx, input.Description)
		if err != nil {
			return nil, models.CodeGenerationResponse{}, taskError(err)
		}

		return nil, models.CodeGenerationResponse{
			RequestID: uuid.New().String(),
			Code:      code,
		}, nil
	}
}

// NewExtractHandler returns a tool handler that uses the given extractor.
// Pass the returned function to mcp.AddTool.
func NewExtractHandler(extractor *task.EntityExtractor) func(context.Context, *mcp.CallToolRequest, ExtractInput) (*mcp.CallToolResult, models.ExtractionResponse, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ExtractInput) (*mcp.CallToolResult, models.ExtractionResponse, error) {
		requestID := uuid.New().String()

		if input.All {
			entities, err := extractor.ExtractAll(ctx, input.Text)
			if err != nil {
				return nil, models.ExtractionResponse{}, taskError(err)
			}

			return nil, models.ExtractionResponse{
				RequestID: requestID,
				Tag:       extractor.Tag(),
				Found:     len(entities) > 0,
				Entities:  entities,
			}, nil
		}

		entity, found, err := extractor.Extract(ctx, input.Text)
		if err != nil {
			return nil, models.ExtractionResponse{}, taskError(err)
		}

		return nil, models.ExtractionResponse{
			RequestID: requestID,
			Tag:       extractor.Tag(),
			Found:     found,
			Entity:    entity,
		}, nil
	}
}

// taskError swaps an access-denied failure for the remediation notice so
// MCP clients get the same guidance as HTTP callers.
func taskError(err error) error {
	if bedrock.IsAccessDenied(err) {
		return errors.New(bedrock.AccessDeniedNotice(err))
	}
	return err
}
