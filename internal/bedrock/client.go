package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// InvokeAPI is the slice of the Bedrock runtime client this package uses.
// Production code passes a *bedrockruntime.Client; tests substitute a fake
// so no real API calls are made.
type InvokeAPI interface {
	InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error)
}

// Client invokes a single Bedrock model using the request and response
// schema of the model's family.
type Client struct {
	api     InvokeAPI
	modelID string
	family  model.Family
}

func NewClient(ctx context.Context, region string, modelID string) (*Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("Unable to load AWS config: %w", err)
	}

	return NewClientWithAPI(bedrockruntime.NewFromConfig(cfg), modelID)
}

// NewClientWithAPI binds an existing Bedrock runtime handle to a model ID.
// The handle is shared between clients; each client adds only the model ID
// and its schema family.
func NewClientWithAPI(api InvokeAPI, modelID string) (*Client, error) {
	family, err := model.FamilyForModel(modelID)
	if err != nil {
		return nil, err
	}

	return &Client{
		api:     api,
		modelID: modelID,
		family:  family,
	}, nil
}

func (c *Client) ModelID() string {
	return c.modelID
}

// Generate sends the prompt to the model and returns its completion. The
// generation config is validated locally before any network call; requests
// with out-of-range parameters never reach the service.
func (c *Client) Generate(ctx context.Context, prompt model.Prompt, cfg model.GenerationConfig) (*model.Completion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation config for model %s: %w", c.modelID, err)
	}

	body, err := model.BuildRequest(c.family, prompt, cfg)
	if err != nil {
		return nil, err
	}

	output, err := c.api.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		Body:        body,
		Accept:      aws.String("application/json"),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return nil, fmt.Errorf("Unable to invoke model %s. Error: %w", c.modelID, err)
	}

	return model.ParseResponse(c.family, output.Body)
}
