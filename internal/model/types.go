package model

import "fmt"

// Prompt is the user text for one generation, with an optional system
// instruction. Only the Claude schema carries the system instruction as a
// dedicated field; for Nova it is sent as a system content block.
type Prompt struct {
	Text   string
	System string
}

// GenerationConfig holds the sampling parameters shared by both families.
// Ranges are checked locally via Validate instead of letting the service
// reject the request.
type GenerationConfig struct {
	MaxTokens     int
	Temperature   float64
	TopP          float64
	TopK          int
	StopSequences []string
}

func (c GenerationConfig) Validate() error {
	if c.MaxTokens < 1 {
		return fmt.Errorf("max tokens must be at least 1, got %d", c.MaxTokens)
	}
	if c.Temperature < 0.0 || c.Temperature > 1.0 {
		return fmt.Errorf("temperature must be in [0.0, 1.0], got %g", c.Temperature)
	}
	if c.TopP <= 0.0 || c.TopP > 1.0 {
		return fmt.Errorf("top_p must be in (0.0, 1.0], got %g", c.TopP)
	}
	if c.TopK < 0 {
		return fmt.Errorf("top_k must not be negative, got %d", c.TopK)
	}
	return nil
}

// Completion is the parsed model output.
type Completion struct {
	Text       string
	StopReason string
}
