package model

import (
	"encoding/json"
	"fmt"
)

var novaSchemaVersion = "messages-v1"

// Nova request format (what Bedrock expects)
type novaRequest struct {
	SchemaVersion   string              `json:"schemaVersion"`
	System          []novaSystem        `json:"system,omitempty"`
	Messages        []novaMessage       `json:"messages"`
	InferenceConfig novaInferenceConfig `json:"inferenceConfig"`
}

type novaSystem struct {
	Text string `json:"text"`
}

type novaMessage struct {
	Role    string        `json:"role"`
	Content []novaContent `json:"content"`
}

type novaContent struct {
	Text string `json:"text"`
}

type novaInferenceConfig struct {
	MaxTokens     int      `json:"maxTokens"`
	Temperature   float64  `json:"temperature"`
	TopP          float64  `json:"topP"`
	TopK          int      `json:"topK"`
	StopSequences []string `json:"stopSequences,omitempty"`
}

// Nova response format (what Bedrock returns)
type novaResponse struct {
	Output struct {
		Message struct {
			Role    string        `json:"role"`
			Content []novaContent `json:"content"`
		} `json:"message"`
	} `json:"output"`
	StopReason string `json:"stopReason"`
}

func buildNovaRequest(prompt Prompt, cfg GenerationConfig) ([]byte, error) {
	payload := novaRequest{
		SchemaVersion: novaSchemaVersion,
		Messages: []novaMessage{
			{
				Role:    "user",
				Content: []novaContent{{Text: prompt.Text}},
			},
		},
		InferenceConfig: novaInferenceConfig{
			MaxTokens:     cfg.MaxTokens,
			Temperature:   cfg.Temperature,
			TopP:          cfg.TopP,
			TopK:          cfg.TopK,
			StopSequences: cfg.StopSequences,
		},
	}

	if prompt.System != "" {
		payload.System = []novaSystem{{Text: prompt.System}}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal nova request: %w", err)
	}

	return body, nil
}

func parseNovaResponse(body []byte) (*Completion, error) {
	var response novaResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal nova response: %w", err)
	}

	// The generated text lives at output.message.content[0].text. An empty
	// content list means the response shape is not the one we know.
	if len(response.Output.Message.Content) == 0 {
		return nil, fmt.Errorf("nova response missing output.message.content")
	}

	return &Completion{
		Text:       response.Output.Message.Content[0].Text,
		StopReason: response.StopReason,
	}, nil
}
