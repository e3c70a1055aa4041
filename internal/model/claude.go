package model

import (
	"encoding/json"
	"fmt"
)

var anthropicVersion = "bedrock-2023-05-31"

// Claude request format (what Bedrock expects)
type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	TopK             int             `json:"top_k"`
	TopP             float64         `json:"top_p"`
	Messages         []claudeMessage `json:"messages"`
	System           string          `json:"system,omitempty"`
	StopSequences    []string        `json:"stop_sequences,omitempty"`
}

type claudeMessage struct {
	Role    string          `json:"role"`
	Content []claudeContent `json:"content"`
}

type claudeContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Claude response format (what Bedrock returns)
type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func buildClaudeRequest(prompt Prompt, cfg GenerationConfig) ([]byte, error) {
	payload := claudeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        cfg.MaxTokens,
		Temperature:      cfg.Temperature,
		TopK:             cfg.TopK,
		TopP:             cfg.TopP,
		Messages: []claudeMessage{
			{
				Role: "user",
				Content: []claudeContent{
					{Type: "text", Text: prompt.Text},
				},
			},
		},
		System:        prompt.System,
		StopSequences: cfg.StopSequences,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal claude request: %w", err)
	}

	return body, nil
}

func parseClaudeResponse(body []byte) (*Completion, error) {
	var response claudeResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claude response: %w", err)
	}

	// The generated text lives at content[0].text.
	if len(response.Content) == 0 {
		return nil, fmt.Errorf("claude response missing content")
	}

	return &Completion{
		Text:       response.Content[0].Text,
		StopReason: response.StopReason,
	}, nil
}
