// Package model defines the request and response schemas of the supported
// Bedrock model families. Each family is a builder/parser pair keyed by the
// Family enum; callers never touch family JSON directly.
package model

import "fmt"

// BuildRequest serializes a prompt and generation config into the request
// body for the given family. The config is passed through as supplied;
// range checks happen in GenerationConfig.Validate before calls get here.
func BuildRequest(family Family, prompt Prompt, cfg GenerationConfig) ([]byte, error) {
	switch family {
	case FamilyNova:
		return buildNovaRequest(prompt, cfg)
	case FamilyClaude:
		return buildClaudeRequest(prompt, cfg)
	default:
		return nil, fmt.Errorf("no request builder for model family %q", family)
	}
}

// ParseResponse extracts the generated text from a raw response body using
// the family's fixed key paths. A body without the expected keys is an
// error, never an empty completion.
func ParseResponse(family Family, body []byte) (*Completion, error) {
	switch family {
	case FamilyNova:
		return parseNovaResponse(body)
	case FamilyClaude:
		return parseClaudeResponse(body)
	default:
		return nil, fmt.Errorf("no response parser for model family %q", family)
	}
}
