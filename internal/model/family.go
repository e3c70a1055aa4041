package model

import (
	"fmt"
	"strings"
)

// Family identifies a class of Bedrock models sharing one request/response
// JSON schema. Every supported family has a builder/parser pair in this
// package; adding a family means adding another pair and wiring it into
// BuildRequest and ParseResponse.
type Family string

const (
	// FamilyNova covers the Amazon Nova models (messages-v1 schema).
	FamilyNova Family = "nova"
	// FamilyClaude covers the Anthropic Claude models on Bedrock.
	FamilyClaude Family = "claude"
)

// Regional inference profiles prefix the vendor part of the model ID.
var regionPrefixes = []string{"us.", "eu.", "apac.", "global."}

// FamilyForModel resolves the schema family from a Bedrock model identifier,
// e.g. "amazon.nova-lite-v1:0" or "us.anthropic.claude-3-5-sonnet-20240620-v1:0".
func FamilyForModel(modelID string) (Family, error) {
	id := modelID
	for _, prefix := range regionPrefixes {
		if strings.HasPrefix(id, prefix) {
			id = strings.TrimPrefix(id, prefix)
			break
		}
	}

	switch {
	case strings.HasPrefix(id, "amazon.nova"):
		return FamilyNova, nil
	case strings.HasPrefix(id, "anthropic.claude"):
		return FamilyClaude, nil
	default:
		return "", fmt.Errorf("no schema family known for model ID %q", modelID)
	}
}
