package models

// SummarizeRequest is the input for POST /api/v1/summarize.
type SummarizeRequest struct {
	Text string `json:"text" jsonschema:"required,description=Text to summarize"`
}

type SummarizeResponse struct {
	RequestID string `json:"request_id"`
	Summary   string `json:"summary"`
}

// CodeGenerationRequest is the input for POST /api/v1/code.
type CodeGenerationRequest struct {
	Description string `json:"description" jsonschema:"required,description=Plain-language description of the program to write"`
}

type CodeGenerationResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
}

// ExtractionRequest is the input for POST /api/v1/extract. All selects
// every tagged entity instead of the last one.
type ExtractionRequest struct {
	Text string `json:"text" jsonschema:"required,description=Text to extract entities from"`
	All  bool   `json:"all,omitempty" jsonschema:"description=Return every entity instead of the last one"`
}

// ExtractionResponse carries either the last entity (default mode) or all
// entities in document order (all mode). Found is false when the model
// reply carried no tagged entity.
type ExtractionResponse struct {
	RequestID string   `json:"request_id"`
	Tag       string   `json:"tag"`
	Found     bool     `json:"found"`
	Entity    string   `json:"entity,omitempty"`
	Entities  []string `json:"entities,omitempty"`
}
