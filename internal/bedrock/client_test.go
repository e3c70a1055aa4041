package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/povarna/generative-ai-agents/textgen-agent/internal/model"
)

// fakeInvokeAPI records the last request and returns a canned response.
type fakeInvokeAPI struct {
	input  *bedrockruntime.InvokeModelInput
	output *bedrockruntime.InvokeModelOutput
	err    error
}

func (f *fakeInvokeAPI) InvokeModel(ctx context.Context, params *bedrockruntime.InvokeModelInput, optFns ...func(*bedrockruntime.Options)) (*bedrockruntime.InvokeModelOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func TestGenerateNova(t *testing.T) {
	api := &fakeInvokeAPI{
		output: &bedrockruntime.InvokeModelOutput{
			Body: []byte(`{"output":{"message":{"role":"assistant","content":[{"text":"A short summary."}]}},"stopReason":"end_turn"}`),
		},
	}

	client, err := NewClientWithAPI(api, "amazon.nova-lite-v1:0")
	if err != nil {
		t.Fatalf("NewClientWithAPI failed: %v", err)
	}

	completion, err := client.Generate(context.Background(), model.Prompt{Text: "Summarize this."}, model.GenerationConfig{
		MaxTokens:   300,
		Temperature: 0.3,
		TopP:        0.1,
		TopK:        20,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if completion.Text != "A short summary." {
		t.Errorf("Text: %q, want: %q", completion.Text, "A short summary.")
	}

	if api.input == nil {
		t.Fatal("Expected InvokeModel to be called")
	}
	if got := *api.input.ModelId; got != "amazon.nova-lite-v1:0" {
		t.Errorf("ModelId: %q, want: %q", got, "amazon.nova-lite-v1:0")
	}
	if got := *api.input.Accept; got != "application/json" {
		t.Errorf("Accept: %q, want: %q", got, "application/json")
	}
	if got := *api.input.ContentType; got != "application/json" {
		t.Errorf("ContentType: %q, want: %q", got, "application/json")
	}

	var request map[string]json.RawMessage
	if err := json.Unmarshal(api.input.Body, &request); err != nil {
		t.Fatalf("Failed to unmarshal request body: %v", err)
	}
	if _, ok := request["inferenceConfig"]; !ok {
		t.Errorf("Expected nova request body with inferenceConfig, got: %s", api.input.Body)
	}
}

func TestGenerateClaude(t *testing.T) {
	api := &fakeInvokeAPI{
		output: &bedrockruntime.InvokeModelOutput{
			Body: []byte(`{"content":[{"type":"text","text":"func main() {}"}],"stop_reason":"end_turn"}`),
		},
	}

	client, err := NewClientWithAPI(api, "anthropic.claude-3-5-sonnet-20240620-v1:0")
	if err != nil {
		t.Fatalf("NewClientWithAPI failed: %v", err)
	}

	completion, err := client.Generate(context.Background(), model.Prompt{Text: "Write main."}, model.GenerationConfig{
		MaxTokens:   2048,
		Temperature: 0.1,
		TopP:        0.9,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if completion.Text != "func main() {}" {
		t.Errorf("Text: %q, want: %q", completion.Text, "func main() {}")
	}

	var request map[string]json.RawMessage
	if err := json.Unmarshal(api.input.Body, &request); err != nil {
		t.Fatalf("Failed to unmarshal request body: %v", err)
	}
	if _, ok := request["anthropic_version"]; !ok {
		t.Errorf("Expected claude request body with anthropic_version, got: %s", api.input.Body)
	}
}

func TestGenerateInvalidConfig(t *testing.T) {
	api := &fakeInvokeAPI{}

	client, err := NewClientWithAPI(api, "amazon.nova-lite-v1:0")
	if err != nil {
		t.Fatalf("NewClientWithAPI failed: %v", err)
	}

	_, err = client.Generate(context.Background(), model.Prompt{Text: "hello"}, model.GenerationConfig{
		MaxTokens:   100,
		Temperature: 1.5,
		TopP:        0.9,
	})
	if err == nil {
		t.Fatal("Expected error for out-of-range temperature, got nil")
	}
	if api.input != nil {
		t.Error("Expected no InvokeModel call for invalid config")
	}
}

func TestGenerateInvokeError(t *testing.T) {
	invokeErr := errors.New("bedrock service unavailable")
	api := &fakeInvokeAPI{err: invokeErr}

	client, err := NewClientWithAPI(api, "amazon.nova-lite-v1:0")
	if err != nil {
		t.Fatalf("NewClientWithAPI failed: %v", err)
	}

	_, err = client.Generate(context.Background(), model.Prompt{Text: "hello"}, model.GenerationConfig{
		MaxTokens:   100,
		Temperature: 0.3,
		TopP:        0.9,
	})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, invokeErr) {
		t.Errorf("Expected wrapped invoke error, got: %v", err)
	}
}

func TestNewClientWithAPIUnknownModel(t *testing.T) {
	_, err := NewClientWithAPI(&fakeInvokeAPI{}, "meta.llama3-8b-instruct-v1:0")
	if err == nil {
		t.Error("Expected error for unknown model family, got nil")
	}
}
