package model

import "testing"

func TestFamilyForModel(t *testing.T) {
	tests := []struct {
		name      string
		modelID   string
		family    Family
		expectErr bool
	}{
		{
			name:    "nova lite",
			modelID: "amazon.nova-lite-v1:0",
			family:  FamilyNova,
		},
		{
			name:    "nova micro with region prefix",
			modelID: "us.amazon.nova-micro-v1:0",
			family:  FamilyNova,
		},
		{
			name:    "claude sonnet",
			modelID: "anthropic.claude-3-5-sonnet-20240620-v1:0",
			family:  FamilyClaude,
		},
		{
			name:    "claude haiku with region prefix",
			modelID: "eu.anthropic.claude-3-haiku-20240307-v1:0",
			family:  FamilyClaude,
		},
		{
			name:      "unsupported vendor",
			modelID:   "meta.llama3-8b-instruct-v1:0",
			expectErr: true,
		},
		{
			name:      "empty model ID",
			modelID:   "",
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			family, err := FamilyForModel(test.modelID)

			if test.expectErr {
				if err == nil {
					t.Errorf("Expected error for model ID %q, got family %q", test.modelID, family)
				}
				return
			}

			if err != nil {
				t.Fatalf("FamilyForModel(%q) failed: %v", test.modelID, err)
			}
			if family != test.family {
				t.Errorf("Family: %q, want: %q", family, test.family)
			}
		})
	}
}
