// Package input loads the plain-text files fed into the tasks.
package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Document is one loaded input file.
type Document struct {
	ID      string
	Title   string
	Content string
	Path    string
}

// ReadTextFile loads a plain-text input file. Only .txt files are
// accepted, and the file must contain something other than whitespace.
func ReadTextFile(path string) (*Document, error) {
	path = strings.TrimSpace(path)

	ext := filepath.Ext(path)
	if ext != ".txt" {
		return nil, fmt.Errorf("unsupported file type %s (expected .txt)", ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	filename := filepath.Base(path)

	return &Document{
		ID:      uuid.New().String(),
		Title:   strings.TrimSuffix(filename, ext),
		Content: content,
		Path:    path,
	}, nil
}
