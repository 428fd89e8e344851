// Package prompts renders versioned prompt templates from the prompts/
// directory. Keeping templates out of Go source lets prompt changes be
// reviewed and shipped without touching code.
package prompts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

var ErrTemplateNotFound = errors.New("prompt template not found")

// Named templates the gateway depends on.
const (
	IntentClassifierTemplate = "intent_classifier"
	AuditMasterTemplate      = "audit_master"
)

type Renderer struct {
	templates *template.Template
}

// PromptData carries the variables available to every template.
type PromptData struct {
	UserRequest string
}

// NewRenderer parses every *.tmpl file under dir once. A missing or empty
// directory is a construction error: the gateway cannot operate without
// its prompts.
func NewRenderer(dir string) (*Renderer, error) {
	pattern := filepath.Join(dir, "*.tmpl")

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to scan template dir %s: %w", dir, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no templates found in %s: %w", dir, ErrTemplateNotFound)
	}

	templates, err := template.ParseFiles(matches...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates in %s: %w", dir, err)
	}

	return &Renderer{templates: templates}, nil
}

// Render substitutes data into the named template. The name is the file
// name without the .tmpl suffix.
func (r *Renderer) Render(name string, data PromptData) (string, error) {
	tmpl := r.templates.Lookup(name + ".tmpl")
	if tmpl == nil {
		return "", fmt.Errorf("template %q: %w", name, ErrTemplateNotFound)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("template %q execution failed: %w", name, err)
	}
	return buf.String(), nil
}

// DefaultDir resolves the template directory from the environment with a
// repo-relative fallback.
func DefaultDir() string {
	if dir := os.Getenv("PROMPTS_DIR"); dir != "" {
		return dir
	}
	return "prompts"
}
