// Package prompt loads the briefing prompt template from a YAML manifest
// and renders the final prompt sent to the generation backend.
package prompt

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ContextPlaceholder is replaced with the gathered headlines when rendering
const ContextPlaceholder = "{{context}}"

// manifest is the parsed prompt YAML file
type manifest struct {
	PromptTemplate string `yaml:"prompt_template"`
	SystemMessage  string `yaml:"system_message"`
}

// Manager holds the loaded prompt template
type Manager struct {
	template      string
	systemMessage string
}

// NewManager reads and parses the prompt manifest with strict validation.
// Unknown YAML fields are rejected to catch typos in edited templates.
func NewManager(path string) (*Manager, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt manifest: %w", err)
	}

	var m manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&m); err != nil {
		return nil, fmt.Errorf("failed to parse prompt manifest: %w", err)
	}

	if m.PromptTemplate == "" {
		return nil, fmt.Errorf("prompt manifest missing required field: prompt_template")
	}
	if !strings.Contains(m.PromptTemplate, ContextPlaceholder) {
		return nil, fmt.Errorf("prompt_template missing %s placeholder", ContextPlaceholder)
	}

	if m.SystemMessage == "" {
		m.SystemMessage = "You write short, current-day Markdown briefings."
	}

	return &Manager{template: m.PromptTemplate, systemMessage: m.SystemMessage}, nil
}

// SystemMessage returns the system role message for the chat request
func (m *Manager) SystemMessage() string {
	return m.systemMessage
}

// Render substitutes the gathered headline context into the template
func (m *Manager) Render(context string) string {
	return strings.ReplaceAll(m.template, ContextPlaceholder, context)
}
