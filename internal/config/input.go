// Package config parses plan input files into the engine's immutable
// input snapshot. Parsing and validation both happen here; a file that
// loads without error is safe to hand to the engine.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/previplan/previplan/internal/domain"
)

// InputParser handles parsing of plan input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a projection input snapshot from a YAML file and
// validates it before returning.
func (ip *InputParser) LoadFromFile(filename string) (*domain.ProjectionInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML plan document.
func (ip *InputParser) Parse(data []byte) (*domain.ProjectionInput, error) {
	var input domain.ProjectionInput
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}
	return &input, nil
}
