package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML field-spec file from the given path.
func LoadFile(path string) (*SpecFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a SpecFile.
func Parse(data []byte) (*SpecFile, error) {
	var sf SpecFile

	err := yaml.Unmarshal(data, &sf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse spec YAML: %w", err)
	}

	// Apply defaults
	applyDefaults(&sf)

	return &sf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(sf *SpecFile) {
	if sf.Version == "" {
		sf.Version = "1"
	}
}

// Marshal serializes a SpecFile to YAML.
func Marshal(sf *SpecFile) ([]byte, error) {
	return yaml.Marshal(sf)
}

// WriteFile writes a SpecFile to the given path.
func WriteFile(sf *SpecFile, path string) error {
	data, err := Marshal(sf)
	if err != nil {
		return fmt.Errorf("failed to marshal spec file: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write spec file %s: %w", path, err)
	}

	return nil
}
