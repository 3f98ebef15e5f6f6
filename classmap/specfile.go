package classmap

import (
	"classmap-builder/internal/mapping"
)

// LoadSpecFile reads a YAML field-spec file.
func LoadSpecFile(path string) (*SpecFile, error) {
	return mapping.LoadFile(path)
}

// ParseSpecFile parses YAML field-spec data.
func ParseSpecFile(data []byte) (*SpecFile, error) {
	return mapping.Parse(data)
}

// MarshalSpecFile serializes sf to YAML.
func MarshalSpecFile(sf *SpecFile) ([]byte, error) {
	return mapping.Marshal(sf)
}

// WriteSpecFile writes sf to path as YAML.
func WriteSpecFile(sf *SpecFile, path string) error {
	return mapping.WriteFile(sf, path)
}
