package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is a YAML document holding the declarations of several types.
type File struct {
	Version string   `yaml:"version"`
	Types   []Schema `yaml:"types"`
}

// LoadFile loads and parses a YAML declaration file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values and expands shorthands.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Types {
		f.Types[i].Normalize()
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write schema file %s: %w", path, err)
	}

	return nil
}

// Catalog indexes every declaration of the file by type name.
func (f *File) Catalog() (*Catalog, error) {
	c := NewCatalog()

	for i := range f.Types {
		if err := c.Add(&f.Types[i]); err != nil {
			return nil, fmt.Errorf("schema entry %d: %w", i, err)
		}
	}

	return c, nil
}
