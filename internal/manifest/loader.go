package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML manifest from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a manifest File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	applyDefaults(&f)

	if err := validate(&f); err != nil {
		return nil, err
	}

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}
}

// validate rejects manifests missing the required fields.
func validate(f *File) error {
	if f.Package == "" {
		return fmt.Errorf("manifest: package is required")
	}

	if len(f.Roots) == 0 {
		return fmt.Errorf("manifest: at least one root is required")
	}

	for i, r := range f.Roots {
		if r.Type == "" {
			return fmt.Errorf("manifest: roots[%d]: type is required", i)
		}
	}

	return nil
}

// Marshal serializes a manifest back to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}
