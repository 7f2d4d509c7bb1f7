package taxonomy

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a complete taxonomy from a YAML file and validates it.
// The file replaces the embedded defaults entirely; partial overlays are
// deliberately unsupported so a versioned taxonomy file is self-contained.
func Load(path string) (*Tables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read taxonomy: %w", err)
	}

	var t Tables
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse taxonomy %s: %w", path, err)
	}
	if t.Version == "" {
		return nil, fmt.Errorf("taxonomy %s: missing version", path)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("taxonomy %s: %w", path, err)
	}
	return &t, nil
}
