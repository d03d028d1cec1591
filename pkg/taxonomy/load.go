package taxonomy

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a YAML rule table and validates it with New.
//
//	version: "2024.06.2"
//	fallback: Other
//	rules:
//	  - name: Phones
//	    keywords: [smartphone, iphone]
func Parse(data []byte) (*Taxonomy, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: could not decode yaml: %w", ErrInvalidTaxonomy, err)
	}

	return New(cfg)
}

// Load reads a YAML rule table from path. An empty path returns Default().
func Load(path string) (*Taxonomy, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read taxonomy file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse taxonomy file %s: %w", path, err)
	}

	return t, nil
}
