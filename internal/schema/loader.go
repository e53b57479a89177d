package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile loads a schema file, picking the format from the extension:
// .hcl is HCL, anything else is YAML.
func LoadFile(path string) (*Schema, error) {
	if strings.EqualFold(filepath.Ext(path), ".hcl") {
		return ParseHCLFile(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Schema.
func Parse(data []byte) (*Schema, error) {
	var s Schema

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema YAML: %w", err)
	}

	applyDefaults(&s)

	return &s, nil
}

// Marshal serializes a Schema to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(s *Schema) {
	if s.Version == "" {
		s.Version = "1"
	}

	defaultFieldTypes(s.Fields)
}

// defaultFieldTypes infers omitted field types: select when options are
// declared, text otherwise.
func defaultFieldTypes(fields []Field) {
	for i := range fields {
		f := &fields[i]

		if f.Type == "" {
			if len(f.Options) > 0 {
				f.Type = FieldSelect
			} else {
				f.Type = FieldText
			}
		}

		for j := range f.Options {
			defaultFieldTypes(f.Options[j].Fields)
		}
	}
}
