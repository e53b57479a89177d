package schema

import (
	"fmt"
	"strings"

	"formtree/internal/diagnostic"
	"formtree/pathkey"
)

// FieldType classifies how a field collects its value.
type FieldType string

const (
	// FieldText collects free text; it has no options.
	FieldText FieldType = "text"
	// FieldSelect offers options, at most one of which may be chosen.
	FieldSelect FieldType = "select"
	// FieldMultiSelect offers options, any number of which may be chosen.
	FieldMultiSelect FieldType = "multiselect"
)

// IsValid returns true if the type is a recognized value.
func (t FieldType) IsValid() bool {
	return t == FieldText || t == FieldSelect || t == FieldMultiSelect
}

// HasOptions returns true for types that declare options.
func (t FieldType) HasOptions() bool {
	return t == FieldSelect || t == FieldMultiSelect
}

// Schema is the root of a field definition file.
type Schema struct {
	// Version of the schema format (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Fields are the top-level fields of the form.
	Fields []Field `yaml:"fields"`
}

// Field defines one field: its identifier (unique among siblings), how it
// collects a value, and the options that reveal further fields beneath it.
type Field struct {
	// ID is the field identifier used in composite keys.
	ID string `yaml:"id"`

	// Type of the field. Defaults to select when options are present,
	// text otherwise.
	Type FieldType `yaml:"type,omitempty"`

	// Label is the human-readable name, for rendering only.
	Label string `yaml:"label,omitempty"`

	// Default is the prefill content for the field, if any.
	Default string `yaml:"default,omitempty"`

	// Options declared under this field. Only meaningful for select and
	// multiselect fields.
	Options []Option `yaml:"options,omitempty"`
}

// Option defines one choosable option and the conditional fields it
// reveals when chosen.
type Option struct {
	// ID is the option identifier used in selections and composite keys.
	ID string `yaml:"id"`

	// Label is the human-readable name, for rendering only.
	Label string `yaml:"label,omitempty"`

	// Fields revealed when this option is chosen.
	Fields []Field `yaml:"fields,omitempty"`
}

// Validate checks the definition tree itself: identifiers present, unique
// per level, free of the reserved path separator, field types recognized,
// and options only where the type allows them.
func (s *Schema) Validate() *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	validateFields(res, s.Fields, nil)

	return res
}

func validateFields(res *diagnostic.Diagnostics, fields []Field, prefix []string) {
	seen := map[string]struct{}{}

	for i := range fields {
		f := &fields[i]
		at := strings.Join(append(append([]string{}, prefix...), f.ID), pathkey.Separator)

		if f.ID == "" {
			res.AddError("empty_field_id", "field has no identifier", at)
			continue
		}

		if strings.Contains(f.ID, pathkey.Separator) {
			res.AddError("reserved_separator",
				fmt.Sprintf("field identifier %q contains reserved separator %q", f.ID, pathkey.Separator), at)
		}

		if _, dup := seen[f.ID]; dup {
			res.AddError("duplicate_field_id",
				fmt.Sprintf("field identifier %q is not unique among its siblings", f.ID), at)
		}

		seen[f.ID] = struct{}{}

		if !f.Type.IsValid() {
			res.AddError("unknown_field_type", fmt.Sprintf("unknown field type %q", f.Type), at)
		}

		if len(f.Options) > 0 && !f.Type.HasOptions() {
			res.AddError("options_on_text", fmt.Sprintf("field type %q cannot declare options", f.Type), at)
		}

		seenOpts := map[string]struct{}{}

		for j := range f.Options {
			opt := &f.Options[j]
			optAt := at + pathkey.Separator + opt.ID

			if opt.ID == "" {
				res.AddError("empty_option_id", "option has no identifier", at)
				continue
			}

			if strings.Contains(opt.ID, pathkey.Separator) {
				res.AddError("reserved_separator",
					fmt.Sprintf("option identifier %q contains reserved separator %q", opt.ID, pathkey.Separator), optAt)
			}

			if _, dup := seenOpts[opt.ID]; dup {
				res.AddError("duplicate_option_id",
					fmt.Sprintf("option identifier %q is not unique under field %q", opt.ID, f.ID), optAt)
			}

			seenOpts[opt.ID] = struct{}{}

			validateFields(res, opt.Fields, append(append([]string{}, prefix...), f.ID, opt.ID))
		}
	}
}

func findField(fields []Field, id string) *Field {
	for i := range fields {
		if fields[i].ID == id {
			return &fields[i]
		}
	}

	return nil
}

func findOption(options []Option, id string) *Option {
	for i := range options {
		if options[i].ID == id {
			return &options[i]
		}
	}

	return nil
}

func fieldIDs(fields []Field) []string {
	out := make([]string, len(fields))
	for i := range fields {
		out[i] = fields[i].ID
	}

	return out
}

func optionIDs(options []Option) []string {
	out := make([]string, len(options))
	for i := range options {
		out[i] = options[i].ID
	}

	return out
}
