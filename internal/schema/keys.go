package schema

import (
	"fmt"

	"formtree/flat"
	"formtree/pathkey"
)

// AllKeys returns every composite key the schema can legally produce, in
// definition order. Keys address fields; option identifiers appear only as
// intermediate segments.
func AllKeys(s *Schema) ([]string, error) {
	var out []string

	err := walkKeys(s.Fields, nil, func(key string, _ *Field) {
		out = append(out, key)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ActiveKeys returns the subset of legal keys reachable given the record's
// selections: top-level fields are always reachable, fields under an
// option only when that option is currently selected at its parent field.
func ActiveKeys(s *Schema, rec flat.Record) (map[string]struct{}, error) {
	active := make(map[string]struct{})

	err := walkActive(s.Fields, nil, rec, active)
	if err != nil {
		return nil, err
	}

	return active, nil
}

// FieldAt resolves a decoded ancestor chain (alternating field and option
// segments) to its field definition.
func FieldAt(s *Schema, segments []string) (*Field, bool) {
	fields := s.Fields

	var field *Field

	for i := 0; i < len(segments); i += 2 {
		field = findField(fields, segments[i])
		if field == nil {
			return nil, false
		}

		if i+1 < len(segments) {
			opt := findOption(field.Options, segments[i+1])
			if opt == nil {
				return nil, false
			}

			fields = opt.Fields
		}
	}

	// An even-length chain ends at an option, which no key may address.
	if len(segments)%2 == 0 {
		return nil, false
	}

	return field, true
}

func walkKeys(fields []Field, prefix []string, visit func(key string, f *Field)) error {
	for i := range fields {
		f := &fields[i]
		path := append(append([]string{}, prefix...), f.ID)

		key, err := pathkey.Encode(path)
		if err != nil {
			return fmt.Errorf("schema produces unencodable key: %w", err)
		}

		visit(key, f)

		for j := range f.Options {
			opt := &f.Options[j]

			err := walkKeys(opt.Fields, append(append([]string{}, path...), opt.ID), visit)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func walkActive(fields []Field, prefix []string, rec flat.Record, active map[string]struct{}) error {
	for i := range fields {
		f := &fields[i]
		path := append(append([]string{}, prefix...), f.ID)

		key, err := pathkey.Encode(path)
		if err != nil {
			return fmt.Errorf("schema produces unencodable key: %w", err)
		}

		active[key] = struct{}{}

		if len(f.Options) == 0 {
			continue
		}

		v, ok := rec.Get(key)
		if !ok {
			continue
		}

		for _, optID := range v.Selection {
			opt := findOption(f.Options, optID)
			if opt == nil {
				continue
			}

			err := walkActive(opt.Fields, append(append([]string{}, path...), optID), rec, active)
			if err != nil {
				return err
			}
		}
	}

	return nil
}
