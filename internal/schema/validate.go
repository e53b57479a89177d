package schema

import (
	"fmt"

	"formtree/flat"
	"formtree/internal/diagnostic"
	"formtree/internal/match"
	"formtree/pathkey"
)

// Check lints one flat record against the schema. It is a structural check
// of keys and selection shapes, not field-level value validation (which
// runs in the rendering layer): malformed composite keys, identifiers not
// defined at their level (with close-match suggestions), selections on
// fields that take none, multiple selections on single-select fields, and
// stale entries no longer reachable with the record's current selections.
func Check(s *Schema, rec flat.Record) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	resolved := make(map[string]struct{})

	for _, entry := range rec.Entries() {
		segments := pathkey.Decode(entry.Key)

		err := pathkey.Validate(segments)
		if err != nil {
			res.AddError("malformed_key", err.Error(), entry.Key)
			continue
		}

		field, ok := resolveEntry(res, s, entry.Key, segments)
		if !ok {
			continue
		}

		resolved[entry.Key] = struct{}{}

		checkSelection(res, field, entry)
	}

	active, err := ActiveKeys(s, rec)
	if err != nil {
		res.AddError("invalid_schema", err.Error(), "")
		return res
	}

	for key := range resolved {
		if _, ok := active[key]; !ok {
			res.AddWarning("stale_entry",
				"field is not reachable with the record's current selections", key)
		}
	}

	return res
}

// resolveEntry walks the alternating field/option chain of one key,
// reporting the first unknown identifier with suggestions from the
// identifiers actually defined at that level.
func resolveEntry(res *diagnostic.Diagnostics, s *Schema, key string, segments []string) (*Field, bool) {
	fields := s.Fields

	var field *Field

	for i := 0; i < len(segments); i += 2 {
		field = findField(fields, segments[i])
		if field == nil {
			ids := fieldIDs(fields)
			res.AddErrorWithSuggestions("unknown_field",
				fmt.Sprintf("field %q is not defined at this level", segments[i]),
				key, match.Suggest(segments[i], ids))

			return nil, false
		}

		if i+1 < len(segments) {
			opt := findOption(field.Options, segments[i+1])
			if opt == nil {
				ids := optionIDs(field.Options)
				res.AddErrorWithSuggestions("unknown_option",
					fmt.Sprintf("option %q is not declared under field %q", segments[i+1], field.ID),
					key, match.Suggest(segments[i+1], ids))

				return nil, false
			}

			fields = opt.Fields
		}
	}

	if len(segments)%2 == 0 {
		res.AddError("key_targets_option",
			"composite key ends at an option; keys must address fields", key)

		return nil, false
	}

	return field, true
}

func checkSelection(res *diagnostic.Diagnostics, field *Field, entry flat.Entry) {
	sel := entry.Value.Selection
	if sel.IsEmpty() {
		return
	}

	switch field.Type {
	case FieldText:
		res.AddError("selection_on_text",
			fmt.Sprintf("field %q takes no selection", field.ID), entry.Key)

		return

	case FieldSelect:
		if sel.IsMultiple() {
			res.AddError("multiple_selection_on_single_select",
				fmt.Sprintf("field %q allows a single selection, got %d", field.ID, len(sel)), entry.Key)
		}

	case FieldMultiSelect:
	}

	for _, id := range sel {
		if findOption(field.Options, id) == nil {
			res.AddErrorWithSuggestions("unknown_option",
				fmt.Sprintf("option %q is not declared under field %q", id, field.ID),
				entry.Key, match.Suggest(id, optionIDs(field.Options)))
		}
	}
}
