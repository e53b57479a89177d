package flat

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"formtree/internal/common"
)

// Value is the leaf value record attached to one composite key: optional
// free-text content and the identifier(s) of the option(s) chosen at that
// field. Both parts are independent; a field may carry either or both.
type Value struct {
	// Content is the free-text value, or the string form of a scalar.
	// Empty when the field carries no free-text value.
	Content string `json:"content,omitempty" yaml:"content,omitempty"`

	// Selection holds the chosen option identifier(s). Single-select fields
	// produce one identifier, multi-select fields an ordered list.
	Selection Selection `json:"selection,omitempty" yaml:"selection,omitempty"`
}

// Selection is an ordered set of chosen option identifiers. It unmarshals
// from either a single scalar or a sequence, in both YAML and JSON:
//   - "passport"            -> one identifier
//   - ["home", "mobile"]    -> ordered identifiers
//   - "" or absent          -> no selection
type Selection []string

// IsEmpty returns true if no option is selected.
func (s Selection) IsEmpty() bool {
	return common.IsEmpty(s)
}

// IsSingle returns true if exactly one option is selected.
func (s Selection) IsSingle() bool {
	return common.IsSingle(s)
}

// IsMultiple returns true if more than one option is selected.
func (s Selection) IsMultiple() bool {
	return common.IsMultiple(s)
}

// First returns the first selected identifier or empty string if none.
func (s Selection) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// UnmarshalYAML implements custom YAML unmarshaling for Selection.
// Accepts either a single scalar or a sequence of scalars.
func (s *Selection) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = Selection{str}
		} else {
			*s = Selection{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or sequence for selection, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Selection.
// Outputs a single scalar if length is 1, otherwise a sequence.
func (s Selection) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Selection.
// Accepts either a single string or an array of strings.
func (s *Selection) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		if str != "" {
			*s = Selection{str}
		} else {
			*s = Selection{}
		}

		return nil
	}

	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*s = arr
		return nil
	}

	return fmt.Errorf("expected string or array of strings for selection")
}

// MarshalJSON implements custom JSON marshaling for Selection.
// Outputs a single string if length is 1, otherwise an array.
func (s Selection) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}

	return json.Marshal([]string(s))
}
