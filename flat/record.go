package flat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one key/value pair of the flattened mapping. The key is a
// composite path key (see package pathkey); the value describes the leaf
// field that key addresses.
type Entry struct {
	Key   string
	Value Value
}

// Record is one complete flat mapping for a single form instance. It
// preserves insertion order: iteration yields entries in the order their
// keys were first set, and overwriting a key keeps its original position.
type Record struct {
	entries []Entry
	index   map[string]int
}

// Set stores the value under the key. A new key is appended; an existing
// key is overwritten in place, keeping its first-seen position.
func (r *Record) Set(key string, v Value) {
	if r.index == nil {
		r.index = make(map[string]int)
	}

	if i, ok := r.index[key]; ok {
		r.entries[i].Value = v
		return
	}

	r.index[key] = len(r.entries)
	r.entries = append(r.entries, Entry{Key: key, Value: v})
}

// Get returns the value stored under the key.
func (r *Record) Get(key string) (Value, bool) {
	i, ok := r.index[key]
	if !ok {
		return Value{}, false
	}

	return r.entries[i].Value, true
}

// Delete removes the key from the record, preserving the order of the
// remaining entries. Removing is how the rendering layer clears fields
// toggled out of view.
func (r *Record) Delete(key string) {
	i, ok := r.index[key]
	if !ok {
		return
	}

	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, key)

	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Key] = j
	}
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.entries)
}

// Entries returns the entries in insertion order. The returned slice is a
// copy; mutating it does not affect the record.
func (r *Record) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)

	return out
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Key
	}

	return out
}

// UnmarshalJSON decodes a JSON object into the record, preserving the
// document order of its keys. encoding/json map decoding would lose order,
// so the object is walked token by token instead.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("expected object for form record, got %v", tok)
	}

	*r = Record{}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key in form record, got %v", keyTok)
		}

		var v Value

		err = dec.Decode(&v)
		if err != nil {
			return fmt.Errorf("record entry %q: %w", key, err)
		}

		r.Set(key, v)
	}

	_, err = dec.Token()

	return err
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, e := range r.entries {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("record entry %q: %w", e.Key, err)
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// UnmarshalYAML decodes a YAML mapping into the record, preserving the
// document order of its keys.
func (r *Record) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping for form record, got %v", node.Kind)
	}

	*r = Record{}

	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string

		err := node.Content[i].Decode(&key)
		if err != nil {
			return fmt.Errorf("invalid record key: %w", err)
		}

		var v Value

		err = node.Content[i+1].Decode(&v)
		if err != nil {
			return fmt.Errorf("record entry %q: %w", key, err)
		}

		r.Set(key, v)
	}

	return nil
}

// MarshalYAML encodes the record as a YAML mapping in insertion order.
func (r Record) MarshalYAML() (any, error) {
	out := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range r.entries {
		keyNode := &yaml.Node{}

		err := keyNode.Encode(e.Key)
		if err != nil {
			return nil, err
		}

		valNode := &yaml.Node{}

		err = valNode.Encode(e.Value)
		if err != nil {
			return nil, fmt.Errorf("record entry %q: %w", e.Key, err)
		}

		out.Content = append(out.Content, keyNode, valNode)
	}

	return out, nil
}

// Records is an ordered sequence of form records, the unit of a bulk
// submission. Each record is transformed independently and outputs keep
// this order.
type Records []Record

// ParseJSON parses a JSON array of form records.
func ParseJSON(data []byte) (Records, error) {
	var recs Records

	err := json.Unmarshal(data, &recs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records JSON: %w", err)
	}

	return recs, nil
}

// ParseYAML parses a YAML sequence of form records.
func ParseYAML(data []byte) (Records, error) {
	var recs Records

	err := yaml.Unmarshal(data, &recs)
	if err != nil {
		return nil, fmt.Errorf("failed to parse records YAML: %w", err)
	}

	return recs, nil
}

// LoadFile loads form records from a file, picking the format from the
// extension: .yaml/.yml is YAML, anything else is JSON.
func LoadFile(path string) (Records, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}
