package tree

import (
	"fmt"

	"formtree/flat"
	"formtree/pathkey"
)

// MalformedKeyError reports a composite key that violates the structural
// contract: it decodes to zero segments or contains an empty segment where
// an identifier is required. The offending key is kept so the caller can
// fix the upstream data.
type MalformedKeyError struct {
	Key    string
	Reason string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed composite key %q: %s", e.Key, e.Reason)
}

// Build converts one flat record into its ordered sequence of root field
// nodes. Entries are processed in the record's insertion order, which
// determines node-creation order for first-seen siblings.
//
// The build is all-or-nothing: the first malformed key aborts the whole
// record with a *MalformedKeyError and no partial tree is returned.
//
// Two entries may legitimately address the same node. A write to the exact
// key replaces that node's content and selection, while distinct longer
// keys sharing the prefix keep accumulating children on the intermediate
// ancestors. Content and children are independent: extending a node that
// was previously written as a leaf only ever adds to Selected.
func Build(rec flat.Record) ([]*FieldNode, error) {
	result := []*FieldNode{}

	for _, entry := range rec.Entries() {
		segments := pathkey.Decode(entry.Key)

		err := pathkey.Validate(segments)
		if err != nil {
			return nil, &MalformedKeyError{Key: entry.Key, Reason: err.Error()}
		}

		// The cursor is always "the sibling sequence to search or extend
		// next"; descending a segment moves it to that node's Selected.
		siblings := &result

		for _, seg := range segments[:len(segments)-1] {
			node := findSibling(*siblings, seg)
			if node == nil {
				node = newFieldNode(seg)
				*siblings = append(*siblings, node)
			}

			siblings = &node.Selected
		}

		leafID := segments[len(segments)-1]

		leaf := findSibling(*siblings, leafID)
		if leaf == nil {
			leaf = newFieldNode(leafID)
			*siblings = append(*siblings, leaf)
		}

		leaf.Content = entry.Value.Content
		leaf.Selected = expandSelection(entry.Value.Selection)
	}

	return result, nil
}

// BuildAll converts an ordered sequence of records independently, output
// order matching input order. A failure on any record fails the whole call.
func BuildAll(recs flat.Records) ([][]*FieldNode, error) {
	out := make([][]*FieldNode, 0, len(recs))

	for i, rec := range recs {
		roots, err := Build(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		out = append(out, roots)
	}

	return out, nil
}

// expandSelection converts the chosen option identifier(s) into stub nodes,
// one per identifier, in order. A later entry whose key path runs through
// one of these identifiers extends the stub via find-or-create rather than
// creating a duplicate.
func expandSelection(sel flat.Selection) []*FieldNode {
	out := make([]*FieldNode, 0, len(sel))

	for _, id := range sel {
		out = append(out, newFieldNode(id))
	}

	return out
}
