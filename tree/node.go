package tree

import "fmt"

// FieldNode is one node of the reconstructed nested tree: a field
// identifier, its free-text content, and the ordered sub-selections
// beneath it. FieldID is unique among siblings but not globally; node
// identity is path-qualified.
type FieldNode struct {
	// FieldID identifies the field among its siblings.
	FieldID string `json:"fieldId" yaml:"fieldId"`

	// Content is the free-text value, empty when the field carries none.
	Content string `json:"content" yaml:"content"`

	// Selected is the ordered sequence of child nodes: the options chosen
	// at this field and any sub-fields populated beneath them. Never nil,
	// so the wire form is always an array.
	Selected []*FieldNode `json:"selected" yaml:"selected"`
}

func newFieldNode(id string) *FieldNode {
	return &FieldNode{FieldID: id, Selected: []*FieldNode{}}
}

// Find returns the direct child with the given field identifier, or nil.
func (n *FieldNode) Find(id string) *FieldNode {
	return findSibling(n.Selected, id)
}

func (n *FieldNode) String() string {
	return fmt.Sprintf("field=%q content=%q children=%d", n.FieldID, n.Content, len(n.Selected))
}

// findSibling scans an ordered sibling sequence for a node by identifier.
// Linear search keeps the builder correct under arbitrary key ordering;
// sibling counts in this domain are bounded by user-visible form fields.
func findSibling(siblings []*FieldNode, id string) *FieldNode {
	for _, n := range siblings {
		if n.FieldID == id {
			return n
		}
	}

	return nil
}
