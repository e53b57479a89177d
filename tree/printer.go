package tree

import (
	"fmt"
	"io"
	"os"
)

// Printer renders built field trees as ASCII art, one line per node, for
// the CLI and for eyeballing a transformation during debugging.
type Printer struct {
	writer io.Writer
}

// NewPrinter returns a Printer writing to w, or to stdout when w is nil.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}

	return &Printer{writer: w}
}

// Print renders each root node and its subtree.
func (p *Printer) Print(roots []*FieldNode) error {
	for _, root := range roots {
		if _, err := fmt.Fprintf(p.writer, "%s\n", nodeLabel(root)); err != nil {
			return err
		}

		if err := p.printChildren(root, ""); err != nil {
			return err
		}
	}

	return nil
}

func (p *Printer) printChildren(n *FieldNode, prefix string) error {
	for i, c := range n.Selected {
		branch := "├── "
		next := prefix + "│   "

		if i == len(n.Selected)-1 {
			branch = "└── "
			next = prefix + "    "
		}

		if _, err := fmt.Fprintf(p.writer, "%s%s%s\n", prefix, branch, nodeLabel(c)); err != nil {
			return err
		}

		if err := p.printChildren(c, next); err != nil {
			return err
		}
	}

	return nil
}

func nodeLabel(n *FieldNode) string {
	if n.Content == "" {
		return n.FieldID
	}

	return fmt.Sprintf("%s content=%q", n.FieldID, n.Content)
}
