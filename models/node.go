// Package models defines the tree used to export and display a menu.
package models

// Kind says what part of a menu a Node stands for.
type Kind string

const (
	KindMenu      Kind = "menu"
	KindStatement Kind = "statement"
	KindFlag      Kind = "flag"
	KindOption    Kind = "option"
)

// Node is one element of a menu tree: the menu itself, a statement, or one
// of a statement's flags and options.
type Node struct {
	Kind        Kind     `json:"kind" yaml:"kind"`
	Name        string   `json:"name" yaml:"name"`
	Aliases     []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Usage       string   `json:"usage,omitempty" yaml:"usage,omitempty"`
	Placeholder string   `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Required    bool     `json:"required,omitempty" yaml:"required,omitempty"`
	Repeatable  bool     `json:"repeatable,omitempty" yaml:"repeatable,omitempty"`
	Default     *string  `json:"default,omitempty" yaml:"default,omitempty"`
	Constraints []string `json:"constraints,omitempty" yaml:"constraints,omitempty"`
	Residue     string   `json:"residue,omitempty" yaml:"residue,omitempty"` // statements only
	Children    []*Node  `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf returns true if this node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// Find searches for a direct child by name.
func (n *Node) Find(name string) *Node {
	for _, child := range n.Children {
		if child.Name == name {
			return child
		}
	}
	return nil
}

// Walk calls fn for each node in the tree (depth-first pre-order).
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Count returns how many nodes of the given kind the tree holds.
func (n *Node) Count(kind Kind) int {
	total := 0
	n.Walk(func(c *Node) {
		if c.Kind == kind {
			total++
		}
	})
	return total
}

// Clone returns a deep copy of the node.
func (n *Node) Clone() *Node {
	c := *n
	c.Aliases = append([]string(nil), n.Aliases...)
	c.Constraints = append([]string(nil), n.Constraints...)
	if n.Default != nil {
		d := *n.Default
		c.Default = &d
	}
	c.Children = nil
	for _, child := range n.Children {
		c.Children = append(c.Children, child.Clone())
	}
	return &c
}
