package category

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidTree is returned when the category tree JSON cannot be decoded.
var ErrInvalidTree = errors.New("invalid category tree")

// Node is a single category. Children reference other nodes by id.
type Node struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Children []string `json:"children"`
}

// HasChildren reports whether the node lists any child ids.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Tree is the decoded category hierarchy.
// It is treated as immutable once loaded.
type Tree struct {
	Nodes   map[string]*Node `json:"nodes"`
	RootIDs []string         `json:"root_category_ids"`
}

// Parse decodes a category tree from JSON.
// Nodes without an explicit id take the id of their mapping key.
func Parse(data []byte) (*Tree, error) {
	var tree Tree
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidTree, err)
	}

	if tree.Nodes == nil {
		tree.Nodes = map[string]*Node{}
	}
	for key, node := range tree.Nodes {
		if node == nil {
			delete(tree.Nodes, key)
			continue
		}
		if node.ID == "" {
			node.ID = key
		}
	}

	return &tree, nil
}

// Load reads and decodes the category tree at path.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading category tree %s: %w", path, err)
	}

	tree, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return tree, nil
}

// Node returns the node with the given id.
func (t *Tree) Node(id string) (*Node, bool) {
	node, ok := t.Nodes[id]
	return node, ok
}

// Title returns the title of the node with the given id,
// or the empty string when the id is not in the tree.
func (t *Tree) Title(id string) string {
	if node, ok := t.Nodes[id]; ok {
		return node.Title
	}
	return ""
}
