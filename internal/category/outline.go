package category

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrMissingNode is returned in strict mode when a referenced id has no node.
	ErrMissingNode = errors.New("category id not found in tree")

	// ErrCycle is returned when a category is its own ancestor.
	ErrCycle = errors.New("category tree contains a cycle")
)

// Entry is a node placed in the ordered hierarchy.
type Entry struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Children []*Entry `json:"children,omitempty"`

	// Branch is true when the node lists child ids, even if none of them
	// resolved to a node.
	Branch bool `json:"-"`
}

// Label is the title, or the id when the title is empty.
func (e *Entry) Label() string {
	if e.Title == "" {
		return e.ID
	}
	return e.Title
}

// Outline is the tree ordered for display, starting at the roots.
type Outline struct {
	Roots      []*Entry
	Count      int
	MissingIDs []string
}

// Outline orders every level of the tree by title. Ids missing from the tree
// are skipped and listed in MissingIDs in the order first met, unless strict
// is set, in which case the first one is an error. A node reached again
// through its own descendants is an ErrCycle; a node shared by two parents
// appears under both.
func (s *Sorter) Outline(tree *Tree, strict bool) (*Outline, error) {
	walker := &outliner{
		sorter: s,
		tree:   tree,
		strict: strict,
		seen:   map[string]bool{},
	}

	roots, err := walker.level(tree.RootIDs, nil)
	if err != nil {
		return nil, err
	}

	return &Outline{
		Roots:      roots,
		Count:      walker.count,
		MissingIDs: walker.missing,
	}, nil
}

type outliner struct {
	sorter  *Sorter
	tree    *Tree
	strict  bool
	count   int
	missing []string
	seen    map[string]bool
}

func (o *outliner) level(ids []string, ancestors []string) ([]*Entry, error) {
	var entries []*Entry
	for _, id := range o.sorter.SortIDs(o.tree, ids) {
		entry, err := o.entry(id, ancestors)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (o *outliner) entry(id string, ancestors []string) (*Entry, error) {
	node, ok := o.tree.Node(id)
	if !ok {
		if o.strict {
			return nil, fmt.Errorf("%w: %q (referenced under %s)", ErrMissingNode, id, describePath(ancestors))
		}
		if !o.seen[id] {
			o.seen[id] = true
			o.missing = append(o.missing, id)
		}
		return nil, nil
	}
	if slices.Contains(ancestors, id) {
		cycle := append(slices.Clone(ancestors), id)
		return nil, fmt.Errorf("%w: %s", ErrCycle, strings.Join(cycle, " -> "))
	}
	o.count++

	entry := &Entry{ID: id, Title: node.Title, Branch: node.HasChildren()}
	if entry.Branch {
		children, err := o.level(node.Children, append(slices.Clone(ancestors), id))
		if err != nil {
			return nil, err
		}
		entry.Children = children
	}
	return entry, nil
}

func describePath(ancestors []string) string {
	if len(ancestors) == 0 {
		return "root_category_ids"
	}
	return strings.Join(ancestors, " -> ")
}
