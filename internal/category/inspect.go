package category

import (
	"slices"
	"sort"
)

// Report summarises the shape of a tree as seen from its roots.
type Report struct {
	Nodes       int        `json:"nodes"`
	Roots       int        `json:"roots"`
	Reachable   int        `json:"reachable"`
	MaxDepth    int        `json:"max_depth"`
	MissingIDs  []string   `json:"missing_ids,omitempty"`
	Unreachable []string   `json:"unreachable,omitempty"`
	Cycles      [][]string `json:"cycles,omitempty"`
}

// Clean reports whether the tree has no missing ids, unreachable nodes or cycles.
func (r *Report) Clean() bool {
	return len(r.MissingIDs) == 0 && len(r.Unreachable) == 0 && len(r.Cycles) == 0
}

// Inspect walks the tree from its roots. Depth counts roots as depth 1.
// A cycle is recorded as the ancestor path ending in the repeated id and is
// not descended into.
func (t *Tree) Inspect() Report {
	inspector := &inspector{
		tree:    t,
		reached: make(map[string]bool, len(t.Nodes)),
		missing: make(map[string]bool),
	}
	for _, id := range t.RootIDs {
		inspector.visit(id, nil)
	}

	report := Report{
		Nodes:      len(t.Nodes),
		Roots:      len(t.RootIDs),
		Reachable:  len(inspector.reached),
		MaxDepth:   inspector.maxDepth,
		MissingIDs: sortedKeys(inspector.missing),
		Cycles:     inspector.cycles,
	}
	for id := range t.Nodes {
		if !inspector.reached[id] {
			report.Unreachable = append(report.Unreachable, id)
		}
	}
	sort.Strings(report.Unreachable)

	return report
}

type inspector struct {
	tree     *Tree
	reached  map[string]bool
	missing  map[string]bool
	cycles   [][]string
	maxDepth int
}

func (in *inspector) visit(id string, path []string) {
	node, ok := in.tree.Node(id)
	if !ok {
		in.missing[id] = true
		return
	}
	if slices.Contains(path, id) {
		cycle := append(slices.Clone(path), id)
		in.cycles = append(in.cycles, cycle)
		return
	}

	in.reached[id] = true
	path = append(path, id)
	if len(path) > in.maxDepth {
		in.maxDepth = len(path)
	}
	for _, child := range node.Children {
		in.visit(child, path)
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
