package category

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func labels(entries []*Entry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Label())
	}
	return out
}

func TestOutline(t *testing.T) {
	tree := &Tree{
		Nodes: map[string]*Node{
			"books":    {ID: "books", Title: "Books", Children: []string{"poetry", "ghost", "fiction"}},
			"fiction":  {ID: "fiction", Title: "Fiction"},
			"poetry":   {ID: "poetry", Title: "Poetry"},
			"audio":    {ID: "audio", Title: "audio"},
			"clothing": {ID: "clothing", Title: ""},
		},
		RootIDs: []string{"books", "clothing", "audio"},
	}

	outline, err := NewSorter(language.English).Outline(tree, false)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	if got := labels(outline.Roots); !slices.Equal(got, []string{"clothing", "audio", "Books"}) {
		t.Errorf("root labels = %v, want untitled first then audio, Books", got)
	}

	books := outline.Roots[2]
	if !books.Branch {
		t.Error("books should be a branch")
	}
	if got := labels(books.Children); !slices.Equal(got, []string{"Fiction", "Poetry"}) {
		t.Errorf("books children = %v", got)
	}
	if outline.Roots[0].Branch {
		t.Error("clothing should be a leaf")
	}
	if outline.Count != 5 {
		t.Errorf("Count = %d, want 5", outline.Count)
	}
	if !slices.Equal(outline.MissingIDs, []string{"ghost"}) {
		t.Errorf("MissingIDs = %v", outline.MissingIDs)
	}
}

func TestOutline_BranchWithOnlyMissingChildren(t *testing.T) {
	tree := &Tree{
		Nodes:   map[string]*Node{"a": {ID: "a", Title: "A", Children: []string{"x", "y"}}},
		RootIDs: []string{"a"},
	}

	outline, err := NewSorter(language.English).Outline(tree, false)
	if err != nil {
		t.Fatalf("Outline() error = %v", err)
	}

	root := outline.Roots[0]
	if !root.Branch || len(root.Children) != 0 {
		t.Errorf("want branch with no resolved children, got Branch=%v children=%d", root.Branch, len(root.Children))
	}
	if !slices.Equal(outline.MissingIDs, []string{"x", "y"}) {
		t.Errorf("MissingIDs = %v", outline.MissingIDs)
	}
}

func TestOutline_Strict(t *testing.T) {
	tree := &Tree{
		Nodes:   map[string]*Node{"a": {ID: "a", Title: "A", Children: []string{"x"}}},
		RootIDs: []string{"a"},
	}

	_, err := NewSorter(language.English).Outline(tree, true)
	if !errors.Is(err, ErrMissingNode) {
		t.Fatalf("Outline() error = %v, want ErrMissingNode", err)
	}
	if !strings.Contains(err.Error(), `"x" (referenced under a)`) {
		t.Errorf("error = %q", err)
	}

	tree.RootIDs = []string{"nope"}
	_, err = NewSorter(language.English).Outline(tree, true)
	if err == nil || !strings.Contains(err.Error(), "root_category_ids") {
		t.Errorf("missing root error = %v, want mention of root_category_ids", err)
	}
}

func TestOutline_Cycle(t *testing.T) {
	tree := &Tree{
		Nodes: map[string]*Node{
			"a": {ID: "a", Title: "A", Children: []string{"b"}},
			"b": {ID: "b", Title: "B", Children: []string{"c"}},
			"c": {ID: "c", Title: "C", Children: []string{"a"}},
		},
		RootIDs: []string{"a"},
	}

	_, err := NewSorter(language.English).Outline(tree, false)
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("Outline() error = %v, want ErrCycle", err)
	}
	if !strings.Contains(err.Error(), "a -> b -> c -> a") {
		t.Errorf("error = %q, want cycle path", err)
	}
}
