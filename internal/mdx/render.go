package mdx

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/gorewood/catdocs/internal/category"
)

// Options configures a Renderer.
type Options struct {
	// Locale selects the collation used to order siblings. Defaults to English.
	Locale language.Tag

	// Strict turns ids missing from the tree into an error
	// instead of dropping them from the output.
	Strict bool
}

// Result is the outcome of rendering a tree.
type Result struct {
	Markup     string
	Rendered   int
	MissingIDs []string
}

// Renderer turns a category tree into nested accordion markup.
// A Renderer is not safe for concurrent use.
type Renderer struct {
	sorter *category.Sorter
	strict bool
}

// NewRenderer creates a Renderer.
func NewRenderer(opts Options) *Renderer {
	tag := opts.Locale
	if tag == language.Und {
		tag = language.English
	}
	return &Renderer{
		sorter: category.NewSorter(tag),
		strict: opts.Strict,
	}
}

// Render produces the accordion group for the tree's roots. Missing ids
// render as nothing and are listed in Result.MissingIDs. Cycles fail with
// category.ErrCycle.
func (r *Renderer) Render(tree *category.Tree) (*Result, error) {
	outline, err := r.sorter.Outline(tree, r.strict)
	if err != nil {
		return nil, err
	}

	var markup string
	if len(tree.RootIDs) > 0 {
		markup = group(outline.Roots)
	}

	return &Result{
		Markup:     markup,
		Rendered:   outline.Count,
		MissingIDs: outline.MissingIDs,
	}, nil
}

// group joins already-resolved entries. Ids missing from the tree never
// reach it, so they leave no blank line behind.
func group(entries []*category.Entry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, accordion(entry))
	}
	return "<AccordionGroup>\n" + strings.Join(parts, "\n") + "\n</AccordionGroup>"
}

func accordion(entry *category.Entry) string {
	label := entry.Label()
	header := EscapeAttr(label) + " (" + EscapeAttr(entry.ID) + ")"

	var body string
	if entry.Branch {
		body = "\n" + group(entry.Children) + "\n"
	} else {
		body = "\n<small>" + EscapeText(label) + " (" + EscapeText(entry.ID) + ") has no sub-categories</small>\n"
	}

	return `<Accordion title="` + header + `">` + "\n" + body + "</Accordion>"
}
