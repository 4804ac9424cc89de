package category

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is the collation locale used when none is configured.
const DefaultLocale = "en"

// ParseLocale parses a BCP 47 tag such as "en" or "de-DE".
func ParseLocale(locale string) (language.Tag, error) {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

// Sorter orders sibling ids by title using locale-aware collation.
// A Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter returns a Sorter that collates titles for the given locale.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// SortIDs returns ids ordered by their node's lowercased title.
// Ids missing from the tree sort as an empty title. Equal titles keep their
// input order. The ids slice is not modified.
func (s *Sorter) SortIDs(tree *Tree, ids []string) []string {
	keys := make(map[string]string, len(ids))
	for _, id := range ids {
		keys[id] = strings.ToLower(tree.Title(id))
	}

	sorted := slices.Clone(ids)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return s.collator.CompareString(keys[a], keys[b])
	})
	return sorted
}
