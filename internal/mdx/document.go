package mdx

import (
	"strings"
	"unicode"
)

// DefaultIntro is the sentence placed between the front-matter and the tree.
const DefaultIntro = "Browse the full category hierarchy. Each section expands to reveal subcategories."

// Document assembles a page from a front-matter block, an introductory
// sentence and rendered markup. Trailing whitespace on the front-matter is
// normalised so a block read back from a previous page produces the same
// bytes as the block that was written.
func Document(frontmatter, intro, markup string) string {
	var builder strings.Builder

	builder.WriteString(strings.TrimRightFunc(frontmatter, unicode.IsSpace))
	builder.WriteString("\n")
	builder.WriteString(intro)
	builder.WriteString("\n\n")
	builder.WriteString(markup)
	builder.WriteString("\n")

	return builder.String()
}
