package mdx

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Defaults for a page generated without an existing front-matter block.
const (
	DefaultTitle       = "Categories"
	DefaultDescription = "Understanding categories on Channel3"
)

// Frontmatter holds the fields catdocs writes into a fresh page.
type Frontmatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// DefaultFrontmatter renders a front-matter block for a page that has none yet.
func DefaultFrontmatter(title, description string) (string, error) {
	data, err := yaml.Marshal(Frontmatter{Title: title, Description: description})
	if err != nil {
		return "", fmt.Errorf("encoding front-matter: %w", err)
	}
	return frontmatterDelimiter + "\n" + string(data) + frontmatterDelimiter + "\n\n", nil
}

// ExtractFrontmatter returns the leading front-matter block of content,
// from the opening --- through the next ---. It reports false when content
// does not start with a block.
func ExtractFrontmatter(content string) (string, bool) {
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return "", false
	}

	rest := content[len(frontmatterDelimiter):]
	end := strings.Index(rest, frontmatterDelimiter)
	if end < 0 {
		return "", false
	}

	return content[:len(frontmatterDelimiter)+end+len(frontmatterDelimiter)], true
}

// ReadFrontmatter returns the front-matter block of the page at path.
// A missing page, or one without a leading block, yields fallback.
func ReadFrontmatter(path, fallback string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fallback, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading existing page %s: %w", path, err)
	}

	if block, ok := ExtractFrontmatter(string(data)); ok {
		return block, nil
	}
	return fallback, nil
}

// ParseFrontmatter decodes the YAML inside a front-matter block.
func ParseFrontmatter(block string) (map[string]any, error) {
	body := strings.TrimSpace(block)
	body = strings.TrimPrefix(body, frontmatterDelimiter)
	body = strings.TrimSuffix(body, frontmatterDelimiter)

	fields := map[string]any{}
	if err := yaml.Unmarshal([]byte(body), &fields); err != nil {
		return nil, fmt.Errorf("invalid front-matter: %w", err)
	}
	return fields, nil
}
