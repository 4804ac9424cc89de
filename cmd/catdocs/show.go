package main

import (
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/spf13/cobra"

	"github.com/gorewood/catdocs/internal/category"
	"github.com/gorewood/catdocs/internal/output"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the category hierarchy in page order",
		Long: `Print the category tree as it will appear on the page: every level
sorted by title, undefined ids skipped.

Examples:
  catdocs show                  # terminal tree
  catdocs show --json           # nested JSON
  catdocs show --locale sv      # preview Swedish collation`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd)
		},
	}
}

// runShow executes the show command.
func runShow(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd, printer)
	if err != nil {
		return err
	}

	outline, err := gen.Outline()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		roots := outline.Roots
		if roots == nil {
			roots = []*category.Entry{}
		}
		return printer.WriteJSON(map[string]any{
			"roots": roots,
			"count": outline.Count,
		})
	}

	if len(outline.Roots) == 0 {
		printer.Println("No categories.")
		return nil
	}

	printer.Println(renderOutline(printer, outline).String())
	return nil
}

// renderOutline builds a lipgloss tree with one item per category.
func renderOutline(printer *output.Printer, outline *category.Outline) *tree.Tree {
	styles := printer.Styles()

	root := tree.New().
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Muted)
	for _, entry := range outline.Roots {
		root.Child(outlineItem(styles, entry))
	}
	return root
}

func outlineItem(styles *output.Styles, entry *category.Entry) any {
	label := styles.Bold.Render(entry.Label()) + " " + styles.Muted.Render("("+entry.ID+")")
	if len(entry.Children) == 0 {
		return label
	}

	node := tree.Root(label).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(styles.Muted)
	for _, child := range entry.Children {
		node.Child(outlineItem(styles, child))
	}
	return node
}
