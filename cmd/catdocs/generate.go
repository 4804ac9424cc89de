package main

import (
	"github.com/spf13/cobra"
)

// newGenerateCmd creates the generate command.
func newGenerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Write the categories page (the default action)",
		Long: `Read the category tree, render every category as a nested accordion,
and overwrite the output page. The existing page's front-matter is kept.

Examples:
  catdocs generate                                   # categories_tree.json -> categories.mdx
  catdocs generate --tree data/tree.json --output docs/categories.mdx
  catdocs generate --strict                          # fail on undefined child ids
  catdocs generate --json                            # machine-readable summary`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}
}

// runGenerate executes the read-render-write sequence.
func runGenerate(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd, printer)
	if err != nil {
		return err
	}

	build, err := gen.Generate()
	if err != nil {
		printer.Error(err)
		return err
	}

	path := gen.OutputPath()
	missing := build.Result.MissingIDs
	if missing == nil {
		missing = []string{}
	}
	return printer.Success(map[string]any{
		"message":     "Wrote accordion categories to " + path,
		"path":        path,
		"rendered":    build.Result.Rendered,
		"missing_ids": missing,
	})
}
