// Package generator runs the read-render-write pipeline that produces the
// categories page.
package generator

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/gorewood/catdocs/internal/category"
	"github.com/gorewood/catdocs/internal/config"
	"github.com/gorewood/catdocs/internal/mdx"
	"github.com/gorewood/catdocs/internal/output"
)

// Generator builds the categories page described by a Config.
type Generator struct {
	cfg      *config.Config
	sorter   *category.Sorter
	renderer *mdx.Renderer
	log      logrus.FieldLogger
}

// Build is a rendered page and what was learned while rendering it.
type Build struct {
	Document    string
	Frontmatter string
	Result      *mdx.Result
	Report      category.Report
}

// New creates a Generator. A nil logger discards all log output.
func New(cfg *config.Config, log logrus.FieldLogger) (*Generator, error) {
	tag, err := category.ParseLocale(cfg.Locale)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}

	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	return &Generator{
		cfg:      cfg,
		sorter:   category.NewSorter(tag),
		renderer: mdx.NewRenderer(mdx.Options{Locale: tag, Strict: cfg.Strict}),
		log:      log,
	}, nil
}

// OutputPath returns the absolute path of the page, falling back to the
// configured path when it cannot be made absolute.
func (g *Generator) OutputPath() string {
	abs, err := filepath.Abs(g.cfg.Output)
	if err != nil {
		return g.cfg.Output
	}
	return abs
}

// Outline loads the tree and returns it in display order.
func (g *Generator) Outline() (*category.Outline, error) {
	tree, err := g.loadTree(g.log.WithField("tree", g.cfg.Tree))
	if err != nil {
		return nil, err
	}

	outline, err := g.sorter.Outline(tree, g.cfg.Strict)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	return outline, nil
}

// Build loads the tree and renders the page without writing it.
func (g *Generator) Build() (*Build, error) {
	build, err := g.build()
	if err != nil {
		return nil, err
	}
	return build, nil
}

// build is Build, except that a tree that fails to render because of a cycle
// still yields a Build carrying its Report alongside the error.
func (g *Generator) build() (*Build, error) {
	log := g.log.WithFields(logrus.Fields{"tree": g.cfg.Tree, "output": g.cfg.Output})

	tree, err := g.loadTree(log)
	if err != nil {
		return nil, err
	}

	report := tree.Inspect()
	log.WithFields(logrus.Fields{
		"nodes":     report.Nodes,
		"roots":     report.Roots,
		"reachable": report.Reachable,
	}).Debug("category tree loaded")

	result, err := g.renderer.Render(tree)
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		if errors.Is(err, category.ErrCycle) {
			return &Build{Result: &mdx.Result{}, Report: report}, userErr
		}
		return nil, userErr
	}
	for _, id := range result.MissingIDs {
		log.WithField("id", id).Debug("skipping category id missing from tree")
	}

	fallback, err := mdx.DefaultFrontmatter(g.cfg.Frontmatter.Title, g.cfg.Frontmatter.Description)
	if err != nil {
		return nil, output.NewUserErrorWithCause(err.Error(), err)
	}
	frontmatter, err := mdx.ReadFrontmatter(g.cfg.Output, fallback)
	if err != nil {
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	}

	log.WithFields(logrus.Fields{
		"rendered": result.Rendered,
		"missing":  len(result.MissingIDs),
	}).Debug("rendered category accordions")

	return &Build{
		Document:    mdx.Document(frontmatter, g.cfg.Intro, result.Markup),
		Frontmatter: frontmatter,
		Result:      result,
		Report:      report,
	}, nil
}

func (g *Generator) loadTree(log logrus.FieldLogger) (*category.Tree, error) {
	log.Debug("loading category tree")
	tree, err := category.Load(g.cfg.Tree)
	if err != nil {
		if errors.Is(err, category.ErrInvalidTree) {
			return nil, output.NewUserErrorWithCause(err.Error(), err)
		}
		return nil, output.NewSystemErrorWithCause(err.Error(), err)
	}
	return tree, nil
}

// Generate builds the page and overwrites the output file with it.
func (g *Generator) Generate() (*Build, error) {
	build, err := g.Build()
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(g.cfg.Output, []byte(build.Document), 0o644); err != nil { //nolint:gosec // generated docs are world-readable
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to write %s: %v", g.cfg.Output, err), err)
	}
	g.log.WithFields(logrus.Fields{
		"output": g.cfg.Output,
		"bytes":  len(build.Document),
	}).Debug("wrote categories page")

	return build, nil
}

// CheckResult compares a fresh build with the page on disk.
type CheckResult struct {
	*Build

	Exists           bool
	UpToDate         bool
	FrontmatterError string
}

// Check builds the page and reports whether the file on disk matches it.
// It never writes. A cyclic tree is not an error here: the result carries
// the cycles in Report and is never up to date.
func (g *Generator) Check() (*CheckResult, error) {
	build, err := g.build()
	if err != nil {
		if build == nil {
			return nil, err
		}
		g.log.WithField("cycles", len(build.Report.Cycles)).Debug("category tree has cycles")
		_, statErr := os.Stat(g.cfg.Output)
		return &CheckResult{Build: build, Exists: statErr == nil}, nil
	}

	result := &CheckResult{Build: build}
	if _, err := mdx.ParseFrontmatter(build.Frontmatter); err != nil {
		result.FrontmatterError = err.Error()
	}

	current, err := os.ReadFile(g.cfg.Output)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return result, nil
	case err != nil:
		return nil, output.NewSystemErrorWithCause(fmt.Sprintf("failed to read %s: %v", g.cfg.Output, err), err)
	}

	result.Exists = true
	result.UpToDate = string(current) == build.Document
	return result, nil
}
