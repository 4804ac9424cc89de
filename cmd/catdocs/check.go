package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/catdocs/internal/category"
	"github.com/gorewood/catdocs/internal/generator"
	"github.com/gorewood/catdocs/internal/output"
)

// checkResult is the JSON shape of the check command.
type checkResult struct {
	Output           string          `json:"output"`
	Exists           bool            `json:"exists"`
	UpToDate         bool            `json:"up_to_date"`
	Rendered         int             `json:"rendered"`
	FrontmatterError string          `json:"frontmatter_error,omitempty"`
	Tree             category.Report `json:"tree"`
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the categories page is up to date",
		Long: `Render the page in memory and compare it with the file on disk.
Nothing is written.

Exits 0 when the page matches, 3 when it is missing or stale, and 1 when the
tree contains a cycle or the page's front-matter is not valid YAML. Also
reports category ids that are referenced but undefined and categories no
root reaches.

Examples:
  catdocs check          # fail CI when categories.mdx needs regenerating
  catdocs check --json   # report as JSON`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd)
		},
	}
}

// runCheck executes the check command.
func runCheck(cmd *cobra.Command) error {
	printer := newPrinter(cmd)

	gen, err := newGenerator(cmd, printer)
	if err != nil {
		return err
	}

	result, err := gen.Check()
	if err != nil {
		printer.Error(err)
		return err
	}

	if printer.IsJSON() {
		if err := printer.WriteJSON(toCheckResult(gen, result)); err != nil {
			return err
		}
		return checkOutcome(gen, result)
	}

	printCheckReport(printer, gen, result)

	if err := checkOutcome(gen, result); err != nil {
		printer.Error(err)
		return err
	}
	printer.Println(printer.Styles().Success.Render(gen.OutputPath() + " is up to date"))
	return nil
}

func toCheckResult(gen *generator.Generator, result *generator.CheckResult) checkResult {
	return checkResult{
		Output:           gen.OutputPath(),
		Exists:           result.Exists,
		UpToDate:         result.UpToDate,
		Rendered:         result.Result.Rendered,
		FrontmatterError: result.FrontmatterError,
		Tree:             result.Report,
	}
}

// checkOutcome maps a check result to the command's error, if any.
func checkOutcome(gen *generator.Generator, result *generator.CheckResult) error {
	switch {
	case len(result.Report.Cycles) > 0:
		return output.NewUserError(fmt.Sprintf("category tree contains %d cycle(s): %s",
			len(result.Report.Cycles), formatCycle(result.Report.Cycles[0])))
	case result.FrontmatterError != "":
		return output.NewUserError(fmt.Sprintf("%s: %s", gen.OutputPath(), result.FrontmatterError))
	case !result.Exists:
		return output.NewConflictError(gen.OutputPath() + " does not exist; run 'catdocs generate'")
	case !result.UpToDate:
		return output.NewConflictError(gen.OutputPath() + " is out of date; run 'catdocs generate'")
	default:
		return nil
	}
}

// printCheckReport prints the tree summary in human-readable form.
func printCheckReport(printer *output.Printer, gen *generator.Generator, result *generator.CheckResult) {
	report := result.Report

	printer.Section("Category tree")
	printer.KeyValue("Nodes", fmt.Sprint(report.Nodes))
	printer.KeyValue("Roots", fmt.Sprint(report.Roots))
	printer.KeyValue("Rendered", fmt.Sprint(result.Result.Rendered))
	printer.KeyValue("Max depth", fmt.Sprint(report.MaxDepth))
	printer.KeyValue("Output", gen.OutputPath())

	if report.Clean() {
		printer.Println()
		return
	}

	if len(report.Cycles) > 0 {
		printer.Warn("%d cycles found; the page cannot be generated", len(report.Cycles))
		printer.Section("Cycles")
		cycles := make([]string, 0, len(report.Cycles))
		for _, cycle := range report.Cycles {
			cycles = append(cycles, formatCycle(cycle))
		}
		printer.List(cycles)
	}
	if len(report.MissingIDs) > 0 {
		printer.Warn("%d referenced category ids are not defined", len(report.MissingIDs))
		printer.Section("Undefined ids")
		printer.List(report.MissingIDs)
	}
	if len(report.Unreachable) > 0 {
		printer.Warn("%d categories are not reachable from any root", len(report.Unreachable))
		printer.Section("Unreachable categories")
		printer.List(report.Unreachable)
	}
	printer.Println()
}

func formatCycle(cycle []string) string {
	return strings.Join(cycle, " -> ")
}
