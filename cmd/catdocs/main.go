// Package main provides the entry point for the catdocs CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gorewood/catdocs/internal/config"
	"github.com/gorewood/catdocs/internal/generator"
	"github.com/gorewood/catdocs/internal/output"
)

// Build info set via ldflags at build time.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// flagString reads a string flag from the command or its persistent parents.
func flagString(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// useColor resolves --color against TTY detection on the command's stdout.
func useColor(cmd *cobra.Command) bool {
	return output.ResolveColorMode(flagString(cmd, "color"), output.IsTTY(cmd.OutOrStdout()))
}

// newPrinter creates a printer that writes results to stdout and human
// errors and warnings to stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).WithStderr(cmd.ErrOrStderr())
}

// newLogger creates the diagnostic logger. It stays quiet below warn level
// unless --verbose is set.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	logger.SetLevel(logrus.WarnLevel)
	if flagString(cmd, "verbose") == "true" {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// newGenerator loads configuration for cmd and builds a generator from it.
// Failures are reported through printer.
func newGenerator(cmd *cobra.Command, printer *output.Printer) (*generator.Generator, error) {
	cfg, err := config.Load(flagString(cmd, "config"), cmd.Flags())
	if err != nil {
		userErr := output.NewUserErrorWithCause(err.Error(), err)
		printer.Error(userErr)
		return nil, userErr
	}

	logger := newLogger(cmd)
	if cfg.File != "" {
		logger.WithField("config", cfg.File).Debug("loaded config file")
	}

	gen, err := generator.New(cfg, logger)
	if err != nil {
		printer.Error(err)
		return nil, err
	}
	return gen, nil
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command. Run without a subcommand it
// regenerates the categories page.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catdocs",
		Short: "Generate the categories documentation page",
		Long: `catdocs renders a JSON category tree into an MDX page of nested accordions.

Running catdocs with no arguments reads categories_tree.json, keeps the
front-matter of the existing categories.mdx (or writes a default one), and
overwrites categories.mdx with every category sorted by title.

Settings can also come from a catdocs.yaml in the working directory.`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		if _, err := output.ParseColorMode(flagString(cmd, "color")); err != nil {
			newPrinter(cmd).Error(err)
			return err
		}
		return nil
	}

	addPersistentFlags(cmd)

	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newShowCmd())

	return cmd
}

// addPersistentFlags registers flags shared by every command.
// Defaults mirror the config defaults; flags only win when set explicitly.
func addPersistentFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.Bool("json", false, "Output in JSON format")
	flags.String("color", output.ColorAuto, "Color output: auto, always, never")
	flags.BoolP("verbose", "v", false, "Log each pipeline step to stderr")
	flags.String("config", "", "Config file (default: ./"+config.DefaultFile+" if present)")
	flags.String("tree", "categories_tree.json", "Category tree JSON to read")
	flags.String("output", "categories.mdx", "MDX page to write")
	flags.String("locale", "en", "Locale used to sort titles")
	flags.Bool("strict", false, "Fail when a category id is referenced but not defined")
}
