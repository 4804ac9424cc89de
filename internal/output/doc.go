// Package output provides structured output and error handling for the catdocs CLI.
//
// Every command reports through a Printer, which switches between
// human-readable and JSON output based on the --json flag:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd))
//	printer.Success(map[string]any{"message": "Wrote accordion categories to categories.mdx"})
//	printer.Error(err)
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Bad input (malformed or cyclic tree, strict-mode gaps, bad config)
//	output.ExitSystemError // 2: I/O failures
//	output.ExitConflict    // 3: Generated page is stale (check command)
//
// Errors built with NewUserError, NewSystemErrorWithCause and NewConflictError carry
// their exit code through errors.As, so wrapping them keeps the code intact.
package output
