package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restq/restq/internal/compile"
)

// ValidationResult holds validation results.
type ValidationResult struct {
	Valid     bool   `json:"valid"`
	Statement string `json:"statement,omitempty"` // statement kind when valid
	Params    int    `json:"params"`              // compiled parameter count
	FullPath  string `json:"full_path,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <statement-file>",
		Short: "Validate a statement without rendering",
		Long: `Load and compile a statement document without emitting renderings.

Checks that the document parses, describes a supported statement, and
compiles cleanly. Faster feedback than compile when iterating on
statement files.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, statementFile string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts, cmd.OutOrStdout(), cmd.ErrOrStderr())

	stmt, err := LoadStatement(statementFile)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %s statement from %s", stmt.Kind(), statementFile)

	req, err := compile.Compile(stmt)
	if err != nil {
		_ = formatter.Error(ErrCodeCompileFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "validation failed", err)
	}

	result := &ValidationResult{
		Valid:     true,
		Statement: stmt.Kind(),
		Params:    req.Params.Len(),
		FullPath:  req.FullPath(),
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintf(formatter.Writer, "✓ %s compiles to %s (%d parameter(s))\n",
		statementFile, result.FullPath, result.Params)
	return nil
}
