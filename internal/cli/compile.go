package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/restq/restq/internal/compile"
	"github.com/restq/restq/internal/render"
	"github.com/restq/restq/internal/wire"
)

// ValidRenderModes defines the allowed values for the --render flag.
var ValidRenderModes = []string{"http", "curl", "both"}

// CompileOptions holds flags for the compile command.
type CompileOptions struct {
	*RootOptions
	BaseURL string // API base URL for the renderers
	Render  string // "http" | "curl" | "both"
	Output  string // output file path
}

// CompileResult is the JSON payload for a successful compilation.
type CompileResult struct {
	Method   string       `json:"method"`
	Path     string       `json:"path"`
	Params   *wire.Params `json:"params"`
	FullPath string       `json:"full_path"`
	HTTP     string       `json:"http,omitempty"`
	Curl     string       `json:"curl,omitempty"`
}

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CompileOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "compile <statement-file>",
		Short: "Compile a statement to a PostgREST request",
		Long: `Compile an already-parsed statement document to a PostgREST-style request.

The statement file holds a select description (from, targets, filter,
sorts, limit) as JSON, YAML, or CUE. Output is the raw HTTP request
text, the equivalent curl command, or both.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true, // Don't print usage on errors - we handle our own error output
		SilenceErrors: true, // Don't print errors - we handle our own error output
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.BaseURL, "base-url", "http://localhost:3000", "API base URL")
	cmd.Flags().StringVar(&opts.Render, "render", "both", "rendering to emit (http|curl|both)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path")

	return cmd
}

func runCompile(opts *CompileOptions, statementFile string, cmd *cobra.Command) error {
	formatter := NewFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	if !isValidRenderMode(opts.Render) {
		return outputCommandError(formatter, ErrCodeInvalidFlag,
			fmt.Sprintf("invalid render mode %q: must be one of %v", opts.Render, ValidRenderModes))
	}

	stmt, err := LoadStatement(statementFile)
	if err != nil {
		return outputLoadError(formatter, err)
	}
	formatter.VerboseLog("Loaded %s statement from %s", stmt.Kind(), statementFile)

	req, err := compile.Compile(stmt)
	if err != nil {
		// Compiler defects carry their own codes; both mean the input
		// document describes something this core cannot express.
		_ = formatter.Error(ErrCodeCompileFailed, err.Error(), nil)
		return WrapExitError(ExitFailure, "compilation failed", err)
	}
	formatter.VerboseLog("Compiled %d parameter(s), full path %s", req.Params.Len(), req.FullPath())

	result := &CompileResult{
		Method:   req.Method,
		Path:     req.Path,
		Params:   req.Params,
		FullPath: req.FullPath(),
	}

	if opts.Render == "http" || opts.Render == "both" {
		text, err := render.HTTPText(opts.BaseURL, req)
		if err != nil {
			return outputCommandError(formatter, ErrCodeRenderFailed, err.Error())
		}
		result.HTTP = text
	}
	if opts.Render == "curl" || opts.Render == "both" {
		text, err := render.CurlCommand(opts.BaseURL, req)
		if err != nil {
			return outputCommandError(formatter, ErrCodeRenderFailed, err.Error())
		}
		result.Curl = text
	}

	if opts.Output != "" {
		if err := writeRenderings(result, opts.Output); err != nil {
			return outputCommandError(formatter, ErrCodeWriteFailed, fmt.Sprintf("writing output file: %v", err))
		}
	}

	return outputCompileSuccess(formatter, result, opts.Output)
}

// outputCompileSuccess outputs a successful compilation.
func outputCompileSuccess(formatter *OutputFormatter, result *CompileResult, outputFile string) error {
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	// Human-readable text output
	if result.HTTP != "" {
		fmt.Fprintln(formatter.Writer, result.HTTP)
	}
	if result.Curl != "" {
		fmt.Fprintln(formatter.Writer, result.Curl)
	}
	if outputFile != "" {
		fmt.Fprintf(formatter.Writer, "Wrote renderings to %s\n", outputFile)
	}
	return nil
}

// outputLoadError reports a loader failure as a command error.
func outputLoadError(formatter *OutputFormatter, err error) error {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		return outputCommandError(formatter, loadErr.Code, loadErr.Message)
	}
	return outputCommandError(formatter, ErrCodeGeneric, err.Error())
}

// outputCommandError reports a command-level error (exit code 2).
func outputCommandError(formatter *OutputFormatter, code, message string) error {
	_ = formatter.Error(code, message, nil)
	return WrapExitError(ExitCommandError, fmt.Sprintf("%s: %s", code, message), nil)
}

// writeRenderings writes the text renderings to a file.
func writeRenderings(result *CompileResult, filename string) error {
	var out string
	if result.HTTP != "" {
		out += result.HTTP + "\n"
	}
	if result.Curl != "" {
		out += result.Curl + "\n"
	}
	return os.WriteFile(filename, []byte(out), 0644)
}

// isValidRenderMode checks if the render mode is one of the allowed values.
func isValidRenderMode(mode string) bool {
	for _, m := range ValidRenderModes {
		if m == mode {
			return true
		}
	}
	return false
}
