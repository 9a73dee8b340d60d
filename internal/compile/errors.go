package compile

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes compilation defects.
type ErrorCode string

const (
	// ErrCodeUnsupportedStatement indicates a statement kind the
	// compiler does not handle (anything other than select).
	ErrCodeUnsupportedStatement ErrorCode = "UNSUPPORTED_STATEMENT"

	// ErrCodeUnrecognizedFilter indicates a filter node outside the
	// known column/logical variants.
	ErrCodeUnrecognizedFilter ErrorCode = "UNRECOGNIZED_FILTER"
)

// UnsupportedStatementError reports a statement kind the compiler
// cannot translate. It signals a contract violation by the upstream
// parser, not a recoverable input condition: the caller gets no
// partial output and should treat it as a defect to fix upstream.
type UnsupportedStatementError struct {
	// Kind is the offending statement's tag, e.g. "update".
	Kind string
}

// Error implements the error interface.
func (e *UnsupportedStatementError) Error() string {
	return fmt.Sprintf("%s: unsupported statement kind %q", ErrCodeUnsupportedStatement, e.Kind)
}

// UnrecognizedFilterError reports a filter node whose tag is neither
// column nor logical. Like UnsupportedStatementError this is a defect:
// the sealed ast.Filter union makes a foreign variant unrepresentable,
// so in practice this fires only for a nil node in a malformed tree.
type UnrecognizedFilterError struct {
	// Kind names the offending node, e.g. "<nil>" or a Go type name.
	Kind string
}

// Error implements the error interface.
func (e *UnrecognizedFilterError) Error() string {
	return fmt.Sprintf("%s: unrecognized filter kind %s", ErrCodeUnrecognizedFilter, e.Kind)
}

// IsUnsupportedStatement reports whether err is an
// UnsupportedStatementError. Uses errors.As to handle wrapped errors.
func IsUnsupportedStatement(err error) bool {
	var e *UnsupportedStatementError
	return errors.As(err, &e)
}

// IsUnrecognizedFilter reports whether err is an
// UnrecognizedFilterError. Uses errors.As to handle wrapped errors.
func IsUnrecognizedFilter(err error) bool {
	var e *UnrecognizedFilterError
	return errors.As(err, &e)
}
