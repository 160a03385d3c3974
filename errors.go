package codable

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error kinds.
var (
	// ErrParse indicates the input bytes are not well-formed JSON text.
	ErrParse = errors.New("parse error")

	// ErrShapeMismatch indicates a container was asked to view a node as a
	// kind it does not have.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrKeyMissing indicates a required key is absent from a mapping.
	ErrKeyMissing = errors.New("key missing")

	// ErrTypeMismatch indicates a value is present but not convertible to
	// the requested scalar type.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrValueInvalid indicates a value converted but failed a domain
	// constraint (enum membership, date format, split arity).
	ErrValueInvalid = errors.New("value invalid")

	// ErrSequenceExhausted indicates an indexed container was advanced past its end.
	ErrSequenceExhausted = errors.New("sequence exhausted")

	// ErrAlreadyWritten indicates a single-value container was written twice.
	ErrAlreadyWritten = errors.New("already written")

	// ErrUnsupported indicates a format cannot represent a node.
	ErrUnsupported = errors.New("unsupported")
)

// ParseError reports malformed input text.
type ParseError struct {
	Offset int64  // Byte offset of the failure
	Line   int    // 1-based line of the failure
	Column int    // 1-based column of the failure
	Detail string // Human-readable diagnostic
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d, column %d: %s", ErrParse.Error(), e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("%s: %s", ErrParse.Error(), e.Detail)
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// PathError represents a decode or encode failure at a position in the tree.
// It wraps a sentinel error with the coding path that was being visited.
type PathError struct {
	Err    error  // Underlying sentinel error (ErrKeyMissing, ErrTypeMismatch, etc.)
	Path   string // Coding path, e.g. "name[0].given"
	Detail string // What was expected or found
	Cause  error  // Original error from a conversion, if any
}

func (e *PathError) Error() string {
	msg := e.Err.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s at %s", msg, e.Path)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// FormatError represents a failure to move a tree through a wire format.
type FormatError struct {
	Err         error  // Underlying sentinel error (ErrParse, ErrUnsupported)
	ContentType string // Format that failed
	Operation   string // marshal or unmarshal
	Cause       error  // Original error from the format library
}

func (e *FormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %s: %v", e.ContentType, e.Operation, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s %s: %s", e.ContentType, e.Operation, e.Err.Error())
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// newPathError creates a PathError for a failure at path.
func newPathError(sentinel error, path, detail string) error {
	return &PathError{
		Err:    sentinel,
		Path:   path,
		Detail: detail,
	}
}

// newCauseError creates a PathError that carries the underlying cause.
func newCauseError(sentinel error, path, detail string, cause error) error {
	return &PathError{
		Err:    sentinel,
		Path:   path,
		Detail: detail,
		Cause:  cause,
	}
}

// NewFormatError creates a FormatError. Format packages use it to report
// library failures in the shared taxonomy.
func NewFormatError(sentinel error, contentType, operation string, cause error) error {
	return &FormatError{
		Err:         sentinel,
		ContentType: contentType,
		Operation:   operation,
		Cause:       cause,
	}
}

// Invalid builds a ValueInvalid error for codec implementations that enforce
// their own domain constraints.
func Invalid(path, detail string) error {
	return newPathError(ErrValueInvalid, path, detail)
}
