// Package errors provides custom error types for the bridge checker
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents the type of error that occurred
type ErrorCode string

const (
	ErrCodeLoadFailure    ErrorCode = "LOAD_FAILURE"
	ErrCodeModfileFailure ErrorCode = "MODFILE_FAILURE"
	ErrCodeSurfaceFailure ErrorCode = "SURFACE_FAILURE"
	ErrCodeCompatFailure  ErrorCode = "COMPAT_FAILURE"
)

// Operation represents the type of checker operation
type Operation string

const (
	OpLoad    Operation = "load"
	OpModfile Operation = "modfile"
	OpExtract Operation = "extract"
	OpCheck   Operation = "check"
	OpReport  Operation = "report"
)

// CheckError represents an error that occurred while checking a bridge
type CheckError struct {
	// Operation during which the error occurred
	Op Operation

	// Component that generated the error (e.g., "loader", "modgraph")
	Component string

	// Underlying error
	Err error

	// Error code for the error type
	Code ErrorCode

	// Metadata for additional context
	Metadata map[string]interface{}
}

func (e *CheckError) Error() string {
	var msg string
	if e.Component != "" {
		msg = fmt.Sprintf("%s operation failed in %s component", e.Op, e.Component)
	} else {
		msg = fmt.Sprintf("%s operation failed", e.Op)
	}

	if e.Code != "" {
		msg += fmt.Sprintf(" [%s]", e.Code)
	}

	return msg + fmt.Sprintf(": %v", e.Err)
}

func (e *CheckError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new package-loading CheckError
func NewLoadError(op Operation, cause error) *CheckError {
	return &CheckError{
		Code:      ErrCodeLoadFailure,
		Op:        op,
		Component: "loader",
		Err:       cause,
	}
}

// NewModfileError creates a new go.mod-related CheckError
func NewModfileError(op Operation, cause error) *CheckError {
	return &CheckError{
		Code:      ErrCodeModfileFailure,
		Op:        op,
		Component: "modgraph",
		Err:       cause,
	}
}

// NewSurfaceError creates a new surface-extraction CheckError
func NewSurfaceError(op Operation, cause error) *CheckError {
	return &CheckError{
		Code:      ErrCodeSurfaceFailure,
		Op:        op,
		Component: "surface",
		Err:       cause,
	}
}

// NewCompatError creates a new compatibility CheckError
func NewCompatError(op Operation, cause error) *CheckError {
	return &CheckError{
		Code:      ErrCodeCompatFailure,
		Op:        op,
		Component: "check",
		Err:       cause,
	}
}

// New creates a new CheckError
func New(op Operation, err error) *CheckError {
	return &CheckError{
		Op:  op,
		Err: err,
	}
}

// NewWithComponent creates a new CheckError with component information
func NewWithComponent(op Operation, component string, err error) *CheckError {
	return &CheckError{
		Op:        op,
		Component: component,
		Err:       err,
	}
}

// CodeOf returns the ErrorCode carried by err, or the empty code
func CodeOf(err error) ErrorCode {
	var checkErr *CheckError
	if errors.As(err, &checkErr) {
		return checkErr.Code
	}
	return ""
}
