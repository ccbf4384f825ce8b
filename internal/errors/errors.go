// Package errors provides sentinel and structured errors for the extinit CLI.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory the error refers to (optional).
	Location string

	// Flag is the offending command-line flag (optional).
	Flag string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	if e.Flag != "" {
		b.WriteString("  Flag: ")
		b.WriteString(e.Flag)
		b.WriteString("\n")
	}

	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(e.Context[k])
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// ExitError wraps an error with the process exit code.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed reports whether the command layer already showed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	return ExitGeneralError
}

// NewInvalidOptionError creates an error for a flag value outside its accepted set.
func NewInvalidOptionError(flag, value string, accepted []string) error {
	return &DetailError{
		Type:    "invalid option",
		Message: fmt.Sprintf("invalid value %q for --%s", value, flag),
		Flag:    "--" + flag,
		Hint:    fmt.Sprintf("Accepted values: %s", strings.Join(accepted, ", ")),
		Cause:   ErrInvalidOption,
	}
}

// NewConflictError creates an error for mutually exclusive options.
func NewConflictError(message, hint string) error {
	return &DetailError{
		Type:    "option conflict",
		Message: message,
		Hint:    hint,
		Cause:   ErrOptionConflict,
	}
}

// NewDirectoryExistsError creates an error for a populated target directory.
func NewDirectoryExistsError(path string) error {
	return &DetailError{
		Type:     "directory exists",
		Message:  fmt.Sprintf("the directory %s already exists and is not empty", path),
		Location: path,
		Hint:     "Choose a different project directory or remove the existing one.",
		Cause:    ErrDirectoryExists,
	}
}

// NewNameInvalidError creates an error listing every naming rule a project
// name violates.
func NewNameInvalidError(name string, errs, warnings []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot create a project named %q because of npm naming restrictions:", name)
	for _, e := range errs {
		b.WriteString("\n    *  ")
		b.WriteString(e)
	}
	for _, w := range warnings {
		b.WriteString("\n    *  ")
		b.WriteString(w)
	}

	return &DetailError{
		Type:    "invalid name",
		Message: b.String(),
		Context: map[string]string{"Name": name},
		Hint:    "Use lowercase letters, digits and hyphens, for example my-extension.",
		Cause:   ErrNameInvalid,
	}
}

// NewMissingArgumentError creates an error for an omitted positional argument.
func NewMissingArgumentError(arg, example string) error {
	return &DetailError{
		Type:    "missing argument",
		Message: fmt.Sprintf("please specify the %s", arg),
		Hint:    "For example: " + example,
		Cause:   ErrMissingArgument,
	}
}
