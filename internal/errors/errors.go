// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package errors defines the user-facing error type returned by commands and
// the mapping from errors to process exit codes.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Exit codes returned by the process.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// CLIError is an error meant to be shown to the user.
type CLIError struct {
	Message     string
	Cause       error
	Hint        string
	Suggestions []string
	Code        int
}

// NewCLIError creates a CLIError that exits with ExitFailure.
func NewCLIError(msg string) *CLIError {
	return &CLIError{Message: msg, Code: ExitFailure}
}

// NewUsageError creates a CLIError for a malformed command line.
func NewUsageError(msg string) *CLIError {
	return &CLIError{Message: msg, Code: ExitUsage}
}

func (e *CLIError) Error() string {
	return e.Message
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

// WithCause records the underlying error.
func (e *CLIError) WithCause(err error) *CLIError {
	e.Cause = err
	return e
}

// WithHint adds a one-line hint printed below the message.
func (e *CLIError) WithHint(hint string) *CLIError {
	e.Hint = hint
	return e
}

// WithSuggestions adds commands the user may try instead.
func (e *CLIError) WithSuggestions(s ...string) *CLIError {
	e.Suggestions = append(e.Suggestions, s...)
	return e
}

// WithExitCode overrides the exit code.
func (e *CLIError) WithExitCode(code int) *CLIError {
	e.Code = code
	return e
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var cliErr *CLIError
	if stderrors.As(err, &cliErr) {
		return cliErr.Code
	}
	return ExitFailure
}

// Format renders err for standard error. The first line always starts with "Error:".
func Format(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Error: %s\n", err.Error())

	var cliErr *CLIError
	if !stderrors.As(err, &cliErr) {
		return b.String()
	}
	if cliErr.Hint != "" {
		fmt.Fprintf(&b, "Hint: %s\n", cliErr.Hint)
	}
	if len(cliErr.Suggestions) > 0 {
		b.WriteString("Try:\n")
		for _, s := range cliErr.Suggestions {
			fmt.Fprintf(&b, "  %s\n", s)
		}
	}
	return b.String()
}
