// Package errors defines the error kinds the recomp CLI reports.
//
// Usage failures (missing name, unknown artifact type) and the
// target-exists conflict are distinguished so the command layer can decide
// whether to print usage help alongside the message.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors checked with errors.Is at the command boundary.
var (
	// ErrMissingCommand reports an invocation without a command.
	ErrMissingCommand = errors.New("a command is required")

	// ErrUnknownCommand reports a command token recomp does not provide.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingKind reports a gen invocation without an artifact type.
	ErrMissingKind = errors.New("artifact type is required")

	// ErrMissingName reports an absent or empty artifact name argument.
	ErrMissingName = errors.New("artifact name is required")

	// ErrUnknownKind reports an artifact-kind token outside the supported set.
	ErrUnknownKind = errors.New("unknown artifact type")

	// ErrTargetExists reports a generation target that is already present.
	ErrTargetExists = errors.New("target directory already exists")
)

// UnknownCommandError is the usage error for an unrecognized command token.
type UnknownCommandError struct {
	Token string
}

// NewUnknownCommand creates an UnknownCommandError for the given token.
func NewUnknownCommand(token string) *UnknownCommandError {
	return &UnknownCommandError{Token: token}
}

// Error implements the error interface.
func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (expected gen, list, or version)", e.Token)
}

// Is matches the ErrUnknownCommand sentinel.
func (e *UnknownCommandError) Is(target error) bool {
	return target == ErrUnknownCommand
}

// UnknownKindError is the usage error for an unrecognized artifact-kind token.
type UnknownKindError struct {
	Token string
}

// NewUnknownKind creates an UnknownKindError for the given token.
func NewUnknownKind(token string) *UnknownKindError {
	return &UnknownKindError{Token: token}
}

// Error implements the error interface.
func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("unknown artifact type %q (expected component, context, or hook)", e.Token)
}

// Is matches the ErrUnknownKind sentinel.
func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// TargetExistsError reports that the artifact directory already exists, so
// generation was refused before writing anything.
type TargetExistsError struct {
	Path string
}

// NewTargetExists creates a TargetExistsError for the given directory.
func NewTargetExists(path string) *TargetExistsError {
	return &TargetExistsError{Path: path}
}

// Error implements the error interface.
func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("target directory %s already exists", e.Path)
}

// Is matches the ErrTargetExists sentinel.
func (e *TargetExistsError) Is(target error) bool {
	return target == ErrTargetExists
}

// WriteError wraps a filesystem failure with the path being written.
type WriteError struct {
	Path  string
	Cause error
}

// NewWriteError wraps cause as a WriteError for the given path.
func NewWriteError(path string, cause error) *WriteError {
	return &WriteError{Path: path, Cause: cause}
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}

// Unwrap returns the underlying filesystem error.
func (e *WriteError) Unwrap() error {
	return e.Cause
}

// IsUsage reports whether err is a usage error that should be accompanied by
// help text when reported.
func IsUsage(err error) bool {
	return errors.Is(err, ErrMissingCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingKind) ||
		errors.Is(err, ErrMissingName) ||
		errors.Is(err, ErrUnknownKind)
}

// IsConflict reports whether err is a target-exists conflict.
func IsConflict(err error) bool {
	return errors.Is(err, ErrTargetExists)
}
