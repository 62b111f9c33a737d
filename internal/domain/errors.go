// Package domain holds the error taxonomy shared by every seqname package.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotDirectory  = errors.New("not a directory")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindConfiguration    ErrorKind = "configuration"
	KindFileSystemAccess ErrorKind = "filesystem_access"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err (or anything it wraps) is an OpError of kind.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// ConfigError builds a KindConfiguration error for an invalid option value.
func ConfigError(field, msg string) error {
	return &OpError{
		Op:   "config.validate",
		Kind: KindConfiguration,
		Err:  fmt.Errorf("%s: %s: %w", field, msg, ErrInvalidConfig),
	}
}

// FSError builds a KindFileSystemAccess error.
func FSError(op, path string, err error) error {
	return &OpError{
		Op:   op,
		Kind: KindFileSystemAccess,
		Path: path,
		Err:  err,
	}
}
