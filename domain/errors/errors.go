// Package errors provides the error types used on the Go side of numffi.
// None of them ever cross the foreign boundary, which reports failure only
// through sentinel return values; they describe setup failures of the host
// runtime instead. All types support errors.As() and errors.Is().
package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrExportNotFound is wrapped by GuestError when a module lacks a required export.
var ErrExportNotFound = stdErrors.New("export not found")

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Err   error
	Field string
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config validation failed for field '%s': %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config validation failed: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// GuestError represents a failure to instantiate or call into a WASM guest.
type GuestError struct {
	Err       error
	Operation string // "instantiate", "call", "read", ...
	Export    string // optional export involved
}

func (e *GuestError) Error() string {
	if e.Export != "" {
		return fmt.Sprintf("guest %s %q failed: %v", e.Operation, e.Export, e.Err)
	}
	return fmt.Sprintf("guest %s failed: %v", e.Operation, e.Err)
}

func (e *GuestError) Unwrap() error {
	return e.Err
}

// IsConfigError reports whether err is or wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return stdErrors.As(err, &ce)
}
