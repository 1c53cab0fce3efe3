// errors.go
package upm

import (
	"errors"
	"fmt"

	"github.com/upm-tools/upm/pkg/registry"
)

var (
	// ErrDuplicateBackend indicates two descriptors share a name
	ErrDuplicateBackend = registry.ErrDuplicateName

	// ErrInvalidIntent indicates a malformed intent reached the core
	ErrInvalidIntent = errors.New("invalid intent")

	// ErrUnknownBackend indicates a backend name with no registered descriptor
	ErrUnknownBackend = errors.New("unknown backend")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
