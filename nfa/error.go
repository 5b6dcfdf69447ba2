package nfa

import (
	"errors"
	"fmt"
)

// Common compilation errors
var (
	// ErrNilNode indicates a nil node was found in the expression tree
	ErrNilNode = errors.New("nil expression node")

	// ErrInvalidRepeat indicates repetition bounds that are negative,
	// inverted, or larger than the configured MaxRepeat
	ErrInvalidRepeat = errors.New("invalid repeat count")

	// ErrTooComplex indicates the expression needs more ThreadIDs than
	// the configured MaxThreads
	ErrTooComplex = errors.New("expression too complex")

	// ErrInvalidConfig indicates invalid configuration was provided
	ErrInvalidConfig = errors.New("invalid compiler configuration")
)

// CompileError wraps compilation errors with additional context
type CompileError struct {
	// Node is a short description of the offending node, if known
	Node string
	Err  error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Node != "" {
		return fmt.Sprintf("regobj: compile %s: %v", e.Node, e.Err)
	}
	return fmt.Sprintf("regobj: compile: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "regobj: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap allows errors.Is(err, ErrInvalidConfig).
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}
