package regobj

import (
	"errors"

	"github.com/coregx/regobj/nfa"
)

// Programmer errors. These are raised with panic, never returned: they mean
// the driver broke a precondition, not that the input failed to match.
var (
	// ErrAcceptingThread is the panic value when an accepting thread is
	// stepped. Accepting threads have no transition.
	ErrAcceptingThread = errors.New("regobj: step on accepting thread")

	// ErrInvalidThread is the panic value when the zero Thread is stepped
	// or inserted into an Object.
	ErrInvalidThread = errors.New("regobj: invalid zero thread")
)

// Compilation errors, re-exported from nfa for errors.Is checks.
var (
	ErrNilNode       = nfa.ErrNilNode
	ErrInvalidRepeat = nfa.ErrInvalidRepeat
	ErrTooComplex    = nfa.ErrTooComplex
	ErrInvalidConfig = nfa.ErrInvalidConfig
)

// CompileError is returned when an expression cannot be compiled.
type CompileError = nfa.CompileError

// ConfigError is returned when a Config fails validation.
type ConfigError = nfa.ConfigError
