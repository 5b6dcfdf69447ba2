package regobj

import (
	"fmt"

	"github.com/coregx/regobj/nfa"
)

// Config limits the size of compiled expressions.
// See nfa.CompilerConfig for the individual fields.
type Config = nfa.CompilerConfig

// DefaultConfig returns the default configuration for compilation.
//
// Users can customize this and pass to CompileWithConfig.
//
// Example:
//
//	config := regobj.DefaultConfig()
//	config.MaxRepeat = 5000
//	obj, err := regobj.CompileWithConfig(re, config)
func DefaultConfig() Config {
	return nfa.DefaultCompilerConfig()
}

// Compile compiles an expression into its initial Object.
//
// Every symbol-matching node receives a ThreadID (1, 2, ... left to right),
// the expression is compiled with a final continuation that yields one
// accepting thread carrying the expression's result, and the start threads
// become the first generation. Stepping the returned object drives the match.
//
// Returns an error if the expression contains nil parts, invalid repeat
// bounds, or exceeds the limits of DefaultConfig.
func Compile[S, R any](re RE[S, R]) (Object[S, R], error) {
	return CompileWithConfig(re, DefaultConfig())
}

// CompileWithConfig compiles an expression with custom limits.
func CompileWithConfig[S, R any](re RE[S, R], config Config) (Object[S, R], error) {
	prog, err := nfa.Number(re.node, config)
	if err != nil {
		return Object[S, R]{}, err
	}

	threads := nfa.Compile[S, Thread[S, R]](prog, NewThread[S, R], func(v any) []Thread[S, R] {
		return []Thread[S, R]{Accept[S](cast[R](v))}
	})
	return FromThreadList(threads), nil
}

// MustCompile is like Compile but panics if the expression cannot be
// compiled. It is meant for expressions built from constants.
func MustCompile[S, R any](re RE[S, R]) Object[S, R] {
	obj, err := Compile(re)
	if err != nil {
		panic(fmt.Sprintf("regobj: MustCompile: %v", err))
	}
	return obj
}
