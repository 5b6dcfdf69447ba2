package nfa

// CompilerConfig limits how large a compiled expression may grow.
//
// Bounded repetition is expanded into copies of its body, so a small
// expression such as Repeat(Repeat(x, 0, 1000), 0, 1000) can ask for a very
// large number of states. These limits turn that into a compile error.
//
// Example:
//
//	config := nfa.DefaultCompilerConfig()
//	config.MaxRepeat = 5000
//	prog, err := nfa.Number(root, config)
type CompilerConfig struct {
	// MaxThreads caps the number of ThreadIDs one expression may use.
	// This is also the bound on live continuing threads per generation.
	// Default: 10000
	MaxThreads int

	// MaxRepeat caps the Min and Max bounds of a single Repeat node.
	// Default: 1000
	MaxRepeat int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxThreads: 10000,
		MaxRepeat:  1000,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxThreads: 1 to 1,000,000
//   - MaxRepeat: 1 to 100,000
func (c CompilerConfig) Validate() error {
	if c.MaxThreads < 1 || c.MaxThreads > 1_000_000 {
		return &ConfigError{
			Field:   "MaxThreads",
			Message: "must be between 1 and 1,000,000",
		}
	}
	if c.MaxRepeat < 1 || c.MaxRepeat > 100_000 {
		return &ConfigError{
			Field:   "MaxRepeat",
			Message: "must be between 1 and 100,000",
		}
	}
	return nil
}
