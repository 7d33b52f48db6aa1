package dfa

// Config controls the resource limits of the subset-construction builder.
// Minimization takes no Config.
//
// Example:
//
//	config := dfa.DefaultConfig()
//	config.MaxStates = 500
//	d, err := subset.BuildWithConfig(n, config)
type Config struct {
	// MaxStates caps the number of states a builder may allocate.
	// Subset construction can in the worst case produce 2^|NFA| states;
	// this bounds memory for pathological patterns. Default: 10000.
	MaxStates int

	// MaxSymbol caps the largest literal symbol value accepted from an
	// NFA transition. Default: 127 (ASCII).
	MaxSymbol int
}

// DefaultConfig returns the default resource limits.
func DefaultConfig() Config {
	return Config{
		MaxStates: 10000,
		MaxSymbol: 127,
	}
}
