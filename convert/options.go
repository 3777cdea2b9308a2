package convert

import "github.com/katalvlaran/sparsemat/lanes"

// Options configures kernel execution.
//
// Fields:
//   - Workers: upper bound on concurrent lanes; 0 (or negative) means
//     lanes.Workers(), i.e. GOMAXPROCS.
//   - Grain: slots per block; 0 (or negative) means lanes.DefaultGrain.
//
// The zero value is valid and equivalent to DefaultOptions(). Options only
// affect scheduling: for a fixed source, every Workers/Grain combination
// produces an identical destination.
type Options struct {
	Workers int
	Grain   int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Workers: lanes.Workers(), Grain: lanes.DefaultGrain}
}

// normalize resolves zero fields to their documented defaults.
func (o Options) normalize() Options {
	if o.Workers <= 0 {
		o.Workers = lanes.Workers()
	}
	if o.Grain <= 0 {
		o.Grain = lanes.DefaultGrain
	}

	return o
}
