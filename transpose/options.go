package transpose

// Functional configuration for the transpose engine. This file defines
// Option, the unexported config it mutates, documented defaults, and the
// WithX constructors. Options are resolved once, at the top of Transpose,
// into a single config value that is threaded explicitly through every
// recursive call — there is no package-level mutable state, so behavior
// never depends on call order or goroutine scheduling (see the
// determinism property in SPEC_FULL.md §8).

// Defaults. copyThreshold is 1<<14 in production; tests override it to 4
// via WithCopyThreshold so the recursive path is exercised aggressively.
const (
	// DefaultCopyThreshold is the element-count cutoff at or below which
	// Transpose delegates to the auxiliary-buffer copy_transpose instead
	// of recursing.
	DefaultCopyThreshold = 1 << 14

	// DefaultParTransposeThreshold gates forking inside transpose_join,
	// partition_transpose, and the top-level remainder split.
	DefaultParTransposeThreshold = 1 << 17

	// DefaultParShuffleThreshold gates forking inside shuffle/unshuffle.
	DefaultParShuffleThreshold = 1 << 20
)

// config holds the resolved, immutable settings for one Transpose call.
type config struct {
	copyThreshold    int
	parTransposeGate int
	parShuffleGate   int
}

func defaultConfig() config {
	return config{
		copyThreshold:    DefaultCopyThreshold,
		parTransposeGate: DefaultParTransposeThreshold,
		parShuffleGate:   DefaultParShuffleThreshold,
	}
}

// Option configures a single Transpose call.
type Option func(*config)

// WithCopyThreshold overrides COPY_THRESHOLD, the element-count cutoff
// at or below which the engine delegates to the copy-based collaborator. n must
// be non-negative; a zero threshold disables the copy fast path entirely.
func WithCopyThreshold(n int) Option {
	return func(c *config) { c.copyThreshold = n }
}

// WithParTranspositionThreshold overrides the transposition-level
// PAR_THRESHOLD used by transpose_join, partition_transpose, and the
// top-level remainder split.
func WithParTranspositionThreshold(n int) Option {
	return func(c *config) { c.parTransposeGate = n }
}

// WithParShuffleThreshold overrides the shuffle-level PAR_THRESHOLD used
// by shuffle and unshuffle.
func WithParShuffleThreshold(n int) Option {
	return func(c *config) { c.parShuffleGate = n }
}

// WithSequential forces every fork site to run sequentially, regardless
// of problem size. Used to verify the determinism property: output must
// not depend on the parallelism threshold.
func WithSequential() Option {
	return func(c *config) {
		c.parTransposeGate = maxGate
		c.parShuffleGate = maxGate
	}
}

// WithMaxParallelism forces every fork site to fork wherever the
// granularity of the recursion permits it (thresholds of zero). The other
// pole of the determinism property WithSequential checks against.
func WithMaxParallelism() Option {
	return func(c *config) {
		c.parTransposeGate = 0
		c.parShuffleGate = 0
	}
}

// maxGate is used by WithSequential in place of an unbounded threshold;
// no real sub-problem size reaches it because shape products are bounded
// by int, so this is effectively "never fork".
const maxGate = int(^uint(0) >> 1)

func resolve(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
