package pathgo

const (
	// DefaultBlockSize is the default number of nodes allocated per arena
	// block. Sizing it near the expected number of touched states keeps the
	// engine at a single block.
	DefaultBlockSize = 250

	// DefaultTypicalAdjacency is the default expected out-degree, used to
	// size the adjacency cache.
	DefaultTypicalAdjacency = 6

	// pathCacheSizeFactor scales the path cache capacity from the block
	// size. Untuned.
	pathCacheSizeFactor = 4
)

type options struct {
	blockSize        int
	typicalAdjacency int
	cacheEnabled     bool
	logger           *Logger
	metrics          MetricsCollector
}

// Option configures Pather construction behavior.
type Option func(*options)

// WithBlockSize sets how many node records the arena allocates at a time.
// The engine keeps working when the graph outgrows a block (blocks chain),
// but sizing this near the expected search footprint avoids the extra
// allocations. Must be positive.
func WithBlockSize(blockSize int) Option {
	return func(o *options) {
		o.blockSize = blockSize
	}
}

// WithTypicalAdjacency sets the expected number of outgoing edges per state.
// Together with the block size it fixes the adjacency cache capacity; a
// full cache degrades to recomputing neighbor lists, never to an error.
// Must be positive.
func WithTypicalAdjacency(typicalAdjacency int) Option {
	return func(o *options) {
		o.typicalAdjacency = typicalAdjacency
	}
}

// WithPathCache enables cross-call path memoization. With the cache on,
// solving a pair that any earlier search already resolved, including every
// intermediate waypoint of a found path toward the same destination, skips
// the search entirely, and proven-unreachable pairs are answered negatively
// without re-walking the graph. Enable it when the graph is static between
// Reset calls and queries repeat.
func WithPathCache(enabled bool) Option {
	return func(o *options) {
		o.cacheEnabled = enabled
	}
}

// WithLogger configures structured logging. Pass nil to keep the default
// no-op logger.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring solve
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(metrics MetricsCollector) Option {
	return func(o *options) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		blockSize:        DefaultBlockSize,
		typicalAdjacency: DefaultTypicalAdjacency,
		logger:           NoopLogger(),
		metrics:          NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}
