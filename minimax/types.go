package minimax

import "sync/atomic"

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds the search settings.
type Options struct {
	// Parallel evaluates root moves concurrently.
	Parallel bool

	// Stats, if non-nil, receives node and prune counts.
	Stats *Stats
}

// Stats counts work done by a search. Counters are atomic, so one Stats
// may be shared by concurrent searches.
type Stats struct {
	// Nodes is the number of positions visited, root included.
	Nodes atomic.Int64

	// Prunes is the number of alpha-beta cutoffs.
	Prunes atomic.Int64
}

// DefaultOptions returns sequential search without statistics.
func DefaultOptions() Options {
	return Options{}
}

// WithParallel evaluates each root move in its own goroutine.
func WithParallel() Option {
	return func(o *Options) {
		o.Parallel = true
	}
}

// WithStats records node and prune counts into st.
func WithStats(st *Stats) Option {
	return func(o *Options) {
		o.Stats = st
	}
}

func newOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Stats == nil {
		o.Stats = &Stats{}
	}

	return o
}
