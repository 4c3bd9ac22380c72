// Package bfs provides tunable options, result types and error definitions
// for breadth-first shortest-path search over a core.Store.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrStoreNil is returned if a nil store pointer is passed.
	ErrStoreNil = errors.New("bfs: store is nil")

	// ErrPersonNotFound is returned when the source or target ID is absent.
	ErrPersonNotFound = errors.New("bfs: person not found")

	// ErrSourceHasNoMovies is returned when the source person has no
	// recorded movies: such a person cannot be the start of any path.
	ErrSourceHasNoMovies = errors.New("bfs: source has no movies")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBrokenPath is returned by Path.Validate when a hop does not
	// correspond to a shared movie in the store.
	ErrBrokenPath = errors.New("bfs: path is not backed by the store")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when ShortestPath is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. It is checked once per dequeue.
	Ctx context.Context

	// OnEnqueue is called when a person is added to the frontier.
	// Receives the person ID and its depth (hops) from the source.
	OnEnqueue func(personID string, depth int)

	// OnDequeue is called when a person is taken off the frontier,
	// before the de-duplication check.
	OnDequeue func(personID string, depth int)

	// MaxDepth, if > 0, never returns paths longer than MaxDepth hops.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// EarlyExit, when true (default), finishes as soon as the target shows
	// up among the co-stars of the person being expanded. When false the
	// target is only recognised once it is dequeued.
	EarlyExit bool

	// FilterCredit can skip edges by returning false. It must depend on the
	// credit alone: a movie's stars are scanned once per search.
	FilterCredit func(c core.Credit) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - early exit enabled
//   - no filtering (all credits allowed)
//   - no-op hooks (OnEnqueue, OnDequeue).
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:          context.Background(),
		OnEnqueue:    func(string, int) {},
		OnDequeue:    func(string, int) {},
		MaxDepth:     0,
		EarlyExit:    true,
		FilterCredit: func(core.Credit) bool { return true },
		err:          nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(personID string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(personID string, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth bounds the number of hops a returned path may have.
//
//	d > 0: paths of at most d hops
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithEarlyExit toggles the neighbor-level target check.
func WithEarlyExit(enabled bool) Option {
	return func(o *BFSOptions) {
		o.EarlyExit = enabled
	}
}

// WithFilterCredit skips (movie, co-star) edges when fn returns false.
func WithFilterCredit(fn func(c core.Credit) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterCredit = fn
		}
	}
}

// Hop is one step of a path: the person reached and the movie shared with
// the person reached on the previous hop (or the source, for the first hop).
type Hop struct {
	MovieID  string
	PersonID string
}

// Path is an ordered sequence of hops leading away from a source person.
type Path []Hop

// Validate checks that every hop of p is backed by store: the previous
// person (source for the first hop) and the hop's person both starred in
// the hop's movie. An empty path is always valid.
func (p Path) Validate(store *core.Store, source string) error {
	if store == nil {
		return ErrStoreNil
	}
	prev := source
	for i, h := range p {
		stars, err := store.MovieStars(h.MovieID)
		if err != nil {
			return fmt.Errorf("%w: hop %d: %v", ErrBrokenPath, i+1, err)
		}
		if !contains(stars, prev) || !contains(stars, h.PersonID) {
			return fmt.Errorf("%w: hop %d: %q and %q did not both star in %q",
				ErrBrokenPath, i+1, prev, h.PersonID, h.MovieID)
		}
		prev = h.PersonID
	}

	return nil
}

// Result holds the outcome of a shortest-path search:
//   - Path: hops from source to target; empty when source == target.
//   - Found: false when the frontier was exhausted without reaching target.
//   - Expanded: people whose movies were scanned.
//   - Enqueued: search nodes added to the frontier, root included.
type Result struct {
	Path     Path
	Found    bool
	Expanded int
	Enqueued int
}

// Degrees returns the number of hops of the path, or -1 if not found.
func (r *Result) Degrees() int {
	if !r.Found {
		return -1
	}

	return len(r.Path)
}

func contains(sorted []string, id string) bool {
	for _, s := range sorted {
		if s == id {
			return true
		}
	}

	return false
}
