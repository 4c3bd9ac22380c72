// Package bfs provides breadth-first shortest-path search over a core.Store,
// returning the fewest (movie, person) hops that connect two people.
//
// BFS explores people in increasing distance from the source, with
// optional hooks, depth limiting, credit filtering and an early exit on
// the target's first appearance among a node's co-stars.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
)

// node is one entry of the search tree. Nodes live in the walker's arena
// and refer to their parent by index; the root has parent == -1.
type node struct {
	person string
	movie  string // movie used to reach person; empty for root
	parent int
	depth  int
}

// walker encapsulates mutable BFS state.
type walker struct {
	store  *core.Store
	target string
	opts   BFSOptions

	nodes []node // arena, append-only
	queue []int  // FIFO of arena indices
	head  int    // next queue slot to dequeue

	explored   map[string]struct{} // people whose movies were scanned
	traversed  map[string]struct{} // movies whose stars were scanned
	inFrontier map[string]struct{} // people currently queued

	res *Result
}

// ShortestPath runs breadth-first search on store from source towards
// target, applying any number of functional Options.
//
// A successful search returns Result.Found == true and a minimum-length
// Path. An exhaustive search with no connection returns Found == false
// and a nil error. Returns ErrStoreNil, ErrPersonNotFound or
// ErrSourceHasNoMovies for invalid input, ErrOptionViolation for bad
// options, or the context error on cancellation.
func ShortestPath(store *core.Store, source, target string, opts ...Option) (*Result, error) {
	if store == nil {
		return nil, ErrStoreNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate endpoints
	if !store.HasPerson(source) {
		return nil, fmt.Errorf("%w: source %q", ErrPersonNotFound, source)
	}
	if !store.HasPerson(target) {
		return nil, fmt.Errorf("%w: target %q", ErrPersonNotFound, target)
	}
	if source == target {
		return &Result{Path: Path{}, Found: true}, nil
	}
	movies, err := store.PersonMovies(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %q", ErrPersonNotFound, source)
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrSourceHasNoMovies, source)
	}

	n := store.Stats().People
	w := &walker{
		store:      store,
		target:     target,
		opts:       o,
		nodes:      make([]node, 0, n),
		queue:      make([]int, 0, n),
		explored:   make(map[string]struct{}, n),
		traversed:  make(map[string]struct{}),
		inFrontier: make(map[string]struct{}),
		res:        &Result{},
	}

	// Seed frontier with the source (no movie, no parent)
	w.enqueue(node{person: source, parent: -1})

	return w.res, w.loop()
}

// enqueue appends nd to the arena, marks its person as queued, calls
// OnEnqueue and pushes its index on the frontier.
func (w *walker) enqueue(nd node) {
	w.nodes = append(w.nodes, nd)
	w.inFrontier[nd.person] = struct{}{}
	w.res.Enqueued++
	w.opts.OnEnqueue(nd.person, nd.depth)
	w.queue = append(w.queue, len(w.nodes)-1)
}

// dequeue pops the oldest frontier index, invokes OnDequeue, and returns it.
func (w *walker) dequeue() int {
	idx := w.queue[w.head]
	w.head++
	nd := w.nodes[idx]
	delete(w.inFrontier, nd.person)
	w.opts.OnDequeue(nd.person, nd.depth)

	return idx
}

// loop processes the frontier until the target is found, it is exhausted,
// or the context is cancelled.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		idx := w.dequeue()
		nd := w.nodes[idx]

		// a person may be reached by several routes before the first one
		// is expanded; only the first dequeue counts
		if _, done := w.explored[nd.person]; done {
			continue
		}
		w.explored[nd.person] = struct{}{}

		if !w.opts.EarlyExit && nd.person == w.target {
			w.finish(idx, nil)
			return nil
		}
		if w.opts.MaxDepth > 0 && nd.depth >= w.opts.MaxDepth {
			continue
		}

		hit, err := w.expand(idx)
		if err != nil {
			return err
		}
		if hit != nil {
			w.finish(idx, hit)
			return nil
		}
	}

	return nil
}

// expand scans every not-yet-traversed movie of the node's person and
// enqueues each unseen co-star. With EarlyExit it returns the hop that
// reaches the target as soon as it is seen.
func (w *walker) expand(idx int) (*Hop, error) {
	nd := w.nodes[idx]
	w.res.Expanded++

	movies, err := w.store.PersonMovies(nd.person)
	if err != nil {
		return nil, fmt.Errorf("bfs: movies of %q: %w", nd.person, err)
	}
	for _, mid := range movies {
		// every star of an already traversed movie was offered to the
		// frontier at a depth no greater than this one
		if _, seen := w.traversed[mid]; seen {
			continue
		}
		w.traversed[mid] = struct{}{}

		stars, err := w.store.MovieStars(mid)
		if err != nil {
			if errors.Is(err, core.ErrMovieNotFound) {
				continue
			}
			return nil, fmt.Errorf("bfs: stars of %q: %w", mid, err)
		}
		for _, pid := range stars {
			if pid == nd.person {
				continue
			}
			c := core.Credit{MovieID: mid, PersonID: pid}
			if !w.opts.FilterCredit(c) {
				continue
			}
			if w.opts.EarlyExit && pid == w.target {
				return &Hop{MovieID: mid, PersonID: pid}, nil
			}
			if _, ok := w.explored[pid]; ok {
				continue
			}
			if _, ok := w.inFrontier[pid]; ok {
				continue
			}
			w.enqueue(node{person: pid, movie: mid, parent: idx, depth: nd.depth + 1})
		}
	}

	return nil, nil
}

// finish reconstructs the path ending at arena index idx, plus the
// optional trailing hop found by early exit, and marks the result found.
func (w *walker) finish(idx int, last *Hop) {
	var rev Path
	if last != nil {
		rev = append(rev, *last)
	}
	for cur := idx; w.nodes[cur].parent >= 0; cur = w.nodes[cur].parent {
		rev = append(rev, Hop{MovieID: w.nodes[cur].movie, PersonID: w.nodes[cur].person})
	}
	// reverse to get source → target
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	if rev == nil {
		rev = Path{}
	}

	w.res.Path = rev
	w.res.Found = true
}
