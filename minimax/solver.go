package minimax

import (
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/lvsearch/board"
	"github.com/katalvlaran/lvsearch/metrics"
)

// DefaultCacheSize holds every position reachable from the empty board.
const DefaultCacheSize = 8192

// entry is a solved position.
type entry struct {
	move  board.Move
	value int
	ok    bool
}

// Solver answers BestMove and Value queries through a fixed-size LRU cache
// keyed by position. It is safe for concurrent use.
type Solver struct {
	cache *lru.Cache[board.Board, entry]
	opts  []Option
}

// NewSolver returns a Solver caching up to size positions. opts apply to
// every search the Solver runs on a cache miss.
func NewSolver(size int, opts ...Option) (*Solver, error) {
	const op = "minimax.NewSolver"

	cache, err := lru.New[board.Board, entry](size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Solver{cache: cache, opts: opts}, nil
}

// BestMove is the cached form of the package-level BestMove.
func (s *Solver) BestMove(b board.Board) (board.Move, bool) {
	e := s.solve(b)
	return e.move, e.ok
}

// Value is the cached form of the package-level Value.
func (s *Solver) Value(b board.Board) int {
	return s.solve(b).value
}

// Len returns the number of cached positions.
func (s *Solver) Len() int {
	return s.cache.Len()
}

func (s *Solver) solve(b board.Board) entry {
	if e, ok := s.cache.Get(b); ok {
		metrics.CacheHit()
		return e
	}
	metrics.CacheMiss()

	var st Stats
	o := newOptions(append(s.opts[:len(s.opts):len(s.opts)], WithStats(&st)))
	start := time.Now()
	m, v, ok := search(b, o)
	metrics.ObserveGame(ok, st.Nodes.Load(), time.Since(start))

	e := entry{move: m, value: v, ok: ok}
	s.cache.Add(b, e)

	return e
}
