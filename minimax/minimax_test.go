package minimax_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvsearch/board"
	"github.com/katalvlaran/lvsearch/metrics"
	"github.com/katalvlaran/lvsearch/minimax"
)

// oracle is an unpruned, memoized minimax used as a reference.
type oracle struct {
	memo  map[board.Board]int
	nodes int
}

func newOracle() *oracle { return &oracle{memo: map[board.Board]int{}} }

func (o *oracle) value(b board.Board) int {
	if v, ok := o.memo[b]; ok {
		return v
	}
	var v int
	if board.IsTerminal(b) {
		v = board.Utility(b)
	} else {
		maximize := board.ActivePlayer(b) == board.X
		v = 2
		if maximize {
			v = -2
		}
		for _, m := range board.LegalMoves(b) {
			next, _ := board.Apply(b, m)
			cv := o.value(next)
			if (maximize && cv > v) || (!maximize && cv < v) {
				v = cv
			}
		}
	}
	o.memo[b] = v
	return v
}

// countTree counts every node of the unpruned game tree below b.
func countTree(b board.Board) int {
	n := 1
	if board.IsTerminal(b) {
		return n
	}
	for _, m := range board.LegalMoves(b) {
		next, _ := board.Apply(b, m)
		n += countTree(next)
	}
	return n
}

// firstOptimal returns the first legal move whose oracle value equals the
// value of b.
func (o *oracle) firstOptimal(b board.Board) board.Move {
	want := o.value(b)
	for _, m := range board.LegalMoves(b) {
		next, _ := board.Apply(b, m)
		if o.value(next) == want {
			return m
		}
	}
	panic("no optimal move")
}

// reachable returns every non-terminal position reachable from the empty
// board, in discovery order.
func reachable() []board.Board {
	seen := map[board.Board]bool{}
	var out []board.Board
	var walk func(b board.Board)
	walk = func(b board.Board) {
		if seen[b] || board.IsTerminal(b) {
			return
		}
		seen[b] = true
		out = append(out, b)
		for _, m := range board.LegalMoves(b) {
			next, _ := board.Apply(b, m)
			walk(next)
		}
	}
	walk(board.New())
	return out
}

type MinimaxSuite struct {
	suite.Suite
	oracle    *oracle
	positions []board.Board
}

func (s *MinimaxSuite) SetupSuite() {
	s.oracle = newOracle()
	s.positions = reachable()
	s.Require().Greater(len(s.positions), 50)
}

// TestAgainstOracle compares alpha-beta with unpruned minimax on every
// reachable non-terminal position.
func (s *MinimaxSuite) TestAgainstOracle() {
	for _, b := range s.positions {
		m, ok := minimax.BestMove(b)
		s.Require().True(ok, b.String())
		s.Equal(s.oracle.value(b), minimax.Value(b), b.String())
		s.Equal(s.oracle.firstOptimal(b), m, b.String())
	}
}

// TestParallelMatchesSequential checks a spread of positions.
func (s *MinimaxSuite) TestParallelMatchesSequential() {
	for i := 0; i < len(s.positions); i += 37 {
		b := s.positions[i]
		seqMove, _ := minimax.BestMove(b)
		parMove, ok := minimax.BestMove(b, minimax.WithParallel())
		s.True(ok)
		s.Equal(seqMove, parMove, b.String())
		s.Equal(minimax.Value(b), minimax.Value(b, minimax.WithParallel()), b.String())
	}
}

func (s *MinimaxSuite) TestTerminal() {
	for _, str := range []string{"XXX/OO_/___", "XOX/XOO/OXX", "XX_/OOO/X__"} {
		_, ok := minimax.BestMove(board.MustParse(str))
		s.False(ok, str)
		_, ok = minimax.BestMove(board.MustParse(str), minimax.WithParallel())
		s.False(ok, str)
	}
	s.Equal(-1, minimax.Value(board.MustParse("XX_/OOO/X__")))
}

func TestMinimaxSuite(t *testing.T) {
	suite.Run(t, new(MinimaxSuite))
}

func TestBestMove_TakesWin(t *testing.T) {
	b := board.MustParse("XX_/OO_/___")
	m, ok := minimax.BestMove(b)
	require.True(t, ok)
	assert.Equal(t, board.Move{Row: 0, Col: 2}, m)
	assert.Equal(t, 1, minimax.Value(b))
}

func TestBestMove_Blocks(t *testing.T) {
	// O to move must block the top row
	b := board.MustParse("XX_/O__/___")
	m, ok := minimax.BestMove(b)
	require.True(t, ok)
	assert.Equal(t, board.Move{Row: 0, Col: 2}, m)
}

func TestEmptyBoardIsDraw(t *testing.T) {
	assert.Equal(t, 0, minimax.Value(board.New()))
}

// TestNeverLoses lets the search play one side against every possible
// sequence of replies from the other.
func TestNeverLoses(t *testing.T) {
	for _, side := range []board.Mark{board.X, board.O} {
		var games int
		var play func(b board.Board)
		play = func(b board.Board) {
			if board.IsTerminal(b) {
				games++
				require.NotEqual(t, side.Opponent(), board.Winner(b), "lost as %v: %v", side, b)
				return
			}
			if board.ActivePlayer(b) == side {
				m, ok := minimax.BestMove(b)
				require.True(t, ok)
				next, err := board.Apply(b, m)
				require.NoError(t, err)
				play(next)
				return
			}
			for _, m := range board.LegalMoves(b) {
				next, err := board.Apply(b, m)
				require.NoError(t, err)
				play(next)
			}
		}
		play(board.New())
		assert.Positive(t, games)
	}
}

func TestStats(t *testing.T) {
	var st minimax.Stats
	_, ok := minimax.BestMove(board.New(), minimax.WithStats(&st))
	require.True(t, ok)

	assert.Positive(t, st.Prunes.Load())
	assert.Positive(t, st.Nodes.Load())
	assert.Less(t, st.Nodes.Load(), int64(countTree(board.New())))
}

func TestSolver(t *testing.T) {
	_, err := minimax.NewSolver(0)
	require.Error(t, err)

	s, err := minimax.NewSolver(16)
	require.NoError(t, err)

	hits := metrics.SolverCache.WithLabelValues(metrics.ResultHit)
	misses := metrics.SolverCache.WithLabelValues(metrics.ResultMiss)
	h0, m0 := testutil.ToFloat64(hits), testutil.ToFloat64(misses)

	b := board.MustParse("XX_/OO_/___")
	m, ok := s.BestMove(b)
	require.True(t, ok)
	assert.Equal(t, board.Move{Row: 0, Col: 2}, m)
	assert.Equal(t, 1, s.Value(b))
	assert.Equal(t, 1, s.Len())

	assert.Equal(t, h0+1, testutil.ToFloat64(hits))
	assert.Equal(t, m0+1, testutil.ToFloat64(misses))

	_, ok = s.BestMove(board.MustParse("XOX/XOO/OXX"))
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestSolver_Parallel(t *testing.T) {
	s, err := minimax.NewSolver(minimax.DefaultCacheSize, minimax.WithParallel())
	require.NoError(t, err)

	want, _ := minimax.BestMove(board.New())
	got, ok := s.BestMove(board.New())
	require.True(t, ok)
	assert.Equal(t, want, got)
}
