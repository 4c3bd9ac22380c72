package minimax

import (
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvsearch/board"
)

const (
	negInf = math.MinInt
	posInf = math.MaxInt
)

// BestMove returns an optimal move for the side to move in b, or false if
// b is terminal. Ties go to the first move in board.LegalMoves order.
func BestMove(b board.Board, opts ...Option) (board.Move, bool) {
	m, _, ok := search(b, newOptions(opts))
	return m, ok
}

// Value returns the minimax value of b: +1 X wins, -1 O wins, 0 draw.
func Value(b board.Board, opts ...Option) int {
	_, v, _ := search(b, newOptions(opts))
	return v
}

// search runs the root loop and returns the chosen move, its value and
// whether b had any move at all.
func search(b board.Board, o Options) (board.Move, int, bool) {
	o.Stats.Nodes.Add(1)
	if board.IsTerminal(b) {
		return board.Move{}, board.Utility(b), false
	}

	maximize := board.ActivePlayer(b) == board.X
	moves := board.LegalMoves(b)

	if o.Parallel {
		return parallelRoot(b, moves, maximize, o)
	}

	var (
		best    board.Move
		bestVal = posInf
		lo, hi  = negInf, posInf
	)
	if maximize {
		bestVal = negInf
	}
	for _, m := range moves {
		next := apply(b, m)
		if maximize {
			v := minValue(next, lo, hi, o.Stats)
			if v > bestVal {
				best, bestVal = m, v
			}
			lo = max(lo, bestVal)
		} else {
			v := maxValue(next, lo, hi, o.Stats)
			if v < bestVal {
				best, bestVal = m, v
			}
			hi = min(hi, bestVal)
		}
	}

	return best, bestVal, true
}

// parallelRoot scores every root move with a full window, then picks the
// first strictly best in move order.
func parallelRoot(b board.Board, moves []board.Move, maximize bool, o Options) (board.Move, int, bool) {
	values := make([]int, len(moves))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, m := range moves {
		i, m := i, m
		g.Go(func() error {
			next := apply(b, m)
			if maximize {
				values[i] = minValue(next, negInf, posInf, o.Stats)
			} else {
				values[i] = maxValue(next, negInf, posInf, o.Stats)
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	best, bestVal := 0, values[0]
	for i := 1; i < len(values); i++ {
		if (maximize && values[i] > bestVal) || (!maximize && values[i] < bestVal) {
			best, bestVal = i, values[i]
		}
	}

	return moves[best], bestVal, true
}

// maxValue is the value of b with X to move, searched inside (alpha, beta).
func maxValue(b board.Board, alpha, beta int, st *Stats) int {
	st.Nodes.Add(1)
	if board.IsTerminal(b) {
		return board.Utility(b)
	}
	v := negInf
	for _, m := range board.LegalMoves(b) {
		v = max(v, minValue(apply(b, m), alpha, beta, st))
		if v >= beta {
			st.Prunes.Add(1)
			return v
		}
		alpha = max(alpha, v)
	}

	return v
}

// minValue mirrors maxValue for O.
func minValue(b board.Board, alpha, beta int, st *Stats) int {
	st.Nodes.Add(1)
	if board.IsTerminal(b) {
		return board.Utility(b)
	}
	v := posInf
	for _, m := range board.LegalMoves(b) {
		v = min(v, maxValue(apply(b, m), alpha, beta, st))
		if v <= alpha {
			st.Prunes.Add(1)
			return v
		}
		beta = min(beta, v)
	}

	return v
}

// apply places the active mark at a move taken from board.LegalMoves, which
// cannot fail.
func apply(b board.Board, m board.Move) board.Board {
	next, err := board.Apply(b, m)
	if err != nil {
		panic(err)
	}

	return next
}
