// Package minimax finds optimal tic-tac-toe moves by exhaustive minimax
// search with alpha-beta pruning.
//
// What
//
//   - BestMove(b) returns a move that is optimal for the side to move,
//     assuming both sides play optimally afterwards, or false when b is
//     terminal.
//   - Value(b) returns the game-theoretic value of b from X's point of
//     view: +1 X wins, -1 O wins, 0 draw.
//   - Solver puts an LRU cache of positions in front of BestMove.
//
// Algorithm
//
//	Two mutually recursive functions, maxValue for X and minValue for O,
//	carry an (alpha, beta) window seeded with (-∞, +∞). maxValue stops
//	scanning moves once its running best reaches beta; minValue once its
//	running best falls to alpha. Pruning changes how many positions are
//	visited, never the returned move or value.
//
//	At the root only strictly better moves replace the current choice, so
//	among equally good moves the first in board.LegalMoves order wins.
//
// Parallel root
//
//	WithParallel evaluates every root move in its own goroutine with the
//	full (-∞, +∞) window and merges the values in move order. Each root
//	value is then exact, so the chosen move is the same one the
//	sequential search returns; only the amount of pruning differs.
//
// Complexity
//
//	The unpruned tree below the empty board has 549,946 nodes. Pruning
//	visits a small fraction of them.
package minimax
