// Package lvsearch is a pair of exhaustive in-memory searches: the fewest
// co-starring movies between two actors, and perfect-play tic-tac-toe.
//
// What is inside?
//
//	A small, thread-safe library plus a CLI that brings together:
//		• Graph store: people, movies and the symmetric "starred in" relation
//		• Loader: people/movies/stars CSV tables into a frozen store
//		• Shortest path: breadth-first search with hooks and early exit
//		• Board model: immutable 3×3 positions, moves, winners
//		• Game search: minimax with alpha-beta pruning and a cached solver
//		• Metrics and config shared by the CLI
//
// Packages:
//
//	core/     - Store, Person, Movie, Credit and their sentinel errors
//	loader/   - CSV loading with skip-and-count for dangling star rows
//	builder/  - deterministic synthetic stores for tests and benchmarks
//	bfs/      - ShortestPath and its options
//	board/    - Board, Move and the pure game rules
//	minimax/  - BestMove, Value and Solver
//	metrics/  - Prometheus collectors
//	config/   - YAML, .env and environment settings
//	cmd/lvsearch - the degrees, tictactoe and bestmove commands
//
// Quick ASCII example:
//
//	Tom Cruise ── A Few Good Men ── Kevin Bacon ── Apollo 13 ── Tom Hanks
//
// is two degrees of separation between Tom Cruise and Tom Hanks.
//
//	go install github.com/katalvlaran/lvsearch/cmd/lvsearch@latest
package lvsearch
