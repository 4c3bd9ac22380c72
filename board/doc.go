// Package board models a 3×3 tic-tac-toe position as an immutable value.
//
// Board is an array type, so it is copied on assignment, comparable with
// ==, and usable as a map or cache key. Every transition (Apply) returns
// a new Board; the input is never modified. Whose turn it is is derived
// from the marks on the board, never stored.
//
// X always moves first. ActivePlayer assumes alternating play and does
// not enforce it; Parse rejects mark counts that alternating play cannot
// produce.
//
// Text form
//
//	XX_/OO_/___     rows separated by '/', '_' or '.' for empty
//	X O X / X O O   whitespace is ignored
//	XX_OO____       nine cells without separators
package board
