package board

import (
	"errors"
	"fmt"
)

// Size is the side length of the board.
const Size = 3

// Sentinel errors for board operations.
var (
	// ErrInvalidMove is returned by Apply for an out-of-range or occupied cell.
	ErrInvalidMove = errors.New("board: invalid move")

	// ErrParse is returned by Parse and ParseMove for malformed input.
	ErrParse = errors.New("board: cannot parse")
)

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or "_".
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "_"
	}
}

// Opponent returns the other player's mark; Empty maps to Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Board is a 3×3 grid indexed [row][col].
type Board [Size][Size]Mark

// Move addresses one cell.
type Move struct {
	Row int
	Col int
}

// String returns the "row,col" form accepted by ParseMove.
func (m Move) String() string {
	return fmt.Sprintf("%d,%d", m.Row, m.Col)
}

// lines lists the eight winning triples: three rows, three columns, two diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// New returns the empty board.
func New() Board {
	return Board{}
}

// count returns the number of X and O marks on b.
func count(b Board) (xs, os int) {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			switch b[r][c] {
			case X:
				xs++
			case O:
				os++
			}
		}
	}

	return xs, os
}

// ActivePlayer returns the mark placed fewer times, X on a tie.
func ActivePlayer(b Board) Mark {
	xs, os := count(b)
	if xs > os {
		return O
	}

	return X
}

// LegalMoves returns the empty cells in row-major order, or nil on a full
// board.
func LegalMoves(b Board) []Move {
	var moves []Move
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}

	return moves
}

// Apply returns a copy of b with the active player's mark at m.
func Apply(b Board, m Move) (Board, error) {
	if m.Row < 0 || m.Row >= Size || m.Col < 0 || m.Col >= Size {
		return b, fmt.Errorf("%w: %v is out of range", ErrInvalidMove, m)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("%w: %v is occupied by %v", ErrInvalidMove, m, b[m.Row][m.Col])
	}
	b[m.Row][m.Col] = ActivePlayer(b)

	return b, nil
}

// Winner returns the mark holding a full line, or Empty. All eight lines
// are checked before concluding there is none.
func Winner(b Board) Mark {
	for _, l := range lines {
		first := b[l[0].Row][l[0].Col]
		if first != Empty && first == b[l[1].Row][l[1].Col] && first == b[l[2].Row][l[2].Col] {
			return first
		}
	}

	return Empty
}

// IsTerminal reports whether someone has won or no empty cell remains.
func IsTerminal(b Board) bool {
	if Winner(b) != Empty {
		return true
	}
	xs, os := count(b)

	return xs+os == Size*Size
}

// Utility scores b from X's point of view: +1 if X won, -1 if O won and 0
// otherwise. Non-terminal boards score 0.
func Utility(b Board) int {
	switch Winner(b) {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}
