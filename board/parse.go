package board

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads the text form described in the package documentation.
// Marks are case-insensitive. The result must be reachable by alternating
// play from the empty board as far as mark counts go.
func Parse(s string) (Board, error) {
	var b Board

	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	rows := strings.Split(compact, "/")
	switch {
	case len(rows) == 1 && len(compact) == Size*Size:
		rows = []string{compact[0:3], compact[3:6], compact[6:9]}
	case len(rows) != Size:
		return b, fmt.Errorf("%w: %q: want %d rows", ErrParse, s, Size)
	}

	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: %q: row %d has %d cells", ErrParse, s, r+1, len(row))
		}
		for c := 0; c < Size; c++ {
			switch row[c] {
			case 'X', 'x':
				b[r][c] = X
			case 'O', 'o':
				b[r][c] = O
			case '_', '.':
				b[r][c] = Empty
			default:
				return b, fmt.Errorf("%w: %q: unexpected %q", ErrParse, s, row[c])
			}
		}
	}

	if xs, os := count(b); xs-os != 0 && xs-os != 1 {
		return Board{}, fmt.Errorf("%w: %q: %d X and %d O cannot alternate", ErrParse, s, xs, os)
	}

	return b, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// fixed positions.
func MustParse(s string) Board {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return b
}

// String renders b as "XX_/OO_/___".
func (b Board) String() string {
	var sb strings.Builder
	sb.Grow(Size*Size + Size - 1)
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		for c := 0; c < Size; c++ {
			sb.WriteString(b[r][c].String())
		}
	}

	return sb.String()
}

// ParseMove reads "row,col" with zero-based coordinates. Range is checked
// by Apply, not here.
func ParseMove(s string) (Move, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Move{}, fmt.Errorf("%w: move %q: want \"row,col\"", ErrParse, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: row: %v", ErrParse, s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Move{}, fmt.Errorf("%w: move %q: col: %v", ErrParse, s, err)
	}

	return Move{Row: row, Col: col}, nil
}
