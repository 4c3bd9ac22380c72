package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/board"
)

func TestActivePlayer(t *testing.T) {
	cases := map[string]board.Mark{
		"___/___/___": board.X,
		"X__/___/___": board.O,
		"X__/O__/___": board.X,
		"XO_/X__/___": board.O,
		"XOX/XOO/OXX": board.O, // full board still reports the counter's answer
	}
	for s, want := range cases {
		assert.Equal(t, want, board.ActivePlayer(board.MustParse(s)), s)
	}
}

func TestLegalMoves(t *testing.T) {
	assert.Len(t, board.LegalMoves(board.New()), 9)
	assert.Equal(t,
		[]board.Move{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}},
		board.LegalMoves(board.MustParse("XX_/OO_/___")),
		"row-major order")
	assert.Empty(t, board.LegalMoves(board.MustParse("XOX/XOO/OXX")))
}

// TestApply_RoundTrip checks that Apply never mutates its input and that
// the filled cell disappears from LegalMoves.
func TestApply_RoundTrip(t *testing.T) {
	b := board.New()
	for _, m := range board.LegalMoves(b) {
		next, err := board.Apply(b, m)
		require.NoError(t, err)
		assert.Equal(t, board.New(), b, "input unchanged")
		assert.Equal(t, board.X, next[m.Row][m.Col])
		assert.NotContains(t, board.LegalMoves(next), m)
		assert.Len(t, board.LegalMoves(next), 8)
	}

	b = board.MustParse("X__/___/___")
	next, err := board.Apply(b, board.Move{Row: 1, Col: 1})
	require.NoError(t, err)
	assert.Equal(t, "X__/_O_/___", next.String())
}

func TestApply_Invalid(t *testing.T) {
	b := board.MustParse("X__/___/___")
	for _, m := range []board.Move{
		{Row: 0, Col: 0}, // occupied
		{Row: -1, Col: 0},
		{Row: 0, Col: 3},
		{Row: 3, Col: 3},
	} {
		got, err := board.Apply(b, m)
		require.ErrorIs(t, err, board.ErrInvalidMove, "%v", m)
		assert.Equal(t, b, got)
	}
}

func TestWinnerAndUtility(t *testing.T) {
	cases := []struct {
		board    string
		winner   board.Mark
		terminal bool
		utility  int
	}{
		{"___/___/___", board.Empty, false, 0},
		{"XXX/OO_/___", board.X, true, 1},
		{"XX_/OOO/X__", board.O, true, -1},
		{"X_O/X_O/X__", board.X, true, 1},
		{"XXO/XO_/O__", board.O, true, -1},
		{"X_O/_XO/__X", board.X, true, 1},
		{"XOX/XOO/OXX", board.Empty, true, 0}, // cat's game
		{"XOX/OOX/X__", board.Empty, false, 0},
	}
	for _, tc := range cases {
		b := board.MustParse(tc.board)
		assert.Equal(t, tc.winner, board.Winner(b), tc.board)
		assert.Equal(t, tc.terminal, board.IsTerminal(b), tc.board)
		assert.Equal(t, tc.utility, board.Utility(b), tc.board)
	}
}

// TestReachablePositions enumerates every position reachable by legal play
// that stops at a win, and checks the well-known totals.
func TestReachablePositions(t *testing.T) {
	seen := map[board.Board]struct{}{}
	var xWins, oWins, draws int

	var walk func(b board.Board)
	walk = func(b board.Board) {
		if _, ok := seen[b]; ok {
			return
		}
		seen[b] = struct{}{}
		if board.IsTerminal(b) {
			switch board.Winner(b) {
			case board.X:
				xWins++
			case board.O:
				oWins++
			default:
				draws++
			}
			return
		}
		for _, m := range board.LegalMoves(b) {
			next, err := board.Apply(b, m)
			require.NoError(t, err)
			walk(next)
		}
	}
	walk(board.New())

	assert.Len(t, seen, 5478)
	assert.Equal(t, 626, xWins)
	assert.Equal(t, 316, oWins)
	assert.Equal(t, 16, draws)
}

func TestParse(t *testing.T) {
	want := board.Board{
		{board.X, board.O, board.X},
		{board.X, board.O, board.O},
		{board.O, board.X, board.X},
	}
	for _, s := range []string{"XOX/XOO/OXX", "X O X / X O O / O X X", "xox\nxoo\noxx", "XOXXOOOXX"} {
		b, err := board.Parse(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, b, s)
	}

	b, err := board.Parse("X._/.O_/...")
	require.NoError(t, err)
	assert.Equal(t, "X__/_O_/___", b.String())

	for _, s := range []string{"", "XX/OO/__", "XXXX/OO_/___", "XX_/OO_", "XY_/OO_/___", "XXX/___/___", "O__/___/___"} {
		_, err := board.Parse(s)
		assert.ErrorIs(t, err, board.ErrParse, s)
	}
}

func TestParseMove(t *testing.T) {
	m, err := board.ParseMove(" 1, 2 ")
	require.NoError(t, err)
	assert.Equal(t, board.Move{Row: 1, Col: 2}, m)
	assert.Equal(t, "1,2", m.String())

	for _, s := range []string{"", "1", "1,2,3", "a,1", "1,b"} {
		_, err := board.ParseMove(s)
		assert.ErrorIs(t, err, board.ErrParse, s)
	}
}

func TestMark(t *testing.T) {
	assert.Equal(t, board.O, board.X.Opponent())
	assert.Equal(t, board.X, board.O.Opponent())
	assert.Equal(t, board.Empty, board.Empty.Opponent())
	assert.Equal(t, "_", board.Empty.String())
}
