package minimax_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/board"
	"github.com/katalvlaran/lvsearch/minimax"
)

func ExampleBestMove() {
	b, _ := board.Parse("XX_/OO_/___")
	m, ok := minimax.BestMove(b)
	fmt.Println(m, ok, minimax.Value(b))
	// Output:
	// 0,2 true 1
}

// ExampleBestMove_selfPlay plays both sides optimally from the empty board.
func ExampleBestMove_selfPlay() {
	b := board.New()
	for {
		m, ok := minimax.BestMove(b)
		if !ok {
			break
		}
		b, _ = board.Apply(b, m)
	}
	fmt.Println("winner:", board.Winner(b), "utility:", board.Utility(b))
	// Output:
	// winner: _ utility: 0
}
