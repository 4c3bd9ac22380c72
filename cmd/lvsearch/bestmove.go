package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/board"
)

func newBestMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bestmove BOARD",
		Short: "Print the optimal move for a position",
		Long: `Reads a position such as "XX_/OO_/___" (rows separated by '/', '_' or
'.' for an empty cell) and prints the optimal move for the side to move
together with the game value: 1 X wins, -1 O wins, 0 draw.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := board.Parse(args[0])
			if err != nil {
				return err
			}
			solver, err := a.solver()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			m, ok := solver.BestMove(b)
			if !ok {
				fmt.Fprintln(out, outcome(b))
				return nil
			}
			fmt.Fprintf(out, "%v to move: play %v (value %d)\n", board.ActivePlayer(b), m, solver.Value(b))

			return nil
		},
	}
}
