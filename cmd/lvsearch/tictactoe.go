package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/board"
)

func newTicTacToeCmd(a *app) *cobra.Command {
	var human string

	cmd := &cobra.Command{
		Use:   "tictactoe",
		Short: "Play tic-tac-toe against an opponent that never loses",
		Long: `Plays one game on the terminal. Moves are entered as "row,col" with
zero-based coordinates. X always moves first.

Examples:
  lvsearch tictactoe
  lvsearch tictactoe --human O`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var side board.Mark
			switch strings.ToUpper(human) {
			case "X":
				side = board.X
			case "O":
				side = board.O
			default:
				return fmt.Errorf("--human must be X or O, got %q", human)
			}
			return a.runTicTacToe(cmd, side)
		},
	}
	cmd.Flags().StringVar(&human, "human", "X", "mark played by the human: X or O")

	return cmd
}

func (a *app) runTicTacToe(cmd *cobra.Command, human board.Mark) error {
	solver, err := a.solver()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	in := bufio.NewReader(cmd.InOrStdin())

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("You play %v.", human)))
	b := board.New()
	for !board.IsTerminal(b) {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		fmt.Fprint(out, renderBoard(b))

		if board.ActivePlayer(b) == human {
			line, err := prompt(in, out, "Your move (row,col): ")
			if err != nil {
				return err
			}
			m, err := board.ParseMove(line)
			if err == nil {
				b, err = board.Apply(b, m)
			}
			if err != nil {
				fmt.Fprintln(out, err)
			}
			continue
		}

		m, ok := solver.BestMove(b)
		if !ok {
			break
		}
		next, err := board.Apply(b, m)
		if err != nil {
			return err
		}
		a.log.Debug("computer move", "board", b.String(), "move", m.String())
		fmt.Fprintf(out, "Computer plays %v.\n", m)
		b = next
	}

	fmt.Fprint(out, renderBoard(b))
	fmt.Fprintln(out, titleStyle.Render(outcome(b)))
	a.log.Info("game finished", "board", b.String(), "winner", board.Winner(b).String())

	return nil
}
