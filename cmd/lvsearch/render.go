package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvsearch/board"
)

var (
	xStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	oStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	emptyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	gridStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// renderBoard draws b with row and column indices, suitable for the
// "row,col" move prompt.
func renderBoard(b board.Board) string {
	var sb strings.Builder
	sb.WriteString("   0   1   2\n")
	for r := 0; r < board.Size; r++ {
		if r > 0 {
			sb.WriteString("  " + gridStyle.Render("---+---+---") + "\n")
		}
		sb.WriteString(string(rune('0'+r)) + " ")
		for c := 0; c < board.Size; c++ {
			if c > 0 {
				sb.WriteString(gridStyle.Render("|"))
			}
			sb.WriteString(" " + renderMark(b[r][c]) + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderMark(m board.Mark) string {
	switch m {
	case board.X:
		return xStyle.Render("X")
	case board.O:
		return oStyle.Render("O")
	default:
		return emptyStyle.Render("·")
	}
}

// outcome describes a terminal position.
func outcome(b board.Board) string {
	if w := board.Winner(b); w != board.Empty {
		return "Game over: " + w.String() + " wins."
	}

	return "Game over: tie."
}
