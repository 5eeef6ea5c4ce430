package model

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"
)

const (
	liveGlyph = "██"
	deadGlyph = "··"
	padGlyph  = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct{}

// Render lays the tracked cells out as text, one line per x, columns by y.
// Columns line up on the smallest tracked y; untracked positions are blank.
func (r *TerminalRenderer) Render(b *Board) string {
	if b.Len() == 0 {
		return ""
	}

	cells := b.AllCells()
	slices.SortFunc(cells, Cell.Compare)

	minY := cells[0].pos.Y
	for _, c := range cells {
		minY = min(minY, c.pos.Y)
	}

	var (
		sb  strings.Builder
		row = cells[0].pos.X
		col = minY
	)
	for _, c := range cells {
		if c.pos.X != row {
			sb.WriteByte('\n')
			row, col = c.pos.X, minY
		}
		for ; col < c.pos.Y; col++ {
			sb.WriteString(padGlyph)
		}
		sb.WriteString(c.String())
		col++
	}
	sb.WriteByte('\n')
	return sb.String()
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) {
	fmt.Print(r.Render(b))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
