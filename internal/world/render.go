package world

import (
	"fmt"

	"github.com/vovakirdan/gridstep/internal/core"
)

const boardDot = '·'

// Render draws the board, the entities and a status line per entity.
// Board row 0 is drawn at the bottom.
func (w *World) Render(dst *core.Screen) {
	frame := core.NewRect(0, 0, w.board.W+2, w.board.H+2)
	dst.DrawBox(frame, core.ColorGray)

	for y := 0; y < w.board.H; y++ {
		for x := 0; x < w.board.W; x++ {
			sx, sy := w.toScreen(x, y)
			dst.SetColored(sx, sy, boardDot, core.ColorGray)
		}
	}

	for _, e := range w.entities {
		x, y := e.Cell()
		if !w.board.Contains(x, y) {
			continue
		}
		sx, sy := w.toScreen(x, y)
		dst.SetColored(sx, sy, e.Heading().Glyph(), e.Color)
	}

	row := frame.Bottom() + 1
	for _, e := range w.entities {
		dst.DrawTextColored(1, row, w.status(e), e.Color)
		row++
	}
}

// toScreen converts a board cell to screen coordinates inside the frame.
func (w *World) toScreen(x, y int) (int, int) {
	return 1 + x, 1 + (w.board.H - 1 - y)
}

func (w *World) status(e *Entity) string {
	s := e.stepper
	x, y := e.Cell()
	line := fmt.Sprintf("%-8s (%3d,%3d) facing %-5s %s", e.Name, x, y, s.Facing(), s.Phase())
	if s.Moving() {
		line += fmt.Sprintf(" %s %3.0f%%", s.Target(), s.Progress()*100)
	}
	if !w.board.Contains(x, y) {
		line += " off board"
	}
	return line
}
