package model

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	gridPosAlive = 'X'
	gridPosEmpty = ' '
)

// TerminalRenderer draws a World as one character per cell
type TerminalRenderer struct {
	Alive rune
	Dead  rune
	Style tcell.Style
}

// NewTerminalRenderer returns a renderer using the given characters, falling back to 'X' and ' '
func NewTerminalRenderer(alive, dead rune) *TerminalRenderer {
	if alive == 0 {
		alive = gridPosAlive
	}
	if dead == 0 {
		dead = gridPosEmpty
	}
	return &TerminalRenderer{Alive: alive, Dead: dead, Style: tcell.StyleDefault}
}

func (r *TerminalRenderer) glyph(alive bool) rune {
	if alive {
		return r.Alive
	}
	return r.Dead
}

// Display draws the world at the top left of the screen with status on the row below it
func (r *TerminalRenderer) Display(screen tcell.Screen, w *World, status string) {
	for i, alive := range w.Cells() {
		screen.SetContent(i%w.Width(), i/w.Width(), r.glyph(alive), nil, r.Style)
	}

	cols, _ := screen.Size()
	x := 0
	for _, ch := range status {
		if x >= cols {
			break
		}
		screen.SetContent(x, w.Height(), ch, nil, r.Style.Reverse(true))
		x++
	}
	for ; x < cols; x++ {
		screen.SetContent(x, w.Height(), ' ', nil, r.Style)
	}
	screen.Show()
}

// WriteText writes the world as plain text, one line per row
func (r *TerminalRenderer) WriteText(out io.Writer, w *World) error {
	bw := bufio.NewWriter(out)
	for i, alive := range w.Cells() {
		bw.WriteRune(r.glyph(alive))
		if (i+1)%w.Width() == 0 {
			bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[WriteText] failed to flush output")
	}
	return nil
}
