package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-torus/rules"
)

// ErrInvalidDimensions is returned when a world would have no cells.
var ErrInvalidDimensions = errors.New("grid dimensions must be positive")

// World is a Game of Life board whose edges wrap around into a torus
type World struct {
	width  int
	height int

	// cells holds the current generation in row-major order
	cells []bool
	// neighbours is scratch space rewritten on every Advance
	neighbours []uint8
}

// NewWorld creates a width x height world with every cell drawn from src
func NewWorld(width, height int, src RandomSource) (*World, error) {
	if width < 1 || height < 1 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewWorld] got %dx%d", width, height)
	}
	if src == nil {
		src = newTimeRNG()
	}

	cells := make([]bool, width*height)
	for i := range cells {
		cells[i] = src.Bool()
	}
	return &World{
		width:      width,
		height:     height,
		cells:      cells,
		neighbours: make([]uint8, len(cells)),
	}, nil
}

// Width returns the number of columns
func (w *World) Width() int {
	return w.width
}

// Height returns the number of rows
func (w *World) Height() int {
	return w.height
}

// Len returns the number of cells
func (w *World) Len() int {
	return len(w.cells)
}

// Alive reports whether the cell at the linear index is alive
func (w *World) Alive(index int) bool {
	return w.cells[index]
}

// Cells exposes the current generation in row-major order. It must not be modified.
func (w *World) Cells() []bool {
	return w.cells
}

// Advance replaces the current generation with the next one.
//
// All neighbour counts are taken before any cell is updated.
func (w *World) Advance() {
	for i := range w.cells {
		w.neighbours[i] = w.livingNeighbours(i)
	}
	for i, alive := range w.cells {
		w.cells[i] = rules.ApplyConwayRules(w.neighbours[i], alive)
	}
}

// livingNeighbours counts the live cells around index, wrapping at every edge
func (w *World) livingNeighbours(index int) uint8 {
	var (
		row   = index / w.width
		col   = index % w.width
		count uint8
	)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x := (col + w.width + dx) % w.width
			y := (row + w.height + dy) % w.height
			if w.cells[y*w.width+x] {
				count++
			}
		}
	}
	return count
}

// Population returns the total number of living cells
func (w *World) Population() (count int) {
	for _, alive := range w.cells {
		if alive {
			count++
		}
	}
	return
}

// Hash returns an MD5 digest of the current generation
func (w *World) Hash() string {
	h := md5.New()
	buf := make([]byte, len(w.cells))
	for i, alive := range w.cells {
		if alive {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
