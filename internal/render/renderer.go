package render

import (
	"fmt"

	"fblife/internal/core"
)

// GridPainter draws a cell grid onto a Surface as fixed-size squares and
// outlines it with a one-pixel border.
type GridPainter struct {
	cellSize int
	palette  Palette
}

// NewGridPainter returns a painter drawing each cell as a cellSize square.
func NewGridPainter(cellSize int, palette Palette) *GridPainter {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &GridPainter{cellSize: cellSize, palette: palette}
}

// CellSize returns the edge length in pixels of a drawn cell.
func (gp *GridPainter) CellSize() int { return gp.cellSize }

// Palette returns the colours the painter draws with.
func (gp *GridPainter) Palette() Palette { return gp.palette }

// SurfaceSize returns the resolution needed to hold a grid of the given
// size including its border.
func SurfaceSize(size core.Size, cellSize int) (int, int) {
	return size.W*cellSize + 1, size.H*cellSize + 1
}

// Paint draws every cell followed by the border. The top and left border
// lines overlay the first pixel row and column of the grid; the bottom and
// right lines sit just past it.
func (gp *GridPainter) Paint(dst Surface, size core.Size, cells []core.Cell) error {
	if len(cells) != size.W*size.H {
		return fmt.Errorf("paint: %d cells for a %dx%d grid", len(cells), size.W, size.H)
	}
	s := gp.cellSize
	for row := 0; row < size.H; row++ {
		for col := 0; col < size.W; col++ {
			c := gp.palette.Dead
			if cells[row*size.W+col] == core.Alive {
				c = gp.palette.Alive
			}
			if err := dst.FillRect(col*s, row*s, s, s, c); err != nil {
				return fmt.Errorf("paint cell (%d,%d): %w", col, row, err)
			}
		}
	}
	return gp.border(dst, size.W*s, size.H*s)
}

func (gp *GridPainter) border(dst Surface, right, bottom int) error {
	c := gp.palette.Border
	for x := 0; x <= right; x++ {
		if err := dst.Plot(x, 0, c); err != nil {
			return fmt.Errorf("paint border: %w", err)
		}
		if err := dst.Plot(x, bottom, c); err != nil {
			return fmt.Errorf("paint border: %w", err)
		}
	}
	for y := 0; y <= bottom; y++ {
		if err := dst.Plot(0, y, c); err != nil {
			return fmt.Errorf("paint border: %w", err)
		}
		if err := dst.Plot(right, y, c); err != nil {
			return fmt.Errorf("paint border: %w", err)
		}
	}
	return nil
}
