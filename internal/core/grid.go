package core

// Grid holds two same-shaped cell buffers in row-major order: the active
// generation and a scratch buffer the next generation is written into.
type Grid struct {
	W, H    int
	active  []Cell
	scratch []Cell
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, active: make([]Cell, w*h), scratch: make([]Cell, w*h)}
}

// Active exposes the committed generation.
func (g *Grid) Active() []Cell { return g.active }

// Scratch exposes the buffer the next generation is computed into. Its
// contents are undefined until overwritten.
func (g *Grid) Scratch() []Cell { return g.scratch }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// At reads the committed cell at (x, y).
func (g *Grid) At(x, y int) Cell { return g.active[y*g.W+x] }

// Set writes the committed cell at (x, y).
func (g *Grid) Set(x, y int, c Cell) { g.active[y*g.W+x] = c }

// Fill assigns every committed cell from fn, row by row.
func (g *Grid) Fill(fn func(x, y int) Cell) {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			g.active[y*g.W+x] = fn(x, y)
		}
	}
}

// Commit promotes scratch to the committed generation by swapping buffers.
func (g *Grid) Commit() {
	g.active, g.scratch = g.scratch, g.active
}

// Neighborhood returns the inclusive bounds of the Moore neighbourhood of
// (x, y), truncated at the grid edges instead of wrapping.
func (g *Grid) Neighborhood(x, y int) (x0, x1, y0, y1 int) {
	x0, x1 = max(x-1, 0), min(x+1, g.W-1)
	y0, y1 = max(y-1, 0), min(y+1, g.H-1)
	return x0, x1, y0, y1
}

// Clear kills every committed cell.
func (g *Grid) Clear() {
	for i := range g.active {
		g.active[i] = Dead
	}
}
