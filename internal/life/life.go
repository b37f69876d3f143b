package life

import (
	"fmt"

	"fblife/internal/core"
)

// Life implements Conway's Game of Life on a grid with clamped edges:
// cells outside the grid are not counted rather than wrapped.
type Life struct {
	cfg  Config
	grid *core.Grid
	seed int64
	gen  int
}

// New returns a Life simulation seeded with seed. It panics when cfg
// fails validation, since an out-of-range alive rate is a caller bug.
func New(cfg Config, seed int64) *Life {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("life.New: %v", err))
	}
	l := &Life{cfg: cfg, grid: core.NewGrid(cfg.Width, cfg.Height)}
	l.Reset(seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.grid.W, H: l.grid.H} }

// Cells exposes the committed generation.
func (l *Life) Cells() []core.Cell { return l.grid.Active() }

// Seed returns the seed the current population was drawn from.
func (l *Life) Seed() int64 { return l.seed }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Set overwrites a single committed cell.
func (l *Life) Set(x, y int, c core.Cell) { l.grid.Set(x, y, c) }

// Population counts live cells in the committed generation.
func (l *Life) Population() int {
	n := 0
	for _, c := range l.grid.Active() {
		if c == core.Alive {
			n++
		}
	}
	return n
}

// Reset repopulates the grid from seed. Each cell draws from [0,100) and
// is alive when the draw is at most the alive rate, so a rate r yields a
// live fraction of (r+1)/100. A rate of zero seeds nothing.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.gen = 0
	rate := l.cfg.AliveRate
	if rate == 0 {
		l.grid.Clear()
		return
	}
	rng := core.NewRNG(seed)
	l.grid.Fill(func(x, y int) core.Cell {
		if rng.IntN(100) <= rate {
			return core.Alive
		}
		return core.Dead
	})
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	g := l.grid
	cur, nxt := g.Active(), g.Scratch()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			idx := g.Index(x, y)
			nxt[idx] = Next(cur[idx], l.liveNeighbors(x, y))
		}
	}
	g.Commit()
	l.gen++
}

func (l *Life) liveNeighbors(x, y int) int {
	g := l.grid
	cur := g.Active()
	x0, x1, y0, y1 := g.Neighborhood(x, y)
	n := 0
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if cur[ny*g.W+nx] == core.Alive {
				n++
			}
		}
	}
	return n
}

// Parameters describes the run for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", l.cfg.Width),
				core.IntParam("h", "Height", l.cfg.Height),
				core.IntParam("rate", "Alive rate", l.cfg.AliveRate),
				core.Int64Param("seed", "Seed", l.seed),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("alive", "Alive", l.Population()),
			},
		},
	}}
}
