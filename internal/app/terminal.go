package app

import (
	"fblife/internal/core"
	"fblife/internal/render"
	"fblife/internal/term"
)

// RunTerminal runs sim in the controlling terminal until a quit key is
// pressed. Cells are drawn one pixel each regardless of cfg.Scale.
func RunTerminal(sim core.Sim, cfg *Config) (int, error) {
	host, err := term.Open()
	if err != nil {
		return 1, err
	}
	defer host.Close()
	return runTerminal(host, sim, cfg, core.SystemClock{})
}

func runTerminal(host *term.Host, sim core.Sim, cfg *Config, clock core.Clock) (int, error) {
	painter := render.NewGridPainter(1, render.DefaultPalette)
	w, h := render.SurfaceSize(sim.Size(), painter.CellSize())
	fb := render.NewFramebuffer(w, h, host)
	loop := NewLoop(sim, fb, painter, host, clock, core.FramePeriod(cfg.FPS))

	code := 0
	err := host.Run(func() error {
		var err error
		code, err = loop.Run()
		return err
	})
	return code, err
}
