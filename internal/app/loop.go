package app

import (
	"fmt"
	"time"

	"fblife/internal/core"
	"fblife/internal/input"
	"fblife/internal/render"
)

// RunState is the pause state of the frame loop.
type RunState int

const (
	// Running advances the simulation every frame.
	Running RunState = iota
	// Paused keeps rendering the committed generation without stepping.
	Paused
)

func (s RunState) String() string {
	if s == Paused {
		return "paused"
	}
	return "running"
}

// Loop drives a simulation: it polls one key per frame, steps unless
// paused, paints the grid, flushes and sleeps for a fixed period.
type Loop struct {
	sim     core.Sim
	surface render.Surface
	painter *render.GridPainter
	input   input.Source
	clock   core.Clock
	period  time.Duration

	state  RunState
	frames int
}

// NewLoop wires a loop together. A nil clock uses the system clock.
func NewLoop(sim core.Sim, surface render.Surface, painter *render.GridPainter, in input.Source, clock core.Clock, period time.Duration) *Loop {
	if clock == nil {
		clock = core.SystemClock{}
	}
	return &Loop{
		sim:     sim,
		surface: surface,
		painter: painter,
		input:   in,
		clock:   clock,
		period:  period,
	}
}

// State returns the current run state.
func (l *Loop) State() RunState { return l.state }

// Frames returns how many frames have been presented.
func (l *Loop) Frames() int { return l.frames }

// Iterate runs a single frame without sleeping. It reports quit when a
// quit key was read, in which case nothing is stepped or drawn.
func (l *Loop) Iterate() (quit bool, err error) {
	if err := l.surface.Clear(l.painter.Palette().Dead); err != nil {
		return false, fmt.Errorf("clear surface: %w", err)
	}
	if l.input != nil && l.input.Pending() {
		switch l.input.ReadKey() {
		case input.Space:
			if l.state == Running {
				l.state = Paused
			} else {
				l.state = Running
			}
		case input.Quit, input.LF, input.CR:
			return true, nil
		}
	}
	if l.state == Running {
		l.sim.Step()
	}
	if err := l.painter.Paint(l.surface, l.sim.Size(), l.sim.Cells()); err != nil {
		return false, err
	}
	if err := l.surface.Flush(); err != nil {
		return false, fmt.Errorf("flush surface: %w", err)
	}
	l.frames++
	return false, nil
}

// Run iterates until a quit key arrives, sleeping one period after each
// frame. It returns the process exit code, or an error when the surface
// fails.
func (l *Loop) Run() (int, error) {
	for {
		quit, err := l.Iterate()
		if err != nil {
			return 1, err
		}
		if quit {
			return 0, nil
		}
		l.clock.Sleep(l.period)
	}
}

// Parameters reports the simulation's parameters followed by loop status.
func (l *Loop) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	if p, ok := l.sim.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	snap.Groups = append(snap.Groups, core.ParameterGroup{
		Name: "Loop",
		Params: []core.Parameter{
			core.TextParam("state", "State", l.state.String()),
			core.IntParam("frames", "Frames", l.frames),
		},
	})
	return snap
}
