//go:build ebiten

package app

import (
	"errors"
	"image"

	"fblife/internal/core"
	"fblife/internal/input"
	"fblife/internal/render"
	"fblife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

// Game adapts the frame loop to the ebiten.Game interface. Ebiten's tick
// rate paces the loop, so each Update runs exactly one iteration.
type Game struct {
	loop  *Loop
	keys  *input.Queue
	frame *ebiten.Image
	hud   *ui.HUD

	w, h int
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, cfg *Config) *Game {
	painter := render.NewGridPainter(cfg.Scale, render.DefaultPalette)
	w, h := render.SurfaceSize(sim.Size(), painter.CellSize())
	g := &Game{
		keys:  &input.Queue{},
		frame: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
	fb := render.NewFramebuffer(w, h, render.PresenterFunc(g.present))
	g.loop = NewLoop(sim, fb, painter, g.keys, nil, 0)
	if cfg.HUD {
		g.hud = ui.NewHUD(g.loop, hudWidth)
	}
	return g
}

func (g *Game) present(img *image.RGBA) error {
	g.frame.WritePixels(img.Pix)
	return nil
}

// Update captures key presses and runs one frame of the loop.
func (g *Game) Update() error {
	g.captureKeys()
	quit, err := g.loop.Iterate()
	if err != nil {
		return err
	}
	if quit {
		return ebiten.Termination
	}
	g.hud.Update()
	return nil
}

func (g *Game) captureKeys() {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r < 0x80 {
			g.keys.Push(byte(r))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		g.keys.Push(input.CR)
	}
}

// Draw renders the last presented frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.frame, nil)
	g.hud.Draw(screen, g.w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.hud != nil {
		return g.w + hudWidth, g.h
	}
	return g.w, g.h
}

// RunWindow runs sim in a desktop window until a quit key is pressed.
func RunWindow(sim core.Sim, cfg *Config) (int, error) {
	game := New(sim, cfg)
	w, h := game.Layout(0, 0)

	fps := cfg.FPS
	if fps <= 0 {
		fps = core.DefaultFPS
	}
	ebiten.SetWindowTitle("fblife - " + sim.Name())
	ebiten.SetTPS(fps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return 1, err
	}
	return 0, nil
}
