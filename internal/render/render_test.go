package render

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"fblife/internal/core"
)

func TestFramebufferClearAndFill(t *testing.T) {
	fb := NewFramebuffer(4, 3, nil)
	red := color.RGBA{R: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	if err := fb.Clear(red); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := fb.FillRect(2, 1, 5, 5, blue); err != nil {
		t.Fatalf("FillRect: %v", err)
	}

	img := fb.Image()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 && y >= 1 {
				want = blue
			}
			if got := img.RGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestFramebufferClipsAndRejects(t *testing.T) {
	fb := NewFramebuffer(2, 2, nil)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if err := fb.Plot(5, 5, white); err != nil {
		t.Fatalf("out of bounds Plot should clip, got %v", err)
	}
	if err := fb.FillRect(-4, -4, 2, 2, white); err != nil {
		t.Fatalf("out of bounds FillRect should clip, got %v", err)
	}
	if err := fb.FillRect(0, 0, -1, 1, white); !errors.Is(err, ErrInvalidRect) {
		t.Fatalf("negative width error = %v, expected ErrInvalidRect", err)
	}
}

func TestFramebufferFlushPresents(t *testing.T) {
	var presented *image.RGBA
	fb := NewFramebuffer(3, 3, PresenterFunc(func(img *image.RGBA) error {
		presented = img
		return nil
	}))
	if err := fb.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if presented != fb.Image() {
		t.Fatal("presenter did not receive the framebuffer image")
	}

	boom := errors.New("device lost")
	fb = NewFramebuffer(1, 1, PresenterFunc(func(*image.RGBA) error { return boom }))
	if err := fb.Flush(); !errors.Is(err, boom) {
		t.Fatalf("Flush error = %v, expected wrapped %v", err, boom)
	}
}

func TestPaintCellsAndBorder(t *testing.T) {
	size := core.Size{W: 3, H: 2}
	cells := []core.Cell{
		core.Alive, core.Dead, core.Dead,
		core.Dead, core.Dead, core.Alive,
	}
	const s = 4
	w, h := SurfaceSize(size, s)
	if w != 13 || h != 9 {
		t.Fatalf("SurfaceSize = %dx%d, expected 13x9", w, h)
	}
	fb := NewFramebuffer(w, h, nil)
	gp := NewGridPainter(s, DefaultPalette)

	if err := gp.Paint(fb, size, cells); err != nil {
		t.Fatalf("Paint: %v", err)
	}

	img := fb.Image()
	pal := DefaultPalette
	// Interior pixels of each cell take the cell colour.
	if got := img.RGBAAt(2, 2); got != pal.Alive {
		t.Fatalf("cell (0,0) interior = %v, expected alive colour", got)
	}
	if got := img.RGBAAt(6, 2); got != pal.Dead {
		t.Fatalf("cell (1,0) interior = %v, expected dead colour", got)
	}
	if got := img.RGBAAt(10, 6); got != pal.Alive {
		t.Fatalf("cell (2,1) interior = %v, expected alive colour", got)
	}
	// Border runs along all four edges of the bounding rectangle.
	for x := 0; x <= 12; x++ {
		if img.RGBAAt(x, 0) != pal.Border || img.RGBAAt(x, 8) != pal.Border {
			t.Fatalf("horizontal border missing at x=%d", x)
		}
	}
	for y := 0; y <= 8; y++ {
		if img.RGBAAt(0, y) != pal.Border || img.RGBAAt(12, y) != pal.Border {
			t.Fatalf("vertical border missing at y=%d", y)
		}
	}
}

type countingSurface struct {
	fills, plots int
	failPlot     bool
}

func (c *countingSurface) Clear(color.RGBA) error { return nil }
func (c *countingSurface) FillRect(int, int, int, int, color.RGBA) error {
	c.fills++
	return nil
}
func (c *countingSurface) Plot(int, int, color.RGBA) error {
	c.plots++
	if c.failPlot {
		return errors.New("plot failed")
	}
	return nil
}
func (c *countingSurface) Flush() error { return nil }

func TestPaintUsesSurfacePrimitives(t *testing.T) {
	size := core.Size{W: 5, H: 2}
	cells := make([]core.Cell, 10)
	dst := &countingSurface{}
	if err := NewGridPainter(2, DefaultPalette).Paint(dst, size, cells); err != nil {
		t.Fatalf("Paint: %v", err)
	}
	if dst.fills != 10 {
		t.Fatalf("FillRect calls = %d, expected 10", dst.fills)
	}
	// Two horizontal lines of 11 pixels and two vertical lines of 5.
	if dst.plots != 2*11+2*5 {
		t.Fatalf("Plot calls = %d, expected %d", dst.plots, 2*11+2*5)
	}

	if err := NewGridPainter(2, DefaultPalette).Paint(&countingSurface{failPlot: true}, size, cells); err == nil {
		t.Fatal("Paint must surface plot failures")
	}
	if err := NewGridPainter(2, DefaultPalette).Paint(dst, size, cells[:3]); err == nil {
		t.Fatal("Paint must reject mismatched cell buffers")
	}
}
