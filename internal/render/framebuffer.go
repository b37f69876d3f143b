package render

import (
	"fmt"
	"image"
	"image/color"
)

// Presenter receives finished frames from a Framebuffer.
type Presenter interface {
	Present(img *image.RGBA) error
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(img *image.RGBA) error

// Present calls f(img).
func (f PresenterFunc) Present(img *image.RGBA) error { return f(img) }

// Framebuffer is a Surface backed by an in-memory RGBA image. Drawing
// outside the bounds is clipped.
type Framebuffer struct {
	img     *image.RGBA
	present Presenter
}

// NewFramebuffer allocates a w*h framebuffer that flushes into p. A nil
// presenter discards frames.
func NewFramebuffer(w, h int, p Presenter) *Framebuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, w, h)), present: p}
}

// Image exposes the backing image.
func (f *Framebuffer) Image() *image.RGBA { return f.img }

// Size returns the framebuffer resolution.
func (f *Framebuffer) Size() (int, int) {
	b := f.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole framebuffer with c.
func (f *Framebuffer) Clear(c color.RGBA) error {
	fillRGBA(f.img.Pix, c)
	return nil
}

// FillRect fills the w*h rectangle with its top-left corner at (x, y).
func (f *Framebuffer) FillRect(x, y, w, h int, c color.RGBA) error {
	if w < 0 || h < 0 {
		return fmt.Errorf("%w: %dx%d at (%d,%d)", ErrInvalidRect, w, h, x, y)
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(f.img.Bounds())
	if r.Empty() {
		return nil
	}
	for row := r.Min.Y; row < r.Max.Y; row++ {
		start := f.img.PixOffset(r.Min.X, row)
		fillRGBA(f.img.Pix[start:start+4*r.Dx()], c)
	}
	return nil
}

// Plot sets a single pixel.
func (f *Framebuffer) Plot(x, y int, c color.RGBA) error {
	f.img.SetRGBA(x, y, c)
	return nil
}

// Flush hands the current frame to the presenter.
func (f *Framebuffer) Flush() error {
	if f.present == nil {
		return nil
	}
	if err := f.present.Present(f.img); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}
