package render

import (
	"errors"
	"image/color"
)

// ErrInvalidRect is returned for rectangles with negative extent.
var ErrInvalidRect = errors.New("render: invalid rectangle")

// Surface is a fixed-resolution pixel target. Drawing is buffered until
// Flush presents the frame.
type Surface interface {
	Clear(c color.RGBA) error
	FillRect(x, y, w, h int, c color.RGBA) error
	Plot(x, y int, c color.RGBA) error
	Flush() error
}

// Palette holds the fixed two-tone cell colours plus the border colour.
type Palette struct {
	Alive  color.RGBA
	Dead   color.RGBA
	Border color.RGBA
}

// DefaultPalette draws live cells white on black inside a red border.
var DefaultPalette = Palette{
	Alive:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Dead:   color.RGBA{A: 255},
	Border: color.RGBA{R: 255, A: 255},
}
