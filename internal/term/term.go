// Package term hosts the frame loop in a terminal. Frames are drawn with
// upper half-block glyphs so each terminal row shows two pixel rows, and
// key presses are polled without blocking.
package term

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"fblife/internal/input"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned when presenting to a host that has been closed.
var ErrClosed = errors.New("term: screen closed")

const halfBlock = '▀'

// Host owns a tcell screen and adapts it to the frame loop's presenter and
// input contracts.
type Host struct {
	screen tcell.Screen
	events chan tcell.Event
	quit   chan struct{}
	keys   input.Queue

	closeOnce sync.Once
	closed    bool
}

// Open initialises the controlling terminal.
func Open() (*Host, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("initializing screen: %w", err)
	}
	return New(screen), nil
}

// New wraps an initialised screen.
func New(screen tcell.Screen) *Host {
	screen.HideCursor()
	screen.Clear()
	return &Host{
		screen: screen,
		events: make(chan tcell.Event, 64),
		quit:   make(chan struct{}),
	}
}

// Run pumps terminal events in the background while fn runs, and stops
// the pump once fn returns.
func (h *Host) Run(fn func() error) error {
	var g errgroup.Group
	g.Go(func() error {
		h.screen.ChannelEvents(h.events, h.quit)
		return nil
	})
	g.Go(func() error {
		defer close(h.quit)
		return fn()
	})
	return g.Wait()
}

// Close restores the terminal.
func (h *Host) Close() {
	h.closeOnce.Do(func() {
		h.closed = true
		h.screen.Fini()
	})
}

// Present draws img with two pixel rows per terminal row and shows it.
func (h *Host) Present(img *image.RGBA) error {
	if h.closed {
		return ErrClosed
	}
	b := img.Bounds()
	for ty := 0; 2*ty < b.Dy(); ty++ {
		y := b.Min.Y + 2*ty
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := color.RGBA{A: 255}
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			h.screen.SetContent(x-b.Min.X, ty, halfBlock, nil, style)
		}
	}
	h.screen.Show()
	return nil
}

// Pending drains queued terminal events and reports whether a key is
// waiting.
func (h *Host) Pending() bool {
	for !h.keys.Pending() {
		select {
		case ev, ok := <-h.events:
			if !ok {
				return false
			}
			h.handle(ev)
		default:
			return false
		}
	}
	return true
}

// ReadKey pops the oldest key press.
func (h *Host) ReadKey() byte { return h.keys.ReadKey() }

func (h *Host) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
	case *tcell.EventKey:
		if k, ok := translate(ev); ok {
			h.keys.Push(k)
		}
	}
}

func translate(ev *tcell.EventKey) (byte, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		if r := ev.Rune(); r >= 0 && r < 0x80 {
			return byte(r), true
		}
		return 0, false
	case tcell.KeyEnter:
		return input.CR, true
	case tcell.KeyLF:
		return input.LF, true
	}
	return 0, false
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
