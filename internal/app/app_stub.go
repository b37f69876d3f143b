//go:build !ebiten

package app

import (
	"errors"

	"fblife/internal/core"
)

// RunWindow reports that the window host was not compiled in.
func RunWindow(core.Sim, *Config) (int, error) {
	return 2, errors.New("the gui host requires building with the 'ebiten' tag")
}
