//go:build !ebiten

package app

import (
	"errors"

	"torus-life/internal/config"
)

// ErrNoGUI reports that the binary was built without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with -tags ebiten; use -headless otherwise")

// RunGUI always fails in the headless build.
func RunGUI(*config.Config, Observer, int64) error {
	return ErrNoGUI
}
