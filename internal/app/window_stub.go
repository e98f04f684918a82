//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"golife/internal/sim"
)

// runWindow always fails in builds without the ebiten tag.
func runWindow(*Config, *sim.Loop) error {
	return errors.New("window mode requires building with the 'ebiten' tag")
}
