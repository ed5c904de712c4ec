package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

var errNoMonitor = errors.New("no monitor to go fullscreen on")

func configureWindow(width, height int) {
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("giftrunner")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}

// requestFullscreen switches to fullscreen on the current monitor.
func requestFullscreen() error {
	if ebiten.Monitor() == nil {
		return errNoMonitor
	}
	ebiten.SetFullscreen(true)
	return nil
}
