//go:build android || ios

// Package mobile is bound with ebitenmobile for the Android and iOS builds.
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	"github.com/milk9111/giftrunner/app"
)

func init() {
	logger := app.NewLogger(false)
	game, err := app.New(app.Options{Touch: true, Logger: logger})
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	mobile.SetGame(game)
}

// Dummy forces gomobile to compile this package.
func Dummy() {}
