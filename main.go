package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/giftrunner/app"
)

func main() {
	settingsPath := flag.String("settings", "", "settings yaml overlaid on the embedded defaults")
	watch := flag.Bool("watch", false, "reload settings and enemy scripts when they change")
	touch := flag.Bool("touch", false, "show the on-screen touch controls")
	debug := flag.Bool("debug", false, "enable debug mode")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the settings seed or the clock")
	artDir := flag.String("art", "", "directory of <key>.png files replacing generated art")
	flag.Parse()

	logger := app.NewLogger(*debug)
	game, err := app.New(app.Options{
		SettingsPath: *settingsPath,
		Watch:        *watch,
		Touch:        *touch,
		Debug:        *debug,
		Seed:         *seed,
		ArtDir:       *artDir,
		Fullscreen:   requestFullscreen,
		Logger:       logger,
	})
	if err != nil {
		logger.Fatal("start", "err", err)
	}
	defer func() {
		if err := game.Close(); err != nil {
			logger.Warn("close", "err", err)
		}
	}()

	configureWindow(game.Session.Settings.Screen.Width, game.Session.Settings.Screen.Height)
	if err := ebiten.RunGame(game); err != nil {
		logger.Error("run", "err", err)
		os.Exit(1)
	}
}

