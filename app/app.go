// Package app wires settings, assets, input and scenes into a runnable
// game for the desktop and mobile entry points.
package app

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/assets"
	"github.com/milk9111/giftrunner/ecs/render"
	"github.com/milk9111/giftrunner/input"
	"github.com/milk9111/giftrunner/input/device"
	"github.com/milk9111/giftrunner/prefabs"
	"github.com/milk9111/giftrunner/scene"
)

const scriptsDir = "prefabs/scripts"

type Options struct {
	// SettingsPath overlays a settings file on the embedded defaults.
	SettingsPath string
	// Watch reloads SettingsPath and enemy scripts when they change.
	Watch bool
	// Touch shows the on-screen controls from the start.
	Touch bool
	Debug bool
	// Seed overrides the settings seed when non-zero.
	Seed int64
	// ArtDir holds <key>.png files replacing generated images.
	ArtDir     string
	Fullscreen func() error
	Logger     *log.Logger
}

// Game is a ready to run director plus the resources it holds.
type Game struct {
	*scene.Director
	Session *scene.Session
	watcher *prefabs.Watcher
}

func NewLogger(debug bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "giftrunner",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func New(opts Options) (*Game, error) {
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(opts.Debug)
	}

	settings, err := loadSettings(opts.SettingsPath, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("player down boost", "enabled", settings.Player.DownBoost)

	seed := opts.Seed
	if seed == 0 {
		seed = settings.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("random seed", "seed", seed)

	for _, err := range render.LoadImages(assets.Images(settings), opts.ArtDir) {
		logger.Warn("art override skipped", "err", err)
	}

	bank := assets.NewBank(logger)
	go func() {
		if err := bank.Preload(); err != nil {
			logger.Warn("audio preload", "err", err)
		}
	}()

	overlay := input.NewOverlay(settings.Screen.Width, settings.Screen.Height)
	session := &scene.Session{
		Settings:   settings,
		Log:        logger,
		Rand:       rand.New(rand.NewSource(seed)),
		Audio:      bank,
		Input:      device.New(overlay, opts.Touch),
		Debug:      opts.Debug,
		Fullscreen: opts.Fullscreen,
	}
	g := &Game{
		Director: scene.NewDirector(session),
		Session:  session,
	}

	if opts.Watch {
		g.watch(opts.SettingsPath, logger)
	}
	return g, nil
}

// loadSettings falls back to the embedded defaults when the override is
// unusable.
func loadSettings(path string, logger *log.Logger) (prefabs.Settings, error) {
	settings, err := prefabs.LoadSettings(path)
	if err == nil {
		return settings, nil
	}
	if path == "" {
		return prefabs.Settings{}, fmt.Errorf("app: embedded settings: %w", err)
	}
	logger.Warn("settings override failed, using defaults", "path", path, "err", err)
	if err := settings.Validate(); err != nil {
		return prefabs.Settings{}, fmt.Errorf("app: default settings: %w", err)
	}
	return settings, nil
}

func (g *Game) watch(settingsPath string, logger *log.Logger) {
	var paths []string
	if settingsPath != "" {
		paths = append(paths, settingsPath)
	}
	if info, err := os.Stat(scriptsDir); err == nil && info.IsDir() {
		paths = append(paths, filepath.FromSlash(scriptsDir))
	}
	if len(paths) == 0 {
		logger.Warn("watch: nothing to watch, pass -settings or run from the repo root")
		return
	}
	watcher, err := prefabs.NewWatcher(paths...)
	if err != nil {
		logger.Warn("watch disabled", "err", err)
		return
	}
	g.watcher = watcher
	g.Watch(watcher, settingsPath)
	logger.Info("watching for changes", "paths", paths)
}

func (g *Game) Close() error {
	return g.watcher.Close()
}
