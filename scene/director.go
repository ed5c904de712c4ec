package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/giftrunner/prefabs"
)

type State int

const (
	StateTitle State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateTitle:
		return "title"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Scene interface {
	OnEnter(s *Session)
	OnUpdate(s *Session) error
	OnExit(s *Session)
	Draw(screen *ebiten.Image)
}

// Poller reports changed settings or script files. prefabs.Watcher
// satisfies it.
type Poller interface {
	Poll() ([]string, error)
}

// Director is the ebiten.Game. It owns the active scene and switches scenes
// between ticks when one asks for it through the session.
type Director struct {
	session *Session
	state   State
	scene   Scene

	watcher      Poller
	settingsPath string
}

func NewDirector(s *Session) *Director {
	d := &Director{session: s}
	d.enter(transition{state: StateTitle})
	return d
}

// Watch applies edits reported by p. Settings are reloaded from
// settingsPath and take effect at the start of the next round.
func (d *Director) Watch(p Poller, settingsPath string) {
	d.watcher = p
	d.settingsPath = settingsPath
}

func (d *Director) State() State {
	return d.state
}

func (d *Director) Scene() Scene {
	return d.scene
}

func (d *Director) Update() error {
	d.session.Input.Poll()
	d.pollWatcher()

	if err := d.scene.OnUpdate(d.session); err != nil {
		return fmt.Errorf("scene %s: %w", d.state, err)
	}
	if next := d.session.takeTransition(); next != nil {
		d.scene.OnExit(d.session)
		d.enter(*next)
	}
	return nil
}

func (d *Director) Draw(screen *ebiten.Image) {
	d.scene.Draw(screen)
	if d.session.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s    TPS: %.2f    FPS: %.2f", d.state, ebiten.ActualTPS(), ebiten.ActualFPS()))
	}
}

func (d *Director) Layout(_, _ int) (int, int) {
	return d.session.Settings.Screen.Width, d.session.Settings.Screen.Height
}

func (d *Director) enter(next transition) {
	d.state = next.state
	switch next.state {
	case StatePlaying:
		d.scene = NewPlay()
	case StateGameOver:
		d.scene = NewGameOver(next.won)
	default:
		d.scene = NewTitle()
	}
	d.session.Log.Debug("scene enter", "state", d.state)
	d.scene.OnEnter(d.session)
}

func (d *Director) pollWatcher() {
	if d.watcher == nil {
		return
	}
	changed, err := d.watcher.Poll()
	if err != nil {
		d.session.Log.Warn("watch", "err", err)
	}
	for _, path := range changed {
		switch {
		case prefabs.IsSettingsFile(path):
			if d.settingsPath == "" {
				continue
			}
			settings, err := prefabs.LoadSettings(d.settingsPath)
			if err != nil {
				d.session.Log.Warn("settings reload failed, keeping current settings", "path", d.settingsPath, "err", err)
				continue
			}
			d.session.QueueSettings(settings)
			d.session.Log.Info("settings reloaded, applied next round", "path", d.settingsPath)
		case prefabs.IsScriptFile(path):
			d.session.Log.Info("script changed, applied next round", "path", path)
		}
	}
}
