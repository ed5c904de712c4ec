// Package scene runs the title, play and game over screens and moves
// between them.
package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/milk9111/giftrunner/ecs/system"
	"github.com/milk9111/giftrunner/input"
	"github.com/milk9111/giftrunner/prefabs"
)

// Input is the polled input the scenes read. Poll runs once at the start
// of every tick.
type Input interface {
	input.Source
	Poll()
	AnyJustPressed() bool
	Overlay() *input.Overlay
}

// Session is the state that outlives a single scene. It is created once at
// start-up.
type Session struct {
	Settings prefabs.Settings
	Log      *log.Logger
	Rand     *rand.Rand
	Audio    system.SoundPlayer
	Input    Input
	Debug    bool
	// Fullscreen is requested when play starts from the title screen.
	Fullscreen func() error

	wins    int
	pending *prefabs.Settings
	next    *transition
}

type transition struct {
	state State
	won   bool
}

func (s *Session) Wins() int {
	return s.wins
}

// RecordWin counts a won round and returns the new total.
func (s *Session) RecordWin() int {
	s.wins++
	return s.wins
}

// QueueSettings stores settings to use from the next round on.
func (s *Session) QueueSettings(settings prefabs.Settings) {
	s.pending = &settings
}

// applyPending swaps in queued settings and reports whether it did.
func (s *Session) applyPending() bool {
	if s.pending == nil {
		return false
	}
	s.Settings = *s.pending
	s.pending = nil
	return true
}

// Play asks the director to start a new round after this tick.
func (s *Session) Play() {
	s.next = &transition{state: StatePlaying}
}

// EndRound asks the director to show the game over screen after this tick.
func (s *Session) EndRound(won bool) {
	s.next = &transition{state: StateGameOver, won: won}
}

func (s *Session) takeTransition() *transition {
	next := s.next
	s.next = nil
	return next
}
