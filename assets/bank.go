package assets

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/giftrunner/assets/sound"
)

// Bank plays the synthesized sounds through ebiten's audio context. PCM is
// rendered on first use and cached.
type Bank struct {
	logger *log.Logger

	mu      sync.Mutex
	ctx     *audio.Context
	pcm     map[string][]byte
	players []*audio.Player
}

func NewBank(logger *log.Logger) *Bank {
	return &Bank{
		logger: logger,
		pcm:    make(map[string][]byte),
	}
}

// Preload renders every sound so the first Play does not stall a frame.
func (b *Bank) Preload() error {
	for _, name := range sound.Names() {
		if _, err := b.load(name); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) Play(name string, volume float64) {
	b.start(name, volume, false)
}

func (b *Bank) PlayLoop(name string, volume float64) {
	b.start(name, volume, true)
}

// StopAll stops and releases every player started by the bank.
func (b *Bank) StopAll() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.players {
		p.Pause()
		if err := p.Close(); err != nil {
			b.logger.Warn("audio: close player", "err", err)
		}
	}
	b.players = b.players[:0]
}

func (b *Bank) start(name string, volume float64, loop bool) {
	pcm, err := b.load(name)
	if err != nil {
		b.logger.Warn("audio: load", "sound", name, "err", err)
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.prune()

	ctx := b.context()
	var p *audio.Player
	if loop {
		p, err = ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
		if err != nil {
			b.logger.Warn("audio: new player", "sound", name, "err", err)
			return
		}
	} else {
		p = ctx.NewPlayerFromBytes(pcm)
	}
	p.SetVolume(volume)
	p.Play()
	b.players = append(b.players, p)
}

func (b *Bank) load(name string) ([]byte, error) {
	b.mu.Lock()
	pcm, ok := b.pcm[name]
	b.mu.Unlock()
	if ok {
		return pcm, nil
	}

	pcm, err := sound.PCM(name)
	if err != nil {
		return nil, fmt.Errorf("assets: render %s: %w", name, err)
	}
	b.mu.Lock()
	b.pcm[name] = pcm
	b.mu.Unlock()
	return pcm, nil
}

// context returns the process audio context, creating it on first use.
// ebiten allows only one per process.
func (b *Bank) context() *audio.Context {
	if b.ctx != nil {
		return b.ctx
	}
	if ctx := audio.CurrentContext(); ctx != nil {
		b.ctx = ctx
		return ctx
	}
	b.ctx = audio.NewContext(int(sound.SampleRate))
	return b.ctx
}

// prune closes one-shot players that have finished.
func (b *Bank) prune() {
	kept := b.players[:0]
	for _, p := range b.players {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			b.logger.Warn("audio: close player", "err", err)
		}
	}
	b.players = kept
}
