package system

import (
	"github.com/milk9111/giftrunner/ecs"
	"github.com/milk9111/giftrunner/ecs/component"
)

// SoundPlayer plays named sounds from a bank.
type SoundPlayer interface {
	Play(name string, volume float64)
	PlayLoop(name string, volume float64)
	StopAll()
}

// AudioSystem consumes SoundRequest entities.
type AudioSystem struct {
	player    SoundPlayer
	sfxVolume float64
}

func NewAudioSystem(player SoundPlayer, sfxVolume float64) *AudioSystem {
	return &AudioSystem{player: player, sfxVolume: sfxVolume}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if a == nil || w == nil {
		return
	}
	var requests []component.SoundRequest
	stop := false
	ecs.ForEach(w, component.SoundRequestComponent.Kind(), func(e ecs.Entity, req *component.SoundRequest) {
		stop = stop || req.StopAll
		requests = append(requests, *req)
		ecs.DestroyEntity(w, e)
	})
	if a.player == nil {
		return
	}
	// Stops apply before any sound queued in the same tick starts.
	if stop {
		a.player.StopAll()
	}
	for _, req := range requests {
		if req.Name == "" {
			continue
		}
		vol := req.Volume
		if vol <= 0 {
			vol = a.sfxVolume
		}
		if req.Loop {
			a.player.PlayLoop(req.Name, vol)
			continue
		}
		a.player.Play(req.Name, vol)
	}
}

// PlaySound queues a one-shot effect at the default effect volume.
func PlaySound(w *ecs.World, name string) {
	requestSound(w, &component.SoundRequest{Name: name})
}

// PlayMusic silences everything and starts a looping track.
func PlayMusic(w *ecs.World, name string, volume float64) {
	requestSound(w, &component.SoundRequest{Name: name, Loop: true, Volume: volume, StopAll: true})
}

func requestSound(w *ecs.World, req *component.SoundRequest) {
	if w == nil {
		return
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.SoundRequestComponent.Kind(), req)
}
