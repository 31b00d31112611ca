// Package player guarantees that at most one audio track plays across the
// whole application. All mutation of the shared audio element — source
// swap, play/pause, seek — funnels through the one Player that owns it; no
// other component touches the element directly.
package player

import (
	"sync"

	"github.com/dugodofficials-cpu/customer-app-sub000/models"
)

// AudioElement abstracts the single shared playback element. Out-of-range
// seeks are the element's responsibility to clamp.
type AudioElement interface {
	Load(src string)
	Play() error
	Pause()
	Seek(seconds float64)
	OnTimeUpdate(fn func(position, duration float64))
	OnEnded(fn func())
	Close() error
}

type Player struct {
	mu sync.Mutex
	el AudioElement

	current  *models.Track
	playing  bool
	position float64
	duration float64
}

// New wraps the shared element and wires its event stream into the player's
// progress state. The element lives for the player's lifetime.
func New(el AudioElement) *Player {
	p := &Player{el: el}
	el.OnTimeUpdate(func(position, duration float64) {
		p.mu.Lock()
		p.position = position
		p.duration = duration
		p.mu.Unlock()
	})
	el.OnEnded(func() {
		p.mu.Lock()
		p.playing = false
		p.mu.Unlock()
	})
	return p
}

// PlayTrack starts the given track. Requesting the track that is already
// current toggles pause/resume instead of reloading the source, so playback
// position and the network fetch are preserved.
func (p *Player) PlayTrack(track models.Track) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.current != nil && p.current.ID == track.ID {
		return p.toggleLocked()
	}

	p.el.Load(track.AudioURL)
	if err := p.el.Play(); err != nil {
		return err
	}
	t := track
	p.current = &t
	p.playing = true
	p.position = 0
	return nil
}

// TogglePlay flips play/pause. No-op when nothing is current.
func (p *Player) TogglePlay() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return nil
	}
	return p.toggleLocked()
}

func (p *Player) toggleLocked() error {
	if p.playing {
		p.el.Pause()
		p.playing = false
		return nil
	}
	if err := p.el.Play(); err != nil {
		return err
	}
	p.playing = true
	return nil
}

// Seek moves the playhead. The element clamps to [0, duration].
func (p *Player) Seek(seconds float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return
	}
	p.el.Seek(seconds)
	p.position = seconds
}

// Current returns the current track, if any.
func (p *Player) Current() (models.Track, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current == nil {
		return models.Track{}, false
	}
	return *p.current, true
}

func (p *Player) IsPlaying() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}

// Progress returns playhead position and track duration in seconds.
func (p *Player) Progress() (position, duration float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position, p.duration
}

// Close pauses playback and releases the element. Called when the owning
// scope unmounts — in practice process shutdown.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		p.el.Pause()
		p.playing = false
	}
	p.current = nil
	return p.el.Close()
}
