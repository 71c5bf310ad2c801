package chime

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/rs/zerolog"
)

var (
	globalOtoCtx *oto.Context
	otoOnce      sync.Once
	otoInitErr   error
)

func initOto() (*oto.Context, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   sampleRate,
			ChannelCount: channelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		var ready chan struct{}
		globalOtoCtx, ready, otoInitErr = oto.NewContext(op)
		if otoInitErr == nil {
			<-ready
		}
	})
	return globalOtoCtx, otoInitErr
}

// Player plays one Clip on demand. Play never blocks the caller.
type Player struct {
	ctx    *oto.Context
	clip   Clip
	volume float64
	log    zerolog.Logger

	mu     sync.Mutex
	muted  bool
	active *oto.Player
	closed bool
}

// New opens the audio device and prepares clip for playback.
func New(clip Clip, volume float64, log zerolog.Logger) (*Player, error) {
	ctx, err := initOto()
	if err != nil {
		return nil, fmt.Errorf("opening audio device: %w", err)
	}
	return &Player{ctx: ctx, clip: clip, volume: volume, log: log}, nil
}

// Play starts the clip from the beginning, cutting off a previous run.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || p.muted || len(p.clip.PCM) == 0 {
		return
	}
	if p.active != nil {
		if err := p.active.Close(); err != nil {
			p.log.Warn().Err(err).Msg("closing previous chime")
		}
	}
	p.active = p.ctx.NewPlayer(bytes.NewReader(p.clip.PCM))
	p.active.SetVolume(p.volume)
	p.active.Play()
	p.log.Debug().Str("chime", p.clip.Title).Dur("length", p.clip.Duration()).Msg("chime played")
}

// ToggleMute flips the mute switch and reports whether the player is now muted.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	if p.muted && p.active != nil {
		p.active.Pause()
	}
	return p.muted
}

// Muted reports whether Play is currently silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Close stops playback. Further calls to Play do nothing.
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	if p.active != nil {
		return p.active.Close()
	}
	return nil
}
