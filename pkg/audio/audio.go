// Package audio plays short synthesized cues for game events.
package audio

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-asteroids/pkg/config"
	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
)

// Cue identifies one sound effect
type Cue int

const (
	CueShot Cue = iota
	CueExplosion
	CueCraftLost
	CueGameOver
)

func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueExplosion:
		return "explosion"
	case CueCraftLost:
		return "craft_lost"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// cueFor maps the game events that make a sound to their cue.
var cueFor = map[event.Type]Cue{
	event.ProjectileFired:   CueShot,
	event.ObstacleDestroyed: CueExplosion,
	event.CraftDestroyed:    CueCraftLost,
	event.GameOver:          CueGameOver,
}

const bufferDuration = 100 * time.Millisecond

// SoundManager owns the speaker mixer and turns bus events into cues.
// Every method is safe to call when the speaker never came up.
type SoundManager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	logger      *logging.Logger
	subs        []*event.Subscription

	// sink receives finished streamers; nil drops them
	sink func(beep.Streamer)
}

// NewSoundManager creates a sound manager for cfg. Nothing is opened until
// Initialize.
func NewSoundManager(cfg config.AudioConfig, logger *logging.Logger) *SoundManager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = config.DefaultConfig().Audio.SampleRate
	}
	return &SoundManager{
		cfg:        cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
		mixer:      &beep.Mixer{},
		logger:     logger,
	}
}

// Initialize opens the speaker. A disabled manager stays silent and
// returns nil.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(sm.sampleRate, sm.sampleRate.N(bufferDuration)); err != nil {
		return logging.WrapError(err, "initialize speaker at %d Hz", sm.cfg.SampleRate)
	}
	speaker.Play(sm.mixer)

	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true

	sm.logger.Info(context.Background(), "Audio initialized",
		"sample_rate", sm.cfg.SampleRate,
		"volume", sm.cfg.Volume,
	)
	return nil
}

// Subscribe plays a cue for each sounding event published on bus.
func (sm *SoundManager) Subscribe(bus *event.Bus) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for typ, cue := range cueFor {
		sm.subs = append(sm.subs, bus.Subscribe(typ, func(event.Event) {
			sm.Play(cue)
		}))
	}
}

// Play queues cue on the mixer.
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	sink := sm.sink
	sm.mu.Unlock()

	if sink == nil {
		return
	}
	sink(withVolume(cueStreamer(cue, sm.sampleRate), sm.cfg.Volume))
}

// Cleanup drops subscriptions and stops anything still playing.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for _, sub := range sm.subs {
		sub.Cancel()
	}
	sm.subs = nil

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.sink = nil
	sm.initialized = false
}

// cueStreamer synthesizes cue at sr. Every cue is finite.
func cueStreamer(cue Cue, sr beep.SampleRate) beep.Streamer {
	switch cue {
	case CueShot:
		return tone(sr, 880, 60*time.Millisecond)
	case CueExplosion:
		return beep.Take(sr.N(250*time.Millisecond), newNoiseBurst(sr, 12, 90, 1))
	case CueCraftLost:
		return beep.Seq(
			tone(sr, 330, 80*time.Millisecond),
			beep.Take(sr.N(600*time.Millisecond), newNoiseBurst(sr, 5, 60, 7)),
		)
	case CueGameOver:
		return beep.Seq(
			tone(sr, 440, 150*time.Millisecond),
			tone(sr, 330, 150*time.Millisecond),
			tone(sr, 220, 300*time.Millisecond),
		)
	default:
		return beep.Silence(0)
	}
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

// withVolume scales s by a linear gain in [0, 1].
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(math.Min(gain, 1))}
}

// noiseBurst is decaying white noise over a low rumble.
type noiseBurst struct {
	sr     beep.SampleRate
	decay  float64
	rumble float64
	seed   uint32
	pos    int
}

func newNoiseBurst(sr beep.SampleRate, decay, rumble float64, seed uint32) *noiseBurst {
	return &noiseBurst{sr: sr, decay: decay, rumble: rumble, seed: seed}
}

func (g *noiseBurst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * g.decay)

		g.seed = g.seed*1664525 + 1013904223
		noise := float64(g.seed)/math.MaxUint32*2 - 1
		low := 0.3 * math.Sin(2*math.Pi*g.rumble*t)

		sample := envelope * (0.4*noise + low)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseBurst) Err() error {
	return nil
}
