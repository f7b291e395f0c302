// Package audio turns simulation cues into synthesized sound with beep.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/l1jgo/invaders/internal/core/event"
)

// MaxVoices caps how many cues sound at once; extra cues are dropped.
const MaxVoices = 24

// Synth implements the game's cue sink. PlayCue never blocks on the
// device: it only adds a streamer to the mixer under the speaker lock.
type Synth struct {
	rate    beep.SampleRate
	volume  float64
	mixer   *beep.Mixer
	started bool
	dropped int
	log     *zap.Logger
}

// NewSynth builds a synth. volume is in [0, 1].
func NewSynth(sampleRate int, volume float64, log *zap.Logger) *Synth {
	return &Synth{
		rate:   beep.SampleRate(sampleRate),
		volume: volume,
		mixer:  &beep.Mixer{},
		log:    log,
	}
}

// Start opens the output device and begins playing the mixer.
func (s *Synth) Start() error {
	if s.started {
		return nil
	}
	if err := speaker.Init(s.rate, s.rate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(newVolume(s.mixer, s.volume))
	s.started = true
	s.log.Info("audio started", zap.Int("sample_rate", int(s.rate)), zap.Float64("volume", s.volume))
	return nil
}

// Close silences everything and releases the device.
func (s *Synth) Close() {
	if !s.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.started = false
}

func (s *Synth) PlayCue(c event.Cue) {
	speaker.Lock()
	defer speaker.Unlock()
	if s.mixer.Len() >= MaxVoices {
		s.dropped++
		if s.dropped%100 == 1 {
			s.log.Debug("audio voices saturated", zap.Stringer("cue", c.Kind), zap.Int("dropped", s.dropped))
		}
		return
	}
	s.mixer.Add(NewTone(c, s.rate))
}

// Voices reports how many cues are still sounding.
func (s *Synth) Voices() int {
	speaker.Lock()
	defer speaker.Unlock()
	return s.mixer.Len()
}

// newVolume maps a linear gain onto effects.Volume; zero is silent.
func newVolume(st beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: st, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: st, Base: 2, Volume: math.Log2(vol), Silent: false}
}
