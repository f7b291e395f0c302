package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/l1jgo/invaders/internal/core/event"
)

// silenceFloor is the gain the exponential decay reaches at the end of a
// tone; exp ramps cannot reach zero.
const silenceFloor = 0.001

// tone renders one cue: an oscillator whose frequency sweeps exponentially
// from Pitch to EndPitch while its gain decays exponentially to silence.
type tone struct {
	wave     event.Waveform
	rate     beep.SampleRate
	startHz  float64
	ratio    float64 // EndPitch / Pitch
	gain     float64
	phase    float64
	position int
	total    int
}

// NewTone builds the streamer for c. Cues with no duration, gain or pitch
// yield an empty streamer.
func NewTone(c event.Cue, rate beep.SampleRate) beep.Streamer {
	total := 0
	if c.Duration > 0 && c.Gain > 0 && c.Pitch > 0 {
		total = int(math.Round(c.Duration * float64(rate)))
	}
	end := c.EndPitch
	if end <= 0 {
		end = c.Pitch
	}
	ratio := 1.0
	if c.Pitch > 0 {
		ratio = end / c.Pitch
	}
	return &tone{
		wave:    c.Wave,
		rate:    rate,
		startHz: c.Pitch,
		ratio:   ratio,
		gain:    c.Gain,
		total:   total,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.position >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.position >= t.total {
			return i, true
		}
		progress := float64(t.position) / float64(t.total)
		freq := t.startHz * math.Pow(t.ratio, progress)
		amp := t.gain * math.Pow(silenceFloor/t.gain, progress)
		if t.gain <= silenceFloor {
			amp = t.gain * (1 - progress)
		}

		val := shape(t.wave, t.phase) * amp
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// shape evaluates one period of the waveform at phase in [0, 1).
func shape(w event.Waveform, phase float64) float64 {
	switch w {
	case event.WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case event.WaveTriangle:
		return 1 - 4*math.Abs(phase-0.5)
	case event.WaveSawtooth:
		return 2 * (phase - 0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}
