package audio

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/l1jgo/invaders/internal/core/event"
	"github.com/l1jgo/invaders/internal/world"
)

const testRate = beep.SampleRate(8000)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 256)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer never finished")
	return nil
}

func TestToneLength(t *testing.T) {
	out := drain(t, NewTone(world.CueShot, testRate))
	assert.Len(t, out, int(math.Round(world.CueShot.Duration*float64(testRate))))
}

func TestToneEnvelopeDecays(t *testing.T) {
	c := event.Cue{Wave: event.WaveSquare, Pitch: 100, EndPitch: 100, Duration: 0.5, Gain: 0.5}
	out := drain(t, NewTone(c, testRate))
	require.NotEmpty(t, out)

	assert.InDelta(t, 0.5, math.Abs(out[0][0]), 1e-9, "starts at full gain")
	for _, s := range out {
		assert.LessOrEqual(t, math.Abs(s[0]), 0.5+1e-9)
		assert.Equal(t, s[0], s[1], "mono on both channels")
	}
	assert.Less(t, math.Abs(out[len(out)-1][0]), 0.01, "ends near silence")
}

func TestToneSweepsPitch(t *testing.T) {
	// Count zero crossings in the first and last tenth of a rising sweep.
	c := event.Cue{Wave: event.WaveSine, Pitch: 200, EndPitch: 800, Duration: 1, Gain: 1}
	out := drain(t, NewTone(c, testRate))
	tenth := len(out) / 10
	crossings := func(seg [][2]float64) int {
		n := 0
		for i := 1; i < len(seg); i++ {
			if (seg[i-1][0] < 0) != (seg[i][0] < 0) {
				n++
			}
		}
		return n
	}
	head := crossings(out[:tenth])
	tail := crossings(out[len(out)-tenth:])
	assert.Greater(t, tail, 2*head)
}

func TestToneDegenerateCues(t *testing.T) {
	for name, c := range map[string]event.Cue{
		"no duration": {Pitch: 440, Gain: 0.1},
		"no gain":     {Pitch: 440, Duration: 0.1},
		"no pitch":    {Duration: 0.1, Gain: 0.1},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, drain(t, NewTone(c, testRate)))
		})
	}
}

func TestShapes(t *testing.T) {
	assert.Equal(t, 1.0, shape(event.WaveSquare, 0.25))
	assert.Equal(t, -1.0, shape(event.WaveSquare, 0.75))
	assert.InDelta(t, 1.0, shape(event.WaveTriangle, 0.5), 1e-9)
	assert.InDelta(t, -1.0, shape(event.WaveTriangle, 0), 1e-9)
	assert.InDelta(t, -1.0, shape(event.WaveSawtooth, 0), 1e-9)
	assert.InDelta(t, 1.0, shape(event.WaveSine, 0.25), 1e-9)
}

func TestSynthCapsVoices(t *testing.T) {
	s := NewSynth(int(testRate), 0.5, zaptest.NewLogger(t))
	for i := 0; i < MaxVoices+10; i++ {
		s.PlayCue(world.CueExplosion)
	}
	assert.Equal(t, MaxVoices, s.Voices())

	// The mixer never ends; stream past the longest voice.
	buf := make([][2]float64, 256)
	for i := 0; i < 20; i++ {
		s.mixer.Stream(buf)
	}
	assert.Zero(t, s.Voices())
}
