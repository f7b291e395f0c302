package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmitIsDeliveredOnFlush(t *testing.T) {
	b := NewBus()
	var got []Cue
	Subscribe(b, func(c Cue) { got = append(got, c) })

	Emit(b, Cue{Kind: CueFire, Pitch: 880})
	assert.Empty(t, got, "nothing is delivered before a flush")
	assert.Equal(t, 1, Pending[Cue](b))

	b.Flush()
	assert.Equal(t, []Cue{{Kind: CueFire, Pitch: 880}}, got)

	b.Flush()
	assert.Len(t, got, 1, "front buffer is cleared after dispatch")
}

func TestEventsEmittedDuringDispatchWaitForNextFlush(t *testing.T) {
	b := NewBus()
	var cleared, shops int
	Subscribe(b, func(WaveCleared) {
		cleared++
		Emit(b, ShopOpened{Level: 1})
	})
	Subscribe(b, func(ShopOpened) { shops++ })

	Emit(b, WaveCleared{Level: 1})
	b.Flush()
	assert.Equal(t, 1, cleared)
	assert.Zero(t, shops)

	b.Flush()
	assert.Equal(t, 1, shops)
}

func TestUnsubscribedEventsAreDropped(t *testing.T) {
	b := NewBus()
	Emit(b, SessionWon{Score: 10})
	assert.NotPanics(t, b.Flush)
}

func TestCueKindString(t *testing.T) {
	assert.Equal(t, "beat", CueBeat.String())
	assert.Equal(t, "unknown", CueKind(99).String())
}
