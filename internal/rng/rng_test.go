package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceCycles(t *testing.T) {
	s := NewSequence(0.1, 0.9)

	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 0.9, s.Float64())
	assert.Equal(t, 0.1, s.Float64())
	assert.Equal(t, 3, s.Draws())
}

func TestEmptySequenceYieldsZero(t *testing.T) {
	assert.Zero(t, NewSequence().Float64())
}

func TestRangeAndIntn(t *testing.T) {
	s := NewSequence(0.5, 0.999999, 0)

	assert.InDelta(t, 1.8, Range(s, 1.4, 2.2), 1e-9)
	assert.Equal(t, 2, Intn(s, 3))
	assert.Equal(t, 0, Intn(s, 3))
	assert.Equal(t, 0, Intn(s, 0))
}

func TestShufflePermutes(t *testing.T) {
	items := []int{1, 2, 3, 4}
	Shuffle(NewSequence(0), len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, items)
	assert.Equal(t, []int{2, 3, 4, 1}, items)
}

func TestNewSourceRange(t *testing.T) {
	src := NewSource(42)
	for i := 0; i < 100; i++ {
		v := src.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}
