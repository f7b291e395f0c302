// Package rng abstracts the uniform random draws used by the simulation so
// tests can replace them with fixed sequences.
package rng

import (
	"math/rand"
	"time"
)

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// NewSource returns a math/rand backed source. A zero seed picks one from
// the clock.
func NewSource(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// Range returns a draw in [lo, hi).
func Range(src Source, lo, hi float64) float64 {
	return src.Float64()*(hi-lo) + lo
}

// Intn returns a draw in [0, n). n <= 0 yields 0.
func Intn(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	i := int(src.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// Shuffle permutes n elements with Fisher-Yates using src.
func Shuffle(src Source, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Intn(src, i+1)
		swap(i, j)
	}
}

// Sequence replays a fixed list of draws, cycling when exhausted. An empty
// sequence always yields 0.
type Sequence struct {
	values []float64
	pos    int
}

func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: values}
}

func (s *Sequence) Float64() float64 {
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v
}

// Draws reports how many values have been consumed.
func (s *Sequence) Draws() int { return s.pos }
