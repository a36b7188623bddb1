package model

import (
	"math/rand/v2"
	"time"
)

// RandomSource yields the initial state of each cell.
type RandomSource interface {
	Bool() bool
}

// BoolFunc adapts a plain function to a RandomSource.
type BoolFunc func() bool

// Bool calls f.
func (f BoolFunc) Bool() bool { return f() }

// RNG is a deterministic RandomSource backed by a PCG generator.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

func newTimeRNG() *RNG {
	return NewRNG(time.Now().UnixNano())
}

// Bool returns an unbiased random boolean.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}
