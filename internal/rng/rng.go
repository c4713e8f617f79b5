// Package rng supplies the random draws used by the encounter engine.
// Production code injects a seeded Source so fights can be replayed; tests
// inject Scripted to force specific rolls.
package rng

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source is the random provider consumed by the engine and the hand builder.
type Source interface {
	// Int returns a value in [0, n). It returns 0 when n <= 0.
	Int(n int) int
	// Shuffle permutes n elements through swap.
	Shuffle(n int, swap func(i, j int))
}

// Seeded is a deterministic Source backed by math/rand.
type Seeded struct {
	r *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed int64) *Seeded {
	return &Seeded{r: rand.New(rand.NewSource(seed))}
}

func (s *Seeded) Int(n int) int {
	if n <= 0 {
		return 0
	}
	return s.r.Intn(n)
}

func (s *Seeded) Shuffle(n int, swap func(i, j int)) {
	if n < 2 {
		return
	}
	s.r.Shuffle(n, swap)
}

// NewSeed generates a high-entropy seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// Scripted replays queued draws. Each Int call consumes one value and
// reduces it modulo n; an exhausted queue yields 0. Shuffle leaves the order
// untouched.
type Scripted struct {
	Draws []int
	calls int
}

// NewScripted returns a Scripted source that will return draws in order.
func NewScripted(draws ...int) *Scripted {
	return &Scripted{Draws: draws}
}

func (s *Scripted) Int(n int) int {
	if n <= 0 {
		return 0
	}
	if s.calls >= len(s.Draws) {
		s.calls++
		return 0
	}
	v := s.Draws[s.calls]
	s.calls++
	if v < 0 {
		v = -v
	}
	return v % n
}

func (s *Scripted) Shuffle(int, func(i, j int)) {}

// Calls reports how many Int draws were consumed.
func (s *Scripted) Calls() int { return s.calls }
