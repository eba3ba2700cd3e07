package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/exp/rand"
)

// Coin flips a fair coin. A Coin is owned by a single goroutine and must not
// be shared between goroutines.
type Coin interface {
	Flip() Outcome
}

// Seeder hands out coins. Implementations are safe for concurrent use.
type Seeder interface {
	// Coin returns the coin for a stream. Distinct streams yield independent
	// coins; the same stream always yields the same flips.
	Coin(stream uint64) Coin
	// Split derives the seeder of an independent sub-computation.
	Split(stream uint64) Seeder
}

// RandomSeeder derives PCG streams from a root seed.
type RandomSeeder struct {
	seed uint64
}

func NewSeeder(seed uint64) RandomSeeder {
	return RandomSeeder{seed: seed}
}

// NewEntropySeeder returns a seeder whose root seed is read from crypto/rand.
func NewEntropySeeder() (RandomSeeder, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return RandomSeeder{}, fmt.Errorf("read random seed: %w", err)
	}
	return NewSeeder(binary.LittleEndian.Uint64(b[:])), nil
}

func (s RandomSeeder) Seed() uint64 {
	return s.seed
}

func (s RandomSeeder) Coin(stream uint64) Coin {
	return &randomCoin{rng: rand.New(rand.NewSource(mix(s.seed, stream)))}
}

func (s RandomSeeder) Split(stream uint64) Seeder {
	return RandomSeeder{seed: mix(^s.seed, stream)}
}

// mix is the splitmix64 finalizer applied to the seed offset by the stream.
func mix(seed, stream uint64) uint64 {
	z := seed + (stream+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

type randomCoin struct {
	rng  *rand.Rand
	bits uint64
	left int
}

// Flip consumes one bit of a buffered 64-bit draw.
func (c *randomCoin) Flip() Outcome {
	if c.left == 0 {
		c.bits = c.rng.Uint64()
		c.left = 64
	}
	o := Outcome(c.bits & 1)
	c.bits >>= 1
	c.left--
	return o
}

// Script replays a fixed sequence of outcomes. Stream n starts at position n
// of the script, so a sequence split into chunks by start index replays the
// script exactly. Every split replays the same script.
type Script []Outcome

func (s Script) Coin(stream uint64) Coin {
	return &scriptedCoin{script: s, pos: int(stream % uint64(max(len(s), 1)))}
}

func (s Script) Split(uint64) Seeder {
	return s
}

type scriptedCoin struct {
	script Script
	pos    int
}

// Flip returns the next scripted outcome, wrapping around at the end. An
// empty script always lands on Tails.
func (c *scriptedCoin) Flip() Outcome {
	if len(c.script) == 0 {
		return Tails
	}
	o := c.script[c.pos]
	c.pos = (c.pos + 1) % len(c.script)
	return o
}
