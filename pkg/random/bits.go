package random

import "math"

// DefaultSeed seeds the default bit source when no seed is given.
const DefaultSeed = 1

// BitGenerator produces one fair, independent boolean per call.
type BitGenerator interface {
	Bit() bool
}

// lcg constants for the minimal standard generator
// x' = x * 48271 mod (2^31 - 1).
const (
	lcgMultiplier = 48271
	lcgModulus    = 1<<31 - 1
	lcgMin        = 1
	lcgMax        = lcgModulus - 1
)

// Source is the default [BitGenerator]. Each bit compares a 53-bit uniform
// double, assembled from two draws of a minimal standard linear congruential
// generator, against one half. The stream is identical on every platform.
//
// A Source is not safe for concurrent use.
type Source struct {
	state uint64
}

// New returns a Source seeded with seed. Seeds are reduced modulo 2^31-1 and a
// zero residue is replaced by 1.
func New(seed uint32) *Source {
	s := uint64(seed) % lcgModulus
	if s == 0 {
		s = 1
	}
	return &Source{state: s}
}

// next advances the generator and returns its new state.
func (s *Source) next() uint64 {
	s.state = s.state * lcgMultiplier % lcgModulus
	return s.state
}

// Float64 returns a uniform value in [0, 1).
func (s *Source) Float64() float64 {
	const r = float64(lcgMax - lcgMin + 1)
	lo := float64(s.next() - lcgMin)
	hi := float64(float64(s.next()-lcgMin) * r)
	u := (lo + hi) / (r * r)
	if u >= 1 {
		u = math.Nextafter(1, 0)
	}
	return u
}

// Bit returns true with probability one half.
func (s *Source) Bit() bool {
	return s.Float64() < 0.5
}

var _ BitGenerator = (*Source)(nil)
