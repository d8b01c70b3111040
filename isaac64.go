// Package isaac64 implements the ISAAC64 pseudo-random number generator
// with the seeding convention used by seeded-gameplay systems: integer
// seeds enter as little-endian bytes, and the output sequence is
// bit-compatible with the reference lineage, so ports in any language can
// be validated against the same vectors.
package isaac64

import (
	"encoding/binary"

	"github.com/zeebo/isaac64/internal/debug"
	"github.com/zeebo/isaac64/internal/mon"
)

const (
	szLog  = 8
	sz     = 1 << szLog // 256 words of pool and of results
	szMask = sz - 1

	// seedMax caps how many seed bytes a single reseed folds in. Bytes
	// past it are silently discarded, not an error.
	seedMax = 1 << 10

	// golden is the golden-ratio constant the scrambler starts from.
	golden = 0x9E3779B97F4A7C13
)

// T is an ISAAC64 generator. It is not safe for concurrent use; callers
// that want parallel streams own one independently seeded T per stream.
// The zero value must be seeded with Reseed before use; New does both.
type T struct {
	n int
	r [sz]uint64
	m [sz]uint64
	a uint64
	b uint64
	c uint64
}

// New returns a generator initialized from seed. Only the first 1024
// seed bytes are used. A nil or empty seed is legal and produces the
// fixed default-seeded state.
func New(seed []byte) *T {
	t := new(T)
	t.Reseed(seed)
	return t
}

// Reseed folds seed bytes into the generator and regenerates its pool.
// The bytes are XORed into the current result words rather than
// replacing them, so reseeding a used generator is not equivalent to
// constructing a fresh one. That behavior is part of the sequence
// contract; do not "fix" it.
func (t *T) Reseed(seed []byte) {
	if len(seed) > seedMax {
		seed = seed[:seedMax]
	}

	// Fold the seed into r as little-endian 64-bit words. A trailing
	// partial word takes only the bytes present, high bytes zero.
	full := len(seed) &^ 7
	for off := 0; off < full; off += 8 {
		t.r[off>>3] ^= binary.LittleEndian.Uint64(seed[off:])
	}
	if full < len(seed) {
		var w uint64
		for j, b := range seed[full:] {
			w |= uint64(b) << (uint(j) << 3)
		}
		t.r[full>>3] ^= w
	}

	// Pre-mix the scramble buffer before any seed-dependent data
	// touches it, to keep weak seeds from producing weak pools.
	var x [8]uint64
	for j := range x {
		x[j] = golden
	}
	for j := 0; j < 4; j++ {
		mix(&x)
	}

	// Two derivation passes: seed material via r, then m over itself,
	// so every pool word depends on every seed byte and pool word.
	for i := 0; i < sz; i += 8 {
		for j := range x {
			x[j] += t.r[i+j]
		}
		mix(&x)
		copy(t.m[i:i+8], x[:])
	}
	for i := 0; i < sz; i += 8 {
		for j := range x {
			x[j] += t.m[i+j]
		}
		mix(&x)
		copy(t.m[i:i+8], x[:])
	}

	t.update()
}

// Uint64 returns the next value in the stream, regenerating the result
// buffer when it is exhausted. Results are consumed from index 255
// downward; the order is part of the sequence contract.
func (t *T) Uint64() uint64 {
	if t.n == 0 {
		t.update()
	}
	debug.Assert("draw from a filled buffer", func() bool { return t.n > 0 })
	t.n--
	return t.r[t.n]
}

var updateThunk mon.Thunk // timing info for result buffer refills

// update regenerates all 256 result words from the pool in one pass and
// advances the round counter. The reference lineage interleaves four
// accumulator transforms by post-incrementing its loop variable; here
// each 4-word group is an explicit unrolled sequence of the four
// sub-steps, in order.
func (t *T) update() {
	timer := updateThunk.Start()

	t.c++
	a, b := t.a, t.b+t.c
	m, r := &t.m, &t.r

	step := func(i int) {
		x := m[i]
		a += m[(i+sz/2)&szMask]
		y := m[lowerBits(x)] + a + b
		m[i] = y
		b = m[upperBits(y)] + x
		r[i] = b
	}

	for i := 0; i < sz; i += 4 {
		a = ^(a ^ a<<21)
		step(i)
		a ^= a >> 5
		step(i + 1)
		a ^= a << 12
		step(i + 2)
		a ^= a >> 33
		step(i + 3)
	}

	t.a, t.b = a, b
	t.n = sz

	timer.Stop()
}

// lowerBits selects a pool slot from the low bits of x, skipping the 3
// bits that would address bytes within a word.
func lowerBits(x uint64) int { return int(x>>3) & szMask }

// upperBits selects a pool slot from the bits of y just above the ones
// lowerBits consumes.
func upperBits(y uint64) int { return int(y>>(szLog+3)) & szMask }

// shifts are the fixed scramble distances. Even steps shift right, odd
// steps shift left.
var shifts = [8]uint{9, 9, 23, 15, 14, 20, 17, 14}

// mix diffuses the 8-word seeding buffer in place. Used only while
// (re)seeding, never on the draw path.
func mix(x *[8]uint64) {
	for i := 0; i < 8; i += 2 {
		x[i] -= x[(i+4)&7]
		x[(i+5)&7] ^= x[(i+7)&7] >> shifts[i]
		x[(i+7)&7] += x[i]

		x[i+1] -= x[(i+5)&7]
		x[(i+6)&7] ^= x[(i+8)&7] << shifts[i+1]
		x[(i+8)&7] += x[i+1]
	}
}
