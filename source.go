package isaac64

import "math/rand"

// Source adapts the generator to math/rand. It inherits the generator's
// draw order, so two Sources with the same seed produce the same stream.
type Source struct {
	t *T
}

var (
	_ rand.Source   = (*Source)(nil)
	_ rand.Source64 = (*Source)(nil)
)

// NewSource returns a rand.Source64 drawing from a generator seeded with
// the little-endian encoding of seed.
func NewSource(seed int64) *Source {
	return &Source{t: New(SeedUint64(uint64(seed)))}
}

// Seed discards the current state and starts over from seed.
func (s *Source) Seed(seed int64) {
	s.t = New(SeedUint64(uint64(seed)))
}

// Uint64 returns the next value in the stream.
func (s *Source) Uint64() uint64 { return s.t.Uint64() }

// Int63 returns the next value in the stream with the high bit dropped.
func (s *Source) Int63() int64 { return int64(s.t.Uint64() >> 1) }
