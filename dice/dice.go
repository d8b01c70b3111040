// Package dice implements the dual-stream gameplay random number
// generator layered over isaac64. Gameplay-affecting rolls draw from the
// core stream and cosmetic ones from the display stream, so forcing a
// screen redraw can never perturb gameplay randomness.
package dice

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/zeebo/isaac64"
)

// T is a dual-stream gameplay RNG. It is not safe for concurrent use.
type T struct {
	core    *isaac64.T
	display *isaac64.T
	log     zerolog.Logger
}

// New returns a dual-stream RNG with both streams seeded from seed, the
// way the reference lineage seeds core and display separately but with
// one value.
func New(seed uint64) *T {
	return NewDual(seed, seed)
}

// NewDual seeds the gameplay and display streams independently.
func NewDual(coreSeed, displaySeed uint64) *T {
	return &T{
		core:    isaac64.New(isaac64.SeedUint64(coreSeed)),
		display: isaac64.New(isaac64.SeedUint64(displaySeed)),
		log:     zerolog.New(os.Stderr).With().Timestamp().Logger(),
	}
}

// SetLogger redirects the warnings emitted for out-of-range arguments.
// Pass zerolog.Nop() to silence them.
func (t *T) SetLogger(log zerolog.Logger) { t.log = log }

// Rn2 returns a uniform roll in [0, x) on the gameplay stream, or 0 if
// x is not positive.
func (t *T) Rn2(x int) int {
	if x <= 0 {
		t.log.Warn().Int("x", x).Msg("rn2 with non-positive bound")
		return 0
	}
	return int(t.core.Uint64() % uint64(x))
}

// Rn2Display is Rn2 on the display stream.
func (t *T) Rn2Display(x int) int {
	if x <= 0 {
		t.log.Warn().Int("x", x).Msg("rn2 on display with non-positive bound")
		return 0
	}
	return int(t.display.Uint64() % uint64(x))
}

// Rnd returns a uniform roll in [1, x], or 1 if x is not positive.
func (t *T) Rnd(x int) int {
	if x <= 0 {
		t.log.Warn().Int("x", x).Msg("rnd with non-positive bound")
		return 1
	}
	return int(t.core.Uint64()%uint64(x)) + 1
}

// D rolls n x-sided dice and returns their sum, in [n, n*x]. Invalid
// arguments yield 1.
func (t *T) D(n, x int) int {
	if x < 0 || n < 0 || (x == 0 && n != 0) {
		t.log.Warn().Int("n", n).Int("x", x).Msg("d with invalid dice")
		return 1
	}
	tmp := n
	for i := 0; i < n; i++ {
		tmp += int(t.core.Uint64() % uint64(x))
	}
	return tmp
}

// Rnl returns a luck-adjusted roll in [0, x): good luck biases toward
// 0, bad luck toward x-1.
func (t *T) Rnl(x, luck int) int {
	if x <= 0 {
		t.log.Warn().Int("x", x).Msg("rnl with non-positive bound")
		return 0
	}

	adjustment := luck
	if x <= 15 {
		// for small ranges, use luck/3 rounded away from zero
		adjustment = (abs(luck) + 1) / 3 * sign(luck)
	}

	i := t.Rn2(x)
	if adjustment != 0 && t.Rn2(37+abs(adjustment)) != 0 {
		i -= adjustment
		if i < 0 {
			i = 0
		} else if i >= x {
			i = x - 1
		}
	}
	return i
}

// Rne returns an experience-scaled roll in [1, max(level/3, 5)]: it
// keeps incrementing while 1-in-x rolls keep succeeding.
func (t *T) Rne(x, level int) int {
	utmp := 5
	if level >= 15 {
		utmp = level / 3
	}
	tmp := 1
	for tmp < utmp && t.Rn2(x) == 0 {
		tmp++
	}
	return tmp
}

// Rnz returns i scaled by a heavy-tailed random factor, used for
// timeouts in the reference lineage. It draws on the gameplay stream.
func (t *T) Rnz(i int) int {
	x := int64(i)
	tmp := int64(1000 + t.Rn2(1000))
	tmp *= int64(t.Rne(4, 1))
	if t.Rn2(2) != 0 {
		x = x * tmp / 1000
	} else {
		x = x * 1000 / tmp
	}
	return int(x)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}
