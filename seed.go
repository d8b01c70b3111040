package isaac64

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/cespare/xxhash"
	"github.com/zeebo/errs"
)

// Error is the class that contains all the errors from this package.
var Error = errs.Class("isaac64")

// SeedUint64 encodes v in the little-endian byte order the seeding
// contract requires for machine-word integer seeds. Any other byte
// ordering produces a different, incompatible sequence.
func SeedUint64(v uint64) []byte {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	return buf[:]
}

// SeedString derives seed material from an arbitrary string by hashing
// it. The mapping is stable across runs, but it is a convenience for
// human-supplied seeds, not part of the cross-implementation vector
// contract: only raw bytes and SeedUint64 encodings are.
func SeedString(s string) []byte {
	return SeedUint64(xxhash.Sum64String(s))
}

// ParseSeed interprets s as a decimal or 0x-prefixed hexadecimal
// integer and returns its seed encoding.
func ParseSeed(s string) ([]byte, error) {
	digits, base := s, 10
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits, base = s[2:], 16
	}
	v, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return nil, Error.New("invalid seed %q: %v", s, err)
	}
	return SeedUint64(v), nil
}
