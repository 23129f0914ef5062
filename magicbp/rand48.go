package magicbp

import (
	"encoding/binary"
	"io"
)

// drand48 family constants.
const (
	rand48Multiplier = 0x5DEECE66D
	rand48Addend     = 0xB
	rand48Mask       = 1<<48 - 1

	// low 16 bits of the state set by Seed.
	rand48SeedLow = 0x330E

	// rand48DefaultState is the state of an unseeded generator.
	rand48DefaultState = 0x1234ABCD330E
)

var _ io.Reader = (*Rand48)(nil)

// Rand48 is the drand48 family linear congruential generator.
//
// Seeded with the same value it produces the same sequence as
// srand48(3)/mrand48(3).
// The zero value is ready to use, and behaves like a generator that was never
// seeded.
//
// It's not safe for concurrent use.
type Rand48 struct {
	state  uint64
	seeded bool
}

// NewRand48 creates a Rand48 seeded with seed.
func NewRand48(seed int64) *Rand48 {
	r := new(Rand48)
	r.Seed(seed)
	return r
}

// Seed sets the state of the generator like srand48.
//
// Only the low 32 bits of seed are used.
func (r *Rand48) Seed(seed int64) {
	r.state = uint64(uint32(seed))<<16 | rand48SeedLow
	r.seeded = true
}

func (r *Rand48) next() uint64 {
	if !r.seeded {
		r.state = rand48DefaultState
		r.seeded = true
	}
	r.state = (r.state*rand48Multiplier + rand48Addend) & rand48Mask
	return r.state
}

// Mrand48 advances the generator and returns the high 32 bits of the new
// state as a signed integer, uniformly distributed over [-2^31, 2^31).
func (r *Rand48) Mrand48() int32 {
	return int32(r.next() >> 16)
}

// Uint32 returns Mrand48 as an unsigned 32-bit value.
func (r *Rand48) Uint32() uint32 {
	return uint32(r.Mrand48())
}

// Read fills p with values from the generator, 4 big endian bytes per draw.
//
// A partially used draw, when len(p) is not a multiple of 4, is discarded.
// It always returns len(p) and nil error.
func (r *Rand48) Read(p []byte) (int, error) {
	var buf [4]byte
	n := 0
	for n < len(p) {
		binary.BigEndian.PutUint32(buf[:], r.Uint32())
		n += copy(p[n:], buf[:])
	}
	return n, nil
}
