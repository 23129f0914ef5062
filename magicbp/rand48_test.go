package magicbp_test

import (
	"encoding/binary"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"

	"github.com/reddit/pppmagic/magicbp"
)

func draws(r *magicbp.Rand48, n int) []uint32 {
	ret := make([]uint32, n)
	for i := range ret {
		ret[i] = r.Uint32()
	}
	return ret
}

func TestRand48Sequence(t *testing.T) {
	for _, c := range []struct {
		label string
		r     func() *magicbp.Rand48
		want  []uint32
	}{
		{
			label: "seed-42",
			r: func() *magicbp.Rand48 {
				return magicbp.NewRand48(42)
			},
			// Same as srand48(42) followed by mrand48 calls from glibc.
			want: []uint32{3197710526, 1471891643, 477107655, 1813932012, 348369827},
		},
		{
			label: "seed-negative",
			r: func() *magicbp.Rand48 {
				return magicbp.NewRand48(-7)
			},
			want: []uint32{323032545, 3512289954, 3982520098},
		},
		{
			label: "unseeded",
			r: func() *magicbp.Rand48 {
				return new(magicbp.Rand48)
			},
			want: []uint32{1702803237, 3609857174},
		},
	} {
		t.Run(c.label, func(t *testing.T) {
			// Run twice to make sure it's reproducible.
			for i := 0; i < 2; i++ {
				got := draws(c.r(), len(c.want))
				if diff := cmp.Diff(got, c.want); diff != "" {
					t.Errorf("Sequence mismatch on run #%d (-got +want):\n%s", i, diff)
				}
			}
		})
	}
}

func TestRand48Mrand48(t *testing.T) {
	a := magicbp.NewRand48(42)
	b := magicbp.NewRand48(42)
	for i := 0; i < 10; i++ {
		signed := a.Mrand48()
		unsigned := b.Uint32()
		if uint32(signed) != unsigned {
			t.Errorf("#%d: Mrand48 returned %d, Uint32 returned %d", i, signed, unsigned)
		}
	}
}

func TestRand48SeedLow32Bits(t *testing.T) {
	f := func(seed uint32, high uint32) bool {
		a := magicbp.NewRand48(int64(seed))
		b := magicbp.NewRand48(int64(seed) | int64(high)<<32)
		return a.Uint32() == b.Uint32()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestRand48Reseed(t *testing.T) {
	r := magicbp.NewRand48(1)
	r.Uint32()
	r.Seed(42)
	if got, want := r.Uint32(), uint32(3197710526); got != want {
		t.Errorf("Expected %d after reseeding, got %d", want, got)
	}
}

func TestRand48Read(t *testing.T) {
	const size = 10
	buf := make([]byte, size)
	n, err := magicbp.NewRand48(42).Read(buf)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if n != size {
		t.Fatalf("Expected Read to return %d, got %d", size, n)
	}

	want := make([]byte, 12)
	for i, v := range draws(magicbp.NewRand48(42), 3) {
		binary.BigEndian.PutUint32(want[i*4:], v)
	}
	if diff := cmp.Diff(buf, want[:size]); diff != "" {
		t.Errorf("Read bytes mismatch (-got +want):\n%s", diff)
	}
}
