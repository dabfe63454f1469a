package crypto

import (
	"io"
)

// MT19937 is the 32-bit Mersenne Twister. It is not a cryptographic
// generator; it exists so oracles can be built from a reproducible seed.
type MT19937 struct {
	MT    [n]uint32
	Index int
}

const (
	w = 32
	n = 624
	m = 397
	r = 31
	a = 0x9908B0DF
	u = 11
	d = 0xFFFFFFFF
	s = 7
	b = 0x9D2C5680
	t = 15
	c = 0xEFC60000
	l = 18
	f = 1812433253

	lowerMask uint32 = (1 << r) - 1
	upperMask uint32 = ^lowerMask
)

func NewMT19937() *MT19937 {
	return &MT19937{Index: n + 1}
}

func (src *MT19937) Seed(seed uint32) {
	src.Index = n
	src.MT[0] = seed
	for i := 1; i < n; i++ {
		src.MT[i] = f*(src.MT[i-1]^(src.MT[i-1]>>(w-2))) + uint32(i)
	}
}

func (src *MT19937) Uint32() uint32 {
	if src.Index >= n {
		if src.Index > n {
			panic("generator was never seeded")
		}
		src.twist()
	}

	y := src.MT[src.Index]
	y ^= (y >> u) & d
	y ^= (y << s) & b
	y ^= (y << t) & c
	y ^= y >> l
	src.Index++
	return y
}

func (src *MT19937) twist() {
	for i := 0; i < n; i++ {
		x := src.MT[i]&upperMask + src.MT[(i+1)%n]&lowerMask
		xA := x >> 1
		if x%2 != 0 {
			xA ^= a
		}
		src.MT[i] = src.MT[(i+m)%n] ^ xA
	}
	src.Index = 0
}

type mt19937Reader struct {
	src  MT19937
	w, b uint32
}

// NewMT19937Reader returns a reader yielding the generator's output for
// seed, least significant byte of each word first. Reads never fail.
func NewMT19937Reader(seed uint32) io.Reader {
	src := NewMT19937()
	src.Seed(seed)
	return &mt19937Reader{src: *src}
}

func (mr *mt19937Reader) Read(p []byte) (int, error) {
	for i := range p {
		if mr.b == 0 {
			mr.w = mr.src.Uint32()
			mr.b = 4
		}
		p[i] = byte(mr.w)
		mr.w >>= 8
		mr.b--
	}
	return len(p), nil
}
