package basex

import "math/bits"

const wordBytes = 4

// BigUint is an unsigned integer of arbitrary size, stored as 32 bit words
// with the most significant word first. It only supports what a base
// conversion needs: building from big-endian bytes, dividing by a small
// number and testing for zero.
type BigUint struct {
	words []uint32
}

// NewBigUint interprets b as a big-endian number. When len(b) is not a
// multiple of 4 the first word is zero padded on its high side, so the value
// is preserved exactly.
func NewBigUint(b []byte) *BigUint {
	head := len(b) % wordBytes
	words := make([]uint32, 0, len(b)/wordBytes+1)
	if head > 0 {
		var w uint32
		for _, c := range b[:head] {
			w = w<<8 | uint32(c)
		}
		words = append(words, w)
		b = b[head:]
	}
	for i := 0; i < len(b); i += wordBytes {
		words = append(words, uint32(b[i])<<24|uint32(b[i+1])<<16|uint32(b[i+2])<<8|uint32(b[i+3]))
	}
	return &BigUint{words: words}
}

// DivRem divides the number by divisor in place and returns the remainder.
// It panics if divisor is zero.
func (n *BigUint) DivRem(divisor uint32) uint32 {
	if divisor == 0 {
		panic("basex: division by zero")
	}
	d := uint64(divisor)
	var carry uint64
	for i, w := range n.words {
		carry = carry<<32 | uint64(w)
		n.words[i] = uint32(carry / d)
		carry %= d
	}
	return uint32(carry)
}

// IsZero reports whether every word is zero.
func (n *BigUint) IsZero() bool {
	for _, w := range n.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Words returns a copy of the words, most significant first.
func (n *BigUint) Words() []uint32 {
	words := make([]uint32, len(n.words))
	copy(words, n.words)
	return words
}

// bigPower returns a power of base that fits in one word, together with its
// exponent. The exponent is derived from the bit length of base, so
// base^exp < 2^(len*exp) <= 2^32. Each division by the power yields exp
// digits at once.
func bigPower(base int) (uint32, int) {
	width := bits.UintSize - bits.LeadingZeros(uint(base))
	exp := 32 / width
	if exp < 1 {
		exp = 1
	}
	pow := uint64(1)
	for i := 0; i < exp; i++ {
		pow *= uint64(base)
	}
	return uint32(pow), exp
}
