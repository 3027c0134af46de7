package basex

// Encode converts input to a string of symbols of alpha.
//
// Every leading zero byte is written as one zero symbol, so n zero bytes
// encode to n zero symbols. An empty input gives an empty string.
func Encode(alpha Alphabet, input []byte) string {
	return string(EncodeToBytes(alpha, input))
}

// EncodeToBytes is like Encode but returns the encoded symbols as bytes.
func EncodeToBytes(alpha Alphabet, input []byte) []byte {
	if len(input) == 0 {
		return []byte{}
	}
	digits := batchDigits(NewBigUint(input), alpha.Base())

	// The last byte is left to the numeric part, which always produces at
	// least one digit.
	for i := 0; i < len(input)-1 && input[i] == 0; i++ {
		digits = append(digits, 0)
	}

	out := make([]byte, 0, len(digits))
	for i := len(digits) - 1; i >= 0; i-- {
		out = alpha.AppendSymbol(out, digits[i])
	}
	return out
}

// batchDigits returns the digits of n in base, least significant first. It
// divides by the largest word sized power of base and splits each remainder
// into single digits with native arithmetic. n is consumed.
func batchDigits(n *BigUint, base int) []int {
	pow, exp := bigPower(base)
	b := uint32(base)
	digits := make([]int, 0, len(n.words)*wordBytes*2)
	for {
		rem := n.DivRem(pow)
		if n.IsZero() {
			for rem > 0 {
				digits = append(digits, int(rem%b))
				rem /= b
			}
			break
		}
		for i := 0; i < exp; i++ {
			digits = append(digits, int(rem%b))
			rem /= b
		}
	}
	if len(digits) == 0 {
		digits = append(digits, 0)
	}
	return digits
}

// naiveDigits produces the same digits as batchDigits with one division of
// n per digit.
func naiveDigits(n *BigUint, base int) []int {
	var digits []int
	for {
		digits = append(digits, int(n.DivRem(uint32(base))))
		if n.IsZero() {
			return digits
		}
	}
}
