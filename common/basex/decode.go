package basex

// Decode converts a string of symbols of alpha back to bytes.
//
// Every leading zero symbol becomes one zero byte. The first symbol which is
// not part of alpha aborts decoding with a *DecodeError, nothing decoded so
// far is returned.
func Decode(alpha Alphabet, input string) ([]byte, error) {
	if len(input) == 0 {
		return []byte{}, nil
	}
	base := uint64(alpha.Base())

	// little-endian accumulator
	acc := make([]byte, 1, len(input))
	var (
		symbols int
		leaders int
		leading = true
	)
	for pos := 0; pos < len(input); {
		digit, width, ok := alpha.ReadSymbol(input[pos:])
		if !ok {
			return nil, newDecodeError(input, pos, width, symbols)
		}
		if leading {
			if digit == 0 {
				leaders++
			} else {
				leading = false
			}
		}
		carry := uint64(digit)
		for i, b := range acc {
			carry += base * uint64(b)
			acc[i] = byte(carry)
			carry >>= 8
		}
		for carry > 0 {
			acc = append(acc, byte(carry))
			carry >>= 8
		}
		pos += width
		symbols++
	}

	// The last symbol is left to the numeric part, as in Encode.
	if leaders > symbols-1 {
		leaders = symbols - 1
	}
	for i := 0; i < leaders; i++ {
		acc = append(acc, 0)
	}
	reverseBytes(acc)
	return acc, nil
}

// reverseBytes reverses data in place.
func reverseBytes(data []byte) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}
