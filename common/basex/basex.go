// Copyright 2018 The lemochain-core Authors
// This file is part of the lemochain-core library.
//
// The lemochain-core library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The lemochain-core library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the lemochain-core library. If not, see <http://www.gnu.org/licenses/>.

/*
Package basex encodes byte slices in an arbitrary radix. The radix is given by
an alphabet: an ordered set of at least two distinct symbols, where the
position of a symbol is the digit it stands for. Binary, hex, base58 and
base62 are all instances of the same scheme.

Encoding Rules

The input bytes are read as one big-endian unsigned number, which is written
in the radix of the alphabet, most significant digit first.

Leading zero bytes carry no numeric value, so each of them is written as one
extra zero symbol (the first symbol of the alphabet). A slice of n zero bytes
encodes to n zero symbols. Decoding reverses this: every leading zero symbol
becomes a zero byte.

The empty slice encodes as the empty string and the empty string decodes to
the empty slice.

Alphabets made of single bytes use a table lookup, alphabets of Unicode code
points use a map and produce UTF-8. For ASCII symbols the two forms give the
same result.
*/
package basex

import (
	"errors"
	"fmt"
)

// ErrInvalidSymbol is matched by every *DecodeError with errors.Is.
var ErrInvalidSymbol = errors.New("symbol not in alphabet")

// DecodeError is returned by Decode when the input contains a symbol which
// is not part of the alphabet.
type DecodeError struct {
	Symbol   string // raw bytes of the offending symbol
	Position int    // index of the symbol in the input, counted in symbols
	Offset   int    // byte offset of the symbol in the input
}

func newDecodeError(input string, offset, width, position int) *DecodeError {
	if width < 1 {
		width = 1
	}
	end := offset + width
	if end > len(input) {
		end = len(input)
	}
	return &DecodeError{Symbol: input[offset:end], Position: position, Offset: offset}
}

func (err *DecodeError) Error() string {
	return fmt.Sprintf("invalid symbol %q at position %d (offset %d)", err.Symbol, err.Position, err.Offset)
}

func (err *DecodeError) Is(target error) bool {
	return target == ErrInvalidSymbol
}

// MustDecode decodes input and panics if it contains an invalid symbol.
func MustDecode(alpha Alphabet, input string) []byte {
	dec, err := Decode(alpha, input)
	if err != nil {
		panic(err)
	}
	return dec
}
