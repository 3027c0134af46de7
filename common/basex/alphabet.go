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

package basex

import (
	"fmt"
	"unicode/utf8"
)

// invalidIndex marks a byte which is not part of a ByteAlphabet.
const invalidIndex int16 = -1

// Alphabet is an ordered set of distinct symbols. The position of a symbol is
// its digit value, so the number of symbols is the radix of the encoding.
//
// Implementations must be immutable after construction. Encode and Decode
// only read from them, so one Alphabet may be shared by any number of
// goroutines.
type Alphabet interface {
	// Base returns the number of symbols. It is at least 2.
	Base() int

	// AppendSymbol appends the encoded symbol of digit to dst. The digit is
	// always in [0, Base()).
	AppendSymbol(dst []byte, digit int) []byte

	// ReadSymbol parses the symbol at the start of s. It returns the digit
	// of that symbol and its width in bytes. ok is false if the leading
	// symbol does not belong to the alphabet.
	ReadSymbol(s string) (digit int, width int, ok bool)
}

// ByteAlphabet is an alphabet of single byte symbols. Index lookup goes
// through a dense 256 entry table.
type ByteAlphabet struct {
	symbols []byte
	lookup  [256]int16
}

// NewByteAlphabet builds a ByteAlphabet from symbols. Any byte value may be
// used as a symbol. It panics if there are less than 2 symbols or if a
// symbol is repeated.
func NewByteAlphabet(symbols []byte) *ByteAlphabet {
	if len(symbols) < 2 {
		panic(fmt.Sprintf("basex: alphabet needs at least 2 symbols, got %d", len(symbols)))
	}
	if len(symbols) > 256 {
		panic(fmt.Sprintf("basex: byte alphabet can't have more than 256 symbols, got %d", len(symbols)))
	}
	a := &ByteAlphabet{symbols: make([]byte, len(symbols))}
	copy(a.symbols, symbols)
	for i := range a.lookup {
		a.lookup[i] = invalidIndex
	}
	for i, b := range a.symbols {
		if a.lookup[b] != invalidIndex {
			panic(fmt.Sprintf("basex: duplicate symbol %q at index %d and %d", b, a.lookup[b], i))
		}
		a.lookup[b] = int16(i)
	}
	return a
}

// NewByteAlphabetWithTable builds a ByteAlphabet from symbols and a
// precomputed reverse table, as returned by LookupTable. The table must
// describe exactly the given symbols.
func NewByteAlphabetWithTable(symbols []byte, table [256]int16) *ByteAlphabet {
	a := NewByteAlphabet(symbols)
	if a.lookup != table {
		panic("basex: lookup table does not match the alphabet symbols")
	}
	return a
}

func (a *ByteAlphabet) Base() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol of digit index.
func (a *ByteAlphabet) SymbolAt(index int) byte {
	return a.symbols[index]
}

// IndexOf returns the digit of symbol b, or false if b is not in the alphabet.
func (a *ByteAlphabet) IndexOf(b byte) (int, bool) {
	i := a.lookup[b]
	if i == invalidIndex {
		return 0, false
	}
	return int(i), true
}

// Symbols returns a copy of the symbols in digit order.
func (a *ByteAlphabet) Symbols() []byte {
	return append([]byte(nil), a.symbols...)
}

// LookupTable returns a copy of the reverse table. Entries of bytes outside
// the alphabet are -1.
func (a *ByteAlphabet) LookupTable() [256]int16 {
	return a.lookup
}

func (a *ByteAlphabet) AppendSymbol(dst []byte, digit int) []byte {
	return append(dst, a.symbols[digit])
}

func (a *ByteAlphabet) ReadSymbol(s string) (int, int, bool) {
	i := a.lookup[s[0]]
	if i == invalidIndex {
		return 0, 1, false
	}
	return int(i), 1, true
}

func (a *ByteAlphabet) String() string {
	return string(a.symbols)
}

// RuneAlphabet is an alphabet of Unicode code points. Encoded strings are
// UTF-8.
type RuneAlphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewRuneAlphabet builds a RuneAlphabet from symbols. It panics if there are
// less than 2 symbols, if a symbol is repeated or if a symbol is not a valid
// Unicode scalar value.
func NewRuneAlphabet(symbols []rune) *RuneAlphabet {
	if len(symbols) < 2 {
		panic(fmt.Sprintf("basex: alphabet needs at least 2 symbols, got %d", len(symbols)))
	}
	a := &RuneAlphabet{
		symbols: make([]rune, len(symbols)),
		index:   make(map[rune]int, len(symbols)),
	}
	copy(a.symbols, symbols)
	for i, r := range a.symbols {
		if !utf8.ValidRune(r) || r == utf8.RuneError {
			panic(fmt.Sprintf("basex: invalid symbol %U at index %d", r, i))
		}
		if j, ok := a.index[r]; ok {
			panic(fmt.Sprintf("basex: duplicate symbol %q at index %d and %d", r, j, i))
		}
		a.index[r] = i
	}
	return a
}

func (a *RuneAlphabet) Base() int {
	return len(a.symbols)
}

// SymbolAt returns the symbol of digit index.
func (a *RuneAlphabet) SymbolAt(index int) rune {
	return a.symbols[index]
}

// IndexOf returns the digit of symbol r, or false if r is not in the alphabet.
func (a *RuneAlphabet) IndexOf(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

// Symbols returns a copy of the symbols in digit order.
func (a *RuneAlphabet) Symbols() []rune {
	return append([]rune(nil), a.symbols...)
}

func (a *RuneAlphabet) AppendSymbol(dst []byte, digit int) []byte {
	return utf8.AppendRune(dst, a.symbols[digit])
}

func (a *RuneAlphabet) ReadSymbol(s string) (int, int, bool) {
	r, width := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, width, false
	}
	i, ok := a.index[r]
	return i, width, ok
}

func (a *RuneAlphabet) String() string {
	return string(a.symbols)
}

// NewAlphabet builds an alphabet from the symbols of s. Pure ASCII strings
// give a ByteAlphabet, anything else a RuneAlphabet. Both forms encode and
// decode identically for ASCII symbols.
func NewAlphabet(s string) Alphabet {
	if isASCII(s) {
		return NewByteAlphabet([]byte(s))
	}
	if !utf8.ValidString(s) {
		panic(fmt.Sprintf("basex: alphabet %q is not valid UTF-8", s))
	}
	return NewRuneAlphabet([]rune(s))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
