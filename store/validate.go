package store

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"gopkg.in/fatih/set.v0"
)

// ValidateSymbols checks that symbols can be turned into an alphabet: valid
// UTF-8, at least two symbols and no symbol twice. Every repeated symbol is
// reported, not only the first one.
func ValidateSymbols(symbols string) error {
	if !utf8.ValidString(symbols) {
		return &AlphabetError{Invalid: "symbols are not valid UTF-8"}
	}
	if strings.ContainsRune(symbols, utf8.RuneError) {
		return &AlphabetError{Invalid: "symbols contain U+FFFD"}
	}

	seen := set.New(set.NonThreadSafe)
	reported := set.New(set.NonThreadSafe)
	var duplicates []string
	for _, r := range symbols {
		if seen.Has(r) {
			if !reported.Has(r) {
				reported.Add(r)
				duplicates = append(duplicates, string(r))
			}
			continue
		}
		seen.Add(r)
	}
	if len(duplicates) > 0 {
		return &AlphabetError{Base: seen.Size(), Duplicates: duplicates}
	}
	if seen.Size() < 2 {
		return &AlphabetError{Base: seen.Size()}
	}
	return nil
}

// ValidateName checks an alphabet name.
func ValidateName(name string) error {
	if name == "" || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return ErrInvalidName
	}
	return nil
}

// NewAlphabet validates symbols and builds the alphabet.
func NewAlphabet(symbols string) (basex.Alphabet, error) {
	if err := ValidateSymbols(symbols); err != nil {
		return nil, err
	}
	return basex.NewAlphabet(symbols), nil
}
