package store

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAlphabetNotFound = errors.New("alphabet not found")
	ErrPresetReadOnly   = errors.New("preset alphabets can't be changed")
	ErrInvalidName      = errors.New("alphabet name must be non empty and free of white space")
)

// AlphabetError describes why a symbol string can't be used as an alphabet.
type AlphabetError struct {
	Base       int      // number of symbols found
	Duplicates []string // repeated symbols, in order of first repetition
	Invalid    string   // reason for a malformed symbol string
}

func (err *AlphabetError) Error() string {
	switch {
	case err.Invalid != "":
		return "invalid alphabet: " + err.Invalid
	case len(err.Duplicates) > 0:
		quoted := make([]string, len(err.Duplicates))
		for i, d := range err.Duplicates {
			quoted[i] = fmt.Sprintf("%q", d)
		}
		return fmt.Sprintf("invalid alphabet: duplicate symbols %s", strings.Join(quoted, ", "))
	default:
		return fmt.Sprintf("invalid alphabet: needs at least 2 symbols, got %d", err.Base)
	}
}
