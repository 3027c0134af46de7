package store

import (
	"testing"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/stretchr/testify/assert"
)

func newTestRegistry(t *testing.T) *Registry {
	r, err := NewRegistry(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRegistry_PutGet(t *testing.T) {
	r := newTestRegistry(t)

	_, err := r.Get("dna")
	assert.Equal(t, ErrAlphabetNotFound, err)

	assert.NoError(t, r.Put("dna", "ACGT"))
	alpha, err := r.Get("dna")
	assert.NoError(t, err)
	assert.Equal(t, 4, alpha.Base())
	assert.Equal(t, "CA", basex.Encode(alpha, []byte{0x04}))

	symbols, err := r.Symbols("dna")
	assert.NoError(t, err)
	assert.Equal(t, "ACGT", symbols)

	// overwrite
	assert.NoError(t, r.Put("dna", "TGCA"))
	alpha, err = r.Get("dna")
	assert.NoError(t, err)
	assert.Equal(t, "GT", basex.Encode(alpha, []byte{0x04}))
}

func TestRegistry_Unicode(t *testing.T) {
	r := newTestRegistry(t)
	assert.NoError(t, r.Put("smile", "😁😀"))

	alpha, err := r.Get("smile")
	assert.NoError(t, err)
	_, isRune := alpha.(*basex.RuneAlphabet)
	assert.True(t, isRune)
	assert.Equal(t, "😀😁", basex.Encode(alpha, []byte{0x02}))
}

func TestRegistry_Presets(t *testing.T) {
	r := newTestRegistry(t)

	alpha, err := r.Get("base58")
	assert.NoError(t, err)
	assert.Equal(t, basex.Base58, alpha)

	symbols, err := r.Symbols("lemo26")
	assert.NoError(t, err)
	assert.Equal(t, basex.Lemo26Symbols, symbols)

	assert.Equal(t, ErrPresetReadOnly, r.Put("base58", "01"))
	assert.Equal(t, ErrPresetReadOnly, r.Delete("base58"))
}

func TestRegistry_Invalid(t *testing.T) {
	r := newTestRegistry(t)

	assert.Equal(t, ErrInvalidName, r.Put("", "01"))
	assert.Equal(t, ErrInvalidName, r.Put("two words", "01"))

	err := r.Put("bad", "0120")
	if assert.IsType(t, &AlphabetError{}, err) {
		assert.Equal(t, []string{"0"}, err.(*AlphabetError).Duplicates)
	}
	_, err = r.Get("bad")
	assert.Equal(t, ErrAlphabetNotFound, err)

	_, err = r.Symbols("two words")
	assert.Equal(t, ErrAlphabetNotFound, err)
}

func TestRegistry_DeleteNames(t *testing.T) {
	r := newTestRegistry(t)

	names, err := r.Names()
	assert.NoError(t, err)
	assert.Empty(t, names)

	assert.NoError(t, r.Put("zeta", "01"))
	assert.NoError(t, r.Put("alpha", "abc"))
	assert.NoError(t, r.Put("mid", "xyz"))
	names, err = r.Names()
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)

	assert.NoError(t, r.Delete("mid"))
	assert.Equal(t, ErrAlphabetNotFound, r.Delete("mid"))
	_, err = r.Get("mid")
	assert.Equal(t, ErrAlphabetNotFound, err)

	names, err = r.Names()
	assert.NoError(t, err)
	assert.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestRegistry_Reopen(t *testing.T) {
	dir := t.TempDir()
	r, err := NewRegistry(dir)
	assert.NoError(t, err)
	assert.NoError(t, r.Put("octal", "01234567"))
	assert.NoError(t, r.Close())

	r, err = NewRegistry(dir)
	assert.NoError(t, err)
	defer r.Close()
	alpha, err := r.Get("octal")
	assert.NoError(t, err)
	assert.Equal(t, 8, alpha.Base())
}
