package codec

import (
	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/LemoFoundationLtd/basex/common/log"
	"github.com/LemoFoundationLtd/basex/metrics"
	"github.com/LemoFoundationLtd/basex/store"
)

// AlphabetReader looks up user defined alphabets, store.Registry is one.
type AlphabetReader interface {
	Get(name string) (basex.Alphabet, error)
}

// Resolve returns the codec of a preset alphabet, or of the alphabet called
// name in src. src may be nil, then only presets are found.
func Resolve(src AlphabetReader, name string) (*Codec, error) {
	metrics.NewMeter(metrics.AlphabetResolve_meterName).Mark(1)
	notFoundMeter := metrics.NewMeter(metrics.AlphabetNotFound_meterName)
	if alpha, ok := basex.Preset(name); ok {
		return New(name, alpha), nil
	}
	if src == nil {
		notFoundMeter.Mark(1)
		return nil, store.ErrAlphabetNotFound
	}
	alpha, err := src.Get(name)
	if err != nil {
		if err == store.ErrAlphabetNotFound {
			notFoundMeter.Mark(1)
		}
		log.Debug("Resolve alphabet failed", "name", name, "err", err)
		return nil, err
	}
	return New(name, alpha), nil
}

// FromSymbols builds an unnamed codec from a symbol string.
func FromSymbols(symbols string) (*Codec, error) {
	alpha, err := store.NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	return New("custom", alpha), nil
}
