package basex

import "sort"

// Symbol sets of the preset alphabets.
const (
	Base2Symbols  = "01"
	Base8Symbols  = "01234567"
	Base10Symbols = "0123456789"
	Base11Symbols = "0123456789a"
	Base16Symbols = "0123456789abcdef"
	Base32Symbols = "0123456789ABCDEFGHJKMNPQRSTVWXYZ" // Crockford
	Base36Symbols = "0123456789abcdefghijklmnopqrstuvwxyz"
	Base58Symbols = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	Base62Symbols = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Base64Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	Base66Symbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_.!~"

	// Lemo26Symbols is the alphabet of LemoChain addresses.
	Lemo26Symbols = "83456729ABCDFGHJKNPQRSTWYZ"
)

// Preset alphabets. They are never modified and may be shared freely.
var (
	Base2  = NewByteAlphabet([]byte(Base2Symbols))
	Base8  = NewByteAlphabet([]byte(Base8Symbols))
	Base10 = NewByteAlphabet([]byte(Base10Symbols))
	Base11 = NewByteAlphabet([]byte(Base11Symbols))
	Base16 = NewByteAlphabet([]byte(Base16Symbols))
	Base32 = NewByteAlphabet([]byte(Base32Symbols))
	Base36 = NewByteAlphabet([]byte(Base36Symbols))
	Base58 = NewByteAlphabet([]byte(Base58Symbols))
	Base62 = NewByteAlphabet([]byte(Base62Symbols))
	Base64 = NewByteAlphabet([]byte(Base64Symbols))
	Base66 = NewByteAlphabet([]byte(Base66Symbols))
	Lemo26 = NewByteAlphabet([]byte(Lemo26Symbols))
)

var presets = map[string]*ByteAlphabet{
	"base2":  Base2,
	"base8":  Base8,
	"base10": Base10,
	"base11": Base11,
	"base16": Base16,
	"base32": Base32,
	"base36": Base36,
	"base58": Base58,
	"base62": Base62,
	"base64": Base64,
	"base66": Base66,
	"lemo26": Lemo26,
}

// Preset returns the preset alphabet called name.
func Preset(name string) (*ByteAlphabet, bool) {
	a, ok := presets[name]
	return a, ok
}

// PresetNames returns the names of all presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
