package basex

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/davecgh/go-spew/spew"
	"github.com/kenshaw/baseconv"
	"github.com/stretchr/testify/assert"
)

type fixtures struct {
	Alphabets map[string]string `json:"alphabets"`
	Valid     []struct {
		Alphabet string `json:"alphabet"`
		Hex      string `json:"hex"`
		String   string `json:"string"`
	} `json:"valid"`
	Invalid []struct {
		Alphabet string `json:"alphabet"`
		String   string `json:"string"`
		Position int    `json:"position"`
	} `json:"invalid"`
}

func loadFixtures(t *testing.T) *fixtures {
	data, err := os.ReadFile("testdata/fixtures.json")
	if err != nil {
		t.Fatal(err)
	}
	f := new(fixtures)
	if err := json.Unmarshal(data, f); err != nil {
		t.Fatal(err)
	}
	return f
}

// alphabetForms returns the alphabet built from symbols in every form it
// supports.
func alphabetForms(symbols string) []Alphabet {
	forms := []Alphabet{NewRuneAlphabet([]rune(symbols))}
	if isASCII(symbols) {
		forms = append(forms, NewByteAlphabet([]byte(symbols)))
	}
	return forms
}

func TestFixtures_Valid(t *testing.T) {
	f := loadFixtures(t)
	assert.NotEmpty(t, f.Valid)

	for _, test := range f.Valid {
		symbols, ok := f.Alphabets[test.Alphabet]
		if !assert.True(t, ok, "unknown alphabet %s", test.Alphabet) {
			continue
		}
		input, err := hex.DecodeString(test.Hex)
		assert.NoError(t, err)

		for _, alpha := range alphabetForms(symbols) {
			assert.Equal(t, test.String, Encode(alpha, input), "%s %T %x", test.Alphabet, alpha, input)

			decoded, err := Decode(alpha, test.String)
			assert.NoError(t, err)
			assert.Equal(t, input, decoded, "%s %T %s", test.Alphabet, alpha, test.String)
		}
	}
}

func TestFixtures_Invalid(t *testing.T) {
	f := loadFixtures(t)
	assert.NotEmpty(t, f.Invalid)

	for _, test := range f.Invalid {
		for _, alpha := range alphabetForms(f.Alphabets[test.Alphabet]) {
			decoded, err := Decode(alpha, test.String)
			assert.Nil(t, decoded)
			assert.True(t, errors.Is(err, ErrInvalidSymbol), "%s %q", test.Alphabet, test.String)

			var decErr *DecodeError
			if assert.True(t, errors.As(err, &decErr)) {
				assert.Equal(t, test.Position, decErr.Position, "%s %q", test.Alphabet, test.String)
				assert.True(t, strings.HasPrefix(test.String[decErr.Offset:], decErr.Symbol))
			}
		}
	}
}

func TestEncode_Empty(t *testing.T) {
	for _, alpha := range []Alphabet{Base2, Base58, NewAlphabet("😁😀")} {
		assert.Equal(t, "", Encode(alpha, nil))
		assert.Equal(t, "", Encode(alpha, []byte{}))

		decoded, err := Decode(alpha, "")
		assert.NoError(t, err)
		assert.Equal(t, []byte{}, decoded)
	}
}

func TestEncode_Binary(t *testing.T) {
	assert.Equal(t, "11111111", Encode(Base2, []byte{0xFF}))
	assert.Equal(t, []byte{0xFF}, MustDecode(Base2, "11111111"))

	decoded := MustDecode(Base2, "11111111000000001111111100000000")
	assert.Equal(t, []byte{0xFF, 0x00, 0xFF, 0x00}, decoded)
	assert.Equal(t, "11111111000000001111111100000000", Encode(Base2, decoded))
}

func TestEncode_Base58(t *testing.T) {
	assert.Equal(t, "12", Encode(Base58, []byte{0x00, 0x01}))
	assert.Equal(t, "StV1DL6CwTryKyV", Encode(Base58, []byte("hello world")))

	addr, _ := hex.DecodeString("00eb15231dfceb60925886b67d065299925915aeb172c06647")
	assert.Equal(t, "1NS17iag9jJgTHD1VXjvLCEnZuQ3rJDE9L", Encode(Base58, addr))
}

func TestEncode_Lemo26(t *testing.T) {
	assert.Equal(t, "5QAG", Encode(Lemo26, []byte{0x01, 0x01, 0x01}))
	assert.Equal(t, "9G8Y", Encode(Lemo26, []byte{0x02, 0x03, 0x04}))
	assert.Equal(t, "35Z86", Encode(Lemo26, []byte{0x08, 0x09, 0x10}))
	assert.Equal(t, "888", Encode(Lemo26, []byte{0x00, 0x00, 0x00}))
}

func TestEncode_Unicode(t *testing.T) {
	alpha := NewAlphabet("😁😀")
	input := []byte{0xff, 0x00, 0xff, 0x00}

	encoded := Encode(alpha, input)
	assert.Equal(t, "😀😀😀😀😀😀😀😀😁😁😁😁😁😁😁😁😀😀😀😀😀😀😀😀😁😁😁😁😁😁😁😁", encoded)
	assert.Equal(t, input, MustDecode(alpha, encoded))

	greek := NewAlphabet("αβγδεζηθικλμνξοπρστυφχψω")
	assert.Equal(t, "αλρ", Encode(greek, []byte{0x00, 0x01, 0x00}))
	assert.Equal(t, []byte{0x00, 0x01, 0x00}, MustDecode(greek, "αλρ"))
}

func TestLeadingZeros(t *testing.T) {
	for _, alpha := range []Alphabet{Base2, Base10, Base58, Base62, NewAlphabet("😁😀"), NewByteAlphabet([]byte{0xAA, 0xBB, 0xCC})} {
		zero := string(alpha.AppendSymbol(nil, 0))
		for n := 1; n <= 9; n++ {
			input := make([]byte, n)
			encoded := Encode(alpha, input)
			assert.Equal(t, strings.Repeat(zero, n), encoded, "%d zero bytes", n)
			assert.Equal(t, input, MustDecode(alpha, encoded))

			input = append(input, 0x2A)
			encoded = Encode(alpha, input)
			assert.True(t, strings.HasPrefix(encoded, strings.Repeat(zero, n)))
			assert.False(t, strings.HasPrefix(encoded, strings.Repeat(zero, n+1)))
			assert.Equal(t, input, MustDecode(alpha, encoded))
		}
	}
}

func TestDecode_LeadingSymbols(t *testing.T) {
	tests := []struct {
		alpha   Alphabet
		input   string
		decoded []byte
	}{
		{Base2, "0", []byte{0x00}},
		{Base2, "00", []byte{0x00, 0x00}},
		{Base2, "01", []byte{0x00, 0x01}},
		{Base2, "001", []byte{0x00, 0x00, 0x01}},
		{Base16, "0ff", []byte{0x00, 0xFF}},
		{Base58, "1111", []byte{0x00, 0x00, 0x00, 0x00}},
		{Base58, "2", []byte{0x01}},
		{NewAlphabet("😁😀"), "😁😁", []byte{0x00, 0x00}},
	}
	for _, test := range tests {
		decoded, err := Decode(test.alpha, test.input)
		assert.NoError(t, err)
		assert.Equal(t, test.decoded, decoded, "input %q", test.input)
		assert.Equal(t, test.input, Encode(test.alpha, decoded))
	}
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(Base58, "1110")
	assert.EqualError(t, err, `invalid symbol "0" at position 3 (offset 3)`)

	// every prefix length before the bad symbol
	valid := Encode(Base62, []byte("any prefix"))
	for i := 0; i <= len(valid); i++ {
		input := valid[:i] + "-" + valid[i:]
		_, err := Decode(Base62, input)
		var decErr *DecodeError
		if assert.True(t, errors.As(err, &decErr), "input %q", input) {
			assert.Equal(t, i, decErr.Position)
			assert.Equal(t, "-", decErr.Symbol)
		}
	}

	// a broken UTF-8 sequence
	_, err = Decode(NewAlphabet("αβ"), "α\xce")
	var decErr *DecodeError
	if assert.True(t, errors.As(err, &decErr)) {
		assert.Equal(t, 1, decErr.Position)
		assert.Equal(t, 2, decErr.Offset)
		assert.Equal(t, "\xce", decErr.Symbol)
	}

	assert.Panics(t, func() { MustDecode(Base2, "012") })
}

func TestRoundTrip_Random(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	alphabets := []Alphabet{Base2, Base8, Base11, Base16, Base32, Base36, Base58, Base62, Base64, Base66, Lemo26,
		NewAlphabet("😁😀"), NewAlphabet("αβγδεζηθικλμνξοπρστυφχψω")}
	for _, alpha := range alphabets {
		for i := 0; i < 50; i++ {
			input := make([]byte, r.Intn(70))
			r.Read(input)
			for j := 0; j < r.Intn(4) && j < len(input); j++ {
				input[j] = 0
			}
			encoded := Encode(alpha, input)
			decoded, err := Decode(alpha, encoded)
			assert.NoError(t, err)
			if !bytes.Equal(input, decoded) {
				t.Errorf("round trip mismatch\ninput: %sdecoded: %s", spew.Sdump(input), spew.Sdump(decoded))
			}
		}
	}
}

func TestRoundTrip_Strings(t *testing.T) {
	r := rand.New(rand.NewSource(58))
	for _, symbols := range []string{Base2Symbols, Base10Symbols, Base58Symbols, "αβγδεζηθικλμνξοπρστυφχψω"} {
		runes := []rune(symbols)
		for _, alpha := range alphabetForms(symbols) {
			for i := 0; i < 50; i++ {
				var sb strings.Builder
				n := r.Intn(40) + 1
				for j := 0; j < n; j++ {
					sb.WriteRune(runes[r.Intn(len(runes))])
				}
				s := sb.String()
				assert.Equal(t, s, Encode(alpha, MustDecode(alpha, s)), "%T %q", alpha, s)
			}
		}
	}
}

func TestAlphabetFormsAgree(t *testing.T) {
	r := rand.New(rand.NewSource(16))
	for _, symbols := range []string{Base2Symbols, Base16Symbols, Base58Symbols, Base66Symbols} {
		byteForm := NewByteAlphabet([]byte(symbols))
		runeForm := NewRuneAlphabet([]rune(symbols))
		for i := 0; i < 30; i++ {
			input := make([]byte, r.Intn(40))
			r.Read(input)
			encoded := Encode(byteForm, input)
			assert.Equal(t, encoded, Encode(runeForm, input))
			assert.Equal(t, MustDecode(byteForm, encoded), MustDecode(runeForm, encoded))
		}
	}
}

func TestEncode_Deterministic(t *testing.T) {
	alpha := NewAlphabet("αβγδεζηθικλμνξοπρστυφχψω")
	input := []byte("the same bytes every time")
	first := Encode(alpha, input)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Encode(alpha, input))
	}
}

func TestEncode_MatchesBtcutil(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		input := make([]byte, r.Intn(50))
		r.Read(input)
		if i%5 == 0 && len(input) > 2 {
			input[0], input[1] = 0, 0
		}
		want := base58.Encode(input)
		assert.Equal(t, want, Encode(Base58, input), "input %x", input)
		if len(input) > 0 {
			assert.Equal(t, input, MustDecode(Base58, want))
		}
	}
}

func TestEncode_MatchesBaseconv(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for _, symbols := range []string{Base2Symbols, Base8Symbols, Base36Symbols, Base62Symbols, "αβγδεζηθικλμνξοπρστυφχψω"} {
		alpha := NewAlphabet(symbols)
		for i := 0; i < 50; i++ {
			input := make([]byte, r.Intn(30)+1)
			r.Read(input)
			input[0] |= 0x01 // no leading zero byte, pure numeric conversion

			want, err := baseconv.Convert(hex.EncodeToString(input), baseconv.DigitsHex, symbols)
			assert.NoError(t, err)
			assert.Equal(t, want, Encode(alpha, input), "input %x", input)
		}
	}
}

func TestConcurrentUse(t *testing.T) {
	alpha := NewAlphabet(Base58Symbols)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			r := rand.New(rand.NewSource(seed))
			for j := 0; j < 100; j++ {
				input := make([]byte, r.Intn(40))
				r.Read(input)
				decoded, err := Decode(alpha, Encode(alpha, input))
				if err != nil || !bytes.Equal(input, decoded) {
					t.Errorf("round trip failed for %x", input)
					return
				}
			}
		}(int64(i))
	}
	wg.Wait()
}
