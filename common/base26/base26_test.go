package base26

import (
	"errors"
	"strings"
	"testing"

	"github.com/LemoFoundationLtd/basex/common/basex"
	"github.com/stretchr/testify/assert"
)

// TestEncode 编码功能测试
func TestEncode(t *testing.T) {
	tests := []struct {
		data   []byte
		result string
	}{
		{[]byte{}, ""},
		{[]byte{0x00, 0x00, 0x00}, ""},
		{[]byte{0x01, 0x01, 0x01}, "5QAG"},
		{[]byte{0x00, 0x01, 0x01, 0x01}, "5QAG"},
		{[]byte{0x08, 0x09, 0x10}, "35Z86"},
	}

	for _, test := range tests {
		want := strings.Repeat("8", Width-len(test.result)) + test.result
		assert.Equal(t, want, string(Encode(test.data)), "data %x", test.data)
	}

	long := Encode([]byte(strings.Repeat("\xff", 24)))
	assert.True(t, len(long) > Width)
	assert.NotEqual(t, byte('8'), long[0])
}

// TestDecode 解码功能测试
func TestDecode(t *testing.T) {
	tests := [][]byte{
		{0x01, 0x01, 0x01},
		{0x02, 0x03, 0x04},
		{0x05, 0x06, 0x07},
		{0x08, 0x09, 0x10},
		{0xff, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01},
	}

	for _, test := range tests {
		decoded, err := Decode(Encode(test))
		assert.NoError(t, err)
		assert.Equal(t, test, decoded)
	}

	decoded, err := Decode(Encode([]byte{0x00, 0x00}))
	assert.NoError(t, err)
	assert.Empty(t, decoded)

	_, err = Decode([]byte("885QAG0"))
	assert.True(t, errors.Is(err, basex.ErrInvalidSymbol))
}
