/*
base26的字符集为 83456729ABCDFGHJKNPQRSTWYZ
*/
package base26

import (
	"bytes"

	"github.com/LemoFoundationLtd/basex/common/basex"
)

// Width is the length of an encoded address body
const Width = 36

var zeroSymbol = basex.Lemo26.SymbolAt(0)

// Encode 将字节数组编码为Base26, 左侧用零符号补足Width位
// Leading zero bytes don't change the number, so they are not kept.
func Encode(input []byte) []byte {
	for len(input) > 0 && input[0] == 0 {
		input = input[1:]
	}
	encoded := basex.EncodeToBytes(basex.Lemo26, input)
	if len(encoded) >= Width {
		return encoded
	}
	result := bytes.Repeat([]byte{zeroSymbol}, Width-len(encoded))
	return append(result, encoded...)
}

// Decode 解码Base26所编码的数据
func Decode(input []byte) ([]byte, error) {
	payload := bytes.TrimLeft(input, string(zeroSymbol))
	return basex.Decode(basex.Lemo26, string(payload))
}
