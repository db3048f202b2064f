package easytx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// assumed endian-ness of every integer in the wire format
var byteOrder = binary.BigEndian

type integerIntern interface {
	uint8 | uint16 | uint32 | uint64
}

func WriteInteger[T integerIntern](w io.Writer, val T) error {
	return binary.Write(w, byteOrder, val)
}

func EncodeInteger[T integerIntern](v T) []byte {
	var buf bytes.Buffer
	if err := binary.Write(&buf, byteOrder, v); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// DecodeInteger panics if data is shorter than the integer size
func DecodeInteger[T integerIntern](data []byte) T {
	var ret T
	if err := binary.Read(bytes.NewReader(data), byteOrder, &ret); err != nil {
		panic(err)
	}
	return ret
}

// TryDecodeInteger requires data to be exactly the size of the integer
func TryDecodeInteger[T integerIntern](data []byte) (T, error) {
	var ret T
	if len(data) != binary.Size(ret) {
		return ret, fmt.Errorf("wrong data length %d for %T", len(data), ret)
	}
	return DecodeInteger[T](data), nil
}
