package lazyslice

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/lunfardo314/easytx"
)

// Array is a serialized append-only array of byte slices.
// Serialization is optimized by analyzing maximum length of the data element,
// which also makes it canonical: one array has exactly one valid serialization
type Array struct {
	bytes          []byte
	parsed         [][]byte
	maxNumElements int
}

type lenPrefixType uint16

// prefix of the serialized array are two bytes interpreted as big-endian uint16.
// The highest 2 bits encode the number of bytes used for each element length (0, 1, 2 or 4),
// the rest is the number of elements in the array
const (
	DataLenBytes0  = uint16(0x00) << 14
	DataLenBytes8  = uint16(0x01) << 14
	DataLenBytes16 = uint16(0x02) << 14
	DataLenBytes32 = uint16(0x03) << 14

	DataLenMask  = uint16(0x03) << 14
	ArrayLenMask = ^DataLenMask
	MaxArrayLen  = int(ArrayLenMask) // 16383
)

func (dl lenPrefixType) DataLenBytes() int {
	switch uint16(dl) & DataLenMask {
	case DataLenBytes0:
		return 0
	case DataLenBytes8:
		return 1
	case DataLenBytes16:
		return 2
	default:
		return 4
	}
}

func (dl lenPrefixType) NumElements() int {
	return int(uint16(dl) & ArrayLenMask)
}

func (dl lenPrefixType) Bytes() []byte {
	return easytx.EncodeInteger(uint16(dl))
}

func maxElements(maxNumElements []int) int {
	if len(maxNumElements) > 0 && maxNumElements[0] < MaxArrayLen {
		return maxNumElements[0]
	}
	return MaxArrayLen
}

// ParseArray parses data and rejects anything which is not the canonical
// serialization of an array with at most maxNumElements elements
func ParseArray(data []byte, maxNumElements ...int) (*Array, error) {
	mx := maxElements(maxNumElements)
	parsed, err := parseArray(data, mx)
	if err != nil {
		return nil, err
	}
	return &Array{
		bytes:          data,
		parsed:         parsed,
		maxNumElements: mx,
	}, nil
}

func EmptyArray(maxNumElements ...int) *Array {
	return &Array{
		parsed:         make([][]byte, 0),
		maxNumElements: maxElements(maxNumElements),
	}
}

// MakeArray creates array from the elements. Elements are not copied
func MakeArray(elems ...[]byte) *Array {
	ret := EmptyArray()
	for _, e := range elems {
		ret.Push(e)
	}
	return ret
}

// Push appends element and returns its index. Panics if array is full
func (a *Array) Push(data []byte) int {
	if len(a.parsed) >= a.maxNumElements {
		panic(fmt.Sprintf("Array.Push: too many elements, max %d", a.maxNumElements))
	}
	a.parsed = append(a.parsed, data)
	a.bytes = nil
	return len(a.parsed) - 1
}

func (a *Array) At(idx int) []byte {
	return a.parsed[idx]
}

func (a *Array) NumElements() int {
	return len(a.parsed)
}

func (a *Array) Bytes() []byte {
	if a.bytes == nil {
		var buf bytes.Buffer
		if err := encodeArray(a.parsed, &buf); err != nil {
			panic(err)
		}
		a.bytes = buf.Bytes()
	}
	return a.bytes
}

func calcLenPrefix(data [][]byte) (lenPrefixType, error) {
	if len(data) > MaxArrayLen {
		return 0, errors.New("too many elements")
	}
	var dl, t uint16
	for _, d := range data {
		switch {
		case uint64(len(d)) > math.MaxUint32:
			return 0, errors.New("data can't be longer than MaxUint32")
		case len(d) > math.MaxUint16:
			t = DataLenBytes32
		case len(d) > math.MaxUint8:
			t = DataLenBytes16
		case len(d) > 0:
			t = DataLenBytes8
		default:
			t = DataLenBytes0
		}
		if dl < t {
			dl = t
		}
	}
	return lenPrefixType(dl | uint16(len(data))), nil
}

func writeData(data [][]byte, numDataLenBytes int, w io.Writer) error {
	if numDataLenBytes == 0 {
		return nil // all empty
	}
	for _, d := range data {
		var err error
		switch numDataLenBytes {
		case 1:
			err = easytx.WriteInteger(w, byte(len(d)))
		case 2:
			err = easytx.WriteInteger(w, uint16(len(d)))
		case 4:
			err = easytx.WriteInteger(w, uint32(len(d)))
		}
		if err != nil {
			return err
		}
		if _, err = w.Write(d); err != nil {
			return err
		}
	}
	return nil
}

// decodeElement cuts the element from the buffer without copying
func decodeElement(buf []byte, numDataLenBytes int) ([]byte, []byte, error) {
	if len(buf) < numDataLenBytes {
		return nil, nil, io.ErrUnexpectedEOF
	}
	var sz int
	switch numDataLenBytes {
	case 0:
		sz = 0
	case 1:
		sz = int(buf[0])
	case 2:
		sz = int(easytx.DecodeInteger[uint16](buf[:2]))
	case 4:
		sz = int(easytx.DecodeInteger[uint32](buf[:4]))
	default:
		return nil, nil, errors.New("wrong lenPrefixType value")
	}
	if len(buf) < numDataLenBytes+sz {
		return nil, nil, io.ErrUnexpectedEOF
	}
	return buf[numDataLenBytes+sz:], buf[numDataLenBytes : numDataLenBytes+sz], nil
}

func decodeData(data []byte, numDataLenBytes int, n int) ([][]byte, error) {
	ret := make([][]byte, n)
	var err error
	for i := 0; i < n; i++ {
		if data, ret[i], err = decodeElement(data, numDataLenBytes); err != nil {
			return nil, err
		}
	}
	if len(data) != 0 {
		return nil, errors.New("serialization error: not all bytes were consumed")
	}
	return ret, nil
}

func encodeArray(data [][]byte, w io.Writer) error {
	prefix, err := calcLenPrefix(data)
	if err != nil {
		return err
	}
	if _, err = w.Write(prefix.Bytes()); err != nil {
		return err
	}
	return writeData(data, prefix.DataLenBytes(), w)
}

func parseArray(data []byte, maxNumElements int) ([][]byte, error) {
	if len(data) < 2 {
		return nil, io.ErrUnexpectedEOF
	}
	prefix := lenPrefixType(easytx.DecodeInteger[uint16](data[:2]))
	if prefix.NumElements() > maxNumElements {
		return nil, fmt.Errorf("parseArray: number of elements in the prefix %d is larger than maxNumElements %d",
			prefix.NumElements(), maxNumElements)
	}
	ret, err := decodeData(data[2:], prefix.DataLenBytes(), prefix.NumElements())
	if err != nil {
		return nil, err
	}
	canonical, err := calcLenPrefix(ret)
	if err != nil {
		return nil, err
	}
	if canonical != prefix {
		return nil, fmt.Errorf("parseArray: non-canonical prefix %04x, expected %04x", uint16(prefix), uint16(canonical))
	}
	return ret, nil
}
