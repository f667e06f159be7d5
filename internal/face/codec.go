package face

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeDescriptor serializes a descriptor as a raw sequence of
// little-endian IEEE-754 float32 values. The byte order is pinned so
// that descriptors written on one platform decode identically on any
// other.
func EncodeDescriptor(desc []float32) []byte {
	buf := make([]byte, len(desc)*4)
	for i, v := range desc {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

// DecodeDescriptor reverses EncodeDescriptor. The input length must be
// a multiple of 4 bytes.
func DecodeDescriptor(data []byte) ([]float32, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("descriptor byte length %d is not a multiple of 4", len(data))
	}
	desc := make([]float32, len(data)/4)
	for i := range desc {
		desc[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return desc, nil
}
