package fieldio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// DecodeFloat32s decodes a little endian float32 array.
func DecodeFloat32s(b []byte) ([]float32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("float32 buffer length %d not a multiple of 4", len(b))
	}
	f := make([]float32, len(b)/4)
	for i := range f {
		f[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[4*i:]))
	}
	return f, nil
}

// DecodeUint32s decodes a little endian uint32 array.
func DecodeUint32s(b []byte) ([]uint32, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("uint32 buffer length %d not a multiple of 4", len(b))
	}
	u := make([]uint32, len(b)/4)
	for i := range u {
		u[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return u, nil
}

// EncodeFloat32s appends the little endian encoding of f to dst.
func EncodeFloat32s(dst []byte, f []float32) []byte {
	for _, v := range f {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
	}
	return dst
}

// EncodeUint32s appends the little endian encoding of u to dst.
func EncodeUint32s(dst []byte, u []uint32) []byte {
	for _, v := range u {
		dst = binary.LittleEndian.AppendUint32(dst, v)
	}
	return dst
}
