package server

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/fieldio"
	"github.com/soypat/isosurf/lod"
)

// frameHeaderSize is the level byte, the threshold and both array lengths.
const frameHeaderSize = 1 + 4 + 4 + 4

// Frame is a surface sent to the renderer. On the wire it is little endian:
//
//	u8 level, f32 threshold, u32 len(Verts), u32 len(Indices), f32 Verts[...], u32 Indices[...]
type Frame struct {
	Level     lod.Level
	Threshold float32
	Surface   isosurf.Surface
}

// AppendBinary appends the wire encoding of f to dst.
func (f *Frame) AppendBinary(dst []byte) []byte {
	dst = append(dst, byte(f.Level))
	dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f.Threshold))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(f.Surface.Verts)))
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(f.Surface.Indices)))
	dst = fieldio.EncodeFloat32s(dst, f.Surface.Verts)
	return fieldio.EncodeUint32s(dst, f.Surface.Indices)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Frame) MarshalBinary() ([]byte, error) {
	n := frameHeaderSize + 4*(len(f.Surface.Verts)+len(f.Surface.Indices))
	return f.AppendBinary(make([]byte, 0, n)), nil
}

// UnmarshalBinary decodes and validates a frame.
func (f *Frame) UnmarshalBinary(b []byte) error {
	if len(b) < frameHeaderSize {
		return errors.New("short frame header")
	}
	level := lod.Level(b[0])
	if level != lod.LevelRough && level != lod.LevelFine {
		return fmt.Errorf("bad frame level %d", b[0])
	}
	threshold := math.Float32frombits(binary.LittleEndian.Uint32(b[1:]))
	nv := int64(binary.LittleEndian.Uint32(b[5:]))
	ni := int64(binary.LittleEndian.Uint32(b[9:]))
	if nv%3 != 0 || ni%3 != 0 {
		return fmt.Errorf("frame carries %d vertex floats and %d indices, want multiples of 3", nv, ni)
	}
	body := b[frameHeaderSize:]
	if int64(len(body)) != 4*(nv+ni) {
		return fmt.Errorf("frame body is %d bytes, header wants %d", len(body), 4*(nv+ni))
	}
	verts, err := fieldio.DecodeFloat32s(body[:4*nv])
	if err != nil {
		return err
	}
	indices, err := fieldio.DecodeUint32s(body[4*nv:])
	if err != nil {
		return err
	}
	for i, idx := range indices {
		if int64(idx) >= nv/3 {
			return fmt.Errorf("frame index %d references vertex %d, have %d", i, idx, nv/3)
		}
	}
	*f = Frame{Level: level, Threshold: threshold, Surface: isosurf.Surface{Verts: verts, Indices: indices}}
	return nil
}
