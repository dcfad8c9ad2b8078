package lod

import (
	"errors"

	"github.com/soypat/isosurf"
)

// Coarsen partitions every block of the structured index space ext into
// cubes of blockSize fine cells per axis and returns one rough cell per cube
// whose corners are the 8 extreme fine vertices of the cube. Trailing cubes
// that do not fit are clamped to the last vertex so the rough cells cover
// the same domain as the fine cells.
func Coarsen(ext isosurf.Extents, blockSize int) ([][8]uint32, error) {
	if blockSize < 1 {
		return nil, errors.New("coarsening block size must be at least 1")
	}
	if err := ext.Validate(ext.NumVertices()); err != nil {
		return nil, err
	}
	last := ext.Size().AddScalar(-1)
	n := ceilDiv(last[0], blockSize) * ceilDiv(last[1], blockSize) * ceilDiv(last[2], blockSize) * ext.Nb
	cells := make([][8]uint32, 0, n)
	for b := 0; b < ext.Nb; b++ {
		for k := 0; k < last[2]; k += blockSize {
			for j := 0; j < last[1]; j += blockSize {
				for i := 0; i < last[0]; i += blockSize {
					lo := isosurf.V3i{i, j, k}
					hi := lo.AddScalar(blockSize).MinElem(last)
					cells = append(cells, ext.Cell(b, lo, hi))
				}
			}
		}
	}
	return cells, nil
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }
