/*

Logical structured index space of a hexahedral field.

*/

package isosurf

import "fmt"

// V3i is a 3D integer vector used for logical grid coordinates.
type V3i [3]int

// AddScalar adds a scalar to each component of the vector.
func (a V3i) AddScalar(b int) V3i {
	return V3i{a[0] + b, a[1] + b, a[2] + b}
}

// MinElem returns the componentwise minimum of two vectors.
func (a V3i) MinElem(b V3i) V3i {
	return V3i{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// Extents describe the structured index space an unstructured hexahedral
// field was produced from: Nb blocks of Nx*Ny*Nz vertices each. The vertex
// at logical coordinate (i, j, k) of block b has index ((b*Nz+k)*Ny+j)*Nx+i.
type Extents struct {
	Nx, Ny, Nz int
	Nb         int
}

// NumVertices returns the number of vertices addressed by the extents.
func (e Extents) NumVertices() int { return e.Nx * e.Ny * e.Nz * e.Nb }

// NumCells returns the number of full resolution cells in the extents.
func (e Extents) NumCells() int { return (e.Nx - 1) * (e.Ny - 1) * (e.Nz - 1) * e.Nb }

// Size returns the per-block vertex counts as a vector.
func (e Extents) Size() V3i { return V3i{e.Nx, e.Ny, e.Nz} }

// Index returns the vertex index of logical coordinate ijk in block b.
func (e Extents) Index(b int, ijk V3i) uint32 {
	return uint32(((b*e.Nz+ijk[2])*e.Ny+ijk[1])*e.Nx + ijk[0])
}

// Validate checks the extents describe exactly numVertices vertices.
func (e Extents) Validate(numVertices int) error {
	if e.Nx < 2 || e.Ny < 2 || e.Nz < 2 {
		return lengthError("extents %dx%dx%d need at least 2 vertices per axis", e.Nx, e.Ny, e.Nz)
	}
	if e.Nb < 1 {
		return lengthError("extents need at least one block, got %d", e.Nb)
	}
	if int64(e.Nx)*int64(e.Ny)*int64(e.Nz)*int64(e.Nb) > 1<<32 {
		return lengthError("extents %v overflow 32 bit vertex indices", e)
	}
	if e.NumVertices() != numVertices {
		return lengthError("extents %v address %d vertices, field has %d", e, e.NumVertices(), numVertices)
	}
	return nil
}

func (e Extents) String() string {
	return fmt.Sprintf("%dx%dx%d*%d", e.Nx, e.Ny, e.Nz, e.Nb)
}

// FineCells returns the full resolution connectivity of the extents: one
// cell per unit step of every block, blocks in order, x varying fastest.
func (e Extents) FineCells() [][8]uint32 {
	cells := make([][8]uint32, 0, e.NumCells())
	for b := 0; b < e.Nb; b++ {
		for k := 0; k < e.Nz-1; k++ {
			for j := 0; j < e.Ny-1; j++ {
				for i := 0; i < e.Nx-1; i++ {
					ijk := V3i{i, j, k}
					cells = append(cells, e.Cell(b, ijk, ijk.AddScalar(1)))
				}
			}
		}
	}
	return cells
}

// Cell returns the hexahedral cell spanning logical coordinates lo to hi
// of block b in canonical corner order: corner l takes hi on axis a when
// bit a of l is set.
func (e Extents) Cell(b int, lo, hi V3i) (cell [8]uint32) {
	for l := range cell {
		c := lo
		for axis := 0; axis < 3; axis++ {
			if (l>>axis)&1 != 0 {
				c[axis] = hi[axis]
			}
		}
		cell[l] = e.Index(b, c)
	}
	return cell
}
