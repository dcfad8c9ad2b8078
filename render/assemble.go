package render

import (
	"fmt"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/mcube"
)

// Assembler builds isosurfaces by marching over every cell of a
// connectivity list in order.
type Assembler struct {
	// Strict makes assembly fail with isosurf.ErrDegenerateEdge when an
	// active edge has equal corner values instead of using its midpoint.
	Strict bool
}

// Assemble triangulates the isosurface at threshold over cells of the field
// given by vertices and values. Output order follows cell order so equal
// inputs give identical surfaces. Inputs are not modified.
//
// Cells indexing out of range of vertices fail with a *isosurf.MalformedMeshError
// and no partial surface is returned.
func Assemble(vertices []ms3.Vec, values []float32, cells [][8]uint32, threshold float32) (isosurf.Surface, error) {
	return Assembler{}.Assemble(vertices, values, cells, threshold)
}

// Assemble is like the package level Assemble honoring the assembler's options.
func (a Assembler) Assemble(vertices []ms3.Vec, values []float32, cells [][8]uint32, threshold float32) (isosurf.Surface, error) {
	if len(vertices) != len(values) {
		return isosurf.Surface{}, &isosurf.MalformedMeshError{
			Cell: -1, Corner: -1,
			Reason: fmt.Sprintf("%d vertices but %d values", len(vertices), len(values)),
		}
	}
	m := marcher{vertices: vertices, values: values, strict: a.Strict, check: true}
	return m.march(cells, threshold)
}

// AssembleField triangulates the isosurface at threshold over cells, which
// must have been validated against field with ScalarField.ValidateCells
// (the field's own cells always are). It does no per-cell checks and
// degenerate edges resolve to their midpoint.
func AssembleField(field *isosurf.ScalarField, cells [][8]uint32, threshold float32) isosurf.Surface {
	m := marcher{vertices: field.Vertices(), values: field.Values()}
	s, err := m.march(cells, threshold)
	if err != nil {
		panic("unreachable: " + err.Error())
	}
	return s
}

type marcher struct {
	vertices []ms3.Vec
	values   []float32
	strict   bool
	check    bool
}

func (m *marcher) march(cells [][8]uint32, threshold float32) (isosurf.Surface, error) {
	var (
		c       mcube.Cell
		verts   []float32
		indices []uint32
	)
	nv := len(m.vertices)
	for ic := range cells {
		idx := &cells[ic]
		if m.check {
			for corner, vi := range idx {
				if int64(vi) >= int64(nv) {
					return isosurf.Surface{}, &isosurf.MalformedMeshError{Cell: ic, Corner: corner, Index: vi, NumVertices: nv}
				}
			}
		}
		c.Gather(m.vertices, m.values, idx)
		code := mcube.Classify(c.Val, threshold)
		edges := mcube.EdgeTable(code)
		if len(edges) == 0 {
			continue // No crossing.
		}
		base := uint32(len(verts) / 3)
		for _, e := range edges {
			a, b := mcube.EdgeVerts(e)
			var p ms3.Vec
			if m.strict {
				var err error
				p, err = mcube.InterpolateStrict(c.Pos[a], c.Pos[b], c.Val[a], c.Val[b], threshold)
				if err != nil {
					return isosurf.Surface{}, fmt.Errorf("cell %d edge %d: %w", ic, e, err)
				}
			} else {
				p = mcube.Interpolate(c.Pos[a], c.Pos[b], c.Val[a], c.Val[b], threshold)
			}
			verts = append(verts, p.X, p.Y, p.Z)
		}
		for _, pos := range mcube.TriTable(code) {
			indices = append(indices, base+uint32(pos))
		}
	}
	return isosurf.Surface{Verts: verts, Indices: indices}, nil
}
