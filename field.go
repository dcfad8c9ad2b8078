package isosurf

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"gonum.org/v1/gonum/stat"
)

// ScalarField is a scalar value sampled at the vertices of a hexahedral mesh.
// Cells hold 8 vertex indices in canonical corner order: corner l sits at
// local coordinate (l&1, (l>>1)&1, (l>>2)&1).
//
// A ScalarField is immutable once built. Accessors return the underlying
// slices which must not be modified.
type ScalarField struct {
	vertices []ms3.Vec
	values   []float32
	cells    [][8]uint32
}

// NewScalarField validates and returns a scalar field. Every index of
// every cell must be in range of vertices and there must be one value
// per vertex.
func NewScalarField(vertices []ms3.Vec, values []float32, cells [][8]uint32) (*ScalarField, error) {
	if len(vertices) != len(values) {
		return nil, lengthError("%d vertices but %d values", len(vertices), len(values))
	}
	f := &ScalarField{
		vertices: vertices,
		values:   values,
		cells:    cells,
	}
	if err := f.ValidateCells(cells); err != nil {
		return nil, err
	}
	return f, nil
}

// FromBuffers builds a scalar field from the flat arrays delivered by a loader:
// 3 floats per vertex position, 8 indices per cell and one value per vertex.
func FromBuffers(positions []float32, connectivity []uint32, values []float32) (*ScalarField, error) {
	if len(positions)%3 != 0 {
		return nil, lengthError("position buffer length %d not a multiple of 3", len(positions))
	}
	if len(connectivity)%8 != 0 {
		return nil, lengthError("connectivity buffer length %d not a multiple of 8", len(connectivity))
	}
	nv := len(positions) / 3
	if len(values) != nv {
		return nil, lengthError("%d vertices but %d values", nv, len(values))
	}
	vertices := make([]ms3.Vec, nv)
	for i := range vertices {
		vertices[i] = ms3.Vec{X: positions[3*i], Y: positions[3*i+1], Z: positions[3*i+2]}
	}
	cells := make([][8]uint32, len(connectivity)/8)
	for i := range cells {
		copy(cells[i][:], connectivity[8*i:8*i+8])
	}
	return NewScalarField(vertices, values, cells)
}

// ValidateCells checks cells index only vertices of the field. Cells that pass
// can be assembled against the field without further checks.
func (f *ScalarField) ValidateCells(cells [][8]uint32) error {
	nv := len(f.vertices)
	for ic, cell := range cells {
		for corner, idx := range cell {
			if int64(idx) >= int64(nv) {
				return &MalformedMeshError{Cell: ic, Corner: corner, Index: idx, NumVertices: nv}
			}
		}
	}
	return nil
}

// Vertices returns the vertex positions.
func (f *ScalarField) Vertices() []ms3.Vec { return f.vertices }

// Values returns the per-vertex scalar values.
func (f *ScalarField) Values() []float32 { return f.values }

// Cells returns the full resolution cell connectivity.
func (f *ScalarField) Cells() [][8]uint32 { return f.cells }

// Range returns the minimum and maximum finite value of the field.
// NaN and infinite values are skipped. An empty field returns (0, 0).
func (f *ScalarField) Range() (min, max float32) {
	min, max = math32.Inf(1), math32.Inf(-1)
	for _, v := range f.values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		min = math32.Min(min, v)
		max = math32.Max(max, v)
	}
	if min > max {
		return 0, 0
	}
	return min, max
}

// FiniteValues returns the finite values of the field as float64 in
// ascending order.
func (f *ScalarField) FiniteValues() []float64 {
	x := make([]float64, 0, len(f.values))
	for _, v := range f.values {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			continue
		}
		x = append(x, float64(v))
	}
	sort.Float64s(x)
	return x
}

// Quantile returns the p quantile of the finite values of the field, p in
// [0, 1]. An empty field returns 0.
func (f *ScalarField) Quantile(p float64) float32 {
	x := f.FiniteValues()
	if len(x) == 0 {
		return 0
	}
	return float32(stat.Quantile(p, stat.Empirical, x, nil))
}

// Bounds returns the bounding box of the field's vertices.
func (f *ScalarField) Bounds() ms3.Box {
	return boundsOf(f.vertices)
}

func boundsOf(pts []ms3.Vec) ms3.Box {
	if len(pts) == 0 {
		return ms3.Box{}
	}
	bb := ms3.Box{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bb.Min = ms3.MinElem(bb.Min, p)
		bb.Max = ms3.MaxElem(bb.Max, p)
	}
	return bb
}
