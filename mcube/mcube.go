// Package mcube holds the marching cubes reference tables and the per-cell
// primitives used to triangulate an isosurface crossing a hexahedral cell.
//
// Corner l of a cell sits at local coordinate (l&1, (l>>1)&1, (l>>2)&1).
// Edges 0-3 run along x, 4-7 along y and 8-11 along z. Triangles are wound
// so their right hand normal points toward decreasing field values.
package mcube

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

// edgeToVerts maps a local edge id to its pair of local corner ids.
var edgeToVerts = [12][2]uint8{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // z
}

// vertCoord maps a local corner id to its local unit cube coordinate.
var vertCoord = [8][3]uint8{
	{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {0, 1, 1}, {1, 1, 1},
}

// EdgeTable returns the active local edge ids for a configuration code.
// The returned slice must not be modified.
func EdgeTable(code uint8) []uint8 { return edgeTable[code] }

// TriTable returns the triangle pattern for a configuration code as
// positions into EdgeTable(code). The returned slice must not be modified.
func TriTable(code uint8) []uint8 { return triTable[code] }

// EdgeVerts returns the local corner ids joined by edge.
func EdgeVerts(edge uint8) (a, b uint8) {
	v := edgeToVerts[edge]
	return v[0], v[1]
}

// CornerCoord returns the local cube coordinate of a corner.
func CornerCoord(corner uint8) [3]uint8 { return vertCoord[corner] }

// Cell is a hexahedral cell gathered from a field: corner positions and
// values in canonical corner order.
type Cell struct {
	Pos [8]ms3.Vec
	Val [8]float32
}

// Gather fills the cell from the field arrays using the 8 vertex indices of
// idx. Indices must be in range of vertices and values.
func (c *Cell) Gather(vertices []ms3.Vec, values []float32, idx *[8]uint32) {
	for l, vi := range idx {
		c.Pos[l] = vertices[vi]
		c.Val[l] = values[vi]
	}
}

// Classify returns the configuration code of the corner values: bit l is
// set when values[l] > threshold. Values equal to the threshold and NaN
// values count as below the threshold.
func Classify(values [8]float32, threshold float32) (code uint8) {
	for l, v := range values {
		if v > threshold {
			code |= 1 << l
		}
	}
	return code
}

// Factor returns the interpolation factor t = (threshold-va)/(vb-va) of
// the threshold crossing along an edge, clamped to [0, 1]. When va == vb
// or the division is not finite Factor returns 0.5 and ok=false.
func Factor(va, vb, threshold float32) (t float32, ok bool) {
	den := vb - va
	if den == 0 {
		return 0.5, false
	}
	t = (threshold - va) / den
	if math32.IsNaN(t) || math32.IsInf(t, 0) {
		return 0.5, false
	}
	return isosurf.Clamp(t, 0, 1), true
}

// Interpolate returns the point where the threshold crosses the segment
// pa-pb given the values at its ends. Degenerate edges resolve to the
// midpoint; see Factor.
func Interpolate(pa, pb ms3.Vec, va, vb, threshold float32) ms3.Vec {
	t, _ := Factor(va, vb, threshold)
	return lerp(pa, pb, t)
}

// InterpolateStrict is like Interpolate but returns isosurf.ErrDegenerateEdge
// instead of falling back to the midpoint.
func InterpolateStrict(pa, pb ms3.Vec, va, vb, threshold float32) (ms3.Vec, error) {
	t, ok := Factor(va, vb, threshold)
	if !ok {
		return ms3.Vec{}, isosurf.ErrDegenerateEdge
	}
	return lerp(pa, pb, t), nil
}

func lerp(a, b ms3.Vec, t float32) ms3.Vec {
	return ms3.Add(ms3.Scale(1-t, a), ms3.Scale(t, b))
}

// Crossings appends the interpolated crossing point of every active edge of
// the cell to dst in EdgeTable order and returns the configuration code.
func (c *Cell) Crossings(dst []ms3.Vec, threshold float32) ([]ms3.Vec, uint8) {
	code := Classify(c.Val, threshold)
	for _, e := range edgeTable[code] {
		a, b := edgeToVerts[e][0], edgeToVerts[e][1]
		dst = append(dst, Interpolate(c.Pos[a], c.Pos[b], c.Val[a], c.Val[b], threshold))
	}
	return dst, code
}

// Triangles writes the triangles of the isosurface crossing the cell to dst
// and returns the number written. dst must have room for MaxTriangles.
func (c *Cell) Triangles(dst []ms3.Triangle, threshold float32) int {
	var buf [12]ms3.Vec
	pts, code := c.Crossings(buf[:0], threshold)
	tri := triTable[code]
	n := 0
	for i := 0; i < len(tri); i += 3 {
		dst[n] = ms3.Triangle{pts[tri[i]], pts[tri[i+1]], pts[tri[i+2]]}
		n++
	}
	return n
}
