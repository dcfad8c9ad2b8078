package render

import (
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
	"gonum.org/v1/gonum/spatial/kdtree"
)

var (
	_ kdtree.Interface  = kdVertices{}
	_ kdtree.Comparable = kdVertex{}
)

// FlatNormals returns one unit normal per vertex of s equal to the normal
// of the triangle the vertex belongs to. Vertices of degenerate
// triangles get a zero normal.
func FlatNormals(s isosurf.Surface) []float32 {
	normals := make([]float32, len(s.Verts))
	for it := 0; it < s.NumTriangles(); it++ {
		n, _ := unitNormal(s.Triangle(it))
		for k := 0; k < 3; k++ {
			vi := s.Indices[3*it+k]
			normals[3*vi] = n.X
			normals[3*vi+1] = n.Y
			normals[3*vi+2] = n.Z
		}
	}
	return normals
}

// SmoothNormals returns one unit normal per vertex of s averaged over all
// triangles touching the vertex or any vertex within tol of it. Since a
// surface carries no shared vertices between cells, coincident vertices
// are welded through a k-d tree search.
func SmoothNormals(s isosurf.Surface, tol float32) []float32 {
	nv := s.NumVertices()
	if nv == 0 {
		return nil
	}
	// Area weighted normal sum per vertex.
	acc := make([]ms3.Vec, nv)
	for it := 0; it < s.NumTriangles(); it++ {
		t := s.Triangle(it)
		n := ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
		for k := 0; k < 3; k++ {
			vi := s.Indices[3*it+k]
			acc[vi] = ms3.Add(acc[vi], n)
		}
	}
	pts := make(kdVertices, nv)
	for i := range pts {
		pts[i] = kdVertex{pos: s.Vertex(i), idx: i}
	}
	tree := kdtree.New(pts, false)
	normals := make([]float32, 3*nv)
	r2 := float64(tol) * float64(tol)
	for i := 0; i < nv; i++ {
		keep := kdtree.NewDistKeeper(r2)
		tree.NearestSet(keep, kdVertex{pos: s.Vertex(i), idx: -1})
		var sum ms3.Vec
		for _, c := range keep.Heap {
			if c.Comparable == nil {
				continue // Sentinel.
			}
			sum = ms3.Add(sum, acc[c.Comparable.(kdVertex).idx])
		}
		if norm := ms3.Norm(sum); norm > 0 {
			sum = ms3.Scale(1/norm, sum)
		}
		normals[3*i] = sum.X
		normals[3*i+1] = sum.Y
		normals[3*i+2] = sum.Z
	}
	return normals
}

// kdVertex is a surface vertex remembering its index in the surface.
type kdVertex struct {
	pos ms3.Vec
	idx int
}

type kdVertices []kdVertex

func (k kdVertices) Index(i int) kdtree.Comparable { return k[i] }

// Len returns the length of the list.
func (k kdVertices) Len() int { return len(k) }

// Pivot partitions the list based on the dimension specified.
func (k kdVertices) Pivot(d kdtree.Dim) int {
	p := kdPlane{dim: int(d), vertices: k}
	return kdtree.Partition(p, kdtree.MedianOfMedians(p))
}

// Slice returns a slice of the list using zero-based half
// open indexing equivalent to built-in slice indexing.
func (k kdVertices) Slice(start, end int) kdtree.Interface {
	return k[start:end]
}

// Compare returns the signed distance of a from the plane passing through
// b and perpendicular to the dimension d.
//
// Given c = a.Compare(b, d):
//
//	c = a_d - b_d
func (a kdVertex) Compare(b kdtree.Comparable, d kdtree.Dim) float64 {
	return float64(kdComp(a.pos, b.(kdVertex).pos, int(d)))
}

// Dims returns the number of dimensions described in the Comparable.
func (a kdVertex) Dims() int { return 3 }

// Distance returns the squared Euclidean distance between the receiver and
// the parameter.
func (a kdVertex) Distance(b kdtree.Comparable) float64 {
	d := ms3.Sub(a.pos, b.(kdVertex).pos)
	return float64(ms3.Dot(d, d))
}

// c = a.dim - b.dim
func kdComp(a, b ms3.Vec, dim int) float32 {
	switch dim {
	case 0:
		return a.X - b.X
	case 1:
		return a.Y - b.Y
	}
	return a.Z - b.Z
}

type kdPlane struct {
	dim      int
	vertices kdVertices
}

func (p kdPlane) Less(i, j int) bool {
	return kdComp(p.vertices[i].pos, p.vertices[j].pos, p.dim) < 0
}
func (p kdPlane) Swap(i, j int) {
	p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
}
func (p kdPlane) Len() int {
	return len(p.vertices)
}
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.vertices = p.vertices[start:end]
	return p
}
