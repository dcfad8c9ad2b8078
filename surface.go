package isosurf

import "github.com/soypat/glgl/math/ms3"

// Surface is a triangle soup: Verts holds 3 coordinates per vertex and
// Indices holds 3 vertex indices per triangle. Vertices are not shared
// between cells so neighbouring triangles do not share indices.
type Surface struct {
	Verts   []float32
	Indices []uint32
}

// NumVertices returns the number of vertices in the surface.
func (s Surface) NumVertices() int { return len(s.Verts) / 3 }

// NumTriangles returns the number of triangles in the surface.
func (s Surface) NumTriangles() int { return len(s.Indices) / 3 }

// Vertex returns the i'th vertex.
func (s Surface) Vertex(i int) ms3.Vec {
	return ms3.Vec{X: s.Verts[3*i], Y: s.Verts[3*i+1], Z: s.Verts[3*i+2]}
}

// Triangle returns the i'th triangle.
func (s Surface) Triangle(i int) ms3.Triangle {
	return ms3.Triangle{
		s.Vertex(int(s.Indices[3*i])),
		s.Vertex(int(s.Indices[3*i+1])),
		s.Vertex(int(s.Indices[3*i+2])),
	}
}

// AppendTriangles appends the surface's triangles to dst.
func (s Surface) AppendTriangles(dst []ms3.Triangle) []ms3.Triangle {
	for i := 0; i < s.NumTriangles(); i++ {
		dst = append(dst, s.Triangle(i))
	}
	return dst
}

// Bounds returns the bounding box of the surface vertices.
func (s Surface) Bounds() ms3.Box {
	pts := make([]ms3.Vec, s.NumVertices())
	for i := range pts {
		pts[i] = s.Vertex(i)
	}
	return boundsOf(pts)
}

// Empty reports whether the surface has no triangles.
func (s Surface) Empty() bool { return len(s.Indices) == 0 }
