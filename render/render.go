// Package render assembles isosurface triangle soups from hexahedral scalar
// fields and exports them as triangles, STL files and vertex normals.
package render

import (
	"io"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

// Renderer streams triangles into dst, returning io.EOF once exhausted.
type Renderer interface {
	ReadTriangles(dst []ms3.Triangle) (int, error)
}

type surfaceRenderer struct {
	s    isosurf.Surface
	next int
}

// NewSurfaceRenderer returns a Renderer that reads the triangles of s in
// index buffer order.
func NewSurfaceRenderer(s isosurf.Surface) Renderer {
	return &surfaceRenderer{s: s}
}

func (sr *surfaceRenderer) ReadTriangles(dst []ms3.Triangle) (n int, err error) {
	if len(dst) == 0 {
		return 0, io.ErrShortBuffer
	}
	nt := sr.s.NumTriangles()
	for n < len(dst) && sr.next < nt {
		dst[n] = sr.s.Triangle(sr.next)
		sr.next++
		n++
	}
	if sr.next == nt {
		return n, io.EOF
	}
	return n, nil
}
