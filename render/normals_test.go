package render

import (
	"testing"

	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

func TestFlatNormals(t *testing.T) {
	s, err := Assemble(unitCube(), []float32{0, 0, 0, 0, 1, 1, 1, 1}, unitCells, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	normals := FlatNormals(s)
	if len(normals) != len(s.Verts) {
		t.Fatalf("want one normal per vertex, got %d components", len(normals))
	}
	for i := 0; i < len(normals); i += 3 {
		n := ms3.Vec{X: normals[i], Y: normals[i+1], Z: normals[i+2]}
		if !equalElem(n, ms3.Vec{Z: -1}, 1e-6) {
			t.Errorf("normal %v, want -Z toward lower values", n)
		}
	}
}

func TestSmoothNormalsSphere(t *testing.T) {
	f := sphereField(t, 16)
	s := AssembleField(f, f.Cells(), 0)
	normals := SmoothNormals(s, 1e-5)
	flat := FlatNormals(s)
	// Sphere distance increases outward so normals point toward the center.
	var smoothErr, flatErr float32
	for i := 0; i < s.NumVertices(); i++ {
		radial := ms3.Scale(-1, ms3.Unit(s.Vertex(i)))
		n := ms3.Vec{X: normals[3*i], Y: normals[3*i+1], Z: normals[3*i+2]}
		fn := ms3.Vec{X: flat[3*i], Y: flat[3*i+1], Z: flat[3*i+2]}
		if ms3.Dot(n, radial) < 0.5 {
			t.Fatalf("vertex %d smooth normal %v deviates from radial %v", i, n, radial)
		}
		smoothErr += 1 - ms3.Dot(n, radial)
		if fn != (ms3.Vec{}) {
			flatErr += 1 - ms3.Dot(fn, radial)
		}
	}
	if smoothErr > flatErr {
		t.Errorf("welded normals (err %v) should approximate the sphere better than flat normals (err %v)", smoothErr, flatErr)
	}
}

func TestSmoothNormalsWeld(t *testing.T) {
	// Two triangles sharing an edge through duplicated vertices, folded 90 degrees.
	verts := []float32{
		0, 0, 0, 1, 0, 0, 0, 1, 0, // in XY plane, normal +Z
		0, 0, 0, 0, 0, 1, 1, 0, 0, // in XZ plane, normal +Y
	}
	s := surfaceOf(verts)
	normals := SmoothNormals(s, 1e-6)
	n0 := ms3.Vec{X: normals[0], Y: normals[1], Z: normals[2]}
	n3 := ms3.Vec{X: normals[9], Y: normals[10], Z: normals[11]}
	if !equalElem(n0, n3, 1e-6) {
		t.Errorf("coincident vertices should share normal, got %v and %v", n0, n3)
	}
	n2 := ms3.Vec{X: normals[6], Y: normals[7], Z: normals[8]}
	if !equalElem(n2, ms3.Vec{Z: 1}, 1e-6) {
		t.Errorf("unshared vertex should keep face normal, got %v", n2)
	}
}

func surfaceOf(verts []float32) isosurf.Surface {
	s := isosurf.Surface{Verts: verts}
	for i := 0; i < len(verts)/3; i++ {
		s.Indices = append(s.Indices, uint32(i))
	}
	return s
}
