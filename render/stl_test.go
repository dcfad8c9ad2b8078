package render

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/glgl/math/ms3"
)

func TestSTLWriteReadback(t *testing.T) {
	const tol = 1e-6
	f := sphereField(t, 12)
	s := AssembleField(f, f.Cells(), 0)
	input, err := RenderAll(NewSurfaceRenderer(s))
	if err != nil {
		t.Fatal(err)
	}
	if len(input) != s.NumTriangles() {
		t.Fatalf("renderer read %d triangles, surface has %d", len(input), s.NumTriangles())
	}
	var b bytes.Buffer
	n, err := WriteSTL(&b, s)
	if err != nil {
		t.Fatal(err)
	}
	if n != stlHeaderSize+stlTriangleSize*s.NumTriangles() {
		t.Errorf("wrote %d bytes", n)
	}
	output, err := ReadSTL(&b)
	if err != nil && !errors.Is(err, errCalculatedNormalMismatch) {
		t.Fatal(err)
	}
	if len(output) != len(input) {
		t.Fatal("length of triangles written/read not equal")
	}
	mismatches := 0
	for iface, expect := range input {
		got := output[iface]
		for i := range expect {
			if !equalElem(got[i], expect[i], tol) {
				mismatches++
				t.Errorf("%dth triangle equality out of tolerance. got vertex %0.5g, want %0.5g", iface, got[i], expect[i])
			}
		}
		if mismatches > 10 {
			t.Fatal("too many mismatches")
		}
	}
}

func TestSTLCreateWriteRead(t *testing.T) {
	f := sphereField(t, 10)
	s := AssembleField(f, f.Cells(), 0)
	path := filepath.Join(t.TempDir(), "sphere.stl")
	err := CreateSTL(path, s)
	if err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer fp.Close()
	bfile, err := io.ReadAll(fp)
	if err != nil {
		t.Fatal(err)
	}
	var b bytes.Buffer
	_, err = WriteSTL(&b, s)
	if err != nil {
		t.Fatal(err)
	}
	if b.Len() != len(bfile) {
		t.Fatal("WriteSTL and CreateSTL output length mismatch")
	}
	if b.String() != string(bfile) {
		t.Fatal("WriteSTL and CreateSTL output mismatch")
	}
}

func TestSurfaceRendererShortReads(t *testing.T) {
	f := sphereField(t, 8)
	s := AssembleField(f, f.Cells(), 0)
	r := NewSurfaceRenderer(s)
	if _, err := r.ReadTriangles(nil); err != io.ErrShortBuffer {
		t.Errorf("want io.ErrShortBuffer on empty dst, got %v", err)
	}
	buf := make([]ms3.Triangle, 7)
	total := 0
	var err error
	for err == nil {
		var n int
		n, err = r.ReadTriangles(buf)
		total += n
	}
	if err != io.EOF {
		t.Fatal(err)
	}
	if total != s.NumTriangles() {
		t.Errorf("read %d triangles, want %d", total, s.NumTriangles())
	}
}
