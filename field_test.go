package isosurf

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
)

func TestFromBuffers(t *testing.T) {
	positions := []float32{
		0, 0, 0, 1, 0, 0, 0, 1, 0, 1, 1, 0,
		0, 0, 1, 1, 0, 1, 0, 1, 1, 1, 1, 1,
	}
	values := []float32{0, 0, 0, 0, 1, 1, 1, 1}
	conn := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	f, err := FromBuffers(positions, conn, values)
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Vertices()) != 8 || len(f.Cells()) != 1 {
		t.Fatalf("got %d vertices %d cells", len(f.Vertices()), len(f.Cells()))
	}
	if f.Vertices()[5] != (ms3.Vec{X: 1, Y: 0, Z: 1}) {
		t.Errorf("vertex 5 decoded as %v", f.Vertices()[5])
	}
	lo, hi := f.Range()
	if lo != 0 || hi != 1 {
		t.Errorf("range got [%v,%v], want [0,1]", lo, hi)
	}
	bb := f.Bounds()
	if bb.Min != (ms3.Vec{}) || bb.Max != (ms3.Vec{X: 1, Y: 1, Z: 1}) {
		t.Errorf("bad bounds %+v", bb)
	}
}

func TestFromBuffersMalformed(t *testing.T) {
	for _, test := range []struct {
		name      string
		positions []float32
		conn      []uint32
		values    []float32
	}{
		{name: "positions not multiple of 3", positions: make([]float32, 4), values: make([]float32, 1)},
		{name: "connectivity not multiple of 8", positions: make([]float32, 24), conn: make([]uint32, 7), values: make([]float32, 8)},
		{name: "value count mismatch", positions: make([]float32, 24), conn: make([]uint32, 8), values: make([]float32, 7)},
		{name: "index out of range", positions: make([]float32, 24), conn: []uint32{0, 1, 2, 3, 4, 5, 6, 8}, values: make([]float32, 8)},
	} {
		_, err := FromBuffers(test.positions, test.conn, test.values)
		if !errors.Is(err, ErrMalformedMesh) {
			t.Errorf("%s: want ErrMalformedMesh, got %v", test.name, err)
		}
	}
	_, err := FromBuffers(make([]float32, 24), []uint32{0, 1, 2, 3, 4, 5, 6, 9}, make([]float32, 8))
	var merr *MalformedMeshError
	if !errors.As(err, &merr) {
		t.Fatalf("want *MalformedMeshError, got %T", err)
	}
	if merr.Cell != 0 || merr.Corner != 7 || merr.Index != 9 || merr.NumVertices != 8 {
		t.Errorf("unexpected error detail %+v", merr)
	}
}

func TestRangeSkipsNaN(t *testing.T) {
	f, err := NewScalarField(make([]ms3.Vec, 3), []float32{math32.NaN(), -2, 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := f.Range()
	if lo != -2 || hi != 5 {
		t.Errorf("got [%v,%v], want [-2,5]", lo, hi)
	}
}

func TestExtents(t *testing.T) {
	e := Extents{Nx: 3, Ny: 4, Nz: 5, Nb: 2}
	if err := e.Validate(3 * 4 * 5 * 2); err != nil {
		t.Fatal(err)
	}
	if err := e.Validate(3 * 4 * 5); !errors.Is(err, ErrMalformedMesh) {
		t.Errorf("want ErrMalformedMesh for vertex count mismatch, got %v", err)
	}
	if err := (Extents{Nx: 1, Ny: 4, Nz: 5, Nb: 1}).Validate(20); err == nil {
		t.Error("want error for degenerate axis")
	}
	cells := e.FineCells()
	if len(cells) != e.NumCells() {
		t.Fatalf("got %d fine cells, want %d", len(cells), e.NumCells())
	}
	seen := make(map[uint32]bool)
	for _, cell := range cells {
		for l, vi := range cell {
			if int(vi) >= e.NumVertices() {
				t.Fatalf("cell index %d out of range", vi)
			}
			seen[vi] = true
			// Corner l is offset from corner 0 by its coordinate bits.
			d := int(vi) - int(cell[0])
			want := (l & 1) + ((l>>1)&1)*e.Nx + ((l>>2)&1)*e.Nx*e.Ny
			if d != want {
				t.Fatalf("corner %d offset %d, want %d", l, d, want)
			}
		}
	}
	if len(seen) != e.NumVertices() {
		t.Errorf("fine cells touch %d of %d vertices", len(seen), e.NumVertices())
	}
}

func TestSurfaceAccessors(t *testing.T) {
	s := Surface{
		Verts:   []float32{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 2},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
	if s.NumVertices() != 4 || s.NumTriangles() != 2 || s.Empty() {
		t.Fatalf("bad surface counts %d %d", s.NumVertices(), s.NumTriangles())
	}
	tri := s.Triangle(1)
	if tri[2] != (ms3.Vec{Z: 2}) {
		t.Errorf("bad triangle %v", tri)
	}
	if got := s.AppendTriangles(nil); len(got) != 2 {
		t.Errorf("want 2 triangles, got %d", len(got))
	}
	bb := s.Bounds()
	if bb.Max != (ms3.Vec{X: 1, Y: 1, Z: 2}) {
		t.Errorf("bad bounds %+v", bb)
	}
	if !(Surface{}).Empty() {
		t.Error("zero surface should be empty")
	}
}

func TestQuantile(t *testing.T) {
	verts := make([]ms3.Vec, 5)
	f, err := NewScalarField(verts, []float32{3, 1, math32.NaN(), 2, 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, test := range []struct {
		p    float64
		want float32
	}{
		{p: 0, want: 1},
		{p: 0.5, want: 2},
		{p: 0.75, want: 3},
		{p: 1, want: 5},
	} {
		if got := f.Quantile(test.p); got != test.want {
			t.Errorf("quantile %v: got %v, want %v", test.p, got, test.want)
		}
	}
	if got := len(f.FiniteValues()); got != 4 {
		t.Errorf("got %d finite values, want 4", got)
	}
}
