package mcube

import (
	"errors"
	"math/bits"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

func unitCell(values [8]float32) Cell {
	var c Cell
	c.Val = values
	for l := range c.Pos {
		cc := vertCoord[l]
		c.Pos[l] = ms3.Vec{X: float32(cc[0]), Y: float32(cc[1]), Z: float32(cc[2])}
	}
	return c
}

func TestTableConsistency(t *testing.T) {
	maxTri := 0
	for code := 0; code < 256; code++ {
		edges := edgeTable[code]
		tri := triTable[code]
		if len(tri)%3 != 0 {
			t.Errorf("code %#x: triangle pattern length %d not multiple of 3", code, len(tri))
		}
		for _, pos := range tri {
			if int(pos) >= len(edges) {
				t.Errorf("code %#x: triangle references position %d, only %d active edges", code, pos, len(edges))
			}
		}
		// An edge is active iff its corners classify differently.
		var want []uint8
		for e := uint8(0); e < 12; e++ {
			a, b := EdgeVerts(e)
			if (code>>a)&1 != (code>>b)&1 {
				want = append(want, e)
			}
		}
		if len(want) != len(edges) {
			t.Fatalf("code %#x: got active edges %v, want %v", code, edges, want)
		}
		for i := range want {
			if want[i] != edges[i] {
				t.Fatalf("code %#x: got active edges %v, want %v", code, edges, want)
			}
		}
		// Every active edge is used by at least one triangle.
		used := make([]bool, len(edges))
		for _, pos := range tri {
			used[pos] = true
		}
		for i, u := range used {
			if !u {
				t.Errorf("code %#x: active edge %d unused by triangulation", code, edges[i])
			}
		}
		if len(tri)/3 > maxTri {
			maxTri = len(tri) / 3
		}
	}
	if maxTri != MaxTriangles {
		t.Errorf("mismatch marching cubes max triangles. got %d. want %d", maxTri, MaxTriangles)
	}
}

func TestTableComplementSymmetry(t *testing.T) {
	// Swapping above and below corners crosses the same edges.
	for code := 0; code < 256; code++ {
		a, b := edgeTable[code], edgeTable[255-code]
		if len(a) != len(b) {
			t.Fatalf("code %#x and complement differ in active edges: %v vs %v", code, a, b)
		}
	}
	if len(edgeTable[0]) != 0 || len(triTable[0]) != 0 || len(edgeTable[255]) != 0 || len(triTable[255]) != 0 {
		t.Fatal("degenerate codes must have empty tables")
	}
}

func TestEdgeAndCornerConvention(t *testing.T) {
	for e := uint8(0); e < 12; e++ {
		a, b := EdgeVerts(e)
		ca, cb := CornerCoord(a), CornerCoord(b)
		diff := 0
		axis := -1
		for i := 0; i < 3; i++ {
			if ca[i] != cb[i] {
				diff++
				axis = i
			}
		}
		if diff != 1 {
			t.Fatalf("edge %d joins non adjacent corners %d and %d", e, a, b)
		}
		if axis != int(e/4) {
			t.Errorf("edge %d runs along axis %d, want %d", e, axis, e/4)
		}
	}
	for l := uint8(0); l < 8; l++ {
		c := CornerCoord(l)
		if c != [3]uint8{l & 1, (l >> 1) & 1, (l >> 2) & 1} {
			t.Errorf("corner %d coordinate %v does not follow bit convention", l, c)
		}
	}
}

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		values    [8]float32
		threshold float32
		want      uint8
	}{
		{values: [8]float32{}, threshold: 0.5, want: 0},
		{values: [8]float32{1, 1, 1, 1, 1, 1, 1, 1}, threshold: 0.5, want: 0xff},
		{values: [8]float32{0, 0, 0, 0, 1, 1, 1, 1}, threshold: 0.5, want: 0xf0},
		{values: [8]float32{1, 0, 0, 0, 0, 0, 0, 0}, threshold: 0.5, want: 0x01},
		// Equal to threshold is not above.
		{values: [8]float32{0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}, threshold: 0.5, want: 0},
		{values: [8]float32{math32.NaN(), 1, 1, 1, 1, 1, 1, 1}, threshold: 0.5, want: 0xfe},
	} {
		got := Classify(test.values, test.threshold)
		if got != test.want {
			t.Errorf("Classify(%v, %v) = %#x, want %#x", test.values, test.threshold, got, test.want)
		}
	}
}

func TestHalfCubeScenario(t *testing.T) {
	c := unitCell([8]float32{0, 0, 0, 0, 1, 1, 1, 1})
	const threshold = 0.5
	code := Classify(c.Val, threshold)
	if code != 0xf0 {
		t.Fatalf("got code %#x, want 0xf0", code)
	}
	edges := EdgeTable(code)
	if len(edges) != 4 {
		t.Fatalf("want 4 active edges, got %v", edges)
	}
	for i, e := range edges {
		if e != uint8(8+i) {
			t.Fatalf("want vertical edges 8-11 active, got %v", edges)
		}
	}
	pts, _ := c.Crossings(nil, threshold)
	for _, p := range pts {
		if p.Z != 0.5 {
			t.Errorf("crossing %v not on mid height plane", p)
		}
	}
	var tris [MaxTriangles]ms3.Triangle
	n := c.Triangles(tris[:], threshold)
	if n != 2 {
		t.Fatalf("want 2 triangles, got %d", n)
	}
	for _, tri := range tris[:n] {
		normal := cross(tri)
		if normal.Z >= 0 {
			t.Errorf("triangle %v normal %v should point toward lower values (-Z)", tri, normal)
		}
	}
}

func TestFactorBounds(t *testing.T) {
	values := []float32{-3, -1, -0.25, 0, 0.1, 0.5, 1, 2, 7}
	for _, va := range values {
		for _, vb := range values {
			for _, th := range values {
				aboveA, aboveB := va > th, vb > th
				if aboveA == aboveB || va == vb {
					continue
				}
				f, ok := Factor(va, vb, th)
				if !ok {
					t.Fatalf("Factor(%v,%v,%v) reported degenerate", va, vb, th)
				}
				if f < 0 || f > 1 {
					t.Errorf("Factor(%v,%v,%v)=%v outside [0,1]", va, vb, th, f)
				}
			}
		}
	}
}

func TestDegenerateEdge(t *testing.T) {
	pa, pb := ms3.Vec{}, ms3.Vec{X: 2, Y: 4, Z: 6}
	f, ok := Factor(1, 1, 1)
	if ok || f != 0.5 {
		t.Errorf("degenerate factor got (%v, %v), want (0.5, false)", f, ok)
	}
	got := Interpolate(pa, pb, 1, 1, 1)
	if got != (ms3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("degenerate edge should resolve to midpoint, got %v", got)
	}
	_, err := InterpolateStrict(pa, pb, 1, 1, 1)
	if !errors.Is(err, isosurf.ErrDegenerateEdge) {
		t.Errorf("want ErrDegenerateEdge, got %v", err)
	}
	p, err := InterpolateStrict(pa, pb, 0, 2, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p != (ms3.Vec{X: 1, Y: 2, Z: 3}) {
		t.Errorf("got %v, want midpoint", p)
	}
}

func TestTrianglesAllCodes(t *testing.T) {
	// Every code produces as many triangles as its pattern describes and
	// none of them are degenerate on a unit cube with 0/1 values.
	var tris [MaxTriangles]ms3.Triangle
	for code := 0; code < 256; code++ {
		var vals [8]float32
		for l := range vals {
			if code&(1<<l) != 0 {
				vals[l] = 1
			}
		}
		c := unitCell(vals)
		n := c.Triangles(tris[:], 0.5)
		if n != len(triTable[code])/3 {
			t.Fatalf("code %#x: got %d triangles, want %d", code, n, len(triTable[code])/3)
		}
		if (code == 0 || code == 255) != (n == 0) {
			t.Errorf("code %#x with %d corners above produced %d triangles", code, bits.OnesCount8(uint8(code)), n)
		}
		for _, tri := range tris[:n] {
			if ms3.Norm(cross(tri)) < 1e-6 {
				t.Errorf("code %#x: degenerate triangle %v", code, tri)
			}
		}
	}
}

// faceCorners lists the 4 corners of each cube face.
func faceCorners() (faces [6][4]uint8) {
	for axis := 0; axis < 3; axis++ {
		for side := uint8(0); side < 2; side++ {
			n := 0
			for l := uint8(0); l < 8; l++ {
				if vertCoord[l][axis] == side {
					faces[2*axis+int(side)][n] = l
					n++
				}
			}
		}
	}
	return faces
}

func onFace(face [4]uint8, edge uint8) bool {
	a, b := EdgeVerts(edge)
	in := 0
	for _, l := range face {
		if l == a || l == b {
			in++
		}
	}
	return in == 2
}

func TestFaceSegments(t *testing.T) {
	// The triangle edges lying on a face must be exactly its boundary
	// segments, which the neighbouring cell reproduces from the same face
	// signs. On an ambiguous face each segment cuts off one above
	// threshold corner. No other triangle edge may join two crossings of
	// the same face.
	type pair [2]uint8
	for code := 0; code < 256; code++ {
		edges, tri := edgeTable[code], triTable[code]
		above := func(l uint8) bool { return code&(1<<l) != 0 }
		for fi, face := range faceCorners() {
			var onf []uint8
			for _, e := range edges {
				if onFace(face, e) {
					onf = append(onf, e)
				}
			}
			want := make(map[pair]int)
			switch len(onf) {
			case 0:
			case 2:
				want[pair{onf[0], onf[1]}] = 1
			case 4:
				for _, l := range face {
					if !above(l) {
						continue
					}
					var p []uint8
					for _, e := range onf {
						a, b := EdgeVerts(e)
						if a == l || b == l {
							p = append(p, e)
						}
					}
					want[pair{p[0], p[1]}] = 1
				}
			default:
				t.Fatalf("code %#x face %d: %d crossings", code, fi, len(onf))
			}
			got := make(map[pair]int)
			for i := 0; i < len(tri); i += 3 {
				for k := 0; k < 3; k++ {
					a, b := edges[tri[i+k]], edges[tri[i+(k+1)%3]]
					if !onFace(face, a) || !onFace(face, b) {
						continue
					}
					if a > b {
						a, b = b, a
					}
					got[pair{a, b}]++
				}
			}
			if len(got) != len(want) {
				t.Errorf("code %#x face %d: got face segments %v, want %v", code, fi, got, want)
				continue
			}
			for p, n := range want {
				if got[p] != n {
					t.Errorf("code %#x face %d: got face segments %v, want %v", code, fi, got, want)
					break
				}
			}
		}
	}
}

func cross(t ms3.Triangle) ms3.Vec {
	return ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
}
