package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
	// degenerateTol is the doubled triangle area under which a facet is written with a zero normal.
	degenerateTol = 1e-12
)

// CreateSTL writes the surface to a binary STL file at path.
func CreateSTL(path string, s isosurf.Surface) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	// Do not write header.
	_, err = file.Seek(stlHeaderSize, 0)
	if err != nil {
		return err
	}
	rd := &stlReader{
		r: NewSurfaceRenderer(s),
	}
	n, err := io.CopyBuffer(file, rd, make([]byte, stlTriangleSize*trianglesInBuffer))
	if err != nil {
		return err
	}
	_, err = file.Seek(0, 0)
	if err != nil {
		return err
	}
	header := stlHeader{
		Count: uint32(n / stlTriangleSize),
	}
	var buf [stlHeaderSize]byte
	header.put(buf[:])
	_, err = file.Write(buf[:])
	return err
}

// WriteSTL writes the surface triangles to a writer in binary STL format.
func WriteSTL(w io.Writer, s isosurf.Surface) (int, error) {
	if s.Empty() {
		return 0, errors.New("empty surface")
	}
	nt := int64(s.NumTriangles()) // int64 cast so that next line works correctly on 32bit machines.
	if nt > math.MaxUint32 {
		return 0, errors.New("amount of triangles in surface exceeds STL design limits")
	}
	header := stlHeader{
		Count: uint32(nt),
	}
	var buf [stlHeaderSize]byte
	header.put(buf[:])
	n, err := w.Write(buf[:])
	if err != nil {
		return n, err
	} else if n != len(buf) {
		return n, io.ErrShortWrite
	}
	for i := 0; i < int(nt); i++ {
		triangleToSTL(s.Triangle(i)).put(buf[:])
		ngot, err := w.Write(buf[:stlTriangleSize])
		n += ngot
		if err != nil {
			return n, err
		} else if ngot != stlTriangleSize {
			return n, io.ErrShortWrite
		}
	}
	return n, nil
}

const trianglesInBuffer = 1 << 10

// stlReader encodes triangles read from a Renderer as STL facets.
type stlReader struct {
	r   Renderer
	buf [trianglesInBuffer]ms3.Triangle
	eof bool
}

func (sr *stlReader) Read(b []byte) (int, error) {
	ntMax := min(len(b)/stlTriangleSize, len(sr.buf))
	if sr.eof {
		return 0, io.EOF
	} else if ntMax == 0 {
		return 0, errors.New("stlReader requires at least 50 bytes to write a single triangle")
	}
	nt, err := sr.r.ReadTriangles(sr.buf[:ntMax])
	if nt > ntMax {
		panic("bug: ReadTriangles read more triangles than available in buffer")
	}
	for i, triangle := range sr.buf[:nt] {
		triangleToSTL(triangle).put(b[i*stlTriangleSize:])
	}
	if err == io.EOF {
		sr.eof = true
		err = nil
		if nt == 0 {
			err = io.EOF
		}
	}
	return nt * stlTriangleSize, err
}

// ReadSTL reads a binary STL stream. Degenerate facets are accepted since
// marching cubes emits them where the surface crosses a vertex exactly.
func ReadSTL(r io.Reader) (output []ms3.Triangle, readErr error) {
	var hbuf [stlHeaderSize]byte
	if _, err := io.ReadFull(r, hbuf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, errors.New("encountered EOF while reading STL header")
		}
		return nil, errors.New("STL header read failed: " + err.Error())
	}
	count := binary.LittleEndian.Uint32(hbuf[80:])
	if count == 0 {
		return nil, errors.New("STL header indicates 0 triangles present")
	}
	var (
		buf [stlTriangleSize]byte
		d   stlTriangle
		i   int
	)
	defer func() {
		if readErr != nil && !errors.Is(readErr, errCalculatedNormalMismatch) {
			readErr = fmt.Errorf("%d/%d STL triangles read: %w", i+1, count, readErr)
		}
	}()
	output = make([]ms3.Triangle, 0, count)
	for i = 0; i < int(count); i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return nil, err
		}
		d.get(buf[:])
		if err := d.validate(); err != nil {
			if !errors.Is(err, errCalculatedNormalMismatch) {
				return nil, err
			}
			readErr = err
		}
		output = append(output, d.Triangle())
	}
	// NormalMismatch error validation may be returned.
	return output, readErr
}

// stlHeader defines the STL file header.
type stlHeader struct {
	_     [80]uint8 // Header
	Count uint32    // Number of triangles
}

func (h stlHeader) put(b []byte) {
	_ = b[83] //early bounds check
	binary.LittleEndian.PutUint32(b[80:], h.Count)
}

// stlTriangle defines the triangle data within an STL file.
type stlTriangle struct {
	Normal  [3]float32
	Vertex1 [3]float32
	Vertex2 [3]float32
	Vertex3 [3]float32
	_       uint16 // Attribute byte count
}

func triangleToSTL(t ms3.Triangle) (d stlTriangle) {
	if norm, ok := unitNormal(t); ok {
		d.Normal = [3]float32{norm.X, norm.Y, norm.Z}
	}
	d.Vertex1 = [3]float32{t[0].X, t[0].Y, t[0].Z}
	d.Vertex2 = [3]float32{t[1].X, t[1].Y, t[1].Z}
	d.Vertex3 = [3]float32{t[2].X, t[2].Y, t[2].Z}
	return d
}

func (t stlTriangle) put(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to marshal stlTriangle")
	}
	put3F32(b, t.Normal)
	put3F32(b[12:], t.Vertex1)
	put3F32(b[24:], t.Vertex2)
	put3F32(b[36:], t.Vertex3)
	binary.LittleEndian.PutUint16(b[48:], 0) // Zero out attributes.
}

func (t *stlTriangle) get(b []byte) {
	if len(b) < stlTriangleSize {
		panic("need length 50 to unmarshal stlTriangle")
	}
	get3F32(b, &t.Normal)
	get3F32(b[12:], &t.Vertex1)
	get3F32(b[24:], &t.Vertex2)
	get3F32(b[36:], &t.Vertex3)
	// no attributes supported yet.
}

func put3F32(b []byte, f [3]float32) {
	_ = b[11] // early bounds check
	binary.LittleEndian.PutUint32(b, math.Float32bits(f[0]))
	binary.LittleEndian.PutUint32(b[4:], math.Float32bits(f[1]))
	binary.LittleEndian.PutUint32(b[8:], math.Float32bits(f[2]))
}

func get3F32(b []byte, f *[3]float32) {
	_ = b[11] // early bounds check
	f[0] = math.Float32frombits(binary.LittleEndian.Uint32(b))
	f[1] = math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))
	f[2] = math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))
}

func bad3F32(f [3]float32) bool {
	return math32.IsNaN(f[0]) || math32.IsInf(f[0], 0) ||
		math32.IsNaN(f[1]) || math32.IsInf(f[1], 0) ||
		math32.IsNaN(f[2]) || math32.IsInf(f[2], 0)
}

var errCalculatedNormalMismatch = errors.New("triangle normal not approximately equal to calculated normal from vertices")

func (t stlTriangle) validate() error {
	const normTol = 5e-2
	if bad3F32(t.Normal) {
		return errors.New("inf/NaN STL triangle normal")
	}
	if bad3F32(t.Vertex1) || bad3F32(t.Vertex2) || bad3F32(t.Vertex3) {
		return errors.New("inf/NaN STL triangle vertex")
	}
	calcNormal, ok := unitNormal(t.Triangle())
	if !ok {
		return nil
	}
	gotNormal := vecFromArray(t.Normal)
	calcNormalNeg := ms3.Scale(-1, calcNormal)
	if !equalElem(calcNormal, gotNormal, normTol) && !equalElem(calcNormalNeg, gotNormal, normTol) {
		return errCalculatedNormalMismatch // sometimes may fail
	}
	return nil
}

// equalElem reports whether every component of a and b differs by at most tol.
func equalElem(a, b ms3.Vec, tol float32) bool {
	return math32.Abs(a.X-b.X) <= tol && math32.Abs(a.Y-b.Y) <= tol && math32.Abs(a.Z-b.Z) <= tol
}

func vecFromArray(f [3]float32) ms3.Vec {
	return ms3.Vec{X: f[0], Y: f[1], Z: f[2]}
}

func (t stlTriangle) Triangle() ms3.Triangle {
	return ms3.Triangle{vecFromArray(t.Vertex1), vecFromArray(t.Vertex2), vecFromArray(t.Vertex3)}
}

// unitNormal returns the unit right hand normal of t. ok is false for
// triangles with (near) zero area.
func unitNormal(t ms3.Triangle) (n ms3.Vec, ok bool) {
	n = ms3.Cross(ms3.Sub(t[1], t[0]), ms3.Sub(t[2], t[0]))
	norm := ms3.Norm(n)
	if norm <= degenerateTol || math32.IsNaN(norm) {
		return ms3.Vec{}, false
	}
	return ms3.Scale(1/norm, n), true
}
