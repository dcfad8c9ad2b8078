// Package preview renders offscreen PNG previews of isosurfaces.
package preview

import (
	"errors"
	"image"

	"github.com/fogleman/fauxgl"
	"github.com/nfnt/resize"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/render"
)

// Options configure a preview render. Zero fields take the defaults of
// DefaultOptions.
type Options struct {
	Width, Height int
	// Supersample renders at a multiple of the output size and downsamples
	// for antialiasing.
	Supersample int
	// Eye is the camera position looking at the origin after the surface
	// was fit in a bi-unit cube.
	Eye ms3.Vec
	Up  ms3.Vec
	// Color and Background are hex colors.
	Color      string
	Background string
	// WeldTol enables smooth shading, welding vertices closer than WeldTol.
	WeldTol float32
	// Flip reverses the normals. Surfaces point toward decreasing values,
	// so the inside of a signed distance field is lit only when flipped.
	Flip bool
}

// DefaultOptions is an isometric view.
var DefaultOptions = Options{
	Width:       768,
	Height:      432,
	Supersample: 1,
	Eye:         ms3.Vec{X: 2.4, Y: 2.4, Z: 2.4},
	Up:          ms3.Vec{Z: 1},
	Color:       "#468966",
	Background:  "#FFF8E3",
}

func (o Options) withDefaults() Options {
	d := DefaultOptions
	if o.Width <= 0 || o.Height <= 0 {
		o.Width, o.Height = d.Width, d.Height
	}
	if o.Supersample <= 0 {
		o.Supersample = d.Supersample
	}
	if o.Eye == (ms3.Vec{}) {
		o.Eye = d.Eye
	}
	if o.Up == (ms3.Vec{}) {
		o.Up = d.Up
	}
	if o.Color == "" {
		o.Color = d.Color
	}
	if o.Background == "" {
		o.Background = d.Background
	}
	return o
}

// Render draws s with a Phong shader.
func Render(s isosurf.Surface, opts Options) (image.Image, error) {
	if s.Empty() {
		return nil, errors.New("empty surface")
	}
	opts = opts.withDefaults()
	mesh := toMesh(s, opts)
	const (
		fovy = 30 // vertical field of view in degrees
		near = 1
		far  = 10
	)
	var (
		eye    = fauxgl.V(float64(opts.Eye.X), float64(opts.Eye.Y), float64(opts.Eye.Z))
		center = fauxgl.V(0, 0, 0)
		up     = fauxgl.V(float64(opts.Up.X), float64(opts.Up.Y), float64(opts.Up.Z))
		light  = fauxgl.V(-0.75, 1, 0.25).Normalize()
	)
	// Fit mesh in a bi-unit cube centered at the origin.
	mesh.BiUnitCube()
	w, h := opts.Width*opts.Supersample, opts.Height*opts.Supersample
	context := fauxgl.NewContext(w, h)
	context.ClearColorBufferWith(fauxgl.HexColor(opts.Background))
	aspect := float64(opts.Width) / float64(opts.Height)
	matrix := fauxgl.LookAt(eye, center, up).Perspective(fovy, aspect, near, far)
	shader := fauxgl.NewPhongShader(matrix, light, eye)
	shader.ObjectColor = fauxgl.HexColor(opts.Color)
	context.Shader = shader
	context.DrawMesh(mesh)
	img := context.Image()
	if opts.Supersample > 1 {
		img = resize.Resize(uint(opts.Width), uint(opts.Height), img, resize.Bilinear)
	}
	return img, nil
}

// SavePNG renders s and writes the image to path.
func SavePNG(path string, s isosurf.Surface, opts Options) error {
	img, err := Render(s, opts)
	if err != nil {
		return err
	}
	return fauxgl.SavePNG(path, img)
}

func toMesh(s isosurf.Surface, opts Options) *fauxgl.Mesh {
	var normals []float32
	if opts.WeldTol > 0 {
		normals = render.SmoothNormals(s, opts.WeldTol)
	} else {
		normals = render.FlatNormals(s)
	}
	sign := 1.0
	if opts.Flip {
		sign = -1
	}
	vertex := func(i uint32) fauxgl.Vertex {
		return fauxgl.Vertex{
			Position: fauxgl.V(float64(s.Verts[3*i]), float64(s.Verts[3*i+1]), float64(s.Verts[3*i+2])),
			Normal:   fauxgl.V(float64(normals[3*i]), float64(normals[3*i+1]), float64(normals[3*i+2])).MulScalar(sign),
		}
	}
	tris := make([]*fauxgl.Triangle, 0, s.NumTriangles())
	for it := 0; it < s.NumTriangles(); it++ {
		a, b, c := vertex(s.Indices[3*it]), vertex(s.Indices[3*it+1]), vertex(s.Indices[3*it+2])
		if opts.Flip {
			b, c = c, b
		}
		tris = append(tris, fauxgl.NewTriangle(a, b, c))
	}
	return fauxgl.NewTriangleMesh(tris)
}
