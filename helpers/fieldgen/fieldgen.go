// Package fieldgen builds structured hexahedral scalar fields by sampling
// analytic functions on a regular grid. The output is the same flat layout
// a loader delivers so it doubles as test and demo data.
package fieldgen

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
)

// Func is a scalar function of position.
type Func func(p ms3.Vec) float32

// Grid describes a sampling grid of Nb blocks stacked along z. Each block
// holds Nx*Ny*Nz vertices spanning Bounds scaled along z to its share of
// the stack. Adjacent blocks duplicate their shared vertex layer, like
// multi-block datasets do.
type Grid struct {
	Extents isosurf.Extents
	Bounds  ms3.Box
}

// Positions returns the vertex positions of the grid in index order.
func (g Grid) Positions() []ms3.Vec {
	e := g.Extents
	size := g.Bounds.Size()
	blockZ := size.Z / float32(e.Nb)
	pos := make([]ms3.Vec, e.NumVertices())
	for b := 0; b < e.Nb; b++ {
		for k := 0; k < e.Nz; k++ {
			for j := 0; j < e.Ny; j++ {
				for i := 0; i < e.Nx; i++ {
					pos[e.Index(b, isosurf.V3i{i, j, k})] = ms3.Vec{
						X: g.Bounds.Min.X + size.X*float32(i)/float32(e.Nx-1),
						Y: g.Bounds.Min.Y + size.Y*float32(j)/float32(e.Ny-1),
						Z: g.Bounds.Min.Z + blockZ*(float32(b)+float32(k)/float32(e.Nz-1)),
					}
				}
			}
		}
	}
	return pos
}

// Sample evaluates f at every grid vertex and returns the resulting field
// with full resolution cells.
func (g Grid) Sample(f Func) (*isosurf.ScalarField, error) {
	if err := g.Extents.Validate(g.Extents.NumVertices()); err != nil {
		return nil, err
	}
	sz := g.Bounds.Size()
	if !(sz.X > 0 && sz.Y > 0 && sz.Z > 0) {
		return nil, errors.New("grid bounds must have positive size")
	}
	pos := g.Positions()
	values := make([]float32, len(pos))
	for i, p := range pos {
		values[i] = f(p)
	}
	return isosurf.NewScalarField(pos, values, g.Extents.FineCells())
}

// Sphere is the signed distance to a sphere of radius r at the origin.
func Sphere(r float32) Func {
	return func(p ms3.Vec) float32 {
		return ms3.Norm(p) - r
	}
}

// Box is the signed distance to a box of half sizes d with edges rounded by r.
func Box(d ms3.Vec, r float32) Func {
	return func(p ms3.Vec) float32 {
		q := ms3.Add(ms3.Sub(ms3.AbsElem(p), d), ms3.Vec{X: r, Y: r, Z: r})
		return ms3.Norm(ms3.MaxElem(q, ms3.Vec{})) + math32.Min(math32.Max(q.X, math32.Max(q.Y, q.Z)), 0.0) - r
	}
}

// Torus is the signed distance to a torus in the xy plane with greater
// radius rGreater and ring radius rRing.
func Torus(rGreater, rRing float32) Func {
	t1 := rGreater - rRing
	return func(p ms3.Vec) float32 {
		q1 := math32.Hypot(p.X, p.Y) - t1
		return math32.Hypot(q1, p.Z) - rRing
	}
}

// Gyroid is the triply periodic gyroid function with the given period.
func Gyroid(period float32) Func {
	k := 2 * math32.Pi / period
	return func(p ms3.Vec) float32 {
		x, y, z := k*p.X, k*p.Y, k*p.Z
		return math32.Sin(x)*math32.Cos(y) + math32.Sin(y)*math32.Cos(z) + math32.Sin(z)*math32.Cos(x)
	}
}

// Negate flips the sign of f so the inside of a distance field is above zero.
func Negate(f Func) Func {
	return func(p ms3.Vec) float32 { return -f(p) }
}

// Named returns a function by name. It is used by command line tools.
func Named(name string, size float32) (Func, error) {
	switch name {
	case "sphere":
		return Sphere(size / 3), nil
	case "box":
		return Box(ms3.Vec{X: size / 4, Y: size / 5, Z: size / 6}, size/20), nil
	case "torus":
		return Torus(size/3, size/10), nil
	case "gyroid":
		return Gyroid(size / 2), nil
	}
	return nil, errors.New("unknown field function " + name + ", want sphere, box, torus or gyroid")
}
