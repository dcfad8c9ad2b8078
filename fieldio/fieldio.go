// Package fieldio loads and stores scalar fields as three flat little endian
// binary arrays: vertex positions (3 float32 per vertex), cell connectivity
// (8 uint32 per cell) and scalar values (1 float32 per vertex). An optional
// TOML metadata file records the structured extents of the field.
package fieldio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/soypat/isosurf"
	"golang.org/x/sync/errgroup"
)

// File names used by Write and DirSources.
const (
	PositionsFile    = "positions.bin"
	ConnectivityFile = "connectivity.bin"
	ValuesFile       = "values.bin"
	MetaFile         = "field.toml"
)

// Sources are the three buffers of a field and its optional metadata.
type Sources struct {
	Positions    Source
	Connectivity Source
	Values       Source
	// Meta is not read by Load. See LoadMeta.
	Meta Source
}

// DirSources returns the sources of a field written by Write to dir.
func DirSources(dir string) Sources {
	return Sources{
		Positions:    FileSource(filepath.Join(dir, PositionsFile)),
		Connectivity: FileSource(filepath.Join(dir, ConnectivityFile)),
		Values:       FileSource(filepath.Join(dir, ValuesFile)),
		Meta:         FileSource(filepath.Join(dir, MetaFile)),
	}
}

// URLSources returns the sources of a field served under base, laid out as
// Write lays out a directory.
func URLSources(base string, client *http.Client) (Sources, error) {
	u, err := url.Parse(base)
	if err != nil {
		return Sources{}, err
	}
	src := func(name string) Source {
		return &HTTPSource{URL: u.JoinPath(name).String(), Client: client}
	}
	return Sources{
		Positions:    src(PositionsFile),
		Connectivity: src(ConnectivityFile),
		Values:       src(ValuesFile),
		Meta:         src(MetaFile),
	}, nil
}

// Load fetches the three field buffers concurrently and returns the
// validated field once all of them arrived. The first failure cancels the
// remaining fetches. Every error wraps isosurf.ErrLoad and no field is
// returned alongside an error.
func Load(ctx context.Context, src Sources) (*isosurf.ScalarField, error) {
	if src.Positions == nil || src.Connectivity == nil || src.Values == nil {
		return nil, fmt.Errorf("%w: missing buffer source", isosurf.ErrLoad)
	}
	var (
		positions, values []float32
		connectivity      []uint32
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		positions, err = loadFloat32s(gctx, "positions", src.Positions)
		return err
	})
	g.Go(func() error {
		b, err := readAll(gctx, src.Connectivity)
		if err == nil {
			connectivity, err = DecodeUint32s(b)
		}
		if err != nil {
			return fmt.Errorf("connectivity: %w", err)
		}
		return nil
	})
	g.Go(func() (err error) {
		values, err = loadFloat32s(gctx, "values", src.Values)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", isosurf.ErrLoad, err)
	}
	field, err := isosurf.FromBuffers(positions, connectivity, values)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", isosurf.ErrLoad, err)
	}
	return field, nil
}

func loadFloat32s(ctx context.Context, name string, s Source) ([]float32, error) {
	b, err := readAll(ctx, s)
	var f []float32
	if err == nil {
		f, err = DecodeFloat32s(b)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

func readAll(ctx context.Context, s Source) ([]byte, error) {
	rc, err := s.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Write stores the field buffers in dir, creating it if needed.
func Write(dir string, field *isosurf.ScalarField) error {
	if field == nil {
		return errors.New("nil scalar field")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	vertices := field.Vertices()
	positions := make([]float32, 0, 3*len(vertices))
	for _, v := range vertices {
		positions = append(positions, v.X, v.Y, v.Z)
	}
	cells := field.Cells()
	connectivity := make([]uint32, 0, 8*len(cells))
	for _, c := range cells {
		connectivity = append(connectivity, c[:]...)
	}
	for _, f := range []struct {
		name string
		data []byte
	}{
		{name: PositionsFile, data: EncodeFloat32s(nil, positions)},
		{name: ConnectivityFile, data: EncodeUint32s(nil, connectivity)},
		{name: ValuesFile, data: EncodeFloat32s(nil, field.Values())},
	} {
		if err := os.WriteFile(filepath.Join(dir, f.name), f.data, 0o644); err != nil {
			return err
		}
	}
	return nil
}

// Meta describes how a field's vertices are laid out.
type Meta struct {
	Nx int `toml:"nx"`
	Ny int `toml:"ny"`
	Nz int `toml:"nz"`
	Nb int `toml:"nb"`
	// Function names the analytic function a synthetic field sampled.
	Function string `toml:"function,omitempty"`
}

// MetaOf returns the metadata describing ext.
func MetaOf(ext isosurf.Extents) Meta {
	return Meta{Nx: ext.Nx, Ny: ext.Ny, Nz: ext.Nz, Nb: ext.Nb}
}

// Extents returns the structured extents recorded in m.
func (m Meta) Extents() isosurf.Extents {
	return isosurf.Extents{Nx: m.Nx, Ny: m.Ny, Nz: m.Nz, Nb: m.Nb}
}

// WriteMeta stores m as MetaFile in dir.
func WriteMeta(dir string, m Meta) error {
	b, err := toml.Marshal(m)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, MetaFile), b, 0o644)
}

// LoadMeta reads field metadata. Unknown keys are rejected.
func LoadMeta(ctx context.Context, s Source) (Meta, error) {
	var m Meta
	if s == nil {
		return m, fmt.Errorf("%w: missing metadata source", isosurf.ErrLoad)
	}
	rc, err := s.Open(ctx)
	if err != nil {
		return m, fmt.Errorf("%w: metadata: %w", isosurf.ErrLoad, err)
	}
	defer rc.Close()
	dec := toml.NewDecoder(rc)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return m, fmt.Errorf("%w: metadata: %w", isosurf.ErrLoad, err)
	}
	return m, nil
}
