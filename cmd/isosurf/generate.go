package main

import (
	"github.com/sirupsen/logrus"
	"github.com/soypat/glgl/math/ms3"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/fieldio"
	"github.com/soypat/isosurf/helpers/fieldgen"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newGenerateCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Sample an analytic function on a structured hexahedral grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(v)
		},
	}
	fs := cmd.Flags()
	fs.String("out", "field", "output directory")
	fs.String("shape", "sphere", "sampled function: sphere, box, torus or gyroid")
	fs.Float64("size", 2, "edge length of the sampled cube centered at the origin")
	fs.Int("nx", 33, "vertices per block along x")
	fs.Int("ny", 33, "vertices per block along y")
	fs.Int("nz", 17, "vertices per block along z")
	fs.Int("nb", 2, "blocks stacked along z")
	fs.Bool("negate", false, "flip the sign of the sampled function")
	return cmd
}

func runGenerate(v *viper.Viper) error {
	size := float32(v.GetFloat64("size"))
	shape := v.GetString("shape")
	f, err := fieldgen.Named(shape, size)
	if err != nil {
		return err
	}
	if v.GetBool("negate") {
		f = fieldgen.Negate(f)
	}
	half := size / 2
	g := fieldgen.Grid{
		Extents: isosurf.Extents{Nx: v.GetInt("nx"), Ny: v.GetInt("ny"), Nz: v.GetInt("nz"), Nb: v.GetInt("nb")},
		Bounds:  ms3.Box{Min: ms3.Vec{X: -half, Y: -half, Z: -half}, Max: ms3.Vec{X: half, Y: half, Z: half}},
	}
	field, err := g.Sample(f)
	if err != nil {
		return err
	}
	out := v.GetString("out")
	if err := fieldio.Write(out, field); err != nil {
		return err
	}
	meta := fieldio.MetaOf(g.Extents)
	meta.Function = shape
	if err := fieldio.WriteMeta(out, meta); err != nil {
		return err
	}
	lo, hi := field.Range()
	logrus.WithFields(logrus.Fields{
		"dir":     out,
		"shape":   shape,
		"extents": g.Extents.String(),
		"cells":   len(field.Cells()),
		"min":     lo,
		"max":     hi,
	}).Info("wrote field")
	return nil
}
