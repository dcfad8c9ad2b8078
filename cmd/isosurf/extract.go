package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/internal/preview"
	"github.com/soypat/isosurf/lod"
	"github.com/soypat/isosurf/render"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newExtractCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the isosurface at a threshold to STL and PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runExtract(ctx, v)
		},
	}
	fs := cmd.Flags()
	addSourceFlags(fs)
	fs.Float64("threshold", 0, "isosurface threshold (default median field value)")
	fs.String("level", "fine", "resolution: fine or rough")
	fs.Int("block", lod.DefaultBlockSize, "fine cells per rough cell edge")
	fs.Bool("strict", false, "fail on active edges with equal corner values")
	fs.String("stl", "surface.stl", "binary STL output file, empty to skip")
	fs.String("png", "", "PNG preview output file")
	fs.Float64("weld", 0, "weld tolerance for smooth preview shading, 0 for flat shading")
	fs.Bool("flip", false, "flip preview normals, for signed distance fields")
	return cmd
}

func runExtract(ctx context.Context, v *viper.Viper) error {
	field, meta, err := loadField(ctx, v)
	if err != nil {
		return err
	}
	th := threshold(v, field)
	cells := field.Cells()
	switch level := v.GetString("level"); level {
	case "fine":
	case "rough":
		if meta == nil {
			return errors.New("rough extraction needs field metadata with the grid extents")
		}
		cells, err = lod.Coarsen(meta.Extents(), v.GetInt("block"))
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown level %q, want fine or rough", level)
	}
	start := time.Now()
	a := render.Assembler{Strict: v.GetBool("strict")}
	s, err := a.Assemble(field.Vertices(), field.Values(), cells, th)
	if err != nil {
		return err
	}
	logrus.WithFields(logrus.Fields{
		"threshold": th,
		"level":     v.GetString("level"),
		"cells":     len(cells),
		"triangles": s.NumTriangles(),
		"elapsed":   time.Since(start).Round(time.Millisecond),
	}).Info("assembled isosurface")
	if s.Empty() {
		logrus.WithField("threshold", th).Warn("threshold does not cross the field")
		return nil
	}
	return writeOutputs(v, s)
}

func writeOutputs(v *viper.Viper, s isosurf.Surface) error {
	if path := v.GetString("stl"); path != "" {
		if err := render.CreateSTL(path, s); err != nil {
			return err
		}
		logrus.WithField("file", path).Info("wrote STL")
	}
	if path := v.GetString("png"); path != "" {
		opts := preview.Options{
			WeldTol: float32(v.GetFloat64("weld")),
			Flip:    v.GetBool("flip"),
		}
		if err := preview.SavePNG(path, s, opts); err != nil {
			return err
		}
		logrus.WithField("file", path).Info("wrote preview")
	}
	return nil
}
