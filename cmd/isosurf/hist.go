package main

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func newHistCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hist",
		Short: "Summarize the field values to help pick a threshold",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHist(cmd.Context(), v)
		},
	}
	fs := cmd.Flags()
	addSourceFlags(fs)
	fs.Int("bins", 50, "histogram bins")
	fs.String("out", "", "histogram PNG output file, empty to only log the summary")
	return cmd
}

// quantiles are logged by hist.
var quantiles = []float64{0.05, 0.25, 0.5, 0.75, 0.95}

func runHist(ctx context.Context, v *viper.Viper) error {
	field, _, err := loadField(ctx, v)
	if err != nil {
		return err
	}
	x := field.FiniteValues()
	if len(x) == 0 {
		return fmt.Errorf("field has no finite values")
	}
	mean, std := stat.MeanStdDev(x, nil)
	fields := logrus.Fields{
		"n":    len(x),
		"min":  floats.Min(x),
		"max":  floats.Max(x),
		"mean": mean,
		"std":  std,
	}
	for _, p := range quantiles {
		fields[fmt.Sprintf("q%02.0f", 100*p)] = stat.Quantile(p, stat.Empirical, x, nil)
	}
	logrus.WithFields(fields).Info("field values")

	out := v.GetString("out")
	if out == "" {
		return nil
	}
	h, err := plotter.NewHist(plotter.Values(x), v.GetInt("bins"))
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Field values"
	p.X.Label.Text = "value"
	p.Y.Label.Text = "vertices"
	p.Add(h)
	if err := p.Save(6*vg.Inch, 4*vg.Inch, out); err != nil {
		return err
	}
	logrus.WithField("file", out).Info("wrote histogram")
	return nil
}
