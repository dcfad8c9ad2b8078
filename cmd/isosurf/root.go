package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf"
	"github.com/soypat/isosurf/fieldio"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "ISOSURF"

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:           "isosurf",
		Short:         "Isosurface extraction with adaptive level of detail",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := bindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			if err := readConfig(v); err != nil {
				return err
			}
			return setupLogging(v)
		},
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default isosurf.toml in the working directory)")
	pf.String("log-level", "info", "log level: debug, info, warn or error")
	pf.String("log-format", "text", "log format: text or json")
	root.AddCommand(
		newGenerateCmd(v),
		newExtractCmd(v),
		newHistCmd(v),
		newServeCmd(v),
	)
	return root
}

// bindFlags makes flags visible through v so that a value can come from the
// command line, the environment or the config file, in that order.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v.BindPFlags(fs)
}

func readConfig(v *viper.Viper) error {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		return v.ReadInConfig()
	}
	v.SetConfigName("isosurf")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

func setupLogging(v *viper.Viper) error {
	level, err := logrus.ParseLevel(v.GetString("log-level"))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)
	switch format := v.GetString("log-format"); format {
	case "text":
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	return nil
}

// addSourceFlags registers the flags selecting where a field is loaded from.
func addSourceFlags(fs *pflag.FlagSet) {
	fs.String("dir", "", "directory holding the field buffers")
	fs.String("url", "", "base URL serving the field buffers")
	fs.Duration("timeout", time.Minute, "field load timeout")
}

func sourcesFromFlags(v *viper.Viper) (fieldio.Sources, error) {
	dir, url := v.GetString("dir"), v.GetString("url")
	switch {
	case dir != "" && url != "":
		return fieldio.Sources{}, errors.New("set only one of --dir and --url")
	case dir != "":
		return fieldio.DirSources(dir), nil
	case url != "":
		return fieldio.URLSources(url, http.DefaultClient)
	}
	return fieldio.Sources{}, errors.New("missing --dir or --url")
}

// loadField loads the field the source flags point at, with its metadata
// when present.
func loadField(ctx context.Context, v *viper.Viper) (*isosurf.ScalarField, *fieldio.Meta, error) {
	src, err := sourcesFromFlags(v)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, v.GetDuration("timeout"))
	defer cancel()
	start := time.Now()
	field, err := fieldio.Load(ctx, src)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.WithFields(logrus.Fields{
		"vertices": len(field.Vertices()),
		"cells":    len(field.Cells()),
		"elapsed":  time.Since(start).Round(time.Millisecond),
	})
	meta, err := fieldio.LoadMeta(ctx, src.Meta)
	if err != nil {
		log.WithError(err).Debug("no field metadata")
		log.Info("loaded field")
		return field, nil, nil
	}
	if err := meta.Extents().Validate(len(field.Vertices())); err != nil {
		return nil, nil, fmt.Errorf("field metadata: %w", err)
	}
	log.WithField("extents", meta.Extents().String()).Info("loaded field")
	return field, &meta, nil
}

// threshold returns the threshold flag or the median of the field when unset.
func threshold(v *viper.Viper, field *isosurf.ScalarField) float32 {
	if v.IsSet("threshold") {
		return float32(v.GetFloat64("threshold"))
	}
	th := field.Quantile(0.5)
	logrus.WithField("threshold", th).Info("threshold defaults to median value")
	return th
}
