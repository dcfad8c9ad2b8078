package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf/lod"
	"github.com/soypat/isosurf/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream isosurfaces over WebSocket with adaptive level of detail",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, v)
		},
	}
	fs := cmd.Flags()
	addSourceFlags(fs)
	fs.String("addr", ":8080", "listen address")
	fs.String("path", "/ws", "WebSocket endpoint path")
	fs.Float64("threshold", 0, "initial threshold of new sessions (default median field value)")
	fs.Int("block", lod.DefaultBlockSize, "fine cells per rough cell edge")
	fs.Duration("delay", lod.DefaultDelay, "quiet time before refining to full resolution")
	fs.Float64("step", 0, "threshold step of the client control (default value range/100)")
	fs.Float64("half-width", lod.DefaultHalfWidthSteps, "half width of the full resolution interval in steps")
	fs.Bool("any-origin", false, "accept WebSocket requests from any origin")
	fs.Bool("watch", false, "reload the field when its files change, needs --dir")
	return cmd
}

func runServe(ctx context.Context, v *viper.Viper) error {
	field, meta, err := loadField(ctx, v)
	if err != nil {
		return err
	}
	if meta == nil {
		return errors.New("serving needs field metadata with the grid extents")
	}
	cfg := server.Config{
		LOD: lod.Config{
			Extents:        meta.Extents(),
			BlockSize:      v.GetInt("block"),
			Delay:          v.GetDuration("delay"),
			Step:           float32(v.GetFloat64("step")),
			HalfWidthSteps: float32(v.GetFloat64("half-width")),
		},
		Logger: logrus.StandardLogger(),
	}
	if v.IsSet("threshold") {
		th := float32(v.GetFloat64("threshold"))
		cfg.Threshold = &th
	}
	if v.GetBool("any-origin") {
		cfg.CheckOrigin = func(r *http.Request) bool { return true }
	}
	srv, err := server.New(field, cfg)
	if err != nil {
		return err
	}
	defer srv.Close()

	if v.GetBool("watch") {
		dir := v.GetString("dir")
		if dir == "" {
			return errors.New("--watch needs --dir")
		}
		w, err := watchField(ctx, dir, func() {
			reloaded, meta, err := loadField(ctx, v)
			if err == nil && meta == nil {
				err = errors.New("reloaded field has no metadata")
			}
			if err == nil {
				err = srv.SetField(reloaded, meta.Extents())
			}
			if err != nil {
				logrus.WithError(err).Warn("field reload failed, keeping previous field")
			}
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}

	mux := http.NewServeMux()
	mux.Handle(v.GetString("path"), srv)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	hs := &http.Server{
		Addr:              v.GetString("addr"),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		logrus.WithFields(logrus.Fields{"addr": hs.Addr, "path": v.GetString("path")}).Info("listening")
		errc <- hs.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	logrus.Info("shutting down")
	srv.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return hs.Shutdown(shutdownCtx)
}
