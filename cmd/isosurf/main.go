// Command isosurf generates, inspects and serves isosurfaces of scalar
// fields stored as flat binary arrays.
//
//	isosurf generate --shape gyroid --out field/
//	isosurf extract --dir field/ --threshold 0.2 --stl surface.stl --png surface.png
//	isosurf hist --dir field/ --out hist.png
//	isosurf serve --dir field/ --addr :8080 --watch
//
// Every flag can also be set in isosurf.toml or with an ISOSURF_ prefixed
// environment variable, for example ISOSURF_LOG_LEVEL=debug.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("isosurf")
		os.Exit(1)
	}
}
