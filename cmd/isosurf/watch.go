package main

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/soypat/isosurf/fieldio"
)

// reloadQuiet is the quiet time after the last file event before reloading,
// so that a writer replacing the three buffers triggers one reload.
const reloadQuiet = 500 * time.Millisecond

// watchField calls reload once the field files in dir stop changing.
func watchField(ctx context.Context, dir string, reload func()) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	watched := map[string]bool{
		fieldio.PositionsFile:    true,
		fieldio.ConnectivityFile: true,
		fieldio.ValuesFile:       true,
		fieldio.MetaFile:         true,
	}
	go func() {
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !watched[filepath.Base(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				logrus.WithField("file", ev.Name).Debug("field file changed")
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadQuiet, reload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("field watcher")
			}
		}
	}()
	return w, nil
}
