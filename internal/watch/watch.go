// Package watch re-applies a settings file every time it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mtpbwy/enginepatch/internal/settings"
	"github.com/sirupsen/logrus"
)

// DefaultDebounce collapses the burst of events editors emit on save.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads Path and hands the snapshot to Apply after every change.
type Watcher struct {
	Path     string
	Apply    func(settings.ModSettings) error
	Log      logrus.FieldLogger
	Debounce time.Duration
}

// Run applies the current settings once, then watches until ctx is done.
// Invalid settings and apply failures are logged and the loop keeps going.
// The directory is watched rather than the file so that editors that save
// by rename are still seen.
func (w *Watcher) Run(ctx context.Context) error {
	log := w.Log
	if log == nil {
		log = logrus.StandardLogger()
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	target := filepath.Clean(w.Path)

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	w.reload(log)

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timer.Reset(debounce)
			}
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("settings watcher error")
		case <-timer.C:
			w.reload(log)
		}
	}
}

func (w *Watcher) reload(log logrus.FieldLogger) {
	s, err := settings.Load(w.Path)
	if err != nil {
		log.WithError(err).Warn("settings not applied")
		return
	}
	if err := w.Apply(s); err != nil {
		log.WithError(err).Error("applying settings failed")
		return
	}
	log.WithField("file", w.Path).Info("settings applied")
}
