// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filewatch reports when a single file is written or replaced.
package filewatch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// Watcher watches one file. Changes that arrive while a previous one is still
// pending are coalesced into a single notification.
type Watcher struct {
	// C receives a value after the file changes.
	C <-chan struct{}

	w    *fsnotify.Watcher
	c    chan struct{}
	name string
	log  *zap.Logger
	done chan struct{}
}

// New starts watching path. The containing directory is watched rather than
// the file itself, so that editors which save by renaming a new file into
// place are noticed too.
func New(path string, log *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, xerrors.Errorf("filewatch: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, xerrors.Errorf("filewatch: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, xerrors.Errorf("filewatch: watching %s: %w", filepath.Dir(abs), err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	c := make(chan struct{}, 1)
	w := &Watcher{
		C:    c,
		w:    fw,
		c:    c,
		name: abs,
		log:  log,
		done: make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.w.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.name {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.log.Debug("file changed", zap.String("path", w.name), zap.Stringer("op", ev.Op))
			select {
			case w.c <- struct{}{}:
			default:
			}
		case err, ok := <-w.w.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error", zap.String("path", w.name), zap.Error(err))
		}
	}
}

// Close stops watching. C is not closed.
func (w *Watcher) Close() error {
	err := w.w.Close()
	<-w.done
	return err
}
