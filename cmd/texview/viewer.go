// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"image"

	"go.uber.org/zap"
	"golang.org/x/exp/gltex"
	"golang.org/x/mobile/gl"
)

// viewer owns every GL object of the program. All of its methods run on the
// goroutine started by run; GL calls reach the GL thread through the worker.
type viewer struct {
	glctx  gl.Context
	loader *gltex.Loader
	log    *zap.Logger
	path   string

	paint       chan image.Point
	publish     chan struct{}
	publishDone chan struct{}
	reload      <-chan struct{}
	quit        chan struct{}
}

func (v *viewer) run() error {
	v.loader.InitTexturing()

	q, err := newQuad(v.glctx)
	if err != nil {
		return err
	}
	defer q.release()

	tex, err := v.loader.FromFile(v.path)
	if err != nil {
		return err
	}
	defer func() { tex.Release() }()
	v.log.Info("texture loaded", zap.String("path", v.path), zap.Stringer("size", tex.Size()))

	for {
		select {
		case <-v.quit:
			return nil
		case <-v.reload:
			t, err := v.loader.FromFile(v.path)
			if err != nil {
				// Keep showing the old texture; the file may be half written.
				v.log.Warn("reload failed", zap.String("path", v.path), zap.Error(err))
				continue
			}
			tex.Release()
			tex = t
			v.log.Info("texture reloaded", zap.String("path", v.path), zap.Stringer("size", tex.Size()))
		case sz := <-v.paint:
			q.draw(sz, tex)
			if err := gltex.CheckError(v.glctx); err != nil {
				v.log.Warn("draw", zap.Error(err))
			}
			v.publish <- struct{}{}
			<-v.publishDone
		}
	}
}
