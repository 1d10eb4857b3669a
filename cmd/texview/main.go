// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Texview displays an image file as a GL ES texture.
//
// Usage:
//
//	texview [-v] [-watch] [-nokey] file
//
// The image is drawn alpha-blended over a grey background, scaled to fit the
// window. With -watch, the texture is reloaded whenever the file changes.
// Press Escape to quit.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
	"golang.org/x/exp/gltex"
	"golang.org/x/exp/gltex/internal/filewatch"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

var (
	verbose = flag.Bool("v", false, "log debug output")
	watch   = flag.Bool("watch", false, "reload the texture when the file changes")
	noKey   = flag.Bool("nokey", false, "never apply the BMP color key")
)

func init() {
	// glfw and the GL worker must run on the main thread.
	runtime.LockOSThread()
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: texview [-v] [-watch] [-nokey] file\n")
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}

	log, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "texview: %v\n", err)
		os.Exit(1)
	}
	err = run(log, flag.Arg(0))
	log.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "texview: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

func run(log *zap.Logger, path string) error {
	if err := glfw.Init(); err != nil {
		return xerrors.Errorf("initializing glfw: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.OpenGLESAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 0)
	win, err := glfw.CreateWindow(640, 480, "texview: "+filepath.Base(path), nil, nil)
	if err != nil {
		return xerrors.Errorf("creating window: %w", err)
	}
	defer win.Destroy()
	win.MakeContextCurrent()
	glfw.SwapInterval(1)
	win.SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if key == glfw.KeyEscape && action == glfw.Press {
			w.SetShouldClose(true)
		}
	})

	glctx, worker := gl.NewContext()
	v := &viewer{
		glctx: glctx,
		loader: gltex.NewLoader(glctx, &gltex.Options{
			Logger:          log,
			DisableColorKey: *noKey,
		}),
		log:         log,
		path:        path,
		paint:       make(chan image.Point),
		publish:     make(chan struct{}),
		publishDone: make(chan struct{}),
		quit:        make(chan struct{}),
	}
	if *watch {
		fw, err := filewatch.New(path, log)
		if err != nil {
			return err
		}
		defer fw.Close()
		v.reload = fw.C
	}

	errc := make(chan error, 1)
	go func() {
		errc <- v.run()
	}()

	// The loop below is the GL thread: it services the worker for the
	// viewer goroutine, polls window events and swaps buffers when a frame
	// has been published. It keeps servicing the worker after the window
	// closes, until the viewer has released its GL objects.
	heartbeat := time.NewTicker(time.Second / 60)
	defer heartbeat.Stop()
	workAvailable := worker.WorkAvailable()
	closing := false

	for {
		select {
		case err := <-errc:
			return err
		case <-v.publish:
			win.SwapBuffers()
			v.publishDone <- struct{}{}
		case <-heartbeat.C:
			if closing {
				continue
			}
			glfw.PollEvents()
			if win.ShouldClose() {
				closing = true
				close(v.quit)
				continue
			}
			w, h := win.GetFramebufferSize()
			select {
			case v.paint <- image.Point{X: w, Y: h}:
			default:
			}
		case <-workAvailable:
			worker.DoWork()
		}
	}
}
