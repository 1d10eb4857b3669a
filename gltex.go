// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltex creates OpenGL ES textures from pixel buffers, decoded images
// and image files.
//
// All calls go through the gl.Context given to NewLoader and must be made on
// the goroutine that owns that context. Every texture returned is a fresh GL
// texture name owned by the caller, who must Release it:
//
//	l := gltex.NewLoader(glctx, nil)
//	l.InitTexturing()
//	t, err := l.FromFile("sprite.png")
//	if err != nil {
//		return err
//	}
//	defer t.Release()
package gltex

import (
	"fmt"
	"image/color"

	"go.uber.org/zap"
	"golang.org/x/mobile/gl"
)

// DefaultColorKey is the color made transparent in files whose extension
// matches Options.ColorKeyExt.
var DefaultColorKey = color.NRGBA{R: 0, G: 136, B: 255, A: 255}

// DefaultColorKeyExt is the file extension, without its leading dot, that
// triggers color keying by default.
const DefaultColorKeyExt = "bmp"

// Options are optional arguments to NewLoader.
type Options struct {
	// Logger receives debug output about created textures. A nil Logger
	// discards it.
	Logger *zap.Logger

	// ColorKey is the color replaced by full transparency when loading
	// files with the ColorKeyExt extension. If ColorKeyExt is empty,
	// DefaultColorKey and DefaultColorKeyExt are used.
	ColorKey    color.NRGBA
	ColorKeyExt string

	// DisableColorKey turns color keying off for every file.
	DisableColorKey bool

	// TODO: add a way to request NEAREST filtering for pixel art.
}

// Loader creates textures in one GL context. It holds configuration only; a
// Loader may be copied and shared by code that uses the same context.
type Loader struct {
	glctx    gl.Context
	log      *zap.Logger
	key      color.NRGBA
	keyExt   string
	keyFiles bool
}

// NewLoader returns a Loader that creates textures in glctx. opts may be nil.
func NewLoader(glctx gl.Context, opts *Options) *Loader {
	l := &Loader{
		glctx:    glctx,
		log:      zap.NewNop(),
		key:      DefaultColorKey,
		keyExt:   DefaultColorKeyExt,
		keyFiles: true,
	}
	if opts == nil {
		return l
	}
	if opts.Logger != nil {
		l.log = opts.Logger
	}
	if opts.ColorKeyExt != "" {
		l.key, l.keyExt = opts.ColorKey, opts.ColorKeyExt
	}
	l.keyFiles = !opts.DisableColorKey
	return l
}

// InitTexturing prepares the context for drawing alpha-blended 2D textures:
// it disables back-face culling, enables texturing and blending with
// source-alpha / one-minus-source-alpha factors, and unpacks pixel rows
// without padding.
//
// It must be called before any texture is drawn. Calling it again reapplies
// the same state.
func (l *Loader) InitTexturing() {
	l.glctx.Disable(gl.CULL_FACE)
	l.glctx.Enable(gl.TEXTURE_2D)
	l.glctx.Enable(gl.BLEND)
	l.glctx.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	l.glctx.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
}

// DriverError is an error flag reported by the GL context.
type DriverError struct {
	Code gl.Enum
}

func (e *DriverError) Error() string {
	return "gltex: GL error " + errorName(e.Code)
}

func errorName(code gl.Enum) string {
	switch code {
	case gl.INVALID_ENUM:
		return "INVALID_ENUM"
	case gl.INVALID_VALUE:
		return "INVALID_VALUE"
	case gl.INVALID_OPERATION:
		return "INVALID_OPERATION"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case gl.OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	}
	return fmt.Sprintf("%#x", uint32(code))
}

// CheckError returns the oldest error flag recorded by glctx as a
// *DriverError, or nil if there is none. GL keeps one flag per error kind, so
// callers wanting all of them should call CheckError until it returns nil.
//
// Nothing in this package calls CheckError implicitly.
func CheckError(glctx gl.Context) error {
	if code := glctx.GetError(); code != gl.NO_ERROR {
		return &DriverError{Code: code}
	}
	return nil
}
