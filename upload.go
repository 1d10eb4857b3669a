// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltex

import (
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"
	"golang.org/x/exp/gltex/imageutil"
	"golang.org/x/exp/gltex/internal/swizzle"
	"golang.org/x/mobile/gl"
	"golang.org/x/xerrors"
)

// ErrInvalidArgument is matched by errors.Is for every *SizeError.
var ErrInvalidArgument = xerrors.New("gltex: invalid argument")

// SizeError reports dimensions that are not positive or do not fit a GL
// size, or a pixel buffer whose length is not exactly
// Width*Height*Format.BytesPerPixel().
type SizeError struct {
	Format        Format
	Width, Height int
	Len           int

	// Path is the file the image was loaded from, if any.
	Path string
}

func (e *SizeError) Error() string {
	prefix := "gltex: "
	if e.Path != "" {
		prefix += e.Path + ": "
	}
	if !validDims(e.Width, e.Height) {
		return fmt.Sprintf("%sinvalid %s texture size %dx%d", prefix, e.Format, e.Width, e.Height)
	}
	need := uint64(e.Width) * uint64(e.Height) * uint64(e.Format.BytesPerPixel())
	return fmt.Sprintf("%s%dx%d %s texture needs %d bytes, got %d",
		prefix, e.Width, e.Height, e.Format, need, e.Len)
}

func (e *SizeError) Is(target error) bool { return target == ErrInvalidArgument }

// validDims reports whether width and height are positive and fit the
// 32-bit GLsizei the driver receives.
func validDims(width, height int) bool {
	return width > 0 && height > 0 && width <= math.MaxInt32 && height <= math.MaxInt32
}

func checkSize(f Format, width, height int, pix []byte) error {
	bpp := f.BytesPerPixel()
	// Compare by division first so width*height*bpp cannot overflow.
	if !validDims(width, height) || width > len(pix)/bpp/height || len(pix) != width*height*bpp {
		return &SizeError{Format: f, Width: width, Height: height, Len: len(pix)}
	}
	return nil
}

// NewRGB uploads an opaque image of 3 bytes per pixel, rows top to bottom
// with no padding. len(rgb) must equal width*height*3.
//
// Power-of-two dimensions have the widest hardware support, but are not
// required.
func (l *Loader) NewRGB(width, height int, rgb []byte) (*Texture, error) {
	return l.newTexture(RGB, width, height, rgb)
}

// NewRGBA uploads an image of 4 bytes per pixel with non-premultiplied
// alpha. len(rgba) must equal width*height*4.
func (l *Loader) NewRGBA(width, height int, rgba []byte) (*Texture, error) {
	return l.newTexture(RGBA, width, height, rgba)
}

// NewBGRA uploads a 32-bit bitmap in the blue-green-red-alpha byte order
// used by platform bitmap APIs. len(bgra) must equal width*height*4. bgra is
// not modified.
func (l *Loader) NewBGRA(width, height int, bgra []byte) (*Texture, error) {
	if err := checkSize(BGRA, width, height, bgra); err != nil {
		return nil, err
	}
	// GL ES has no BGRA upload format.
	t := l.upload(RGBA, width, height, swizzle.ToRGBA(bgra))
	t.format = BGRA
	return t, nil
}

func (l *Loader) newTexture(f Format, width, height int, pix []byte) (*Texture, error) {
	if err := checkSize(f, width, height, pix); err != nil {
		return nil, err
	}
	return l.upload(f, width, height, pix), nil
}

// upload must only be called with a validated buffer.
func (l *Loader) upload(f Format, width, height int, pix []byte) *Texture {
	glctx := l.glctx
	tex := glctx.CreateTexture()
	glctx.BindTexture(gl.TEXTURE_2D, tex)
	glctx.TexImage2D(gl.TEXTURE_2D, 0, int(f.glFormat()), width, height, f.glFormat(), gl.UNSIGNED_BYTE, pix)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	if !imageutil.IsPowerOfTwo(width) || !imageutil.IsPowerOfTwo(height) {
		// GL ES 2 only samples NPOT textures that clamp.
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		glctx.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		l.log.Debug("non-power-of-two texture clamped to edge",
			zap.Uint32("name", tex.Value), zap.Int("width", width), zap.Int("height", height))
	}

	l.log.Debug("texture created",
		zap.Uint32("name", tex.Value),
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Stringer("format", f))

	return &Texture{
		glctx:  glctx,
		tex:    tex,
		size:   image.Point{X: width, Y: height},
		format: f,
	}
}
