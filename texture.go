// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltex

import (
	"image"

	"golang.org/x/mobile/gl"
)

// Format is the byte layout of source pixels.
type Format uint8

const (
	RGB  Format = iota + 1 // 3 bytes per pixel, stored without alpha
	RGBA                   // 4 bytes per pixel, non-premultiplied alpha
	BGRA                   // 4 bytes per pixel, blue first; stored as RGBA
)

func (f Format) String() string {
	switch f {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	}
	return "Format(invalid)"
}

// BytesPerPixel returns the number of source bytes per pixel.
func (f Format) BytesPerPixel() int {
	if f == RGB {
		return 3
	}
	return 4
}

// glFormat returns the format and internal format of the stored texture.
func (f Format) glFormat() gl.Enum {
	if f == RGB {
		return gl.RGB
	}
	return gl.RGBA
}

// Texture is a GL texture owned by the caller. Release must be called when
// the texture is no longer needed.
type Texture struct {
	glctx    gl.Context
	tex      gl.Texture
	size     image.Point
	format   Format
	released bool
}

// Release deletes the GL texture. Calls after the first do nothing. The
// Texture must not be used after Release.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	t.glctx.DeleteTexture(t.tex)
}

// GL returns the texture name, for binding before a draw call.
func (t *Texture) GL() gl.Texture { return t.tex }

// Size returns the size of the texture's image.
func (t *Texture) Size() image.Point { return t.size }

// Bounds returns image.Rectangle{Max: t.Size()}.
func (t *Texture) Bounds() image.Rectangle { return image.Rectangle{Max: t.size} }

// Format returns the layout of the pixels the texture was created from.
func (t *Texture) Format() Format { return t.format }
