// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imageutil implements the image conversions needed before an image
// can be uploaded as a texture.
package imageutil

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// IsTight reports whether m's pixels start at the origin and are packed
// without row padding, so that m.Pix can be handed to the graphics driver as
// is.
func IsTight(m *image.NRGBA) bool {
	return m.Rect.Min == (image.Point{}) &&
		m.Stride == 4*m.Rect.Dx() &&
		len(m.Pix) >= 4*m.Rect.Dx()*m.Rect.Dy()
}

// NRGBA returns m as a tightly packed, non-premultiplied image whose bounds
// start at (0, 0). If m already has that layout it is returned unchanged;
// otherwise the result is a new image and m is not modified.
func NRGBA(m image.Image) *image.NRGBA {
	b := m.Bounds()
	n, ok := m.(*image.NRGBA)
	if ok && IsTight(n) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if ok {
		// Copy rows directly: a round trip through premultiplied color
		// loses precision at low alpha.
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := n.PixOffset(b.Min.X, y)
			copy(dst.Pix[(y-b.Min.Y)*dst.Stride:], n.Pix[i:i+4*b.Dx()])
		}
		return dst
	}
	draw.Copy(dst, image.Point{}, m, b, draw.Src, nil)
	return dst
}

// ColorKey returns a copy of m in which every pixel equal to key is replaced
// by fully transparent black. m is not modified.
func ColorKey(m image.Image, key color.NRGBA) *image.NRGBA {
	dst := NRGBA(m)
	if image.Image(dst) == m {
		dst = &image.NRGBA{
			Pix:    append([]byte(nil), dst.Pix[:4*dst.Rect.Dx()*dst.Rect.Dy()]...),
			Stride: dst.Stride,
			Rect:   dst.Rect,
		}
	}
	p := dst.Pix
	for i := 0; i+4 <= len(p); i += 4 {
		if p[i+0] == key.R && p[i+1] == key.G && p[i+2] == key.B && p[i+3] == key.A {
			p[i+0], p[i+1], p[i+2], p[i+3] = 0, 0, 0, 0
		}
	}
	return dst
}
