// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gltex

import (
	"bufio"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
	"go.uber.org/zap"
	"golang.org/x/exp/gltex/imageutil"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/xerrors"
)

// sniffLen is the number of leading bytes filetype needs to recognize every
// format it knows.
const sniffLen = 262

// FromImage uploads m as a 4-channel texture of m's width and height.
//
// A *image.NRGBA whose pixels start at the origin with no row padding is
// uploaded as is. Any other image is first converted to non-premultiplied
// RGBA.
func (l *Loader) FromImage(m image.Image) (*Texture, error) {
	n := imageutil.NRGBA(m)
	w, h := n.Rect.Dx(), n.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil, &SizeError{Format: RGBA, Width: w, Height: h}
	}
	return l.newTexture(RGBA, w, h, n.Pix[:4*w*h])
}

// FromFile decodes the image file at path and uploads it with FromImage.
// PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.
//
// If the extension of path, without its leading dot, is exactly the
// Loader's color key extension ("bmp" by default), pixels of the key color
// are made transparent first.
//
// BUG(gltex): The color key extension is matched case-sensitively, so
// "sprite.BMP" is not keyed while "sprite.bmp" is.
func (l *Loader) FromFile(path string) (*Texture, error) {
	m, err := l.decodeFile(path)
	if err != nil {
		return nil, err
	}
	if l.colorKeyed(path) {
		m = imageutil.ColorKey(m, l.key)
		l.log.Debug("color key applied",
			zap.String("path", path),
			zap.Uint8s("key", []uint8{l.key.R, l.key.G, l.key.B, l.key.A}))
	}
	t, err := l.FromImage(m)
	if serr, ok := err.(*SizeError); ok {
		serr.Path = path
	}
	return t, err
}

func (l *Loader) colorKeyed(path string) bool {
	return l.keyFiles && strings.TrimPrefix(filepath.Ext(path), ".") == l.keyExt
}

// decodeFile returns the decoded image at path. Files whose content is not
// an image fail with an error wrapping image.ErrFormat.
func (l *Loader) decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("gltex: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	head, err := r.Peek(sniffLen)
	if err != nil && err != io.EOF {
		return nil, xerrors.Errorf("gltex: reading %s: %w", path, err)
	}
	kind, _ := filetype.Match(head)
	if !filetype.IsImage(head) {
		return nil, xerrors.Errorf("gltex: %s has %s content: %w", path, kind.Extension, image.ErrFormat)
	}

	m, name, err := image.Decode(r)
	if err != nil {
		return nil, xerrors.Errorf("gltex: decoding %s (%s): %w", path, kind.MIME.Value, err)
	}
	l.log.Debug("image decoded",
		zap.String("path", path),
		zap.String("mime", kind.MIME.Value),
		zap.String("decoder", name),
		zap.Stringer("size", m.Bounds().Size()))
	return m, nil
}
