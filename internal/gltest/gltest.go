// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a fake gl.Context for tests. It keeps the
// rasterizer state and texture storage that a driver would, so that tests
// can read back what was uploaded.
package gltest

import (
	"fmt"

	"golang.org/x/mobile/gl"
)

// Texture is the storage behind one texture name.
type Texture struct {
	Width, Height  int
	InternalFormat int
	Format, Type   gl.Enum
	Pix            []byte
	Params         map[gl.Enum]int
}

// Channels returns the number of channels implied by the internal format, or
// 0 if no image has been uploaded.
func (t *Texture) Channels() int {
	switch t.InternalFormat {
	case gl.RGB:
		return 3
	case gl.RGBA:
		return 4
	case gl.LUMINANCE_ALPHA:
		return 2
	case gl.LUMINANCE, gl.ALPHA:
		return 1
	}
	return 0
}

// State is the subset of rasterizer state tracked by Context.
type State struct {
	Enabled         map[gl.Enum]bool
	BlendSrc        gl.Enum
	BlendDst        gl.Enum
	UnpackAlignment int32
}

// Context is a fake gl.Context. Only the methods used for texture creation
// and state setup are implemented; calling any other method panics.
type Context struct {
	gl.Context

	State    State
	Textures map[uint32]*Texture
	Bound    uint32
	Deleted  []uint32

	// Calls lists every call made, in order, as "Name(arg, ...)".
	Calls []string

	// Errors is the queue drained by GetError. Tests may append to it to
	// simulate driver failures.
	Errors []gl.Enum

	next uint32
}

// NewContext returns a Context with GL's initial state.
func NewContext() *Context {
	return &Context{
		State: State{
			Enabled:         map[gl.Enum]bool{gl.DITHER: true},
			BlendSrc:        gl.ONE,
			BlendDst:        gl.ZERO,
			UnpackAlignment: 4,
		},
		Textures: make(map[uint32]*Texture),
	}
}

func (c *Context) record(name string, args ...interface{}) {
	s := name + "("
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		if e, ok := a.(gl.Enum); ok {
			s += EnumName(e)
		} else {
			s += fmt.Sprint(a)
		}
	}
	c.Calls = append(c.Calls, s+")")
}

func (c *Context) fail(code gl.Enum) {
	c.Errors = append(c.Errors, code)
}

func (c *Context) Enable(cap gl.Enum) {
	c.record("Enable", cap)
	c.State.Enabled[cap] = true
}

func (c *Context) Disable(cap gl.Enum) {
	c.record("Disable", cap)
	c.State.Enabled[cap] = false
}

func (c *Context) IsEnabled(cap gl.Enum) bool {
	return c.State.Enabled[cap]
}

func (c *Context) BlendFunc(sfactor, dfactor gl.Enum) {
	c.record("BlendFunc", sfactor, dfactor)
	c.State.BlendSrc, c.State.BlendDst = sfactor, dfactor
}

func (c *Context) PixelStorei(pname gl.Enum, param int32) {
	c.record("PixelStorei", pname, param)
	switch pname {
	case gl.UNPACK_ALIGNMENT:
		switch param {
		case 1, 2, 4, 8:
			c.State.UnpackAlignment = param
		default:
			c.fail(gl.INVALID_VALUE)
		}
	case gl.PACK_ALIGNMENT:
	default:
		c.fail(gl.INVALID_ENUM)
	}
}

func (c *Context) CreateTexture() gl.Texture {
	c.next++
	c.record("CreateTexture")
	c.Textures[c.next] = &Texture{Params: make(map[gl.Enum]int)}
	return gl.Texture{Value: c.next}
}

func (c *Context) IsTexture(t gl.Texture) bool {
	_, ok := c.Textures[t.Value]
	return ok
}

func (c *Context) BindTexture(target gl.Enum, t gl.Texture) {
	c.record("BindTexture", target, t.Value)
	if target != gl.TEXTURE_2D {
		c.fail(gl.INVALID_ENUM)
		return
	}
	c.Bound = t.Value
}

func (c *Context) DeleteTexture(t gl.Texture) {
	c.record("DeleteTexture", t.Value)
	if t.Value == 0 {
		return
	}
	delete(c.Textures, t.Value)
	c.Deleted = append(c.Deleted, t.Value)
	if c.Bound == t.Value {
		c.Bound = 0
	}
}

func (c *Context) bound() *Texture {
	if c.Bound == 0 {
		return nil
	}
	return c.Textures[c.Bound]
}

// bytesPerPixel returns the unpacked size of one pixel for an UNSIGNED_BYTE
// upload of the given format.
func bytesPerPixel(format gl.Enum) int {
	switch format {
	case gl.RGB:
		return 3
	case gl.RGBA:
		return 4
	case gl.LUMINANCE_ALPHA:
		return 2
	case gl.LUMINANCE, gl.ALPHA:
		return 1
	}
	return 0
}

func (c *Context) TexImage2D(target gl.Enum, level int, internalFormat int, width, height int, format gl.Enum, ty gl.Enum, data []byte) {
	c.record("TexImage2D", target, level, EnumName(gl.Enum(internalFormat)), width, height, format, ty, len(data))
	t := c.bound()
	switch {
	case target != gl.TEXTURE_2D, ty != gl.UNSIGNED_BYTE:
		c.fail(gl.INVALID_ENUM)
		return
	case t == nil:
		c.fail(gl.INVALID_OPERATION)
		return
	case width < 0 || height < 0 || level != 0:
		c.fail(gl.INVALID_VALUE)
		return
	}
	bpp := bytesPerPixel(format)
	if bpp == 0 {
		c.fail(gl.INVALID_ENUM)
		return
	}
	n := width * height * bpp
	if data != nil && len(data) < n {
		// A driver would read past the end of the client buffer.
		c.fail(gl.INVALID_VALUE)
		return
	}
	t.Width, t.Height = width, height
	t.InternalFormat, t.Format, t.Type = internalFormat, format, ty
	t.Pix = make([]byte, n)
	copy(t.Pix, data)
}

func (c *Context) TexParameteri(target, pname gl.Enum, param int) {
	c.record("TexParameteri", target, pname, EnumName(gl.Enum(param)))
	t := c.bound()
	if target != gl.TEXTURE_2D || t == nil {
		c.fail(gl.INVALID_OPERATION)
		return
	}
	t.Params[pname] = param
}

func (c *Context) GetError() gl.Enum {
	if len(c.Errors) == 0 {
		return gl.NO_ERROR
	}
	e := c.Errors[0]
	c.Errors = c.Errors[1:]
	return e
}

var enumNames = map[gl.Enum]string{
	gl.ALPHA:               "ALPHA",
	gl.BLEND:               "BLEND",
	gl.CLAMP_TO_EDGE:       "CLAMP_TO_EDGE",
	gl.CULL_FACE:           "CULL_FACE",
	gl.DITHER:              "DITHER",
	gl.INVALID_ENUM:        "INVALID_ENUM",
	gl.INVALID_OPERATION:   "INVALID_OPERATION",
	gl.INVALID_VALUE:       "INVALID_VALUE",
	gl.LINEAR:              "LINEAR",
	gl.LUMINANCE:           "LUMINANCE",
	gl.LUMINANCE_ALPHA:     "LUMINANCE_ALPHA",
	gl.NEAREST:             "NEAREST",
	gl.ONE_MINUS_SRC_ALPHA: "ONE_MINUS_SRC_ALPHA",
	gl.PACK_ALIGNMENT:      "PACK_ALIGNMENT",
	gl.RGB:                 "RGB",
	gl.RGBA:                "RGBA",
	gl.SRC_ALPHA:           "SRC_ALPHA",
	gl.TEXTURE_2D:          "TEXTURE_2D",
	gl.TEXTURE_MAG_FILTER:  "TEXTURE_MAG_FILTER",
	gl.TEXTURE_MIN_FILTER:  "TEXTURE_MIN_FILTER",
	gl.TEXTURE_WRAP_S:      "TEXTURE_WRAP_S",
	gl.TEXTURE_WRAP_T:      "TEXTURE_WRAP_T",
	gl.UNPACK_ALIGNMENT:    "UNPACK_ALIGNMENT",
	gl.UNSIGNED_BYTE:       "UNSIGNED_BYTE",
}

// EnumName returns the GL name of e for the enums this package deals with,
// or e in hexadecimal otherwise.
func EnumName(e gl.Enum) string {
	if s, ok := enumNames[e]; ok {
		return s
	}
	return fmt.Sprintf("%#x", uint32(e))
}
