// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"golang.org/x/exp/gltex"
	"golang.org/x/mobile/gl"
)

const vertexSrc = `#version 100
uniform vec2 scale;
attribute vec2 pos;
attribute vec2 inUV;
varying vec2 uv;
void main() {
	gl_Position = vec4(pos * scale, 0, 1);
	uv = inUV;
}
`

const fragmentSrc = `#version 100
precision mediump float;
uniform sampler2D tex;
varying vec2 uv;
void main() {
	gl_FragColor = texture2D(tex, uv);
}
`

// quadCoords is a triangle strip covering clip space: x, y, u, v per
// vertex. Texture row 0 is the top of the image.
var quadCoords = f32Bytes(binary.LittleEndian,
	-1, +1, 0, 0,
	-1, -1, 0, 1,
	+1, +1, 1, 0,
	+1, -1, 1, 1,
)

// quad draws one texture, fitted to the viewport.
type quad struct {
	glctx   gl.Context
	program gl.Program
	pos     gl.Attrib
	inUV    gl.Attrib
	scale   gl.Uniform
	tex     gl.Uniform
	buf     gl.Buffer
}

func newQuad(glctx gl.Context) (*quad, error) {
	p, err := compileProgram(glctx, vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	q := &quad{
		glctx:   glctx,
		program: p,
		pos:     glctx.GetAttribLocation(p, "pos"),
		inUV:    glctx.GetAttribLocation(p, "inUV"),
		scale:   glctx.GetUniformLocation(p, "scale"),
		tex:     glctx.GetUniformLocation(p, "tex"),
		buf:     glctx.CreateBuffer(),
	}
	glctx.BindBuffer(gl.ARRAY_BUFFER, q.buf)
	glctx.BufferData(gl.ARRAY_BUFFER, quadCoords, gl.STATIC_DRAW)
	return q, nil
}

func (q *quad) release() {
	q.glctx.DeleteBuffer(q.buf)
	q.glctx.DeleteProgram(q.program)
}

func (q *quad) draw(viewport image.Point, t *gltex.Texture) {
	glctx := q.glctx
	glctx.Viewport(0, 0, viewport.X, viewport.Y)
	glctx.ClearColor(0.5, 0.5, 0.5, 1)
	glctx.Clear(gl.COLOR_BUFFER_BIT)

	glctx.UseProgram(q.program)
	glctx.ActiveTexture(gl.TEXTURE0)
	glctx.BindTexture(gl.TEXTURE_2D, t.GL())
	glctx.Uniform1i(q.tex, 0)
	sx, sy := fitScale(t.Size(), viewport)
	glctx.Uniform2f(q.scale, sx, sy)

	glctx.BindBuffer(gl.ARRAY_BUFFER, q.buf)
	glctx.EnableVertexAttribArray(q.pos)
	glctx.VertexAttribPointer(q.pos, 2, gl.FLOAT, false, 16, 0)
	glctx.EnableVertexAttribArray(q.inUV)
	glctx.VertexAttribPointer(q.inUV, 2, gl.FLOAT, false, 16, 8)
	glctx.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
	glctx.DisableVertexAttribArray(q.pos)
	glctx.DisableVertexAttribArray(q.inUV)
}

// fitScale returns the clip-space scale that shows an image of size src as
// large as possible in dst without distorting it.
func fitScale(src, dst image.Point) (x, y float32) {
	if src.X <= 0 || src.Y <= 0 || dst.X <= 0 || dst.Y <= 0 {
		return 1, 1
	}
	srcAspect := float32(src.X) / float32(src.Y)
	dstAspect := float32(dst.X) / float32(dst.Y)
	if srcAspect > dstAspect {
		return 1, dstAspect / srcAspect
	}
	return srcAspect / dstAspect, 1
}

// f32Bytes returns the byte representation of float32 values in the given byte
// order.
func f32Bytes(byteOrder binary.ByteOrder, values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		byteOrder.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

func compileProgram(glctx gl.Context, vSrc, fSrc string) (gl.Program, error) {
	program := glctx.CreateProgram()
	if program.Value == 0 {
		return gl.Program{}, fmt.Errorf("texview: no programs available")
	}

	vertexShader, err := compileShader(glctx, gl.VERTEX_SHADER, vSrc)
	if err != nil {
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}
	fragmentShader, err := compileShader(glctx, gl.FRAGMENT_SHADER, fSrc)
	if err != nil {
		glctx.DeleteShader(vertexShader)
		glctx.DeleteProgram(program)
		return gl.Program{}, err
	}

	glctx.AttachShader(program, vertexShader)
	glctx.AttachShader(program, fragmentShader)
	glctx.LinkProgram(program)

	// Flag shaders for deletion when program is unlinked.
	glctx.DeleteShader(vertexShader)
	glctx.DeleteShader(fragmentShader)

	if glctx.GetProgrami(program, gl.LINK_STATUS) == 0 {
		defer glctx.DeleteProgram(program)
		return gl.Program{}, fmt.Errorf("texview: program link: %s", glctx.GetProgramInfoLog(program))
	}
	return program, nil
}

func compileShader(glctx gl.Context, shaderType gl.Enum, src string) (gl.Shader, error) {
	shader := glctx.CreateShader(shaderType)
	if shader.Value == 0 {
		return gl.Shader{}, fmt.Errorf("texview: could not create shader (type %v)", shaderType)
	}
	glctx.ShaderSource(shader, src)
	glctx.CompileShader(shader)
	if glctx.GetShaderi(shader, gl.COMPILE_STATUS) == 0 {
		defer glctx.DeleteShader(shader)
		return gl.Shader{}, fmt.Errorf("texview: shader compile: %s", glctx.GetShaderInfoLog(shader))
	}
	return shader, nil
}
