// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swizzle converts 32-bit pixel buffers between the BGRA byte order
// produced by platform bitmap APIs and the RGBA order GL ES uploads expect.
package swizzle

// BGRA swaps the first and third byte of every 4-byte pixel in p. Applying it
// twice restores the original order.
//
// It panics if the input slice length is not a multiple of 4.
func BGRA(p []byte) {
	if len(p)%4 != 0 {
		panic("swizzle: input slice length is not a multiple of 4")
	}
	for i := 0; i < len(p); i += 4 {
		q := p[i : i+4 : i+4]
		q[0], q[2] = q[2], q[0]
	}
}

// ToRGBA returns a copy of the BGRA buffer src in RGBA order. src is left
// untouched.
//
// It panics if the input slice length is not a multiple of 4.
func ToRGBA(src []byte) []byte {
	dst := make([]byte, len(src))
	copy(dst, src)
	BGRA(dst)
	return dst
}
