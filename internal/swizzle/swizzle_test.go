// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swizzle

import (
	"bytes"
	"testing"
)

func TestBGRA(t *testing.T) {
	for n := 0; n < 40; n++ {
		p := make([]byte, 4*n)
		for i := range p {
			p[i] = byte(i)
		}
		orig := append([]byte(nil), p...)

		BGRA(p)
		for i := 0; i < len(p); i += 4 {
			if p[i+0] != orig[i+2] || p[i+1] != orig[i+1] || p[i+2] != orig[i+0] || p[i+3] != orig[i+3] {
				t.Fatalf("n=%d: pixel %d: got %v, want swapped %v", n, i/4, p[i:i+4], orig[i:i+4])
			}
		}

		BGRA(p)
		if !bytes.Equal(p, orig) {
			t.Errorf("n=%d: double swizzle: got %v, want %v", n, p, orig)
		}
	}
}

func TestToRGBA(t *testing.T) {
	src := []byte{0x00, 0x88, 0xff, 0x7f, 1, 2, 3, 4}
	got := ToRGBA(src)
	want := []byte{0xff, 0x88, 0x00, 0x7f, 3, 2, 1, 4}
	if !bytes.Equal(got, want) {
		t.Errorf("ToRGBA: got %v, want %v", got, want)
	}
	if !bytes.Equal(src, []byte{0x00, 0x88, 0xff, 0x7f, 1, 2, 3, 4}) {
		t.Errorf("ToRGBA modified its input: %v", src)
	}
}

func TestBGRAPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("BGRA of a 5-byte slice did not panic")
		}
	}()
	BGRA(make([]byte, 5))
}
