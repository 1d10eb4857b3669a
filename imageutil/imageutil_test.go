// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imageutil

import (
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsPowerOfTwo(t *testing.T) {
	testCases := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{100, false},
		{1024, true},
		{1 << 20, true},
		{1<<20 + 1, false},
	}
	for _, tc := range testCases {
		if got := IsPowerOfTwo(tc.n); got != tc.want {
			t.Errorf("IsPowerOfTwo(%d): got %t, want %t", tc.n, got, tc.want)
		}
	}
}

func TestNRGBATight(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	if got := NRGBA(m); got != m {
		t.Errorf("NRGBA of a tight image returned a copy")
	}
}

func TestNRGBASubImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			m.SetNRGBA(x, y, color.NRGBA{uint8(x), uint8(y), 0, 0xff})
		}
	}
	sub := m.SubImage(image.Rect(1, 2, 3, 4))

	got := NRGBA(sub)
	if got.Rect != image.Rect(0, 0, 2, 2) {
		t.Fatalf("bounds: got %v, want %v", got.Rect, image.Rect(0, 0, 2, 2))
	}
	want := []byte{
		1, 2, 0, 0xff, 2, 2, 0, 0xff,
		1, 3, 0, 0xff, 2, 3, 0, 0xff,
	}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestNRGBASubImageTranslucent(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(m.Pix, []byte{1, 2, 3, 4, 5, 6, 7, 8})

	got := NRGBA(m.SubImage(image.Rect(1, 0, 2, 1)))
	if diff := cmp.Diff([]byte{5, 6, 7, 8}, got.Pix); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestNRGBAFromRGBA(t *testing.T) {
	m := image.NewRGBA(image.Rect(0, 0, 1, 1))
	m.SetRGBA(0, 0, color.RGBA{0x40, 0x20, 0x00, 0x80})

	got := NRGBA(m)
	// Un-premultiplied: 0x40*0xff/0x80 = 0x7f, 0x20*0xff/0x80 = 0x3f.
	want := []byte{0x7f, 0x3f, 0x00, 0x80}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}

func TestColorKey(t *testing.T) {
	key := color.NRGBA{0, 136, 255, 255}
	m := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	m.SetNRGBA(0, 0, key)
	m.SetNRGBA(1, 0, color.NRGBA{0, 136, 254, 255})
	m.SetNRGBA(2, 0, color.NRGBA{0, 136, 255, 128})
	orig := append([]byte(nil), m.Pix...)

	got := ColorKey(m, key)
	want := []byte{
		0, 0, 0, 0,
		0, 136, 254, 255,
		0, 136, 255, 128,
	}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(orig, m.Pix); diff != "" {
		t.Errorf("ColorKey modified its input (-want, +got):\n%s", diff)
	}
}

func TestColorKeyPaletted(t *testing.T) {
	pal := color.Palette{color.NRGBA{0, 136, 255, 255}, color.NRGBA{255, 255, 255, 255}}
	m := image.NewPaletted(image.Rect(0, 0, 2, 1), pal)
	m.SetColorIndex(0, 0, 0)
	m.SetColorIndex(1, 0, 1)

	got := ColorKey(m, color.NRGBA{0, 136, 255, 255})
	want := []byte{0, 0, 0, 0, 255, 255, 255, 255}
	if diff := cmp.Diff(want, got.Pix); diff != "" {
		t.Errorf("mismatch (-want, +got):\n%s", diff)
	}
}
