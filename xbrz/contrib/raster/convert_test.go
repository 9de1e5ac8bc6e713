package raster

import (
	"image"
	"image/color"
	"testing"
)

func TestPackUnpack(t *testing.T) {
	p := Pack(0x11, 0x22, 0x33, 0x44)
	if p != 0x44112233 {
		t.Fatalf("Pack: got %#08x, want 0x44112233", p)
	}
	r, g, b, a := Unpack(p)
	if r != 0x11 || g != 0x22 || b != 0x33 || a != 0x44 {
		t.Errorf("Unpack: got %#x %#x %#x %#x", r, g, b, a)
	}
}

func TestFromImage_NRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 128})
	src.SetNRGBA(0, 1, color.NRGBA{B: 255, A: 0})
	src.SetNRGBA(1, 1, color.NRGBA{R: 1, G: 2, B: 3, A: 4})

	img := FromImage(src)
	want := []uint32{0xffff0000, 0x8000ff00, 0x000000ff, 0x04010203}
	for i, w := range want {
		if got := img.Pix()[i]; got != w {
			t.Errorf("Pix[%d] = %#08x, want %#08x", i, got, w)
		}
	}
}

func TestFromImage_OffsetBounds(t *testing.T) {
	src := image.NewGray(image.Rect(10, 20, 13, 22))
	src.SetGray(10, 20, color.Gray{Y: 0x40})
	src.SetGray(12, 21, color.Gray{Y: 0xc0})

	img := FromImage(src)
	if img.Width() != 3 || img.Height() != 2 {
		t.Fatalf("size: got %dx%d, want 3x2", img.Width(), img.Height())
	}
	if got := img.At(0, 0); got != 0xff404040 {
		t.Errorf("At(0,0) = %#08x, want 0xff404040", got)
	}
	if got := img.At(2, 1); got != 0xffc0c0c0 {
		t.Errorf("At(2,1) = %#08x, want 0xffc0c0c0", got)
	}
}

func TestToNRGBA_RoundTrip(t *testing.T) {
	img := NewImage(3, 2)
	for i := range img.Pix() {
		img.Pix()[i] = Pack(uint8(i*10), uint8(i*20), uint8(i*30), uint8(255-i))
	}

	back := FromImage(img.ToNRGBA())
	if !equalImages(img, back) {
		t.Error("ToNRGBA then FromImage should reproduce the raster")
	}
}
