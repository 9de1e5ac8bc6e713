package xbrz

import (
	"math"
	"testing"
)

var sampleColors = []uint32{
	0xff000000, 0xffffffff, 0xffff0000, 0xff00ff00, 0xff0000ff,
	0xff7f7f7f, 0xff102030, 0xffd03030, 0xff3060d0, 0xfff0e0d0,
}

func TestDistYCbCr(t *testing.T) {
	if d := distYCbCr(black, white, 1); math.Abs(d-255) > 1e-6 {
		t.Errorf("distYCbCr(black, white) = %v, want 255", d)
	}
	for _, a := range sampleColors {
		if d := distYCbCr(a, a, 1); d != 0 {
			t.Errorf("distYCbCr(%#08x, itself) = %v, want 0", a, d)
		}
		for _, b := range sampleColors {
			if distYCbCr(a, b, 1) != distYCbCr(b, a, 1) {
				t.Errorf("distYCbCr not symmetric for %#08x, %#08x", a, b)
			}
		}
	}

	// Luma weight only scales the luma term, which is all there is for grays.
	if d := distYCbCr(black, white, 2); math.Abs(d-510) > 1e-6 {
		t.Errorf("distYCbCr(black, white, 2) = %v, want 510", d)
	}
	// Blue carries little luma, so it is closer to black than green is.
	if distYCbCr(black, 0xff0000ff, 1) >= distYCbCr(black, 0xff00ff00, 1) {
		t.Errorf("blue is not closer to black than green")
	}
}

func TestDistYCbCrBuffered(t *testing.T) {
	for _, a := range sampleColors {
		for _, b := range sampleColors {
			exact := distYCbCr(a, b, 1)
			got := distYCbCrBuffered(a, b)
			if math.Abs(got-exact) > 2 {
				t.Errorf("distYCbCrBuffered(%#08x, %#08x) = %v, exact %v", a, b, got, exact)
			}
			if rev := distYCbCrBuffered(b, a); got != rev {
				t.Errorf("distYCbCrBuffered not symmetric for %#08x, %#08x: %v != %v", a, b, got, rev)
			}
			if d, rev := distARGB(a, b, 1), distARGB(b, a, 1); d != rev {
				t.Errorf("distARGB not symmetric for %#08x, %#08x: %v != %v", a, b, d, rev)
			}
		}
		if d := distYCbCrBuffered(a, a); d != 0 {
			t.Errorf("distYCbCrBuffered(%#08x, itself) = %v, want 0", a, d)
		}
	}

	// Odd differences in both directions round to the same magnitude.
	for _, tc := range []struct{ a, b uint32 }{
		{0xff404040, 0xff424242},
		{0xff404040, 0xff414141},
		{0xff000000, 0xffff7f01},
		{0xff102030, 0xff0f1f2f},
	} {
		d, rev := distYCbCrBuffered(tc.a, tc.b), distYCbCrBuffered(tc.b, tc.a)
		if d != rev {
			t.Errorf("distYCbCrBuffered(%#08x, %#08x) = %v, reversed %v", tc.a, tc.b, d, rev)
		}
	}
	if d := distYCbCrBuffered(0xff404040, 0xff414141); d != 0 {
		t.Errorf("distance of unit differences = %v, want 0 after halving", d)
	}
}

func TestAlphaDistance(t *testing.T) {
	const transparentRed, transparentBlue = 0x00ff0000, 0x000000ff
	for _, dist := range []distanceFunc{distARGB, distARGBUnbuffered} {
		if d := dist(transparentRed, transparentBlue, 1); d != 0 {
			t.Errorf("distance between transparent pixels = %v, want 0", d)
		}
		if d := dist(transparentRed, 0xffff0000, 1); math.Abs(d-255) > 1e-9 {
			t.Errorf("distance transparent to opaque of the same color = %v, want 255", d)
		}
		if dist(0x80000000, 0x80ffffff, 1) >= dist(black, white, 1) {
			t.Errorf("half-transparent pixels are not closer than opaque ones")
		}
	}

	// RGB ignores alpha entirely.
	if d := distRGB(transparentRed, 0xffff0000, 1); d >= DefaultConfig().EqualColorTolerance {
		t.Errorf("distRGB depends on alpha: %v", d)
	}
}

func TestEqualColor(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		a, b uint32
		want bool
	}{
		{0xff102030, 0xff112131, true},
		{black, white, false},
		{0xffd03030, 0xffd23232, true},
		{0xffd03030, 0xff3060d0, false},
	}
	for _, format := range ColorFormats() {
		for _, tt := range tests {
			got := EqualColor(tt.a, tt.b, format, cfg.LuminanceWeight, cfg.EqualColorTolerance)
			if got != tt.want {
				t.Errorf("EqualColor(%#08x, %#08x, %v) = %v, want %v", tt.a, tt.b, format, got, tt.want)
			}
		}
	}

	// Alpha decides for the alpha-aware formats only.
	if EqualColor(0x00ff0000, 0xffff0000, ARGB, 1, 30) {
		t.Errorf("ARGB treats transparent and opaque red as equal")
	}
	if !EqualColor(0x00ff0000, 0xffff0000, RGB, 1, 30) {
		t.Errorf("RGB distinguishes pixels that differ only in alpha")
	}
}
