package xbrz

import "testing"

func TestGradientRGB(t *testing.T) {
	tests := []struct {
		m, n        uint32
		front, back uint32
		want        uint32
	}{
		{1, 2, 0xffffffff, 0xff000000, 0xff7f7f7f},
		{1, 4, 0xffc80000, 0xff000064, 0xff32004b},
		{3, 4, 0x00000000, 0xffffffff, 0x3f3f3f3f},
		{21, 100, 0xff000000, 0xffffffff, 0xffc9c9c9},
	}
	for _, tt := range tests {
		if got := gradientRGB(tt.m, tt.n, tt.front, tt.back); got != tt.want {
			t.Errorf("gradientRGB(%d/%d, %#08x, %#08x) = %#08x, want %#08x",
				tt.m, tt.n, tt.front, tt.back, got, tt.want)
		}
	}
}

func TestGradientARGB(t *testing.T) {
	tests := []struct {
		name        string
		m, n        uint32
		front, back uint32
		want        uint32
	}{
		{"opaque", 1, 2, 0xffffffff, 0xff000000, 0xff7f7f7f},
		{"both transparent", 1, 2, 0x00ff0000, 0x0000ff00, 0},
		{"transparent front keeps back color", 1, 4, 0x00000000, 0xffc86432, 0xbfc86432},
		{"transparent back keeps front color", 1, 4, 0xff3264c8, 0x00ffffff, 0x3f3264c8},
		{"same color", 3, 7, 0x80123456, 0x80123456, 0x80123456},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradientARGB(tt.m, tt.n, tt.front, tt.back); got != tt.want {
				t.Errorf("gradientARGB(%d/%d, %#08x, %#08x) = %#08x, want %#08x",
					tt.m, tt.n, tt.front, tt.back, got, tt.want)
			}
		})
	}
}

func TestGradientFor(t *testing.T) {
	// Only the alpha-aware formats drop the color of transparent pixels.
	front, back := uint32(0x00000000), uint32(0xffffffff)
	if got := gradientFor(RGB)(1, 2, front, back); got != 0x7f7f7f7f {
		t.Errorf("RGB gradient = %#08x", got)
	}
	for _, f := range []ColorFormat{ARGB, ARGBUnbuffered} {
		if got := gradientFor(f)(1, 2, front, back); got != 0x7fffffff {
			t.Errorf("%v gradient = %#08x", f, got)
		}
	}
}
