package xbrz

import (
	"math"
	"testing"

	"github.com/go-xbrz/go-xbrz/xbrz/contrib/raster"
)

// window builds a 4x4 classification window from rows of 0 (black) and
// 1 (white).
func window(rows [4][4]int) *kernel4x4 {
	c := func(v int) uint32 {
		if v == 0 {
			return black
		}
		return white
	}
	r := rows
	return &kernel4x4{
		a: c(r[0][0]), b: c(r[0][1]), c: c(r[0][2]), d: c(r[0][3]),
		e: c(r[1][0]), f: c(r[1][1]), g: c(r[1][2]), h: c(r[1][3]),
		i: c(r[2][0]), j: c(r[2][1]), k: c(r[2][2]), l: c(r[2][3]),
		m: c(r[3][0]), n: c(r[3][1]), o: c(r[3][2]), p: c(r[3][3]),
	}
}

func TestPreProcessCorners(t *testing.T) {
	cls := classifier{dist: distARGBUnbuffered, cfg: DefaultConfig()}
	tests := []struct {
		name string
		rows [4][4]int
		want cornerBlend
	}{
		{
			name: "uniform",
			rows: [4][4]int{{0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		},
		{
			name: "vertical edge",
			rows: [4][4]int{{1, 1, 0, 0}, {1, 1, 0, 0}, {1, 1, 0, 0}, {1, 1, 0, 0}},
		},
		{
			name: "checkerboard tie",
			rows: [4][4]int{{1, 0, 1, 0}, {0, 1, 0, 1}, {1, 0, 1, 0}, {0, 1, 0, 1}},
		},
		{
			name: "isolated pixel",
			rows: [4][4]int{{0, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}},
			want: cornerBlend{f: blendNormal},
		},
		{
			name: "falling diagonal line",
			rows: [4][4]int{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}},
			want: cornerBlend{g: blendDominant, j: blendDominant},
		},
		{
			name: "rising diagonal line",
			rows: [4][4]int{{0, 0, 0, 1}, {0, 0, 1, 0}, {0, 1, 0, 0}, {1, 0, 0, 0}},
			want: cornerBlend{f: blendDominant, k: blendDominant},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.preProcessCorners(window(tt.rows)); got != tt.want {
				t.Errorf("preProcessCorners = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLineBlend(t *testing.T) {
	cls := classifier{dist: distARGBUnbuffered, cfg: DefaultConfig()}

	var dominant, normal, doubled blendInfo
	dominant.setBottomR(blendDominant)
	normal.setBottomR(blendNormal)
	doubled.setBottomR(blendNormal)
	doubled.setTopR(blendNormal)

	isolated := kernel3x3{
		a: black, b: black, c: black,
		d: black, e: white, f: black,
		g: black, h: black, i: black,
	}
	edge := kernel3x3{
		a: white, b: white, c: white,
		d: white, e: white, f: black,
		g: white, h: black, i: black,
	}

	tests := []struct {
		name  string
		ker   kernel3x3
		blend blendInfo
		want  bool
	}{
		{"dominant always draws a line", isolated, dominant, true},
		{"second blend on an insular pixel", isolated, doubled, false},
		{"normal blend along an edge", edge, normal, true},
		{"second blend along an edge", edge, doubled, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cls.lineBlend(&tt.ker, tt.blend); got != tt.want {
				t.Errorf("lineBlend = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSampleWindow_ClampsToEdges(t *testing.T) {
	const w, h = 3, 3
	src := make([]uint32, w*h)
	for i := range src {
		src[i] = uint32(i)
	}
	p := func(x, y int) uint32 { return src[y*w+x] }

	var ker kernel4x4
	sampleWindow(src, w, h, 0, 0, &ker)
	want := kernel4x4{
		a: p(0, 0), b: p(0, 0), c: p(1, 0), d: p(2, 0),
		e: p(0, 0), f: p(0, 0), g: p(1, 0), h: p(2, 0),
		i: p(0, 1), j: p(0, 1), k: p(1, 1), l: p(2, 1),
		m: p(0, 2), n: p(0, 2), o: p(1, 2), p: p(2, 2),
	}
	if ker != want {
		t.Errorf("sampleWindow(0, 0) = %+v, want %+v", ker, want)
	}

	sampleWindow(src, w, h, 2, 2, &ker)
	want = kernel4x4{
		a: p(1, 1), b: p(2, 1), c: p(2, 1), d: p(2, 1),
		e: p(1, 2), f: p(2, 2), g: p(2, 2), h: p(2, 2),
		i: p(1, 2), j: p(2, 2), k: p(2, 2), l: p(2, 2),
		m: p(1, 2), n: p(2, 2), o: p(2, 2), p: p(2, 2),
	}
	if ker != want {
		t.Errorf("sampleWindow(2, 2) = %+v, want %+v", ker, want)
	}

	if c := ker.center(); c.e != ker.f || c.a != ker.a || c.i != ker.k {
		t.Errorf("center() = %+v", c)
	}
}

func TestKernelFor(t *testing.T) {
	for factor := MinScale; factor <= MaxScale; factor++ {
		k := kernelFor(factor)
		if k == nil || k.scale != factor {
			t.Fatalf("kernelFor(%d) = %+v", factor, k)
		}
		if k.lineShallow == nil || k.lineSteep == nil || k.lineSteepAndShallow == nil ||
			k.lineDiagonal == nil || k.corner == nil {
			t.Errorf("kernelFor(%d) has a missing rule", factor)
		}
	}
	for _, factor := range []int{0, 1, 7} {
		if k := kernelFor(factor); k != nil {
			t.Errorf("kernelFor(%d) = %+v, want nil", factor, k)
		}
	}
}

// cornerClass is the classification of one grid corner, seen from the four
// pixels around it.
type cornerClass struct {
	tl, tr, bl, br blendType
	// tie marks corners whose gradients compare within rounding, where the
	// summation order alone may decide the result.
	tie bool
}

// classifyCorners runs the corner classification for every pixel of img.
// The result is keyed by grid point: the corner below and to the right of
// pixel (x, y) is (x+1, y+1).
func classifyCorners(cls *classifier, img *raster.Image) map[[2]int]cornerClass {
	w, h := img.Width(), img.Height()
	corners := make(map[[2]int]cornerClass, w*h)
	var ker kernel4x4
	for y := range h {
		for x := range w {
			sampleWindow(img.Pix(), w, h, x, y, &ker)
			res := cls.preProcessCorners(&ker)
			c := cornerClass{tl: res.f, tr: res.g, bl: res.j, br: res.k}
			if !flatCorner(&ker) {
				jg, fk := cls.cornerGradients(&ker)
				dt := cls.cfg.DominantDirectionThreshold
				c.tie = nearlyEqual(jg, fk) || nearlyEqual(dt*jg, fk) || nearlyEqual(dt*fk, jg)
			}
			corners[[2]int{x + 1, y + 1}] = c
		}
	}
	return corners
}

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestPreProcessCorners_RotationInvariant(t *testing.T) {
	// Each transform maps a grid point of a w x h image to the transformed
	// grid, and the classification seen from the original pixels to the one
	// seen from the transformed pixels.
	transforms := []struct {
		name  string
		apply func(*raster.Image) *raster.Image
		point func(cx, cy, w, h int) [2]int
		class func(o cornerClass) cornerClass
	}{
		{
			name:  "rot90",
			apply: (*raster.Image).Rotate90,
			point: func(cx, cy, w, h int) [2]int { return [2]int{h - cy, cx} },
			class: func(o cornerClass) cornerClass {
				return cornerClass{tl: o.bl, tr: o.tl, br: o.tr, bl: o.br, tie: o.tie}
			},
		},
		{
			name:  "rot180",
			apply: (*raster.Image).Rotate180,
			point: func(cx, cy, w, h int) [2]int { return [2]int{w - cx, h - cy} },
			class: func(o cornerClass) cornerClass {
				return cornerClass{tl: o.br, tr: o.bl, br: o.tl, bl: o.tr, tie: o.tie}
			},
		},
		{
			name:  "rot270",
			apply: (*raster.Image).Rotate270,
			point: func(cx, cy, w, h int) [2]int { return [2]int{cy, w - cx} },
			class: func(o cornerClass) cornerClass {
				return cornerClass{tl: o.tr, tr: o.br, br: o.bl, bl: o.tl, tie: o.tie}
			},
		},
		{
			name:  "flip",
			apply: (*raster.Image).FlipHorizontal,
			point: func(cx, cy, w, h int) [2]int { return [2]int{w - cx, cy} },
			class: func(o cornerClass) cornerClass {
				return cornerClass{tl: o.tr, tr: o.tl, br: o.bl, bl: o.br, tie: o.tie}
			},
		},
	}

	images := map[string]*raster.Image{
		"twoColor": twoColor(13, 9, 1),
		"colorful": colorful(13, 9, 2),
		"opaque":   opaque(colorful(10, 12, 5)),
	}
	for _, format := range ColorFormats() {
		cls := classifier{dist: distanceFor(format), cfg: DefaultConfig()}
		for imgName, img := range images {
			w, h := img.Width(), img.Height()
			direct := classifyCorners(&cls, img)
			for _, tr := range transforms {
				transformed := classifyCorners(&cls, tr.apply(img))
				var blended int
				for cy := 0; cy <= h; cy++ {
					for cx := 0; cx <= w; cx++ {
						want := tr.class(direct[[2]int{cx, cy}])
						got := transformed[tr.point(cx, cy, w, h)]
						if want.tie || got.tie {
							continue
						}
						if want != got {
							t.Errorf("%v %s %s: corner (%d, %d) = %+v, want %+v",
								format, imgName, tr.name, cx, cy, got, want)
						}
						if want != (cornerClass{}) {
							blended++
						}
					}
				}
				if blended == 0 {
					t.Errorf("%v %s %s: no blended corner was compared", format, imgName, tr.name)
				}
			}
		}
	}
}
