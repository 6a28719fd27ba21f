package color

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func TestRelativeLuminanceBounds(t *testing.T) {
	if got := RelativeLuminance(Black); math.Abs(got) > tolerance {
		t.Fatalf("luminance(black) = %v, want 0", got)
	}
	if got := RelativeLuminance(White); math.Abs(got-1) > tolerance {
		t.Fatalf("luminance(white) = %v, want 1", got)
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	if got := ContrastRatio(White, Black); math.Abs(got-21) > tolerance {
		t.Fatalf("ratio(white, black) = %v, want 21", got)
	}
	if got := ContrastRatio(Black, White); math.Abs(got-21) > tolerance {
		t.Fatalf("ratio is not symmetric: %v", got)
	}
}

func TestContrastRatioSameColor(t *testing.T) {
	c := Color{120, 45, 200}
	if got := ContrastRatio(c, c); math.Abs(got-1) > tolerance {
		t.Fatalf("ratio(c, c) = %v, want 1", got)
	}
}

func TestContrastRatioKnownPair(t *testing.T) {
	fg := Color{200, 200, 200}
	bg := Color{245, 245, 245}
	got := ContrastRatio(fg, bg)
	if got < 1.5 || got > 1.6 {
		t.Fatalf("ratio = %v, want ≈ 1.53", got)
	}
}

func TestContrastRatioRange(t *testing.T) {
	samples := []Color{Black, White, {128, 128, 128}, {255, 0, 0}, {0, 255, 0}, {0, 0, 255}, {18, 52, 86}}
	for _, a := range samples {
		for _, b := range samples {
			r := ContrastRatio(a, b)
			if r < 1-tolerance || r > 21+tolerance {
				t.Fatalf("ratio(%v, %v) = %v outside [1, 21]", a, b, r)
			}
		}
	}
}

func TestIsDark(t *testing.T) {
	if !IsDark(Color{40, 42, 54}) {
		t.Fatal("expected dracula background to be dark")
	}
	if IsDark(Color{245, 245, 245}) {
		t.Fatal("expected near-white to be light")
	}
}
