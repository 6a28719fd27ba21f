package contrast

import (
	"math"
	"math/rand"
	"testing"

	"contrastguard/internal/color"
)

func TestAdjustReturnsInputWhenAlreadyMet(t *testing.T) {
	fg := color.Color{R: 248, G: 248, B: 242}
	bg := color.Color{R: 40, G: 42, B: 54}

	out := Adjust(fg, bg, 7)
	if out.Color != fg {
		t.Fatalf("expected fg unchanged, got %v", out.Color)
	}
	if out.Changed || out.Steps != 0 || !out.Met {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if out.Before != out.After {
		t.Fatalf("before %v != after %v for untouched color", out.Before, out.After)
	}
}

func TestAdjustLightBackgroundBlendsTowardBlack(t *testing.T) {
	fg := color.Color{R: 200, G: 200, B: 200}
	bg := color.Color{R: 245, G: 245, B: 245}
	initial := color.ContrastRatio(fg, bg)
	if initial >= 4.5 {
		t.Fatalf("precondition: initial ratio %v should fail 4.5", initial)
	}

	out := Adjust(fg, bg, 4.5)
	got := color.ContrastRatio(out.Color, bg)
	if got <= initial {
		t.Fatalf("ratio %v did not improve on %v", got, initial)
	}
	if got < 4.5 || !out.Met {
		t.Fatalf("expected 4.5 within budget, got %v (%+v)", got, out)
	}
	if out.Steps > MaxSteps {
		t.Fatalf("steps %d exceeded budget", out.Steps)
	}
	if out.Color.R >= fg.R {
		t.Fatalf("expected blend toward black, got %v", out.Color)
	}
	if out.Color != (color.Color{R: 108, G: 108, B: 108}) {
		t.Fatalf("result = %v, want rgb(108, 108, 108)", out.Color)
	}
}

func TestAdjustDarkBackgroundBlendsTowardWhite(t *testing.T) {
	fg := color.Color{R: 98, G: 114, B: 164}
	bg := color.Color{R: 40, G: 42, B: 54}

	out := Adjust(fg, bg, 4.5)
	if out.Color.R <= fg.R || out.Color.G <= fg.G || out.Color.B <= fg.B {
		t.Fatalf("expected every channel to move toward white, got %v", out.Color)
	}
	if out.After < out.Before {
		t.Fatalf("ratio decreased: %v -> %v", out.Before, out.After)
	}
}

func TestAdjustBudgetExhausted(t *testing.T) {
	gray := color.Color{R: 128, G: 128, B: 128}

	out := Adjust(gray, gray, 7)
	if out.Met {
		t.Fatalf("expected best-effort miss, got %+v", out)
	}
	if out.Steps != MaxSteps {
		t.Fatalf("steps = %d, want %d", out.Steps, MaxSteps)
	}
	if !out.Changed || out.After <= out.Before {
		t.Fatalf("expected partial improvement, got %+v", out)
	}
}

func TestAdjustNeverLowersRatio(t *testing.T) {
	// Black on a mid-dark gray: the blend target is white, which first
	// passes through the background's luminance.
	fg := color.Black
	bg := color.Color{R: 100, G: 100, B: 100}

	out := Adjust(fg, bg, 4.5)
	if out.Color != fg || out.Changed {
		t.Fatalf("expected fg to be kept, got %+v", out)
	}
}

func TestAdjustProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	randomColor := func() color.Color {
		return color.Color{R: float64(rng.Intn(256)), G: float64(rng.Intn(256)), B: float64(rng.Intn(256))}
	}

	for i := 0; i < 5000; i++ {
		fg, bg := randomColor(), randomColor()
		minRatio := 1 + rng.Float64()*20

		before := color.ContrastRatio(fg, bg)
		out := Adjust(fg, bg, minRatio)
		after := color.ContrastRatio(out.Color, bg)

		if after < before {
			t.Fatalf("ratio fell for fg=%v bg=%v min=%v: %v -> %v", fg, bg, minRatio, before, after)
		}
		if before >= minRatio && out.Color != fg {
			t.Fatalf("expected idempotent short-circuit for fg=%v bg=%v min=%v", fg, bg, minRatio)
		}
		if out.Met && after < minRatio {
			t.Fatalf("Met set but ratio %v < %v", after, minRatio)
		}
		for _, v := range []float64{out.Color.R, out.Color.G, out.Color.B} {
			if v < 0 || v > 255 {
				t.Fatalf("channel %v out of range", v)
			}
		}
		if again := Adjust(out.Color, bg, minRatio); out.Met && again.Changed {
			t.Fatalf("second adjustment changed a met color: %v -> %v", out.Color, again.Color)
		}
	}
}

func TestAdjustClampsRatio(t *testing.T) {
	fg := color.Color{R: 10, G: 10, B: 10}
	bg := color.Color{R: 12, G: 12, B: 12}

	if out := Adjust(fg, bg, 0.5); out.Changed {
		t.Fatalf("ratio below 1 should be trivially met, got %+v", out)
	}
	out := Adjust(color.Black, color.White, 99)
	if out.Changed {
		t.Fatalf("ratio above 21 should clamp to 21, got %+v", out)
	}
}

func TestClampRatio(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"nan", math.NaN(), 1},
		{"below floor", 0.2, 1},
		{"in range", 4.5, 4.5},
		{"above ceiling", 40, 21},
		{"positive infinity", math.Inf(1), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampRatio(tt.in); got != tt.want {
				t.Errorf("clampRatio(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestAdjustNaNRatioIsTriviallyMet(t *testing.T) {
	fg := color.Color{R: 120, G: 120, B: 120}
	bg := color.Color{R: 128, G: 128, B: 128}
	if out := Adjust(fg, bg, math.NaN()); out.Changed || !out.Met {
		t.Fatalf("NaN ratio should clamp to 1 and leave fg alone, got %+v", out)
	}
}

func TestForContrastMatchesAdjust(t *testing.T) {
	fg := color.Color{R: 200, G: 200, B: 200}
	bg := color.Color{R: 245, G: 245, B: 245}
	if ForContrast(fg, bg, 4.5) != Adjust(fg, bg, 4.5).Color {
		t.Fatal("ForContrast diverged from Adjust")
	}
}
