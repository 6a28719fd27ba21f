// Package contrast nudges a foreground color toward black or white until it
// reaches a minimum WCAG contrast ratio against its background.
package contrast

import (
	"math"

	"contrastguard/internal/color"
)

const (
	// MaxSteps bounds the number of blend iterations per adjustment.
	MaxSteps = 12
	// StepFraction is the share of the remaining distance covered per step.
	StepFraction = 0.05

	minRatioFloor = 1.0
	maxRatioCeil  = 21.0
)

// Outcome describes a single adjustment. Changed is false whenever Color
// equals the input foreground.
type Outcome struct {
	Color   color.Color
	Before  float64
	After   float64
	Steps   int
	Met     bool
	Changed bool
}

// ForContrast returns fg adjusted against bg. See Adjust.
func ForContrast(fg, bg color.Color, minRatio float64) color.Color {
	return Adjust(fg, bg, minRatio).Color
}

// Adjust returns fg untouched when it already meets minRatio against bg.
// Otherwise it blends fg toward white (dark bg) or black (light bg) in
// StepFraction increments for at most MaxSteps, stopping as soon as the
// rounded color meets the target. The result is best effort: Met is false
// when the budget ran out first. A walk that ends below the starting ratio
// is discarded and fg is returned.
func Adjust(fg, bg color.Color, minRatio float64) Outcome {
	minRatio = clampRatio(minRatio)
	before := color.ContrastRatio(fg, bg)
	if before >= minRatio {
		return Outcome{Color: fg, Before: before, After: before, Met: true}
	}

	target := color.Black
	if color.IsDark(bg) {
		target = color.White
	}

	cur := fg
	out := fg.Round()
	ratio := before
	steps := 0
	for steps < MaxSteps {
		cur = cur.BlendToward(target, StepFraction)
		steps++
		out = cur.Round()
		ratio = color.ContrastRatio(out, bg)
		if ratio >= minRatio {
			break
		}
	}

	if ratio < before {
		return Outcome{Color: fg, Before: before, After: before}
	}
	return Outcome{
		Color:   out,
		Before:  before,
		After:   ratio,
		Steps:   steps,
		Met:     ratio >= minRatio,
		Changed: out != fg,
	}
}

func clampRatio(r float64) float64 {
	switch {
	case math.IsNaN(r), r < minRatioFloor:
		return minRatioFloor
	case r > maxRatioCeil:
		return maxRatioCeil
	}
	return r
}
