package color

import "math"

// RelativeLuminance returns the WCAG 2.x relative luminance of c in [0, 1].
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.R/255) + 0.7152*linearize(c.G/255) + 0.0722*linearize(c.B/255)
}

// ContrastRatio returns (L_light + 0.05) / (L_dark + 0.05), always in [1, 21].
func ContrastRatio(a, b Color) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// IsDark reports whether c sits in the lower half of the luminance scale.
func IsDark(c Color) bool {
	return RelativeLuminance(c) < 0.5
}

// linearize applies the sRGB transfer function to a normalized channel.
func linearize(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}
