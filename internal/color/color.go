// Package color models the two textual color formats the contrast guard
// understands (6-digit hex and rgb()/rgba() triples) and the WCAG luminance
// math used to compare them.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	apperrors "contrastguard/internal/errors"
)

// Color is an sRGB triple. Channels stay within [0, 255] but may carry a
// fractional part while a blend is in progress.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// RGB builds a Color, clamping every channel into [0, 255].
func RGB(r, g, b float64) Color {
	return Color{R: clampChannel(r), G: clampChannel(g), B: clampChannel(b)}
}

// Parse reads "#rrggbb", "rrggbb", "rgb(r, g, b)" or "rgba(r, g, b, a)".
// Any other syntax (3-digit hex, named colors, hsl(), gradients, empty input)
// yields an error coded CodeUnsupportedFormat.
func Parse(text string) (Color, error) {
	s := strings.TrimSpace(text)
	lower := strings.ToLower(s)

	switch {
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		return parseTriple(text, s[len("rgba("):len(s)-1])
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		return parseTriple(text, s[len("rgb("):len(s)-1])
	}
	return parseHex(text, strings.TrimPrefix(s, "#"))
}

func parseHex(orig, hex string) (Color, error) {
	if len(hex) != 6 {
		return Color{}, unsupported(orig)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, unsupported(orig)
	}
	return Color{
		R: float64(v >> 16 & 0xff),
		G: float64(v >> 8 & 0xff),
		B: float64(v & 0xff),
	}, nil
}

func parseTriple(orig, body string) (Color, error) {
	parts := strings.Split(body, ",")
	if len(parts) < 3 {
		return Color{}, unsupported(orig)
	}
	var ch [3]float64
	for i := 0; i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || n < 0 || n > 255 {
			return Color{}, unsupported(orig)
		}
		ch[i] = float64(n)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func unsupported(text string) error {
	return apperrors.New(apperrors.CodeUnsupportedFormat, fmt.Sprintf("unsupported color %q", text), nil)
}

// String renders the canonical "rgb(r, g, b)" form with rounded channels.
func (c Color) String() string {
	r := c.Round()
	return fmt.Sprintf("rgb(%d, %d, %d)", int(r.R), int(r.G), int(r.B))
}

// Hex renders "#rrggbb" with rounded channels.
func (c Color) Hex() string {
	r := c.Round()
	return fmt.Sprintf("#%02x%02x%02x", int(r.R), int(r.G), int(r.B))
}

// Round returns c with every channel rounded to the nearest integer.
func (c Color) Round() Color {
	return RGB(math.Round(c.R), math.Round(c.G), math.Round(c.B))
}

// BlendToward moves each channel the given fraction of its remaining
// distance toward target.
func (c Color) BlendToward(target Color, fraction float64) Color {
	return RGB(
		c.R+(target.R-c.R)*fraction,
		c.G+(target.G-c.G)*fraction,
		c.B+(target.B-c.B)*fraction,
	)
}

func clampChannel(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return v
}
