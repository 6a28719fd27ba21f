package theme

import "github.com/charmbracelet/lipgloss"

// Nord color palette
// https://www.nordtheme.com/docs/colors-and-palettes
var nord = struct {
	Nord0  string // Polar Night
	Nord1  string
	Nord2  string
	Nord3  string
	Nord4  string // Snow Storm
	Nord5  string
	Nord6  string
	Nord7  string // Frost
	Nord8  string
	Nord9  string
	Nord10 string
	Nord11 string // Aurora
	Nord13 string
	Nord14 string
}{
	Nord0:  "#2E3440",
	Nord1:  "#3B4252",
	Nord2:  "#434C5E",
	Nord3:  "#4C566A",
	Nord4:  "#D8DEE9",
	Nord5:  "#E5E9F0",
	Nord6:  "#ECEFF4",
	Nord7:  "#8FBCBB",
	Nord8:  "#88C0D0",
	Nord9:  "#81A1C1",
	Nord10: "#5E81AC",
	Nord11: "#BF616A",
	Nord13: "#EBCB8B",
	Nord14: "#A3BE8C",
}

// NordTheme implements Theme with the Nord color palette. Aurora accents are
// shared between variants, so the light variant leans on the guard.
type NordTheme struct{}

func (t NordTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord6, Dark: nord.Nord0}
}

func (t NordTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord5, Dark: nord.Nord1}
}

func (t NordTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord0, Dark: nord.Nord4}
}

func (t NordTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord3, Dark: nord.Nord3}
}

func (t NordTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord4, Dark: nord.Nord2}
}

func (t NordTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord10, Dark: nord.Nord8}
}

func (t NordTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord9, Dark: nord.Nord9}
}

func (t NordTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord14, Dark: nord.Nord14}
}

func (t NordTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord13, Dark: nord.Nord13}
}

func (t NordTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord11, Dark: nord.Nord11}
}

func (t NordTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: nord.Nord7, Dark: nord.Nord7}
}

func init() {
	RegisterTheme("nord", NordTheme{})
}
