package theme

import "github.com/charmbracelet/lipgloss"

// Solarized color palette
// https://ethanschoonover.com/solarized/
var solarized = struct {
	Base03 string
	Base02 string
	Base01 string
	Base00 string
	Base0  string
	Base1  string
	Base2  string
	Base3  string
	Yellow string
	Red    string
	Violet string
	Blue   string
	Cyan   string
	Green  string
}{
	Base03: "#002b36",
	Base02: "#073642",
	Base01: "#586e75",
	Base00: "#657b83",
	Base0:  "#839496",
	Base1:  "#93a1a1",
	Base2:  "#eee8d5",
	Base3:  "#fdf6e3",
	Yellow: "#b58900",
	Red:    "#dc322f",
	Violet: "#6c71c4",
	Blue:   "#268bd2",
	Cyan:   "#2aa198",
	Green:  "#859900",
}

// SolarizedTheme implements Theme with the Solarized palette. Accents are
// identical in both variants.
type SolarizedTheme struct{}

func (s SolarizedTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Base3, Dark: solarized.Base03}
}

func (s SolarizedTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Base2, Dark: solarized.Base02}
}

func (s SolarizedTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Base00, Dark: solarized.Base0}
}

func (s SolarizedTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Base1, Dark: solarized.Base01}
}

func (s SolarizedTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Base2, Dark: solarized.Base02}
}

func (s SolarizedTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Blue, Dark: solarized.Blue}
}

func (s SolarizedTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Violet, Dark: solarized.Violet}
}

func (s SolarizedTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Green, Dark: solarized.Green}
}

func (s SolarizedTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Yellow, Dark: solarized.Yellow}
}

func (s SolarizedTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Red, Dark: solarized.Red}
}

func (s SolarizedTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: solarized.Cyan, Dark: solarized.Cyan}
}

func init() {
	RegisterTheme("solarized", SolarizedTheme{})
}
