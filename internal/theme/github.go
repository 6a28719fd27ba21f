package theme

import "github.com/charmbracelet/lipgloss"

// GitHub color palette
// https://primer.style/primitives/colors
var github = struct {
	DarkBg       string
	DarkBgPanel  string
	DarkFg       string
	DarkFgMuted  string
	DarkBorder   string
	DarkBlue     string
	DarkGreen    string
	DarkRed      string
	DarkPurple   string
	DarkYellow   string
	DarkCyan     string
	LightBg      string
	LightBgAlt   string
	LightFg      string
	LightFgMuted string
	LightBorder  string
	LightBlue    string
	LightGreen   string
	LightRed     string
	LightPurple  string
	LightYellow  string
	LightCyan    string
}{
	DarkBg:       "#0d1117",
	DarkBgPanel:  "#161b22",
	DarkFg:       "#c9d1d9",
	DarkFgMuted:  "#8b949e",
	DarkBorder:   "#30363d",
	DarkBlue:     "#58a6ff",
	DarkGreen:    "#3fb950",
	DarkRed:      "#f85149",
	DarkPurple:   "#bc8cff",
	DarkYellow:   "#d29922",
	DarkCyan:     "#39c5cf",
	LightBg:      "#ffffff",
	LightBgAlt:   "#f6f8fa",
	LightFg:      "#24292f",
	LightFgMuted: "#57606a",
	LightBorder:  "#d0d7de",
	LightBlue:    "#0969da",
	LightGreen:   "#1a7f37",
	LightRed:     "#cf222e",
	LightPurple:  "#8250df",
	LightYellow:  "#9a6700",
	LightCyan:    "#1b7c83",
}

// GitHubTheme implements Theme with GitHub's Primer palette.
type GitHubTheme struct{}

func (t GitHubTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightBg, Dark: github.DarkBg}
}

func (t GitHubTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightBgAlt, Dark: github.DarkBgPanel}
}

func (t GitHubTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightFg, Dark: github.DarkFg}
}

func (t GitHubTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightFgMuted, Dark: github.DarkFgMuted}
}

func (t GitHubTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightBorder, Dark: github.DarkBorder}
}

func (t GitHubTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightBlue, Dark: github.DarkBlue}
}

func (t GitHubTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightPurple, Dark: github.DarkPurple}
}

func (t GitHubTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightGreen, Dark: github.DarkGreen}
}

func (t GitHubTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightYellow, Dark: github.DarkYellow}
}

func (t GitHubTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightRed, Dark: github.DarkRed}
}

func (t GitHubTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: github.LightCyan, Dark: github.DarkCyan}
}

func init() {
	RegisterTheme("github", GitHubTheme{})
}
