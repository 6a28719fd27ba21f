package theme

import "github.com/charmbracelet/lipgloss"

// GruvboxTheme implements the Gruvbox color scheme.
type GruvboxTheme struct{}

func (t GruvboxTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#282828", Light: "#fbf1c7"}
}

func (t GruvboxTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#3c3836", Light: "#ebdbb2"}
}

func (t GruvboxTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#ebdbb2", Light: "#3c3836"}
}

func (t GruvboxTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#a89984", Light: "#7c6f64"}
}

func (t GruvboxTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#504945", Light: "#bdae93"}
}

func (t GruvboxTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#83a598", Light: "#076678"}
}

func (t GruvboxTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#d3869b", Light: "#8f3f71"}
}

func (t GruvboxTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#b8bb26", Light: "#79740e"}
}

func (t GruvboxTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#fe8019", Light: "#af3a03"}
}

func (t GruvboxTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#fb4934", Light: "#9d0006"}
}

func (t GruvboxTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: "#8ec07c", Light: "#427b58"}
}

func init() {
	RegisterTheme("gruvbox", GruvboxTheme{})
}
