package theme

import "github.com/charmbracelet/lipgloss"

// SlateTheme is authored in rgb() notation the way a CSS design system
// exports it. Its border and info roles use formats the guard does not
// read (short hex, hsl), so those rules are left alone.
type SlateTheme struct{}

func (t SlateTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(248, 250, 252)", Dark: "rgb(15, 23, 42)"}
}

func (t SlateTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(241, 245, 249)", Dark: "rgb(30, 41, 59)"}
}

func (t SlateTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(51, 65, 85)", Dark: "rgb(226, 232, 240)"}
}

func (t SlateTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(148, 163, 184)", Dark: "rgb(100, 116, 139)"}
}

func (t SlateTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ccc", Dark: "#333"}
}

func (t SlateTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(59, 130, 246)", Dark: "rgb(96, 165, 250)"}
}

func (t SlateTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgba(139, 92, 246, 1)", Dark: "rgba(167, 139, 250, 1)"}
}

func (t SlateTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(34, 197, 94)", Dark: "rgb(74, 222, 128)"}
}

func (t SlateTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(234, 179, 8)", Dark: "rgb(250, 204, 21)"}
}

func (t SlateTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "rgb(239, 68, 68)", Dark: "rgb(248, 113, 113)"}
}

func (t SlateTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "hsl(199, 89%, 48%)", Dark: "hsl(199, 89%, 48%)"}
}

func init() {
	RegisterTheme("slate", SlateTheme{})
}
