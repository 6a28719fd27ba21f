package theme

import "github.com/charmbracelet/lipgloss"

// Dracula color palette
// https://draculatheme.com/contribute
var dracula = struct {
	Background  string
	CurrentLine string
	Foreground  string
	Comment     string
	Cyan        string
	Green       string
	Orange      string
	Purple      string
	Red         string
}{
	Background:  "#282a36",
	CurrentLine: "#44475a",
	Foreground:  "#f8f8f2",
	Comment:     "#6272a4",
	Cyan:        "#8be9fd",
	Green:       "#50fa7b",
	Orange:      "#ffb86c",
	Purple:      "#bd93f9",
	Red:         "#ff5555",
}

// DraculaTheme implements Theme with the Dracula color palette.
type DraculaTheme struct{}

// Backgrounds

func (d DraculaTheme) Background() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ffffff", Dark: dracula.Background}
}

func (d DraculaTheme) Surface() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#f4f4f8", Dark: dracula.CurrentLine}
}

// Text and chrome

func (d DraculaTheme) Text() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#212121", Dark: dracula.Foreground}
}

func (d DraculaTheme) TextMuted() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#757575", Dark: dracula.Comment}
}

func (d DraculaTheme) Border() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#e0e0e0", Dark: dracula.CurrentLine}
}

// Semantic accents

func (d DraculaTheme) Primary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#7e57c2", Dark: dracula.Purple}
}

func (d DraculaTheme) Secondary() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#0097a7", Dark: dracula.Cyan}
}

func (d DraculaTheme) Success() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#388e3c", Dark: dracula.Green}
}

func (d DraculaTheme) Warning() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#ef6c00", Dark: dracula.Orange}
}

func (d DraculaTheme) Danger() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#d32f2f", Dark: dracula.Red}
}

func (d DraculaTheme) Info() lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: "#1976d2", Dark: dracula.Cyan}
}

func init() {
	RegisterTheme("dracula", DraculaTheme{})
}
