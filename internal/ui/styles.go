package ui

import (
	"github.com/charmbracelet/lipgloss"

	"contrastguard/internal/color"
	"contrastguard/internal/guard"
)

// styles are rebuilt from the live scope on every render so they always
// reflect the guarded values.
type styles struct {
	header  lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	status  lipgloss.Style
	helpBox lipgloss.Style
	helpKey lipgloss.Style
}

func newStyles(tokens guard.Tokens) styles {
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(tokenColor(tokens, guard.TokenPrimary)),
		label:  lipgloss.NewStyle().Foreground(tokenColor(tokens, guard.TokenText)),
		muted:  lipgloss.NewStyle().Foreground(tokenColor(tokens, guard.TokenTextMuted)),
		good:   lipgloss.NewStyle().Foreground(tokenColor(tokens, guard.TokenSuccess)),
		bad:    lipgloss.NewStyle().Foreground(tokenColor(tokens, guard.TokenDanger)),
		status: lipgloss.NewStyle().Italic(true).Foreground(tokenColor(tokens, guard.TokenInfo)),
		helpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(tokenColor(tokens, guard.TokenBorder)).
			Padding(1, 2),
		helpKey: lipgloss.NewStyle().Bold(true).Foreground(tokenColor(tokens, guard.TokenSecondary)),
	}
}

func tokenColor(tokens guard.Tokens, name string) lipgloss.Color {
	return lipgloss.Color(terminalColor(tokens[name]))
}

// terminalColor converts a token value into the hex form lipgloss
// understands. Unsupported values pass through unchanged.
func terminalColor(value string) string {
	c, err := color.Parse(value)
	if err != nil {
		return value
	}
	return c.Hex()
}

// swatch renders sample text in fg on bg.
func swatch(fg, bg, text string, width int) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(terminalColor(fg))).
		Background(lipgloss.Color(terminalColor(bg))).
		Width(width).
		Padding(0, 1).
		Render(text)
}
