// Package theme provides the host styling layer: named palettes with light
// and dark variants, mode resolution, and the root style scope the contrast
// guard reads from and writes to.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"contrastguard/internal/guard"
)

// Theme defines the eleven color roles of the dashboard.
// All methods return AdaptiveColor for automatic light/dark support.
type Theme interface {
	// Backgrounds
	Background() lipgloss.AdaptiveColor // Page background
	Surface() lipgloss.AdaptiveColor    // Cards, panels

	// Text and chrome
	Text() lipgloss.AdaptiveColor      // Body text
	TextMuted() lipgloss.AdaptiveColor // Secondary text
	Border() lipgloss.AdaptiveColor    // Dividers, outlines

	// Semantic accents
	Primary() lipgloss.AdaptiveColor
	Secondary() lipgloss.AdaptiveColor
	Success() lipgloss.AdaptiveColor
	Warning() lipgloss.AdaptiveColor
	Danger() lipgloss.AdaptiveColor
	Info() lipgloss.AdaptiveColor
}

// Tokens flattens t into token values for one variant.
func Tokens(t Theme, dark bool) guard.Tokens {
	pick := func(c lipgloss.AdaptiveColor) string {
		if dark {
			return c.Dark
		}
		return c.Light
	}
	return guard.Tokens{
		guard.TokenBackground: pick(t.Background()),
		guard.TokenSurface:    pick(t.Surface()),
		guard.TokenText:       pick(t.Text()),
		guard.TokenTextMuted:  pick(t.TextMuted()),
		guard.TokenBorder:     pick(t.Border()),
		guard.TokenPrimary:    pick(t.Primary()),
		guard.TokenSecondary:  pick(t.Secondary()),
		guard.TokenSuccess:    pick(t.Success()),
		guard.TokenWarning:    pick(t.Warning()),
		guard.TokenDanger:     pick(t.Danger()),
		guard.TokenInfo:       pick(t.Info()),
	}
}
