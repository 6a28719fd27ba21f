// Package guard keeps themed foreground tokens readable against their
// paired backgrounds. Apply is the pure core; Guard wraps it for hosts that
// own a mutable style scope and a resize event source.
package guard

import (
	"fmt"
	"sort"

	apperrors "contrastguard/internal/errors"
)

// Theme token names exposed by the host styling layer.
const (
	TokenBackground = "background"
	TokenSurface    = "surface"
	TokenText       = "text"
	TokenTextMuted  = "text-muted"
	TokenBorder     = "border"
	TokenPrimary    = "primary"
	TokenSecondary  = "secondary"
	TokenSuccess    = "success"
	TokenWarning    = "warning"
	TokenDanger     = "danger"
	TokenInfo       = "info"
)

// AccentTokens lists the semantic accent roles in rule order.
var AccentTokens = []string{
	TokenPrimary,
	TokenSecondary,
	TokenSuccess,
	TokenWarning,
	TokenDanger,
	TokenInfo,
}

// AllTokens lists every token the default rules read, backgrounds first.
func AllTokens() []string {
	names := []string{TokenBackground, TokenSurface, TokenText, TokenTextMuted, TokenBorder}
	return append(names, AccentTokens...)
}

// Tokens maps token names to their current textual color values.
type Tokens map[string]string

// Clone returns an independent copy of t.
func (t Tokens) Clone() Tokens {
	out := make(Tokens, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Names returns the token names in sorted order.
func (t Tokens) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rule pairs a foreground token with the background it must stay legible on.
type Rule struct {
	Foreground string
	Background string
	MinRatio   float64
}

func (r Rule) String() string {
	return fmt.Sprintf("%s/%s@%.1f", r.Foreground, r.Background, r.MinRatio)
}

// NewRule validates and builds a Rule. MinRatio must lie in (1, 21].
func NewRule(foreground, background string, minRatio float64) (Rule, error) {
	if foreground == "" || background == "" {
		return Rule{}, apperrors.New(apperrors.CodeInvalidRule, "rule tokens must be named", nil)
	}
	if foreground == background {
		return Rule{}, apperrors.New(apperrors.CodeInvalidRule,
			fmt.Sprintf("rule pairs %q with itself", foreground), nil)
	}
	if !(minRatio > 1 && minRatio <= 21) {
		return Rule{}, apperrors.New(apperrors.CodeInvalidRule,
			fmt.Sprintf("min ratio %.2f outside (1, 21]", minRatio), nil)
	}
	return Rule{Foreground: foreground, Background: background, MinRatio: minRatio}, nil
}

// DefaultRules returns the built-in rule list. Order matters: text is
// checked against the page background first and the surface second, so the
// surface result is what sticks.
func DefaultRules() []Rule {
	rules := []Rule{
		{TokenText, TokenBackground, 7.0},
		{TokenText, TokenSurface, 4.5},
		{TokenTextMuted, TokenSurface, 3.5},
		{TokenBorder, TokenBackground, 1.6},
	}
	for _, accent := range AccentTokens {
		rules = append(rules, Rule{accent, TokenSurface, 3.5})
	}
	return rules
}
