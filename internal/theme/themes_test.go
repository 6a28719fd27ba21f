package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"contrastguard/internal/guard"
)

// TestAllThemesRegistered verifies that all expected themes are registered.
func TestAllThemesRegistered(t *testing.T) {
	expected := []string{"dracula", "github", "gruvbox", "nord", "slate", "solarized", "tokyonight"}

	availableMap := make(map[string]bool)
	for _, name := range Available() {
		availableMap[name] = true
	}
	for _, name := range expected {
		if !availableMap[name] {
			t.Errorf("expected theme %q to be registered, but it was not found", name)
		}
	}
}

// TestSetTheme verifies that theme switching works.
func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dracula") })
	for _, name := range []string{"dracula", "nord", "solarized", "slate"} {
		if !SetTheme(name) {
			t.Errorf("SetTheme(%q) returned false, expected true", name)
			continue
		}
		if CurrentName() != name {
			t.Errorf("CurrentName() = %q, expected %q", CurrentName(), name)
		}
	}
}

// TestSetInvalidTheme verifies that setting an invalid theme returns false.
func TestSetInvalidTheme(t *testing.T) {
	if SetTheme("nonexistent-theme") {
		t.Error("SetTheme(\"nonexistent-theme\") returned true, expected false")
	}
	if _, ok := Lookup("nonexistent-theme"); ok {
		t.Error("Lookup(\"nonexistent-theme\") returned ok")
	}
}

// TestCycleTheme verifies that cycling visits every theme and wraps around.
func TestCycleTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("dracula") })
	SetTheme("dracula")

	names := Available()
	seen := map[string]bool{CurrentName(): true}
	for i := 0; i < len(names); i++ {
		seen[CycleTheme()] = true
	}
	if len(seen) != len(names) {
		t.Errorf("expected to cycle through %d themes, only saw %d", len(names), len(seen))
	}
	if CurrentName() != "dracula" {
		t.Errorf("expected cycle to wrap back to dracula, got %q", CurrentName())
	}
}

// TestAvailableSorted verifies that Available returns sorted theme names.
func TestAvailableSorted(t *testing.T) {
	available := Available()
	for i := 1; i < len(available); i++ {
		if available[i-1] > available[i] {
			t.Errorf("Available() not sorted: %q > %q at index %d", available[i-1], available[i], i-1)
		}
	}
}

// TestThemeColorsNotEmpty verifies that every role has both variants.
func TestThemeColorsNotEmpty(t *testing.T) {
	for _, name := range Available() {
		th, _ := Lookup(name)
		check := func(role string, c lipgloss.AdaptiveColor) {
			if c.Dark == "" || c.Light == "" {
				t.Errorf("theme %q: %s is missing a variant (%+v)", name, role, c)
			}
		}
		check("Background", th.Background())
		check("Surface", th.Surface())
		check("Text", th.Text())
		check("TextMuted", th.TextMuted())
		check("Border", th.Border())
		check("Primary", th.Primary())
		check("Secondary", th.Secondary())
		check("Success", th.Success())
		check("Warning", th.Warning())
		check("Danger", th.Danger())
		check("Info", th.Info())
	}
}

func TestTokensPicksVariant(t *testing.T) {
	light := Tokens(DraculaTheme{}, false)
	dark := Tokens(DraculaTheme{}, true)

	if light[guard.TokenBackground] != "#ffffff" {
		t.Errorf("light background = %q", light[guard.TokenBackground])
	}
	if dark[guard.TokenBackground] != "#282a36" {
		t.Errorf("dark background = %q", dark[guard.TokenBackground])
	}
	for _, name := range guard.AllTokens() {
		if _, ok := dark[name]; !ok {
			t.Errorf("token %q missing from flattened theme", name)
		}
	}
}

// TestGuardReachesFixedPoint runs the guard twice over every palette
// variant and expects the second pass to change nothing.
func TestGuardReachesFixedPoint(t *testing.T) {
	for _, name := range Available() {
		th, _ := Lookup(name)
		for _, dark := range []bool{false, true} {
			t.Run(name+"/"+VariantName(dark), func(t *testing.T) {
				scope := NewScope(Tokens(th, dark))
				g := guard.New()

				g.ApplyOnce(scope)
				first := scope.Snapshot()
				g.ApplyOnce(scope)
				second := scope.Snapshot()

				for token, v := range first {
					if second[token] != v {
						t.Errorf("token %q moved on second pass: %q -> %q", token, v, second[token])
					}
				}
			})
		}
	}
}

func TestGuardAdjustsKnownPalette(t *testing.T) {
	scope := NewScope(Tokens(SolarizedTheme{}, false))
	guard.New().ApplyOnce(scope)

	want := map[string]string{
		guard.TokenText:       "rgb(71, 86, 91)",
		guard.TokenTextMuted:  "rgb(108, 118, 118)",
		guard.TokenBorder:     "rgb(194, 189, 173)",
		guard.TokenBackground: "#fdf6e3",
		guard.TokenSurface:    "#eee8d5",
		guard.TokenSecondary:  "#6c71c4",
	}
	for token, v := range want {
		if got, _ := scope.Get(token); got != v {
			t.Errorf("%s = %q, want %q", token, got, v)
		}
	}
}

func TestGuardSkipsUnsupportedFormats(t *testing.T) {
	scope := NewScope(Tokens(SlateTheme{}, true))
	guard.New().ApplyOnce(scope)

	if got, _ := scope.Get(guard.TokenBorder); got != "#333" {
		t.Errorf("border = %q, want untouched #333", got)
	}
	if got, _ := scope.Get(guard.TokenInfo); got != "hsl(199, 89%, 48%)" {
		t.Errorf("info = %q, want untouched hsl value", got)
	}
	if got, _ := scope.Get(guard.TokenTextMuted); got != "rgb(115, 130, 150)" {
		t.Errorf("text-muted = %q, want rgb(115, 130, 150)", got)
	}
}
