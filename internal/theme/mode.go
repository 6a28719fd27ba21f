package theme

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	apperrors "contrastguard/internal/errors"
)

// Mode selects which palette variant is active.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// Modes lists the modes in cycle order.
var Modes = []Mode{ModeLight, ModeDark, ModeSystem}

// BackgroundDetector reports whether the host prefers a dark appearance.
type BackgroundDetector func() bool

// DetectTerminalBackground asks the terminal for its background color.
func DetectTerminalBackground() bool {
	return termenv.HasDarkBackground()
}

// ParseMode accepts light, dark or system (case-insensitive). Empty input
// means system.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeLight:
		return ModeLight, nil
	case ModeDark:
		return ModeDark, nil
	case ModeSystem, "":
		return ModeSystem, nil
	}
	return "", apperrors.New(apperrors.CodeConfigurationError,
		fmt.Sprintf("unknown mode %q (want light, dark or system)", s), nil)
}

// Next returns the mode after m in cycle order.
func (m Mode) Next() Mode {
	for i, mode := range Modes {
		if mode == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModeLight
}

// Resolve returns true when m resolves to the dark variant. System mode
// consults detect; a nil detector falls back to light.
func Resolve(m Mode, detect BackgroundDetector) bool {
	switch m {
	case ModeDark:
		return true
	case ModeLight:
		return false
	}
	if detect == nil {
		return false
	}
	return detect()
}

// VariantName names the resolved variant for display.
func VariantName(dark bool) string {
	if dark {
		return string(ModeDark)
	}
	return string(ModeLight)
}
