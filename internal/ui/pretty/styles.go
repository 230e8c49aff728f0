// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Enabled is false when output must be written byte-for-byte.
	Enabled bool

	// Report components
	Heading  lipgloss.Style
	Location lipgloss.Style
	Size     lipgloss.Style
	Content  lipgloss.Style
}

// NewStyles creates a new Styles with the given color mode.
func NewStyles(colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}
	return newColorStyles()
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles() *Styles {
	return &Styles{
		Enabled: true,

		Heading:  lipgloss.NewStyle().Bold(true),
		Location: lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
		Size:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Content:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Enabled:  false,
		Heading:  plain,
		Location: plain,
		Size:     plain,
		Content:  plain,
	}
}

// Render applies style to text when styling is enabled and returns text
// untouched otherwise. Lipgloss expands tabs even for a plain style, so
// disabled output bypasses it entirely.
func (s *Styles) Render(style lipgloss.Style, text string) string {
	if s == nil || !s.Enabled {
		return text
	}
	return style.Render(text)
}

// Color modes accepted by IsColorEnabled.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ParseColorMode validates a --color value. Empty selects auto.
func ParseColorMode(mode string) (string, error) {
	switch mode {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return mode, nil
	default:
		return "", fmt.Errorf("unknown color mode %q; valid modes: auto, always, never", mode)
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default: // "auto"
		// Check NO_COLOR environment variable (https://no-color.org/)
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		// Check if output is a TTY
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}
