package design

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestInitialize(t *testing.T) {
	tests := []struct {
		name       string
		isDarkMode bool
		expected   bool
	}{
		{"set dark mode", true, true},
		{"set light mode", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Initialize(tt.isDarkMode)
			if lipgloss.HasDarkBackground() != tt.expected {
				t.Errorf("lipgloss.HasDarkBackground() got %v, want %v after Initialize(%v)", lipgloss.HasDarkBackground(), tt.expected, tt.isDarkMode)
			}
		})
	}
}

func TestContentStylesKeepText(t *testing.T) {
	for name, style := range map[string]lipgloss.Style{
		"plain":     ContentPlainStyle,
		"highlight": ContentHighlightStyle,
		"quoted":    ContentQuotedStyle,
		"heading":   ContentHeadingStyle,
		"muted":     ContentMutedStyle,
	} {
		if got := lipgloss.Width(style.Render("No. 1234")); got != len("No. 1234") {
			t.Errorf("%s style changed the text width: got %d", name, got)
		}
	}
}
