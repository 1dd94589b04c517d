package components

import (
	"strings"

	"chancli/internal/tui/design"
	"chancli/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	ShowSpinner  bool
	SpinnerView  string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSpinner shows a spinner in the header
func (h *Header) WithSpinner(spinnerView string) *Header {
	h.ShowSpinner = true
	h.SpinnerView = spinnerView
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	leftContent := h.Title
	if h.ShowSpinner && h.SpinnerView != "" {
		leftContent = h.SpinnerView + " " + leftContent
	}

	availableWidth := h.Width - design.HeaderStyle.GetHorizontalFrameSize()
	content := leftContent
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + h.RightContent
		}
	}
	content = utils.TruncateString(content, availableWidth)

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}
