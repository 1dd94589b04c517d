package components

import (
	"strings"

	"chancli/internal/tui/design"
	"chancli/internal/tui/model"
	"chancli/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// StatusBar represents the status line between the content and the input
type StatusBar struct {
	Width       int
	Message     string
	MessageType model.MessageType
	LeftText    string
	LeftType    model.MessageType
	RightText   string
	ShowMessage bool
}

// NewStatusBar creates a new status bar
func NewStatusBar(width int) *StatusBar {
	return &StatusBar{
		Width:       width,
		ShowMessage: false,
	}
}

// WithMessage sets a transient message that replaces the left and right text
func (s *StatusBar) WithMessage(message string, msgType model.MessageType) *StatusBar {
	s.Message = message
	s.MessageType = msgType
	s.ShowMessage = true
	return s
}

// WithLeftText sets the left side text
func (s *StatusBar) WithLeftText(text string) *StatusBar {
	s.LeftText = text
	return s
}

// WithRightText sets the right side text
func (s *StatusBar) WithRightText(text string) *StatusBar {
	s.RightText = text
	return s
}

// ClearMessage removes the status message
func (s *StatusBar) ClearMessage() *StatusBar {
	s.ShowMessage = false
	s.Message = ""
	return s
}

// Render returns the styled status bar
func (s *StatusBar) Render() string {
	style := s.getStyle()
	inner := s.Width - style.GetHorizontalFrameSize()

	var content string
	if s.ShowMessage && s.Message != "" {
		content = utils.TruncateString(s.Message, inner)
	} else if s.RightText != "" {
		rightWidth := lipgloss.Width(s.RightText)
		leftRoom := inner - rightWidth - 1
		if leftRoom > 0 {
			left := utils.TruncateString(s.LeftText, leftRoom)
			padding := inner - lipgloss.Width(left) - rightWidth
			content = left + strings.Repeat(" ", padding) + s.RightText
		} else {
			content = utils.TruncateString(s.LeftText, inner)
		}
	} else {
		content = utils.TruncateString(s.LeftText, inner)
	}

	return style.
		Width(s.Width).
		MaxWidth(s.Width).
		Render(content)
}

// getStyle returns the appropriate style based on message type
func (s *StatusBar) getStyle() lipgloss.Style {
	msgType := s.LeftType
	if s.ShowMessage {
		msgType = s.MessageType
	}
	switch msgType {
	case model.StatusBarSuccess:
		return design.StatusBarSuccessStyle
	case model.StatusBarError:
		return design.StatusBarErrorStyle
	case model.StatusBarWarning:
		return design.StatusBarWarningStyle
	default:
		if s.ShowMessage {
			return design.StatusBarInfoStyle
		}
		return design.StatusBarStyle
	}
}
