package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - active tab, borders
	SuccessColor = lipgloss.Color("#43BF6D") // Green - focused group
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected switches
	MutedColor   = lipgloss.Color("#626262") // Gray - inactive tabs, help
	TextColor    = lipgloss.Color("#FFFFFF") // White - main content
)

// Layout constants
const (
	MinTerminalWidth = 40  // Minimum supported terminal width
	MaxContentWidth  = 120 // Maximum content width before capping
	TabSeparator     = " " // Between tab headers
)

var (
	// ActiveTabStyle marks the control of the visible panel
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(PrimaryColor).
			Bold(true).
			Padding(0, 1)

	// InactiveTabStyle is for every other control
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Padding(0, 1)

	// FocusedGroupStyle is for the focused entry of the group selector
	FocusedGroupStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true).
				Underline(true).
				Padding(0, 1)

	// GroupStyle is for unfocused entries of the group selector
	GroupStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	// PanelTextStyle is for panel content
	PanelTextStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			PaddingLeft(1)

	// StatusStyle is for the status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// ErrorStatusStyle is for a status line reporting a rejected switch
	ErrorStatusStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// MarkupKeyStyle is for ids in markup listings
	MarkupKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(28)
)

// Status markers
const (
	VisibleMarker = "●"
	HiddenMarker  = "·"
	FailureMarker = "✗"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}

// tabStyle returns the style used for a tab header
func tabStyle(active bool) lipgloss.Style {
	if active {
		return ActiveTabStyle
	}
	return InactiveTabStyle
}

// groupStyle returns the style used for a group selector entry
func groupStyle(focused bool) lipgloss.Style {
	if focused {
		return FocusedGroupStyle
	}
	return GroupStyle
}

// RenderDivider creates a horizontal line of the given width
func RenderDivider(width int) string {
	if width < 1 {
		width = 1
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat("─", width))
}
