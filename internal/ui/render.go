package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/tablist/internal/tablist"
)

// span is the half-open column range [start, end) occupied by one header
type span struct {
	start int
	end   int
}

// layoutRow renders labels side by side and records where each one landed.
func layoutRow(labels []string, styleFor func(i int) lipgloss.Style) (string, []span) {
	var b strings.Builder
	spans := make([]span, len(labels))
	x := 0
	for i, label := range labels {
		if i > 0 {
			b.WriteString(TabSeparator)
			x += lipgloss.Width(TabSeparator)
		}
		cell := styleFor(i).Render(label)
		w := lipgloss.Width(cell)
		spans[i] = span{start: x, end: x + w}
		b.WriteString(cell)
		x += w
	}
	return b.String(), spans
}

// hitTest returns the index of the span containing column x, or -1
func hitTest(spans []span, x int) int {
	for i, s := range spans {
		if x >= s.start && x < s.end {
			return i
		}
	}
	return -1
}

// RenderTabBar renders the controls of a group view as a single line
func RenderTabBar(v tablist.View) string {
	bar, _ := tabBar(v)
	return bar
}

func tabBar(v tablist.View) (string, []span) {
	labels := make([]string, len(v.Controls))
	for i, c := range v.Controls {
		labels[i] = c.Label
	}
	return layoutRow(labels, func(i int) lipgloss.Style {
		return tabStyle(v.Controls[i].Active)
	})
}

func groupSelector(groups []string, focused int) (string, []span) {
	return layoutRow(groups, func(i int) lipgloss.Style {
		return groupStyle(i == focused)
	})
}

// RenderPanel renders the content of the visible panel, or nothing
func RenderPanel(v tablist.View) string {
	p, ok := v.VisiblePanel()
	if !ok {
		return ""
	}
	return PanelTextStyle.Render(p.Content)
}

// RenderGroup renders the tab bar, a divider and the visible panel
func RenderGroup(v tablist.View, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderTabBar(v),
		RenderDivider(width),
		RenderPanel(v),
	)
}

// RenderMarkup lists the class and display state of every control and panel
func RenderMarkup(v tablist.View) string {
	var lines []string
	for _, c := range v.Controls {
		marker := HiddenMarker
		if c.Active {
			marker = VisibleMarker
		}
		lines = append(lines, marker+" "+MarkupKeyStyle.Render(string(c.ID))+` class="`+c.Class+`"`)
	}
	for _, p := range v.Panels {
		marker := HiddenMarker
		if p.Visible {
			marker = VisibleMarker
		}
		lines = append(lines, marker+" "+MarkupKeyStyle.Render(string(p.ID))+
			` class="`+p.Class+`" style="display: `+p.Display+`"`)
	}
	return strings.Join(lines, "\n")
}
