package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/muurk/tablist/internal/logging"
	"github.com/muurk/tablist/internal/tablist"
)

// Screen rows, see the package documentation
const (
	groupRow    = 0
	tabRow      = 2
	headerRows  = 4
	footerRows  = 2
	minPanelRow = 3
)

// Options configures the interactive program
type Options struct {
	StartGroup string // Focused group on startup; defaults to the first
	ShowHelp   bool   // Render the key help footer
}

// TabsModel is the Bubble Tea model for browsing tab groups.
type TabsModel struct {
	switcher *tablist.Switcher
	groups   []string
	focus    int

	Width  int
	Height int

	viewport viewport.Model
	help     help.Model
	keys     keyMap
	showHelp bool

	// Last rejected switch, cleared by the next successful one
	lastErr error
}

// NewTabsModel creates a model over every group registered with sw
func NewTabsModel(sw *tablist.Switcher, opts Options) TabsModel {
	m := TabsModel{
		switcher: sw,
		groups:   sw.Groups(),
		Width:    MinTerminalWidth,
		Height:   headerRows + footerRows + minPanelRow,
		help:     help.New(),
		keys:     defaultKeyMap(),
		showHelp: opts.ShowHelp,
	}
	for i, g := range m.groups {
		if g == opts.StartGroup {
			m.focus = i
		}
	}
	m.viewport = viewport.New(m.Width, m.panelHeight())
	m.refresh()
	return m
}

// Init implements tea.Model
func (m TabsModel) Init() tea.Cmd {
	return nil
}

// FocusedGroup returns the name of the focused group, or "" when there are none
func (m TabsModel) FocusedGroup() string {
	if len(m.groups) == 0 {
		return ""
	}
	return m.groups[m.focus]
}

// Err returns the last rejected switch, if any
func (m TabsModel) Err() error {
	return m.lastErr
}

// Update implements tea.Model
func (m TabsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.help.Width = msg.Width
		m.viewport.Width = msg.Width
		m.viewport.Height = m.panelHeight()
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case len(m.groups) == 0:
			return m, nil
		case key.Matches(msg, m.keys.NextTab):
			m.apply(m.switcher.Next(m.FocusedGroup()))
			return m, nil
		case key.Matches(msg, m.keys.PrevTab):
			m.apply(m.switcher.Prev(m.FocusedGroup()))
			return m, nil
		case key.Matches(msg, m.keys.NextGroup):
			m.focusGroup(m.focus + 1)
			return m, nil
		case key.Matches(msg, m.keys.PrevGroup):
			m.focusGroup(m.focus - 1)
			return m, nil
		case key.Matches(msg, m.keys.Jump):
			m.clickIndex(int(msg.Runes[0] - '1'))
			return m, nil
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && len(m.groups) > 0 {
			switch msg.Y {
			case groupRow:
				_, spans := groupSelector(m.groups, m.focus)
				if i := hitTest(spans, msg.X); i >= 0 {
					m.focusGroup(i)
				}
				return m, nil
			case tabRow:
				_, spans := tabBar(m.currentView())
				if i := hitTest(spans, msg.X); i >= 0 {
					m.clickIndex(i)
				}
				return m, nil
			}
		}
	}

	// Scrolling keys and the mouse wheel go to the panel
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// clickIndex dispatches a click on the control at display position i
func (m *TabsModel) clickIndex(i int) {
	group := m.FocusedGroup()
	ctl, ok := m.switcher.ControlAt(group, i)
	if !ok {
		logging.Debug("Ignoring click outside tab range",
			zap.String("group", group),
			zap.Int("index", i),
		)
		return
	}
	b, _ := m.switcher.LookupControl(ctl)
	m.apply(m.switcher.HandleTabClick(tablist.ClickEvent{Control: ctl}, group, b.Tab))
}

func (m *TabsModel) apply(err error) {
	m.lastErr = err
	if err == nil {
		m.refresh()
	}
}

func (m *TabsModel) focusGroup(i int) {
	n := len(m.groups)
	if n == 0 {
		return
	}
	m.focus = (i%n + n) % n
	m.lastErr = nil
	m.refresh()
}

// refresh loads the visible panel of the focused group into the viewport
func (m *TabsModel) refresh() {
	if len(m.groups) == 0 {
		m.viewport.SetContent("")
		return
	}
	m.viewport.SetContent(RenderPanel(m.currentView()))
	m.viewport.GotoTop()
}

func (m TabsModel) currentView() tablist.View {
	g, _ := m.switcher.Group(m.FocusedGroup())
	return tablist.Render(g)
}

func (m TabsModel) panelHeight() int {
	h := m.Height - headerRows - footerRows
	if h < minPanelRow {
		return minPanelRow
	}
	return h
}

// View implements tea.Model
func (m TabsModel) View() string {
	if len(m.groups) == 0 {
		return StatusStyle.Render("No tab groups configured. Run 'tablist init' to create an example.") + "\n"
	}

	v := m.currentView()
	selector, _ := groupSelector(m.groups, m.focus)
	bar, _ := tabBar(v)

	var b strings.Builder
	b.WriteString(selector + "\n")
	b.WriteString("\n")
	b.WriteString(bar + "\n")
	b.WriteString(RenderDivider(m.Width) + "\n")
	b.WriteString(m.viewport.View() + "\n")
	b.WriteString(m.statusLine(v) + "\n")
	if m.showHelp {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

func (m TabsModel) statusLine(v tablist.View) string {
	if m.lastErr != nil {
		return ErrorStatusStyle.Render(FailureMarker + " " + m.lastErr.Error())
	}
	c, ok := v.ActiveControl()
	if !ok {
		return ""
	}
	return StatusStyle.Render(v.Group + " › " + c.Label + "  (" + c.Class + ")")
}
