package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/tablist/internal/tablist"
)

func newTestSwitcher(t *testing.T) *tablist.Switcher {
	t.Helper()
	sw := tablist.NewSwitcher()
	if err := sw.Register("settings",
		tablist.Tab{ID: "general", Title: "General", Content: "general options"},
		tablist.Tab{ID: "advanced", Title: "Advanced", Content: "advanced options"},
	); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := sw.Register("profile",
		tablist.Tab{ID: "account", Title: "Account", Content: "account details"},
		tablist.Tab{ID: "security", Title: "Security", Content: "security details"},
	); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	return sw
}

func newTestModel(t *testing.T, sw *tablist.Switcher) TabsModel {
	t.Helper()
	m := NewTabsModel(sw, Options{ShowHelp: true})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return updated.(TabsModel)
}

func send(t *testing.T, m TabsModel, msg tea.Msg) TabsModel {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(TabsModel)
}

func activeTab(t *testing.T, sw *tablist.Switcher, group string) string {
	t.Helper()
	tab, ok := sw.Active(group)
	if !ok {
		t.Fatalf("Active(%q) not found", group)
	}
	return tab.ID
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMouseClickOnTabHeader(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	_, spans := tabBar(m.currentView())
	if len(spans) != 2 {
		t.Fatalf("len(spans) = %d, want 2", len(spans))
	}

	m = send(t, m, tea.MouseMsg{
		X:      spans[1].start,
		Y:      tabRow,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := activeTab(t, sw, "settings"); got != "advanced" {
		t.Errorf("active tab = %q, want advanced", got)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}
	if !strings.Contains(m.View(), "advanced options") {
		t.Error("View() should show the advanced panel")
	}
	if strings.Contains(m.View(), "general options") {
		t.Error("View() should hide the general panel")
	}
}

func TestMouseClickOutsideTabsIsIgnored(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	_, spans := tabBar(m.currentView())
	m = send(t, m, tea.MouseMsg{
		X:      spans[len(spans)-1].end + 5,
		Y:      tabRow,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if got := activeTab(t, sw, "settings"); got != "general" {
		t.Errorf("active tab = %q, want general", got)
	}
}

func TestMouseClickOnGroupSelector(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	_, spans := groupSelector(m.groups, m.focus)
	m = send(t, m, tea.MouseMsg{
		X:      spans[1].start + 1,
		Y:      groupRow,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})

	if m.FocusedGroup() != "profile" {
		t.Errorf("FocusedGroup() = %q, want profile", m.FocusedGroup())
	}
	if !strings.Contains(m.View(), "account details") {
		t.Error("View() should show the profile panel")
	}
}

func TestKeyNavigation(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := activeTab(t, sw, "settings"); got != "advanced" {
		t.Errorf("after tab: active = %q, want advanced", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := activeTab(t, sw, "settings"); got != "general" {
		t.Errorf("after second tab: active = %q, want general (wrap)", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if got := activeTab(t, sw, "settings"); got != "advanced" {
		t.Errorf("after shift+tab: active = %q, want advanced", got)
	}

	m = send(t, m, runeKey(']'))
	if m.FocusedGroup() != "profile" {
		t.Fatalf("after ]: focus = %q, want profile", m.FocusedGroup())
	}

	m = send(t, m, runeKey('2'))
	if got := activeTab(t, sw, "profile"); got != "security" {
		t.Errorf("after 2: active = %q, want security", got)
	}
	if got := activeTab(t, sw, "settings"); got != "advanced" {
		t.Errorf("settings changed while profile focused: %q", got)
	}

	m = send(t, m, runeKey('['))
	if m.FocusedGroup() != "settings" {
		t.Errorf("after [: focus = %q, want settings", m.FocusedGroup())
	}
}

func TestJumpBeyondLastTabIsIgnored(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	m = send(t, m, runeKey('9'))

	if got := activeTab(t, sw, "settings"); got != "general" {
		t.Errorf("active tab = %q, want general", got)
	}
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}
}

func TestRejectedSwitchShowsStatus(t *testing.T) {
	sw := newTestSwitcher(t)
	m := newTestModel(t, sw)

	m.apply(sw.Select("settings", "missing"))

	if !errors.Is(m.Err(), tablist.ErrUnknownTab) {
		t.Fatalf("Err() = %v, want ErrUnknownTab", m.Err())
	}
	if !strings.Contains(m.View(), FailureMarker) {
		t.Error("View() should show the failure marker")
	}
	if got := activeTab(t, sw, "settings"); got != "general" {
		t.Errorf("active tab = %q, want general", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.Err() != nil {
		t.Errorf("Err() = %v after successful switch, want nil", m.Err())
	}
}

func TestStartGroupOption(t *testing.T) {
	sw := newTestSwitcher(t)

	m := NewTabsModel(sw, Options{StartGroup: "profile"})
	if m.FocusedGroup() != "profile" {
		t.Errorf("FocusedGroup() = %q, want profile", m.FocusedGroup())
	}

	m = NewTabsModel(sw, Options{StartGroup: "unknown"})
	if m.FocusedGroup() != "settings" {
		t.Errorf("FocusedGroup() = %q, want settings", m.FocusedGroup())
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t, newTestSwitcher(t))

	_, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestEmptyModel(t *testing.T) {
	m := NewTabsModel(tablist.NewSwitcher(), Options{})

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "No tab groups configured") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestHitTest(t *testing.T) {
	spans := []span{{0, 5}, {6, 12}}

	tests := []struct {
		x    int
		want int
	}{
		{0, 0},
		{4, 0},
		{5, -1},
		{6, 1},
		{11, 1},
		{12, -1},
	}
	for _, tt := range tests {
		if got := hitTest(spans, tt.x); got != tt.want {
			t.Errorf("hitTest(%d) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestPrinterMarkup(t *testing.T) {
	sw := newTestSwitcher(t)
	_ = sw.Select("settings", "advanced")
	g, _ := sw.Group("settings")

	var buf bytes.Buffer
	NewPrinter(&buf).SetWidth(60).PrintMarkup(tablist.Render(g))

	out := buf.String()
	for _, want := range []string{
		`class="settings-id-tab active"`,
		`class="settings-id-content" style="display: block"`,
		`class="settings-id-content" style="display: none"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markup missing %q\n%s", want, out)
		}
	}
}

func TestPrinterGroup(t *testing.T) {
	sw := newTestSwitcher(t)
	g, _ := sw.Group("profile")

	var buf bytes.Buffer
	p := NewPrinter(&buf).SetWidth(60)
	p.PrintGroup(tablist.Render(g))
	p.PrintError(errors.New("boom"))

	out := buf.String()
	if !strings.Contains(out, "Account") || !strings.Contains(out, "account details") {
		t.Errorf("group output missing active tab:\n%s", out)
	}
	if strings.Contains(out, "security details") {
		t.Errorf("group output shows hidden panel:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("error output missing message:\n%s", out)
	}
}
