package config

import (
	"fmt"

	"github.com/muurk/tablist/internal/tablist"
)

// CurrentVersion is the only supported file format version
const CurrentVersion = 1

// Registry represents the entire configuration file.
type Registry struct {
	Version     int          `yaml:"version"`
	Groups      []*GroupSpec `yaml:"groups"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// GroupSpec describes one tab group. Tabs are listed in display order.
type GroupSpec struct {
	Name string     `yaml:"name"`
	Tabs []*TabSpec `yaml:"tabs"`
}

// TabSpec describes one tab and the content of its panel.
type TabSpec struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title,omitempty"`
	Content string `yaml:"content,omitempty"`
}

// Preferences represents display preferences for the terminal UI.
type Preferences struct {
	StartGroup string `yaml:"start_group,omitempty"` // Group focused on startup
	ShowHelp   bool   `yaml:"show_help"`             // Render the key help footer
}

// NewRegistry creates a new Registry with default values and no groups.
func NewRegistry() *Registry {
	return &Registry{
		Version: CurrentVersion,
		Groups:  []*GroupSpec{},
		Preferences: &Preferences{
			ShowHelp: true,
		},
	}
}

// GetGroup retrieves a group by name.
// Returns nil if the group doesn't exist.
func (r *Registry) GetGroup(name string) *GroupSpec {
	for _, g := range r.Groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// EnsureGroup returns the named group, appending an empty one if needed.
func (r *Registry) EnsureGroup(name string) *GroupSpec {
	if g := r.GetGroup(name); g != nil {
		return g
	}
	g := &GroupSpec{Name: name}
	r.Groups = append(r.Groups, g)
	return g
}

// SetTab adds a tab to a group or updates the tab with the same id in place.
func (r *Registry) SetTab(group, id, title, content string) {
	g := r.EnsureGroup(group)
	for _, t := range g.Tabs {
		if t.ID == id {
			t.Title = title
			t.Content = content
			return
		}
	}
	g.Tabs = append(g.Tabs, &TabSpec{ID: id, Title: title, Content: content})
}

// Build registers every group with a new switcher.
// The first error aborts the build and names the offending group.
func (r *Registry) Build() (*tablist.Switcher, error) {
	sw := tablist.NewSwitcher()
	for i, g := range r.Groups {
		if g == nil {
			return nil, fmt.Errorf("group #%d is empty", i+1)
		}
		tabs := make([]tablist.Tab, 0, len(g.Tabs))
		for j, t := range g.Tabs {
			if t == nil {
				return nil, fmt.Errorf("group %q tab #%d is empty", g.Name, j+1)
			}
			tabs = append(tabs, tablist.Tab{ID: t.ID, Title: t.Title, Content: t.Content})
		}
		if err := sw.Register(g.Name, tabs...); err != nil {
			return nil, fmt.Errorf("invalid group %q: %w", g.Name, err)
		}
	}
	return sw, nil
}

// StartGroup returns the preferred start group, falling back to the first group.
func (r *Registry) StartGroup() string {
	if r.Preferences != nil && r.Preferences.StartGroup != "" && r.GetGroup(r.Preferences.StartGroup) != nil {
		return r.Preferences.StartGroup
	}
	if len(r.Groups) > 0 && r.Groups[0] != nil {
		return r.Groups[0].Name
	}
	return ""
}

// DefaultRegistry returns an example configuration used by "tablist init".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Preferences.StartGroup = "settings"

	r.SetTab("settings", "general", "General", "Language, theme and startup behaviour.")
	r.SetTab("settings", "advanced", "Advanced", "Experimental features and debug options.")
	r.SetTab("settings", "about", "About", "tablist, a tab group switcher.")

	r.SetTab("profile", "account", "Account", "Display name and e-mail address.")
	r.SetTab("profile", "security", "Security", "Password and two-factor authentication.")

	return r
}
