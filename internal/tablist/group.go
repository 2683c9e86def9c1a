package tablist

// Naming convention tokens
const (
	ContentClassSuffix = "-id-content" // Shared class of every panel in a group
	TabClassSuffix     = "-id-tab"     // Shared class of every control in a group
	ActiveMarker       = "active"      // Class token carried by the active control
	controlIDSuffix    = "-tab"
)

// ControlID uniquely identifies a tab control across all groups
type ControlID string

// PanelID uniquely identifies a tab panel across all groups
type PanelID string

// Tab is one control/panel pair inside a group.
type Tab struct {
	ID      string
	Title   string
	Content string
}

// Label returns the title, falling back to the id when no title is set
func (t Tab) Label() string {
	if t.Title != "" {
		return t.Title
	}
	return t.ID
}

// Binding associates a (group, tab) pair with its control and panel.
type Binding struct {
	Group        string
	Tab          string
	Control      ControlID
	Panel        PanelID
	ControlClass string // "<group>-id-tab"
	PanelClass   string // "<group>-id-content"
}

func newBinding(group, tab string) Binding {
	return Binding{
		Group:        group,
		Tab:          tab,
		Control:      ControlID(group + "-" + tab + controlIDSuffix),
		Panel:        PanelID(group + "-" + tab),
		ControlClass: group + TabClassSuffix,
		PanelClass:   group + ContentClassSuffix,
	}
}

// Group is a snapshot of one tab group's state.
type Group struct {
	Name     string
	Tabs     []Tab
	ActiveID string

	bindings []Binding // parallel to Tabs
}

// IndexOf returns the position of the tab with the given id, or -1
func (g Group) IndexOf(tabID string) int {
	for i, t := range g.Tabs {
		if t.ID == tabID {
			return i
		}
	}
	return -1
}

// ActiveIndex returns the position of the active tab, or -1 for an empty group
func (g Group) ActiveIndex() int {
	return g.IndexOf(g.ActiveID)
}

// TabIDs returns the tab ids in display order
func (g Group) TabIDs() []string {
	ids := make([]string, len(g.Tabs))
	for i, t := range g.Tabs {
		ids[i] = t.ID
	}
	return ids
}

// clone returns a deep copy so callers cannot mutate switcher state
func (g *Group) clone() Group {
	c := Group{
		Name:     g.Name,
		ActiveID: g.ActiveID,
		Tabs:     make([]Tab, len(g.Tabs)),
		bindings: make([]Binding, len(g.bindings)),
	}
	copy(c.Tabs, g.Tabs)
	copy(c.bindings, g.bindings)
	return c
}
