package tablist

import (
	"go.uber.org/zap"

	"github.com/muurk/tablist/internal/logging"
)

// ClickEvent describes the interaction that triggered a tab switch.
// Control identifies the control that was clicked. The zero value stands for a
// programmatic selection with no originating control.
type ClickEvent struct {
	Control ControlID
}

// Switcher owns the state of every registered tab group.
// It is not safe for concurrent use; it is meant to be owned by a single event loop.
type Switcher struct {
	groups   map[string]*Group
	order    []string
	controls map[ControlID]Binding
	ids      map[string]Binding // every control and panel id in use
}

// NewSwitcher creates an empty Switcher
func NewSwitcher() *Switcher {
	return &Switcher{
		groups:   make(map[string]*Group),
		controls: make(map[ControlID]Binding),
		ids:      make(map[string]Binding),
	}
}

// Register adds a tab group. The first tab becomes active.
func (s *Switcher) Register(name string, tabs ...Tab) error {
	if name == "" {
		return newTabError(ErrTypeInvalidArgument, name, "", "group name must not be empty")
	}
	if _, exists := s.groups[name]; exists {
		return newTabError(ErrTypeDuplicate, name, "", "group already registered")
	}
	if len(tabs) == 0 {
		return newTabError(ErrTypeInvalidArgument, name, "", "group must have at least one tab")
	}

	g := &Group{
		Name:     name,
		Tabs:     make([]Tab, 0, len(tabs)),
		bindings: make([]Binding, 0, len(tabs)),
	}
	seen := make(map[string]bool, len(tabs))
	pending := make(map[string]Binding, 2*len(tabs))
	for _, t := range tabs {
		if t.ID == "" {
			return newTabError(ErrTypeInvalidArgument, name, "", "tab id must not be empty")
		}
		if seen[t.ID] {
			return newTabError(ErrTypeDuplicate, name, t.ID, "tab id used twice in group")
		}
		b := newBinding(name, t.ID)
		for _, id := range []string{string(b.Control), string(b.Panel)} {
			other, taken := s.ids[id]
			if !taken {
				other, taken = pending[id]
			}
			if taken {
				return newTabError(ErrTypeDuplicate, name, t.ID,
					"id "+id+" already used by "+other.Group+"/"+other.Tab)
			}
			pending[id] = b
		}
		seen[t.ID] = true
		g.Tabs = append(g.Tabs, t)
		g.bindings = append(g.bindings, b)
	}
	g.ActiveID = g.Tabs[0].ID

	for _, b := range g.bindings {
		s.controls[b.Control] = b
	}
	for id, b := range pending {
		s.ids[id] = b
	}
	s.groups[name] = g
	s.order = append(s.order, name)

	logging.Debug("Tab group registered",
		zap.String("group", name),
		zap.Strings("tabs", g.TabIDs()),
	)
	return nil
}

// HandleTabClick makes tabID the active tab of groupName.
//
// Afterwards the panel of tabID is the only visible panel in the group and the
// control that originated evt is the only active control. All inputs are
// validated first; on error the group is left untouched.
func (s *Switcher) HandleTabClick(evt ClickEvent, groupName, tabID string) error {
	if groupName == "" || tabID == "" {
		return s.reject(newTabError(ErrTypeInvalidArgument, groupName, tabID, "group name and tab id are required"))
	}

	g, ok := s.groups[groupName]
	if !ok {
		return s.reject(newTabError(ErrTypeUnknownGroup, groupName, tabID, "no such group"))
	}

	idx := g.IndexOf(tabID)
	if idx < 0 {
		return s.reject(newTabError(ErrTypeUnknownTab, groupName, tabID, "no such tab in group"))
	}

	if evt.Control != "" && evt.Control != g.bindings[idx].Control {
		e := newTabError(ErrTypeControlMismatch, groupName, tabID,
			"click originated from "+string(evt.Control)+", expected "+string(g.bindings[idx].Control))
		return s.reject(e)
	}

	previous := g.ActiveID
	g.ActiveID = tabID
	logging.LogTabSwitch(groupName, previous, tabID, string(evt.Control))
	return nil
}

// Select activates a tab without an originating control
func (s *Switcher) Select(groupName, tabID string) error {
	return s.HandleTabClick(ClickEvent{}, groupName, tabID)
}

// Click resolves the group and tab from a control id and activates it
func (s *Switcher) Click(control ControlID) error {
	b, ok := s.controls[control]
	if !ok {
		return s.reject(newTabError(ErrTypeUnknownTab, "", string(control), "no tab bound to control"))
	}
	return s.HandleTabClick(ClickEvent{Control: control}, b.Group, b.Tab)
}

// Next activates the tab after the active one, wrapping to the first
func (s *Switcher) Next(groupName string) error {
	return s.step(groupName, 1)
}

// Prev activates the tab before the active one, wrapping to the last
func (s *Switcher) Prev(groupName string) error {
	return s.step(groupName, -1)
}

func (s *Switcher) step(groupName string, delta int) error {
	g, ok := s.groups[groupName]
	if !ok {
		return s.reject(newTabError(ErrTypeUnknownGroup, groupName, "", "no such group"))
	}
	n := len(g.Tabs)
	i := (g.ActiveIndex() + delta + n) % n
	return s.HandleTabClick(ClickEvent{Control: g.bindings[i].Control}, groupName, g.Tabs[i].ID)
}

// Group returns a snapshot of the named group
func (s *Switcher) Group(name string) (Group, bool) {
	g, ok := s.groups[name]
	if !ok {
		return Group{}, false
	}
	return g.clone(), true
}

// Groups returns the group names in registration order
func (s *Switcher) Groups() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Active returns the active tab of the named group
func (s *Switcher) Active(name string) (Tab, bool) {
	g, ok := s.groups[name]
	if !ok {
		return Tab{}, false
	}
	return g.Tabs[g.ActiveIndex()], true
}

// ControlFor returns the control bound to (groupName, tabID)
func (s *Switcher) ControlFor(groupName, tabID string) (ControlID, bool) {
	g, ok := s.groups[groupName]
	if !ok {
		return "", false
	}
	idx := g.IndexOf(tabID)
	if idx < 0 {
		return "", false
	}
	return g.bindings[idx].Control, true
}

// ControlAt returns the control at a display position within a group
func (s *Switcher) ControlAt(groupName string, index int) (ControlID, bool) {
	g, ok := s.groups[groupName]
	if !ok || index < 0 || index >= len(g.bindings) {
		return "", false
	}
	return g.bindings[index].Control, true
}

// LookupControl returns the binding of a control id
func (s *Switcher) LookupControl(id ControlID) (Binding, bool) {
	b, ok := s.controls[id]
	return b, ok
}

// RenderAll renders every group in registration order
func (s *Switcher) RenderAll() []View {
	views := make([]View, 0, len(s.order))
	for _, name := range s.order {
		views = append(views, Render(s.groups[name].clone()))
	}
	return views
}

func (s *Switcher) reject(err *TabError) error {
	logging.LogTabRejected(err.Group, err.Tab, err.Type.String(), err.Message)
	return err
}
