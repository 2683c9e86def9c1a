package tablist

// DisplayBlock and DisplayNone are the display values of visible and hidden panels
const (
	DisplayBlock = "block"
	DisplayNone  = "none"
)

// ControlView is the rendered state of one tab control
type ControlView struct {
	ID     ControlID `json:"id"`
	Tab    string    `json:"tab"`
	Label  string    `json:"label"`
	Class  string    `json:"class"` // e.g. "settings-id-tab active"
	Active bool      `json:"active"`
}

// PanelView is the rendered state of one tab panel
type PanelView struct {
	ID      PanelID `json:"id"`
	Tab     string  `json:"tab"`
	Content string  `json:"content,omitempty"`
	Class   string  `json:"class"`   // e.g. "settings-id-content"
	Display string  `json:"display"` // DisplayBlock or DisplayNone
	Visible bool    `json:"visible"`
}

// View is the rendered state of a whole group
type View struct {
	Group    string        `json:"group"`
	Controls []ControlView `json:"controls"`
	Panels   []PanelView   `json:"panels"`
}

// Render computes the display state of every control and panel in g.
// It has no side effects.
func Render(g Group) View {
	v := View{
		Group:    g.Name,
		Controls: make([]ControlView, len(g.Tabs)),
		Panels:   make([]PanelView, len(g.Tabs)),
	}

	for i, t := range g.Tabs {
		b := g.bindingAt(i)
		active := t.ID == g.ActiveID

		v.Controls[i] = ControlView{
			ID:     b.Control,
			Tab:    t.ID,
			Label:  t.Label(),
			Class:  ControlClass(b.ControlClass, active),
			Active: active,
		}

		display := DisplayNone
		if active {
			display = DisplayBlock
		}
		v.Panels[i] = PanelView{
			ID:      b.Panel,
			Tab:     t.ID,
			Content: t.Content,
			Class:   b.PanelClass,
			Display: display,
			Visible: active,
		}
	}

	return v
}

// ControlClass returns the class string of a control
func ControlClass(base string, active bool) string {
	if active {
		return base + " " + ActiveMarker
	}
	return base
}

// ActiveControl returns the active control, if any
func (v View) ActiveControl() (ControlView, bool) {
	for _, c := range v.Controls {
		if c.Active {
			return c, true
		}
	}
	return ControlView{}, false
}

// VisiblePanel returns the visible panel, if any
func (v View) VisiblePanel() (PanelView, bool) {
	for _, p := range v.Panels {
		if p.Visible {
			return p, true
		}
	}
	return PanelView{}, false
}

// bindingAt tolerates groups built by hand (without Register) by deriving the binding
func (g Group) bindingAt(i int) Binding {
	if i < len(g.bindings) {
		return g.bindings[i]
	}
	return newBinding(g.Name, g.Tabs[i].ID)
}
