// Package tablist implements mutually exclusive tab groups.
//
// A tab group is a named, ordered set of tabs. Each tab pairs a control (the
// clickable header) with a panel (the content shown while the tab is active).
// Exactly one tab per group is active at any time: its panel is visible and its
// control carries the "active" marker.
//
// # State and Rendering
//
// State is explicit. The Switcher keeps, per group, the ordered tab ids and the
// id of the active tab. Nothing is read back from a rendered tree. Rendering is
// a separate, pure step:
//
//	sw := tablist.NewSwitcher()
//	_ = sw.Register("settings",
//	    tablist.Tab{ID: "general", Title: "General"},
//	    tablist.Tab{ID: "advanced", Title: "Advanced"},
//	)
//
//	ctl, _ := sw.ControlFor("settings", "advanced")
//	if err := sw.HandleTabClick(tablist.ClickEvent{Control: ctl}, "settings", "advanced"); err != nil {
//	    // *TabError, state unchanged
//	}
//
//	g, _ := sw.Group("settings")
//	view := tablist.Render(g)
//
// # Naming Convention
//
// Rendered views carry the identifiers of the established naming convention so
// that existing markup keeps working:
//
//   - panels share the class "<group>-id-content" and have id "<group>-<tab>"
//   - controls share the class "<group>-id-tab"; the active one has " active"
//     appended
//
// These identifiers are computed once when a group is registered and stored in
// a Binding. Callers never build them by string concatenation.
//
// # Errors
//
// HandleTabClick validates everything before mutating. An unknown group, an
// unknown tab or a click from a control that does not belong to the target tab
// returns a *TabError and leaves the group exactly as it was.
package tablist
