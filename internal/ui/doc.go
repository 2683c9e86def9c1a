// Package ui provides the terminal front end for tablist.
//
// This package uses Bubble Tea and Lipgloss to draw tab groups as a tab bar
// over a scrollable panel. Clicks on a tab header and key presses are turned
// into click events and handed to the tablist.Switcher; the screen is then
// redrawn from the switcher state.
//
// # Screen Layout
//
//	row 0   group selector     settings  profile
//	row 1   (blank)
//	row 2   tab bar            General  Advanced  About
//	row 3   divider            ────────────────────────
//	row 4+  panel viewport     ...
//	footer  status line and key help
//
// # One-shot Output
//
// The Printer renders a single group to a writer without starting a program.
// The "show" command uses PrintGroup, or PrintMarkup with --format markup; the
// "markup" command always uses PrintMarkup:
//
//	p := ui.NewPrinter(os.Stdout)
//	p.PrintGroup(tablist.Render(group))
//
// # Logging Integration
//
// Logging is controlled by TABLIST_LOG_LEVEL and written to stderr, so it does
// not interleave with the alternate screen.
package ui
