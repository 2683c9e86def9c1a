// Package config loads and saves tab group definitions.
//
// Groups are described in a YAML file. The file lists each group with its tabs
// in display order, plus a few display preferences. Which tab is selected is
// runtime state and is never written back.
//
// # Configuration File Location
//
// Unless a path is given explicitly, the file is read from:
//   - Linux: $XDG_CONFIG_HOME/tablist/groups.yaml or $HOME/.config/tablist/groups.yaml
//   - macOS: $HOME/.config/tablist/groups.yaml
//   - Windows: %LOCALAPPDATA%\tablist\groups.yaml
//
// # File Format
//
//	version: 1
//	preferences:
//	  start_group: settings
//	  show_help: true
//	groups:
//	  - name: settings
//	    tabs:
//	      - id: general
//	        title: General
//	        content: |
//	          Language, theme and startup options.
//	      - id: advanced
//	        title: Advanced
//
// # Usage Example
//
//	registry, err := config.LoadFrom(path)
//	if err != nil {
//	    return err
//	}
//	sw, err := registry.Build()
//
// # Thread Safety
//
// The global registry is loaded once per process via sync.Once. File writes are
// serialized by a mutex and performed atomically via rename.
package config
