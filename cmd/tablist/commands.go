package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/tablist/internal/config"
	"github.com/muurk/tablist/internal/tablist"
	"github.com/muurk/tablist/internal/ui"
)

// Command flags
var (
	configPath   string
	logLevel     string
	groupName    string
	tabID        string
	outputFormat string
	noHelp       bool
	force        bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to the groups file (default: user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides TABLIST_LOG_LEVEL")
	rootCmd.Flags().BoolVar(&noHelp, "no-help", false, "Hide the key help footer")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(markupCmd)
	rootCmd.AddCommand(initCmd)
}

func loadSwitcher() (*config.Registry, *tablist.Switcher, error) {
	var (
		registry *config.Registry
		err      error
	)
	if configPath != "" {
		registry, err = config.LoadFrom(configPath)
	} else {
		registry, err = config.LoadRegistry()
	}
	if err != nil {
		return nil, nil, err
	}

	sw, err := registry.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load tab groups: %w", err)
	}
	return registry, sw, nil
}

func runBrowse(cmd *cobra.Command, args []string) error {
	registry, sw, err := loadSwitcher()
	if err != nil {
		return err
	}

	return ui.Run(sw, ui.Options{
		StartGroup: registry.StartGroup(),
		ShowHelp:   registry.Preferences.ShowHelp && !noHelp,
	})
}

// showCmd applies a click and prints the result
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Switch a tab and print the resulting group",
	Long: `Apply a tab click to a group and print the result once.

Without --tab the group is printed as configured (first tab active).
Without --group every group is printed.

An unknown group or tab is reported as an error and nothing is changed.`,
	Example: `  # Show the settings group with the advanced tab selected
  tablist show --group settings --tab advanced

  # Print the class and display state of every control and panel
  tablist show --group settings --tab advanced --format markup

  # JSON output for scripting
  tablist show --format json`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&groupName, "group", "g", "", "Tab group name")
	showCmd.Flags().StringVarP(&tabID, "tab", "t", "", "Tab id to activate (requires --group)")
	showCmd.Flags().StringVar(&outputFormat, "format", "styled", "Output format (styled, markup, json)")
}

func runShow(cmd *cobra.Command, args []string) error {
	if tabID != "" && groupName == "" {
		return fmt.Errorf("--tab requires --group")
	}
	switch outputFormat {
	case "styled", "markup", "json":
	default:
		return fmt.Errorf("unknown format %q (expected styled, markup or json)", outputFormat)
	}

	_, sw, err := loadSwitcher()
	if err != nil {
		return err
	}

	printer := ui.NewPrinter(cmd.OutOrStdout())

	if tabID != "" {
		if err := clickTab(sw, groupName, tabID); err != nil {
			if outputFormat == "styled" {
				printer.PrintError(err)
			}
			return err
		}
	}

	var views []tablist.View
	if groupName != "" {
		g, ok := sw.Group(groupName)
		if !ok {
			return fmt.Errorf("unknown group %q", groupName)
		}
		views = []tablist.View{tablist.Render(g)}
	} else {
		views = sw.RenderAll()
	}

	switch outputFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "markup":
		for _, v := range views {
			printer.PrintMarkup(v)
		}
	default:
		for i, v := range views {
			if i > 0 {
				printer.Println("")
			}
			printer.PrintGroup(v)
		}
	}
	return nil
}

// markupCmd is show with the output fixed to the class/display listing
var markupCmd = &cobra.Command{
	Use:   "markup",
	Short: "Print the class and display state of a group",
	Long: `Print the class string of every control and the class and display style of
every panel in a group, after optionally applying a tab click.

The active control carries the "active" class and exactly one panel has
"display: block". This is the same as "show --format markup" for one group.`,
	Example: `  # Markup of the settings group as configured
  tablist markup --group settings

  # Markup after clicking the advanced tab
  tablist markup --group settings --tab advanced`,
	RunE: runMarkup,
}

func init() {
	markupCmd.Flags().StringVarP(&groupName, "group", "g", "", "Tab group name (required)")
	markupCmd.Flags().StringVarP(&tabID, "tab", "t", "", "Tab id to activate")
}

func runMarkup(cmd *cobra.Command, args []string) error {
	if groupName == "" {
		return fmt.Errorf("--group is required")
	}
	outputFormat = "markup"
	return runShow(cmd, args)
}

// clickTab simulates a click on the control bound to (group, tab)
func clickTab(sw *tablist.Switcher, group, tab string) error {
	ctl, ok := sw.ControlFor(group, tab)
	if !ok {
		// No control to click; Select reports the unknown group or tab
		return sw.Select(group, tab)
	}
	return sw.HandleTabClick(tablist.ClickEvent{Control: ctl}, group, tab)
}

// initCmd writes an example groups file
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example groups file",
	Long: `Write an example groups file with a "settings" and a "profile" group.

The file is written to --config, or to the user config directory by default.
An existing file is only replaced with --force.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.CreateDefaultConfig(configPath, force)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
