// Package logging provides structured logging for tablist.
//
// This package wraps a global zap logger with convenience functions. Logging is
// silent unless TABLIST_LOG_LEVEL is set, so that the interactive terminal UI is
// not interleaved with log lines.
//
// # Log Levels
//
//   - Debug: group registration, key and mouse routing
//   - Info: tab switches, configuration loads
//   - Warn: rejected tab switches (unknown group or tab, control mismatch)
//   - Error: startup failures
//
// # Usage
//
//	if err := logging.Initialize(levelFlag); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
//	logging.LogTabSwitch("settings", "general", "advanced", "settings-advanced-tab")
//
// Output goes to stderr in console format:
//
//	2026-10-16T10:30:45.123+0200  INFO  Tab switched  {"group": "settings", "from": "general", "to": "advanced"}
package logging
