// Package version reports the tablist build version.
//
// Release builds set the values via ldflags:
//
//	go build -ldflags="-X github.com/muurk/tablist/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/tablist/internal/version.Commit=abc123"
//
// Otherwise they are derived from the VCS stamp Go embeds in the binary, and
// finally fall back to a "dev" version.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Name is the binary name shown in version output
const Name = "tablist"

var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the short git commit hash
	Commit = ""
)

const shortHashLen = 7

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	Version, Commit = resolve(Version, Commit, settings, time.Now())
}

// resolve fills in whichever of version and commit is empty, using the VCS
// build settings first and the current time last.
func resolve(version, commit string, settings []debug.BuildSetting, now time.Time) (string, string) {
	var revision, vcsTime string
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if commit == "" && revision != "" {
		commit = revision
		if len(commit) > shortHashLen {
			commit = commit[:shortHashLen]
		}
		if dirty {
			commit += "-dirty"
		}
	}
	if commit == "" {
		commit = "unknown"
	}

	if version == "" {
		if t, err := time.Parse(time.RFC3339, vcsTime); err == nil {
			version = "dev-" + t.Format("20060102")
		} else {
			version = "dev-" + now.Format("20060102-150405")
		}
	}

	return version, commit
}

// Full returns the binary name, version and commit, e.g. "tablist v1.2.3 (commit: abc1234)"
func Full() string {
	return fmt.Sprintf("%s %s (commit: %s)", Name, Version, Commit)
}
