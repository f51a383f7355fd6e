// Package version exposes build identity for the strata binary. Values come
// from -ldflags when set and fall back to the Go build info embedded by the
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

var (
	// Set at build time with -ldflags.
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info is the resolved build identity.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	BuildDate time.Time `json:"build_date,omitempty"`
	GoVersion string    `json:"go_version"`
	Dirty     bool      `json:"dirty,omitempty"`
}

// Get resolves the build identity, preferring ldflags values over the
// embedded VCS metadata.
func Get() Info {
	info := Info{
		Version: Version,
		Commit:  Commit,
	}

	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.BuildDate = t
		}
	}

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = buildInfo.GoVersion

	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = setting.Value
			}
		case "vcs.modified":
			info.Dirty = setting.Value == "true"
		case "vcs.time":
			if info.BuildDate.IsZero() {
				if t, err := time.Parse(time.RFC3339, setting.Value); err == nil {
					info.BuildDate = t
				}
			}
		}
	}

	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	return info
}

// Short returns a compact version string for CLI output and the /version
// endpoint.
func Short() string {
	info := Get()
	s := info.Version
	if info.Commit != "" {
		s = fmt.Sprintf("%s-%s", s, info.Commit)
	}
	if info.Dirty {
		s += "-dirty"
	}
	return s
}
