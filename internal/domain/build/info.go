// Package build provides domain entities for build information.
package build

import (
	"fmt"
	"runtime"
)

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// Current returns Info with the running Go version filled in.
func Current(version, commit, buildDate string) Info {
	return Info{Version: version, Commit: commit, BuildDate: buildDate, GoVersion: runtime.Version()}
}

// String formats the info on one line.
func (i Info) String() string {
	if i.Version == "" {
		i.Version = "dev"
	}
	s := i.Version
	if i.Commit != "" && i.Commit != "none" {
		s += fmt.Sprintf(" (%s", i.Commit)
		if i.BuildDate != "" && i.BuildDate != "unknown" {
			s += ", " + i.BuildDate
		}
		s += ")"
	}
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	return s
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/tessera"
}
