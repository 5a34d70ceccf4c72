// Package version resolves the version string reported by the command line
// tools, either from a build-time override or from the VCS build info.
package version

import "runtime/debug"

// Version can be set at build time:
// go build -ldflags "-X github.com/vsariola/soitin/version.Version=$(git describe --dirty)"
var Version string

// String returns Version if set, otherwise the short VCS revision hash baked
// into the build info, with a "-dirty" suffix for modified trees. Returns ""
// when neither is available.
func String() string {
	if Version != "" {
		return Version
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	revision, modified := "", false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}
	if len(revision) < 7 {
		return revision
	}
	if modified {
		return revision[:7] + "-dirty"
	}
	return revision[:7]
}
