// Package version exposes the build metadata stamped into the binary.
//
// Development builds carry the placeholder values below; release builds
// override them with
// -ldflags "-X github.com/pscheid92/chatparrot/internal/platform/version.Version=...".
package version

import "runtime"

var (
	// Version is the release tag, or "dev" for local builds.
	Version = "dev"
	// Commit is the git SHA the binary was built from.
	Commit = "unknown"
	// BuildTime is when the binary was built, RFC 3339.
	BuildTime = "unknown"
)

// Info is the build metadata served by the version endpoint and exported on
// the build_info gauge.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
	GoVersion string `json:"go_version"`
}

// Get collects the stamped build metadata plus the running Go version.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
}
