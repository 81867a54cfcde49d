// Package version exposes build metadata injected at link time:
//
//	-X 'github.com/reikouwu/House-Liber-Arce/pkg/version.Version=v1.0.0'
//	-X 'github.com/reikouwu/House-Liber-Arce/pkg/version.CommitHash=abc123'
//	-X 'github.com/reikouwu/House-Liber-Arce/pkg/version.BuildDate=2026-01-01T00:00:00Z'
package version

import "runtime"

var (
	// Version is the semantic version of the binary.
	Version = "dev"
	// CommitHash is the git commit the binary was built from.
	CommitHash = "unknown"
	// BuildDate is the RFC3339 build timestamp.
	BuildDate = "unknown"
)

// Info is build information in a structured format.
type Info struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	BuildDate  string `json:"build_date"`
	GoVersion  string `json:"go_version"`
}

// Get returns the current build information.
func Get() Info {
	return Info{
		Version:    Version,
		CommitHash: CommitHash,
		BuildDate:  BuildDate,
		GoVersion:  runtime.Version(),
	}
}
