package id3tags

import "runtime"

// Version is the semantic version of the id3tags library.
const Version = "0.3.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
	GoVersion string `json:"go_version" yaml:"go_version"`
}

// GetVersionInfo returns detailed version information.
//
// GitCommit and BuildTime are set at build time via -ldflags and show
// "unknown" otherwise:
//
//	go build -ldflags="-X github.com/simonhull/id3tags.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/id3tags.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/id3dump
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// Variables populated at build time via -ldflags.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)
