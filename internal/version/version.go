// Package version exposes the build information stamped into the binaries.
//
// The values are set at build time, e.g.
//
//	go build -ldflags "-X github.com/solgate/solgate/internal/version.version=v1.2.0 \
//	  -X github.com/solgate/solgate/internal/version.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/solgate/solgate/internal/version.buildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package version

import "runtime/debug"

var (
	version   = "dev"
	gitCommit = "unknown"
	buildDate = "unknown"
)

// Info describes the running build
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
}

// Get returns the build information.
// When the binary was not stamped with ldflags the VCS revision recorded by the go toolchain is used instead.
func Get() Info {
	info := Info{
		Version:   version,
		GitCommit: gitCommit,
		BuildDate: buildDate,
	}

	if info.GitCommit != "unknown" {
		return info
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if len(s.Value) > 7 {
				info.GitCommit = s.Value[:7]
			} else {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			info.BuildDate = s.Value
		}
	}
	return info
}
