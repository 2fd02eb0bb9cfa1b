// Package version exposes the build metadata stamped into the invoicer
// binary via ldflags:
//
//	go build -ldflags "-X github.com/orderdesk/invoicer/internal/version.Version=1.0.0 ..."
package version

import (
	"fmt"
	"runtime"
)

// Stamped at build time; the defaults identify an unstamped dev build.
var (
	Version   = "dev"
	Commit    = "unknown"
	Dirty     = "false"
	BuildDate = "unknown"
)

// Info is the structured form of the build metadata.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Dirty     bool   `json:"dirty"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects the stamped values together with the runtime's toolchain
// and platform.
func Get() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Dirty:     Dirty == "true",
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the version, marking builds from a modified tree.
func String() string {
	if Dirty == "true" {
		return Version + "-dirty"
	}
	return Version
}
