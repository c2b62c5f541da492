// Package version reports the ngfs build version. The generator records it
// in every project it writes as generatorVersion.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/modu-ai/ngfs/pkg/version.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the build version. Binaries built with "go install"
// carry no ldflags, so the main module version is used instead.
func GetVersion() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return Version
}

// GetFullVersion returns the version with commit and build date.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", GetVersion(), Commit, Date)
}
