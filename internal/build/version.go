// Package build provides version and build information for pomodoro.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// IsDevBuild returns true if running a development build (not a release).
func IsDevBuild() bool {
	return Version == "dev"
}

// Platform returns the GOOS/GOARCH pair the binary was built for.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
