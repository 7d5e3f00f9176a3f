// Package version exposes the build identity stamped into the binary.
package version

// Populated through -ldflags at release build time; the defaults mark a
// local build.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
