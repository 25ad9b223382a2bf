// Package version holds build-time version information, populated via
// -ldflags at release time.
package version

var (
	// Version is the semantic version of the build
	Version = "dev"

	// Commit is the git commit the binary was built from
	Commit = "none"

	// Date is the build timestamp
	Date = "unknown"
)
