// Package version exposes build metadata stamped in via
// -ldflags "-X github.com/stitchline/storefront/internal/version.Version=...".
package version

var (
	// Version is the release version, "dev" for local builds.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "unknown"
	// Date is the build timestamp.
	Date = "unknown"
)
