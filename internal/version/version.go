// Package version exposes build-time version information.
// The variables are overridden by the linker via -ldflags at release time.
package version

// Build-time variables, set with -ldflags "-X ...".
//
//nolint:gochecknoglobals // These are injected by the build pipeline.
var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
