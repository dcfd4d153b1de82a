// Package version contains version information for wsfind.
package version

var (
	// Version is the current version of wsfind, set with -ldflags at release.
	Version = "dev"
	// BuildTime is the time when the binary was built.
	BuildTime = "unknown"
	// GitCommit is the git commit hash of the build.
	GitCommit = "unknown"
)

// String returns the version line shown by --version
func String() string {
	return Version + " (" + GitCommit + ", built " + BuildTime + ")"
}
