package version

var (
	// Version is the current application version
	Version = "dev"
	// GitSHA is the git commit SHA
	GitSHA = "unknown"
)

// String is the version as printed by --version, e.g. "v1.2.0 (3f9c2ab)".
func String() string {
	return Version + " (" + GitSHA + ")"
}
