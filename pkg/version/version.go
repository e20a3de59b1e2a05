package version

import "fmt"

var (
	Version   = "0.0.0"
	Revision  = "unknown"
	Branch    = "unknown"
	BuildUser = "unknown"
	BuildDate = "unknown"
)

// String returns a one-line summary of the build.
func String() string {
	return fmt.Sprintf("%s (revision: %s, branch: %s, built by %s on %s)",
		Version, Revision, Branch, BuildUser, BuildDate)
}
