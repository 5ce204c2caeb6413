package app

import "fmt"

// Build metadata, overridden with -ldflags "-X .../internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion is the long form printed in the startup line.
func BuildVersion() string {
	return fmt.Sprintf("%s+%s (%s)", Version, Commit, BuildTime)
}
