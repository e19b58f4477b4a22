// Package version carries the build metadata stamped in with -ldflags.
package version

import "strings"

// Set at build time:
//
//	go build -ldflags "-X github.com/itsmostafa/topdown/internal/version.Version=v1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const unknown = "unknown"

// String returns the version followed by whichever of commit and build
// date were stamped in. Local builds print only the version.
func String() string {
	var details []string
	if Commit != "" && Commit != unknown {
		details = append(details, "commit: "+Commit)
	}
	if BuildDate != "" && BuildDate != unknown {
		details = append(details, "built: "+BuildDate)
	}
	if len(details) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(details, ", ") + ")"
}
