// Package version holds build metadata set through -ldflags, e.g.
//
//	-X github.com/sofmeright/badgemaker/src/version.Version=1.2.3
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by `badgemaker version`.
func String() string {
	return fmt.Sprintf("badgemaker %s (%s, %s, %s)", Version, Commit, BuildDate, runtime.Version())
}
