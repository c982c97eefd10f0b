package version

import "fmt"

const (
	majorVersion uint32 = 1
	minorVersion uint32 = 0
	patchVersion uint32 = 0
)

// set by -ldflags "-X massnet.org/shasum/version.gitCommit=..."
var gitCommit string

// GetVersion formats the version as "<major>.<minor>.<patch>[+<gitCommit>]",
// like "1.0.0", or "1.0.0+1a2b3c4d".
func GetVersion() string {
	return format(majorVersion, minorVersion, patchVersion, gitCommit)
}

func format(major, minor, patch uint32, commit string) string {
	s := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if len(commit) >= 8 {
		s += "+" + commit[:8]
	}
	return s
}
