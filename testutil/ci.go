package testutil

import (
	"os"
	"testing"
)

const envUseCI = "SHASUM_CI"

// SkipCI skips long running tests unless SHASUM_CI is set.
func SkipCI(t testing.TB) {
	t.Helper()
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip long test outside SHASUM CI")
	}
}
