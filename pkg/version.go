package pkg

import "fmt"

var (
	// Set with -ldflags "-X" at build time.
	NullscanVersion = "devel"
	GitRevision     = "devel"
)

func VersionRevision() string {
	return fmt.Sprintf("%s-%s", NullscanVersion, GitRevision)
}
