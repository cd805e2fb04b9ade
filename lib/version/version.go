package version

import "fmt"

// GitCommit and BuildDate are set with `-ldflags "-X ..."` at build time.
var (
	Version   = "0.1.0-dev"
	GitCommit string
	BuildDate string
)

func ToDetailVersion() string {
	return fmt.Sprintf("version=%s git=%s build=%s", Version, GitCommit, BuildDate)
}
