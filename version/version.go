package version

import (
	"github.com/blang/semver"
)

// Current is the version of the urna library and CLI.
var Current semver.Version

const versionString = "0.2.0"

func init() {
	Current = semver.MustParse(versionString)
}
