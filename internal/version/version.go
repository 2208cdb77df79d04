// Package version holds build metadata injected at link time.
package version

import "fmt"

// Build metadata. Overridden via -ldflags at release time.
//
//nolint:gochecknoglobals // Set by the linker
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// Get returns the build information.
func Get() Info {
	return Info{
		Version: Version,
		Commit:  Commit,
		Date:    Date,
	}
}

// String renders the build information on one line.
func (i Info) String() string {
	return fmt.Sprintf("gravctl %s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
