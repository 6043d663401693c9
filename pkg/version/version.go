// Package version exposes build identification for the orderledger binary.
// Values are set via -ldflags at release time; when absent, module build
// info embedded by the Go toolchain is used as a fallback.
package version

import "runtime/debug"

var (
	Version = "0.0.0-dev"
	Commit  = ""
)

// Resolve returns the effective version and commit, preferring ldflags
// values and falling back to debug.ReadBuildInfo.
func Resolve() (version, commit string) {
	version, commit = Version, Commit
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi == nil {
		return version, commit
	}
	if version == "0.0.0-dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		version = bi.Main.Version
	}
	if commit == "" {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				commit = s.Value
				break
			}
		}
	}
	return version, commit
}
