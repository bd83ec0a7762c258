package reflectx

import (
	"runtime"
	"runtime/debug"
)

// DevelVersion is the version reported for binaries built outside module
// mode or from a working tree.
const DevelVersion = "(devel)"

// BuildInfo describes the running binary: its main module, toolchain, VCS
// stamp and dependencies.
type BuildInfo struct {
	// Path is the main module path.
	Path string
	// Version is the main module version, [DevelVersion] when unknown.
	Version string
	// Sum is the main module checksum, empty for local builds.
	Sum string
	// GoVersion is the toolchain that built the binary.
	GoVersion string
	// Settings holds the build settings (vcs.revision, GOOS, -tags, ...).
	Settings map[string]string
	// Deps maps dependency module path to its resolved version.
	Deps map[string]string
}

// ReadBuildInfo returns the build information embedded in the running
// binary. When none is available (e.g. a binary built without module
// support) it returns a BuildInfo carrying only the runtime's Go version.
func ReadBuildInfo() BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return BuildInfo{
			Version:   DevelVersion,
			GoVersion: runtime.Version(),
			Settings:  map[string]string{},
			Deps:      map[string]string{},
		}
	}
	return FromDebug(bi)
}

// FromDebug converts a [debug.BuildInfo]. Replaced dependencies report the
// replacement's version.
func FromDebug(bi *debug.BuildInfo) BuildInfo {
	info := BuildInfo{
		Version:  DevelVersion,
		Settings: map[string]string{},
		Deps:     map[string]string{},
	}
	if bi == nil {
		info.GoVersion = runtime.Version()
		return info
	}
	info.GoVersion = bi.GoVersion
	info.Path = bi.Main.Path
	info.Sum = bi.Main.Sum
	if bi.Main.Version != "" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		info.Settings[s.Key] = s.Value
	}
	for _, d := range bi.Deps {
		if d == nil {
			continue
		}
		if d.Replace != nil {
			info.Deps[d.Path] = d.Replace.Version
			continue
		}
		info.Deps[d.Path] = d.Version
	}
	return info
}

// Revision returns the VCS revision the binary was built from, if stamped.
func (b BuildInfo) Revision() string { return b.Settings["vcs.revision"] }

// Modified reports whether the binary was built from a dirty working tree.
func (b BuildInfo) Modified() bool { return b.Settings["vcs.modified"] == "true" }

// Dependency returns the version of the named dependency module.
func (b BuildInfo) Dependency(path string) (string, bool) {
	v, ok := b.Deps[path]
	return v, ok
}
