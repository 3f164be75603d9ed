package layout

import "runtime"

// Identifies which installation convention a platform follows.
type Family int

const (

	// Everything lives directly under the installation root. Used on
	// Windows and macOS, where ALVR ships as a single directory.
	FamilyFlat Family = iota

	// The installation is split across bin/, lib64/, share/ and libexec/
	// subdirectories. Used on Linux.
	FamilyFHS
)

// Describes the filesystem conventions of a target operating system.
//
// A Platform is plain data selected once (see [Host] or [ForOS]) and then
// consulted by the layout builder and accessors, so no code path re-checks
// the host OS after construction.
type Platform struct {
	OS           string // GOOS-style tag ("linux", "windows", "darwin", ...).
	Family       Family // Installation convention.
	ExeSuffix    string // Native executable suffix ("" or ".exe").
	DynlibPrefix string // Native shared-library prefix ("lib" or "").
	DynlibSuffix string // Native shared-library suffix (".so", ".dylib", ".dll").
	driverLibTag string // OpenVR driver binary subdirectory. Empty if unsupported.
}

// Returns the platform profile of the running process.
func Host() Platform {
	return ForOS(runtime.GOOS)
}

// Returns the platform profile for the given GOOS-style tag.
//
// Tags other than "linux", "windows" and "darwin" produce a flat-layout
// profile with Unix naming conventions and no OpenVR driver support:
// calling [Layout.OpenvrDriverLibDir] on such a profile panics.
func ForOS(os string) Platform {
	switch os {
	case "linux":
		return Platform{
			OS:           os,
			Family:       FamilyFHS,
			DynlibPrefix: "lib",
			DynlibSuffix: ".so",
			driverLibTag: "linux64",
		}
	case "windows":
		return Platform{
			OS:           os,
			Family:       FamilyFlat,
			ExeSuffix:    ".exe",
			DynlibSuffix: ".dll",
			driverLibTag: "win64",
		}
	case "darwin":
		return Platform{
			OS:           os,
			Family:       FamilyFlat,
			DynlibPrefix: "lib",
			DynlibSuffix: ".dylib",
			driverLibTag: "macos",
		}
	default:
		return Platform{
			OS:           os,
			Family:       FamilyFlat,
			DynlibPrefix: "lib",
			DynlibSuffix: ".so",
		}
	}
}

// Returns the given executable name with the platform's native suffix.
func (p Platform) ExecFilename(name string) string {
	return name + p.ExeSuffix
}

// Returns the given library name with the platform's native shared-library
// prefix and suffix (e.g. "libfoo.so" on Linux, "foo.dll" on Windows).
func (p Platform) DynlibFilename(name string) string {
	return p.DynlibPrefix + name + p.DynlibSuffix
}

// Returns the name of the dashboard executable file.
func (p Platform) DashboardFilename() string {
	if p.OS == "windows" {
		return "ALVR Dashboard.exe"
	}
	return "alvr_dashboard"
}

// Returns the name of the session log file.
func (p Platform) SessionLogFilename() string {
	if p.Family == FamilyFHS {
		return "alvr_session_log.txt"
	}
	return "session_log.txt"
}
