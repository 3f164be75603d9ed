// Package layout computes the on-disk layout of an ALVR installation.
//
// A [Layout] maps one installation root to every directory and file the
// system uses: executables, libraries, configuration, logs, the OpenVR
// driver tree and the Linux platform-integration artifacts (firewall
// rules, vulkan layer manifest, vrcompositor wrapper). Linux installs
// follow the Filesystem Hierarchy Standard and split the root across
// bin/, lib64/, share/ and libexec/; Windows and macOS installs are flat,
// with every path equal to the root.
//
// The root itself comes from a [Resolver]. Portable builds pin it with a
// linker-flag or ALVR_ROOT override; otherwise it is derived from the
// location of a known component. Roots are rewritten under /run/host when
// the process runs inside the Steam pressure-vessel sandbox.
//
// The package performs no I/O beyond a single best-effort read of the
// container marker file. It never creates directories and never checks
// that a computed path exists.
//
// Example usage:
//
//	exe, err := os.Executable()
//	if err != nil {
//	    return err
//	}
//
//	l := layout.FromDashboardExe(exe)
//
//	data, err := os.ReadFile(l.Session())
//	if err != nil {
//	    return err
//	}
package layout
