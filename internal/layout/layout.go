package layout

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Name used for application subdirectories and file naming.
const appName = "alvr"

// Default relative paths of the FHS layout, each replaceable by the
// matching [Overrides] field.
const (
	defaultExecutablesDir         = "bin"
	defaultLibrariesDir           = "lib64"
	defaultStaticResourcesDir     = "share/alvr"
	defaultOpenvrDriverRootDir    = "lib64/alvr"
	defaultVrcompositorWrapperDir = "libexec/alvr"
	defaultFirewallScriptDir      = "libexec/alvr"
	defaultFirewalldConfigDir     = "libexec/alvr"
	defaultUfwConfigDir           = "libexec/alvr"
	defaultVulkanLayerManifestDir = "share/vulkan/explicit_layer.d"
)

// Describes where every part of an ALVR installation lives.
//
// All directory fields hold absolute paths, with one exception: a Layout
// built from an empty root (see [Resolver.Invalid]) carries root-relative
// placeholders that must not be resolved. On flat-layout platforms every
// field equals the installation root. A Layout is immutable once built and
// safe to copy and share.
type Layout struct {
	ExecutablesDir         string // Directory containing the dashboard executable.
	LibrariesDir           string // (Linux) directory of the vulkan layer library.
	StaticResourcesDir     string // Parent of resources like the dashboard and presets folders.
	ConfigDir              string // Directory for configuration files (session.json).
	LogDir                 string // Directory for log files.
	OpenvrDriverRootDir    string // Directory to register in the OpenVR driver path.
	VrcompositorWrapperDir string // (Linux) parent of the vrcompositor wrapper executable.
	FirewallScriptDir      string // (Linux) parent of the firewall setup script.
	FirewalldConfigDir     string // (Linux) parent of the firewalld service file.
	UfwConfigDir           string // (Linux) parent of the ufw profile.
	VulkanLayerManifestDir string // (Linux) directory of the vulkan layer manifest.

	platform Platform
}

// Builds the layout of the installation rooted at the given path.
//
// Pure: the function derives every directory from its arguments and the
// per-user directory lookup, and never touches the filesystem. On the flat
// family every directory is the root itself and overrides other than Root
// are ignored. On the FHS family each directory is root joined with its
// default (or overridden) relative path, except ConfigDir and LogDir,
// which do not depend on the root at all: they resolve to the override
// when set, else to the platform's per-user config directory and the user
// home respectively. An empty per-user lookup panics; continuing with a
// guessed path would corrupt user data.
func New(root string, platform Platform, ov Overrides) Layout {
	if platform.Family != FamilyFHS {
		return Layout{
			ExecutablesDir:         root,
			LibrariesDir:           root,
			StaticResourcesDir:     root,
			ConfigDir:              root,
			LogDir:                 root,
			OpenvrDriverRootDir:    root,
			VrcompositorWrapperDir: root,
			FirewallScriptDir:      root,
			FirewalldConfigDir:     root,
			UfwConfigDir:           root,
			VulkanLayerManifestDir: root,
			platform:               platform,
		}
	}

	join := func(override, fallback string) string {
		if override != "" {
			return filepath.Join(root, override)
		}
		return filepath.Join(root, fallback)
	}

	return Layout{
		ExecutablesDir:         join(ov.ExecutablesDir, defaultExecutablesDir),
		LibrariesDir:           join(ov.LibrariesDir, defaultLibrariesDir),
		StaticResourcesDir:     join(ov.StaticResourcesDir, defaultStaticResourcesDir),
		ConfigDir:              configDirFor(ov),
		LogDir:                 logDirFor(ov),
		OpenvrDriverRootDir:    join(ov.OpenvrDriverRootDir, defaultOpenvrDriverRootDir),
		VrcompositorWrapperDir: join(ov.VrcompositorWrapperDir, defaultVrcompositorWrapperDir),
		FirewallScriptDir:      join(ov.FirewallScriptDir, defaultFirewallScriptDir),
		FirewalldConfigDir:     join(ov.FirewalldConfigDir, defaultFirewalldConfigDir),
		UfwConfigDir:           join(ov.UfwConfigDir, defaultUfwConfigDir),
		VulkanLayerManifestDir: join(ov.VulkanLayerManifestDir, defaultVulkanLayerManifestDir),
		platform:               platform,
	}
}

// Resolves the configuration directory independently of the root.
func configDirFor(ov Overrides) string {
	if ov.ConfigDir != "" {
		return ov.ConfigDir
	}
	if xdg.ConfigHome == "" {
		panic("layout: per-user config directory lookup failed")
	}
	return filepath.Join(xdg.ConfigHome, appName)
}

// Resolves the log directory independently of the root.
func logDirFor(ov Overrides) string {
	if ov.LogDir != "" {
		return ov.LogDir
	}
	if xdg.Home == "" {
		panic("layout: user home directory lookup failed")
	}
	return xdg.Home
}

// Returns the path of the dashboard executable.
func (l Layout) DashboardExe() string {
	return filepath.Join(l.ExecutablesDir, l.platform.DashboardFilename())
}

// Returns the OpenVR driver resources directory.
func (l Layout) ResourcesDir() string {
	return filepath.Join(l.OpenvrDriverRootDir, "resources")
}

// Returns the directory holding the dashboard static files.
func (l Layout) DashboardDir() string {
	return filepath.Join(l.StaticResourcesDir, "dashboard")
}

// Returns the directory holding the settings presets.
func (l Layout) PresetsDir() string {
	return filepath.Join(l.StaticResourcesDir, "presets")
}

// Returns the path of the session settings file.
func (l Layout) Session() string {
	return filepath.Join(l.ConfigDir, "session.json")
}

// Returns the path of the session log file.
func (l Layout) SessionLog() string {
	return filepath.Join(l.LogDir, l.platform.SessionLogFilename())
}

// Returns the path of the crash log file.
func (l Layout) CrashLog() string {
	return filepath.Join(l.LogDir, "crash_log.txt")
}

// Returns the directory holding the OpenVR driver shared library.
//
// Panics when the platform has no published driver binaries: an unknown
// platform is a build defect, not a runtime condition, and must not
// silently produce a wrong path.
func (l Layout) OpenvrDriverLibDir() string {
	if l.platform.driverLibTag == "" {
		panic("layout: no OpenVR driver build for platform " + l.platform.OS)
	}
	return filepath.Join(l.OpenvrDriverRootDir, "bin", l.platform.driverLibTag)
}

// Returns the path of the shared library loaded by OpenVR.
func (l Layout) OpenvrDriverLib() string {
	name := "driver_alvr_server" + l.platform.DynlibSuffix
	return filepath.Join(l.OpenvrDriverLibDir(), name)
}

// Returns the path of the driver manifest file registered with OpenVR.
func (l Layout) OpenvrDriverManifest() string {
	return filepath.Join(l.OpenvrDriverRootDir, "driver.vrdrivermanifest")
}

// Returns the path of the vrcompositor wrapper executable.
func (l Layout) VrcompositorWrapper() string {
	return filepath.Join(l.VrcompositorWrapperDir, "vrcompositor-wrapper")
}

// Returns the path of the DRM lease shim library.
func (l Layout) DrmLeaseShim() string {
	return filepath.Join(l.VrcompositorWrapperDir, "alvr_drm_lease_shim.so")
}

// Returns the path of the vulkan layer shared library.
func (l Layout) VulkanLayer() string {
	return filepath.Join(l.LibrariesDir, l.platform.DynlibFilename("alvr_vulkan_layer"))
}

// Returns the path of the firewall setup script.
func (l Layout) FirewallScript() string {
	return filepath.Join(l.FirewallScriptDir, "alvr_fw_config.sh")
}

// Returns the path of the firewalld service definition.
func (l Layout) FirewalldConfig() string {
	return filepath.Join(l.FirewalldConfigDir, "alvr-firewalld.xml")
}

// Returns the path of the ufw application profile.
func (l Layout) UfwConfig() string {
	return filepath.Join(l.UfwConfigDir, "ufw-alvr")
}

// Returns the path of the vulkan explicit layer manifest.
func (l Layout) VulkanLayerManifest() string {
	return filepath.Join(l.VulkanLayerManifestDir, "alvr_x86_64.json")
}

// Returns the temporary path used by the self-updating installer.
func InstallerPath() string {
	return filepath.Join(os.TempDir(), Host().ExecFilename("alvr_installer"))
}
