package layout

import "github.com/kelseyhightower/envconfig"

// Prefix for environment variable overrides (ALVR_ROOT, ALVR_CONFIG_DIR, ...).
const envPrefix = "alvr"

// Build-time path overrides, set by packagers via linker flags, e.g.
//
//	-ldflags "-X github.com/alvr-org/alvrd/internal/layout.rootDir=/usr"
//
// rootDir marks the installation as portable: when set, the installation
// root is taken from it verbatim and never derived from executable
// locations. The remaining variables each override a single directory of
// the Linux FHS layout and are ignored on other platforms.
var (
	rootDir = ""

	executablesDir         = ""
	librariesDir           = ""
	staticResourcesDir     = ""
	configDir              = ""
	logDir                 = ""
	openvrDriverRootDir    = ""
	vrcompositorWrapperDir = ""
	firewallScriptDir      = ""
	firewalldConfigDir     = ""
	ufwConfigDir           = ""
	vulkanLayerManifestDir = ""
)

// Carries every path override accepted by the layout builder.
//
// Root switches the installation to portable mode (see [Resolver]).
// ConfigDir and LogDir are absolute paths that replace the per-user
// directory lookup. All other fields are interpreted relative to the
// installation root and replace the FHS default of the matching
// [Layout] directory. Empty fields fall back to the defaults.
type Overrides struct {
	Root                   string `envconfig:"ROOT"`
	ExecutablesDir         string `envconfig:"EXECUTABLES_DIR"`
	LibrariesDir           string `envconfig:"LIBRARIES_DIR"`
	StaticResourcesDir     string `envconfig:"STATIC_RESOURCES_DIR"`
	ConfigDir              string `envconfig:"CONFIG_DIR"`
	LogDir                 string `envconfig:"LOG_DIR"`
	OpenvrDriverRootDir    string `envconfig:"OPENVR_DRIVER_ROOT_DIR"`
	VrcompositorWrapperDir string `envconfig:"VRCOMPOSITOR_WRAPPER_DIR"`
	FirewallScriptDir      string `envconfig:"FIREWALL_SCRIPT_DIR"`
	FirewalldConfigDir     string `envconfig:"FIREWALLD_CONFIG_DIR"`
	UfwConfigDir           string `envconfig:"UFW_CONFIG_DIR"`
	VulkanLayerManifestDir string `envconfig:"VULKAN_LAYER_MANIFEST_DIR"`
}

// Collects the overrides supplied to this build.
//
// Linker-flag values win; any slot they leave empty is filled from the
// ALVR_* environment. The environment is consulted here only. Callers are
// expected to call this once at startup and pass the result by value.
func FromBuild() Overrides {
	var env Overrides
	_ = envconfig.Process(envPrefix, &env)

	build := Overrides{
		Root:                   rootDir,
		ExecutablesDir:         executablesDir,
		LibrariesDir:           librariesDir,
		StaticResourcesDir:     staticResourcesDir,
		ConfigDir:              configDir,
		LogDir:                 logDir,
		OpenvrDriverRootDir:    openvrDriverRootDir,
		VrcompositorWrapperDir: vrcompositorWrapperDir,
		FirewallScriptDir:      firewallScriptDir,
		FirewalldConfigDir:     firewalldConfigDir,
		UfwConfigDir:           ufwConfigDir,
		VulkanLayerManifestDir: vulkanLayerManifestDir,
	}
	return build.merge(env)
}

// Fills empty fields of o from fallback.
func (o Overrides) merge(fallback Overrides) Overrides {
	pick := func(primary, secondary string) string {
		if primary != "" {
			return primary
		}
		return secondary
	}

	return Overrides{
		Root:                   pick(o.Root, fallback.Root),
		ExecutablesDir:         pick(o.ExecutablesDir, fallback.ExecutablesDir),
		LibrariesDir:           pick(o.LibrariesDir, fallback.LibrariesDir),
		StaticResourcesDir:     pick(o.StaticResourcesDir, fallback.StaticResourcesDir),
		ConfigDir:              pick(o.ConfigDir, fallback.ConfigDir),
		LogDir:                 pick(o.LogDir, fallback.LogDir),
		OpenvrDriverRootDir:    pick(o.OpenvrDriverRootDir, fallback.OpenvrDriverRootDir),
		VrcompositorWrapperDir: pick(o.VrcompositorWrapperDir, fallback.VrcompositorWrapperDir),
		FirewallScriptDir:      pick(o.FirewallScriptDir, fallback.FirewallScriptDir),
		FirewalldConfigDir:     pick(o.FirewalldConfigDir, fallback.FirewalldConfigDir),
		UfwConfigDir:           pick(o.UfwConfigDir, fallback.UfwConfigDir),
		VulkanLayerManifestDir: pick(o.VulkanLayerManifestDir, fallback.VulkanLayerManifestDir),
	}
}
