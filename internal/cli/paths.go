package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/alvr-org/alvrd/internal/layout"
)

// Represents the 'alvrd paths' command.
type PathsCmd struct {
	DashboardExe string `help:"Resolve from the dashboard executable path." placeholder:"PATH" xor:"source"`
	DriverRoot   string `help:"Resolve from the OpenVR driver root directory." placeholder:"DIR" xor:"source"`
	JSON         bool   `help:"Emit machine-readable JSON."`
}

// A single named path of the resolved layout.
type pathEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// Executes the paths command.
//
// The layout is resolved from whichever location flag was given; with
// neither, the rootless entry point is used and the printed directories
// are placeholders (unless this is a portable build, whose root override
// wins regardless).
func (c *PathsCmd) Run(ctx context.Context) error {
	var l layout.Layout

	switch {
	case c.DashboardExe != "":
		slog.Debug("resolving layout", "dashboard_exe", c.DashboardExe)
		l = layout.FromDashboardExe(c.DashboardExe)
	case c.DriverRoot != "":
		slog.Debug("resolving layout", "driver_root", c.DriverRoot)
		l = layout.FromDriverRoot(c.DriverRoot)
	default:
		slog.Debug("resolving layout without root information")
		l = layout.Invalid()
	}

	entries := pathEntries(l)

	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, e := range entries {
		fmt.Printf("%-26s %s\n", e.Name, e.Path)
	}
	return nil
}

// Flattens a layout into printable name/path pairs.
func pathEntries(l layout.Layout) []pathEntry {
	return []pathEntry{
		{"executables_dir", l.ExecutablesDir},
		{"libraries_dir", l.LibrariesDir},
		{"static_resources_dir", l.StaticResourcesDir},
		{"config_dir", l.ConfigDir},
		{"log_dir", l.LogDir},
		{"openvr_driver_root_dir", l.OpenvrDriverRootDir},
		{"vrcompositor_wrapper_dir", l.VrcompositorWrapperDir},
		{"firewall_script_dir", l.FirewallScriptDir},
		{"firewalld_config_dir", l.FirewalldConfigDir},
		{"ufw_config_dir", l.UfwConfigDir},
		{"vulkan_layer_manifest_dir", l.VulkanLayerManifestDir},
		{"dashboard_exe", l.DashboardExe()},
		{"resources_dir", l.ResourcesDir()},
		{"dashboard_dir", l.DashboardDir()},
		{"presets_dir", l.PresetsDir()},
		{"session", l.Session()},
		{"session_log", l.SessionLog()},
		{"crash_log", l.CrashLog()},
		{"openvr_driver_lib_dir", l.OpenvrDriverLibDir()},
		{"openvr_driver_lib", l.OpenvrDriverLib()},
		{"openvr_driver_manifest", l.OpenvrDriverManifest()},
		{"vrcompositor_wrapper", l.VrcompositorWrapper()},
		{"drm_lease_shim", l.DrmLeaseShim()},
		{"vulkan_layer", l.VulkanLayer()},
		{"firewall_script", l.FirewallScript()},
		{"firewalld_config", l.FirewalldConfig()},
		{"ufw_config", l.UfwConfig()},
		{"vulkan_layer_manifest", l.VulkanLayerManifest()},
	}
}
