package layout

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// Directory fields of a Layout, by name.
func dirFields(l Layout) map[string]string {
	return map[string]string{
		"ExecutablesDir":         l.ExecutablesDir,
		"LibrariesDir":           l.LibrariesDir,
		"StaticResourcesDir":     l.StaticResourcesDir,
		"ConfigDir":              l.ConfigDir,
		"LogDir":                 l.LogDir,
		"OpenvrDriverRootDir":    l.OpenvrDriverRootDir,
		"VrcompositorWrapperDir": l.VrcompositorWrapperDir,
		"FirewallScriptDir":      l.FirewallScriptDir,
		"FirewalldConfigDir":     l.FirewalldConfigDir,
		"UfwConfigDir":           l.UfwConfigDir,
		"VulkanLayerManifestDir": l.VulkanLayerManifestDir,
	}
}

func TestNewFlatFamilyEqualsRoot(t *testing.T) {
	for _, os := range []string{"windows", "darwin"} {
		root := "/opt/alvr"
		l := New(root, ForOS(os), Overrides{})

		for name, dir := range dirFields(l) {
			if dir != root {
				t.Fatalf("%s: %s = %q, want %q", os, name, dir, root)
			}
		}
	}
}

func TestNewFlatFamilyIgnoresDirOverrides(t *testing.T) {
	root := "/opt/alvr"
	l := New(root, ForOS("windows"), Overrides{
		ExecutablesDir: "elsewhere",
		ConfigDir:      "/etc/alvr",
	})

	if l.ExecutablesDir != root {
		t.Fatalf("ExecutablesDir = %q, want %q", l.ExecutablesDir, root)
	}
	if l.ConfigDir != root {
		t.Fatalf("ConfigDir = %q, want %q", l.ConfigDir, root)
	}
}

func TestNewFHSDefaults(t *testing.T) {
	root := "/usr"
	l := New(root, ForOS("linux"), Overrides{})

	want := map[string]string{
		"ExecutablesDir":         "/usr/bin",
		"LibrariesDir":           "/usr/lib64",
		"StaticResourcesDir":     "/usr/share/alvr",
		"OpenvrDriverRootDir":    "/usr/lib64/alvr",
		"VrcompositorWrapperDir": "/usr/libexec/alvr",
		"FirewallScriptDir":      "/usr/libexec/alvr",
		"FirewalldConfigDir":     "/usr/libexec/alvr",
		"UfwConfigDir":           "/usr/libexec/alvr",
		"VulkanLayerManifestDir": "/usr/share/vulkan/explicit_layer.d",
	}

	got := dirFields(l)
	for name, dir := range want {
		if got[name] != dir {
			t.Fatalf("%s = %q, want %q", name, got[name], dir)
		}
	}
}

func TestNewFHSSubPathOverrides(t *testing.T) {
	root := "/usr/local"
	l := New(root, ForOS("linux"), Overrides{
		ExecutablesDir:         "games",
		LibrariesDir:           "lib",
		OpenvrDriverRootDir:    "lib/alvr",
		VulkanLayerManifestDir: "share/vulkan/implicit_layer.d",
	})

	if l.ExecutablesDir != "/usr/local/games" {
		t.Fatalf("ExecutablesDir = %q, want /usr/local/games", l.ExecutablesDir)
	}
	if l.LibrariesDir != "/usr/local/lib" {
		t.Fatalf("LibrariesDir = %q, want /usr/local/lib", l.LibrariesDir)
	}
	if l.OpenvrDriverRootDir != "/usr/local/lib/alvr" {
		t.Fatalf("OpenvrDriverRootDir = %q, want /usr/local/lib/alvr", l.OpenvrDriverRootDir)
	}
	if l.VulkanLayerManifestDir != "/usr/local/share/vulkan/implicit_layer.d" {
		t.Fatalf("VulkanLayerManifestDir = %q, want implicit_layer.d path", l.VulkanLayerManifestDir)
	}

	// Unrelated fields keep their defaults.
	if l.StaticResourcesDir != "/usr/local/share/alvr" {
		t.Fatalf("StaticResourcesDir = %q, want /usr/local/share/alvr", l.StaticResourcesDir)
	}
}

func TestNewFHSConfigDirIndependentOfRoot(t *testing.T) {
	p := ForOS("linux")

	a := New("/usr", p, Overrides{ConfigDir: "/etc/alvr"})
	b := New("/opt/stream", p, Overrides{ConfigDir: "/etc/alvr"})

	if a.ConfigDir != "/etc/alvr" || b.ConfigDir != "/etc/alvr" {
		t.Fatalf("overridden ConfigDir = %q / %q, want /etc/alvr", a.ConfigDir, b.ConfigDir)
	}

	// Without an override the config dir comes from the user lookup only.
	c := New("/usr", p, Overrides{})
	d := New("/opt/stream", p, Overrides{})

	want := filepath.Join(xdg.ConfigHome, "alvr")
	if c.ConfigDir != want {
		t.Fatalf("ConfigDir = %q, want %q", c.ConfigDir, want)
	}
	if c.ConfigDir != d.ConfigDir {
		t.Fatalf("ConfigDir depends on root: %q vs %q", c.ConfigDir, d.ConfigDir)
	}
}

func TestNewFHSLogDir(t *testing.T) {
	p := ForOS("linux")

	l := New("/usr", p, Overrides{LogDir: "/var/log/alvr"})
	if l.LogDir != "/var/log/alvr" {
		t.Fatalf("LogDir = %q, want /var/log/alvr", l.LogDir)
	}

	l = New("/usr", p, Overrides{})
	if l.LogDir != xdg.Home {
		t.Fatalf("LogDir = %q, want home %q", l.LogDir, xdg.Home)
	}
}

func TestAccessorsFHS(t *testing.T) {
	l := New("/usr", ForOS("linux"), Overrides{ConfigDir: "/etc/alvr", LogDir: "/var/log/alvr"})

	cases := []struct {
		name string
		got  string
		want string
	}{
		{"DashboardExe", l.DashboardExe(), "/usr/bin/alvr_dashboard"},
		{"ResourcesDir", l.ResourcesDir(), "/usr/lib64/alvr/resources"},
		{"DashboardDir", l.DashboardDir(), "/usr/share/alvr/dashboard"},
		{"PresetsDir", l.PresetsDir(), "/usr/share/alvr/presets"},
		{"Session", l.Session(), "/etc/alvr/session.json"},
		{"SessionLog", l.SessionLog(), "/var/log/alvr/alvr_session_log.txt"},
		{"CrashLog", l.CrashLog(), "/var/log/alvr/crash_log.txt"},
		{"OpenvrDriverLibDir", l.OpenvrDriverLibDir(), "/usr/lib64/alvr/bin/linux64"},
		{"OpenvrDriverLib", l.OpenvrDriverLib(), "/usr/lib64/alvr/bin/linux64/driver_alvr_server.so"},
		{"OpenvrDriverManifest", l.OpenvrDriverManifest(), "/usr/lib64/alvr/driver.vrdrivermanifest"},
		{"VrcompositorWrapper", l.VrcompositorWrapper(), "/usr/libexec/alvr/vrcompositor-wrapper"},
		{"DrmLeaseShim", l.DrmLeaseShim(), "/usr/libexec/alvr/alvr_drm_lease_shim.so"},
		{"VulkanLayer", l.VulkanLayer(), "/usr/lib64/libalvr_vulkan_layer.so"},
		{"FirewallScript", l.FirewallScript(), "/usr/libexec/alvr/alvr_fw_config.sh"},
		{"FirewalldConfig", l.FirewalldConfig(), "/usr/libexec/alvr/alvr-firewalld.xml"},
		{"UfwConfig", l.UfwConfig(), "/usr/libexec/alvr/ufw-alvr"},
		{"VulkanLayerManifest", l.VulkanLayerManifest(), "/usr/share/vulkan/explicit_layer.d/alvr_x86_64.json"},
	}

	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s = %q, want %q", c.name, c.got, c.want)
		}
	}
}

func TestAccessorsFlatFilenames(t *testing.T) {
	win := New("/opt/alvr", ForOS("windows"), Overrides{})

	if got := win.DashboardExe(); got != filepath.Join("/opt/alvr", "ALVR Dashboard.exe") {
		t.Fatalf("windows DashboardExe = %q", got)
	}
	if got := win.SessionLog(); got != filepath.Join("/opt/alvr", "session_log.txt") {
		t.Fatalf("windows SessionLog = %q", got)
	}
	if got := win.OpenvrDriverLib(); !strings.HasSuffix(got, "driver_alvr_server.dll") {
		t.Fatalf("windows OpenvrDriverLib = %q, want .dll suffix", got)
	}
	if got := win.VulkanLayer(); got != filepath.Join("/opt/alvr", "alvr_vulkan_layer.dll") {
		t.Fatalf("windows VulkanLayer = %q", got)
	}

	mac := New("/Applications/ALVR", ForOS("darwin"), Overrides{})

	if got := mac.DashboardExe(); got != filepath.Join("/Applications/ALVR", "alvr_dashboard") {
		t.Fatalf("darwin DashboardExe = %q", got)
	}
	if got := mac.VulkanLayer(); !strings.HasSuffix(got, "libalvr_vulkan_layer.dylib") {
		t.Fatalf("darwin VulkanLayer = %q, want .dylib suffix", got)
	}
}

func TestOpenvrDriverLibDirPlatformTags(t *testing.T) {
	cases := []struct {
		os  string
		tag string
	}{
		{"windows", "win64"},
		{"linux", "linux64"},
		{"darwin", "macos"},
	}

	for _, c := range cases {
		l := New("/opt/alvr", ForOS(c.os), Overrides{})
		got := l.OpenvrDriverLibDir()
		want := filepath.Join("bin", c.tag)
		if !strings.HasSuffix(got, want) {
			t.Fatalf("%s: OpenvrDriverLibDir = %q, want suffix %q", c.os, got, want)
		}
	}
}

func TestOpenvrDriverLibDirUnknownOSPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown platform")
		}
	}()

	l := New("/opt/alvr", ForOS("plan9"), Overrides{})
	l.OpenvrDriverLibDir()
}

func TestInvalidRootFHSKeepsUserDirs(t *testing.T) {
	l := New("", ForOS("linux"), Overrides{})

	if !filepath.IsAbs(l.ConfigDir) {
		t.Fatalf("ConfigDir = %q, want absolute", l.ConfigDir)
	}
	if !filepath.IsAbs(l.LogDir) {
		t.Fatalf("LogDir = %q, want absolute", l.LogDir)
	}
	if l.ExecutablesDir != "bin" {
		t.Fatalf("ExecutablesDir = %q, want root-relative placeholder", l.ExecutablesDir)
	}
}
