package layout

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (

	// Marker file written by the container manager on sandboxed hosts.
	containerManagerPath = "/run/host/container-manager"

	// Identifier reported by the Steam pressure-vessel sandbox.
	pressureVesselID = "pressure-vessel"

	// Mount point under which pressure-vessel exposes the host filesystem.
	hostMountPoint = "/run/host"
)

// Rewrites host paths for processes running inside the pressure-vessel
// sandbox, which remaps the real host filesystem under /run/host.
//
// Detection reads the container-manager marker file at most once per
// Translator; the result is cached for the lifetime of the value. A
// missing or unreadable marker, or one naming a different container
// manager, means paths pass through unchanged. On non-FHS platforms the
// translator is an identity function and never reads anything.
type Translator struct {
	sandboxed func() bool
}

// Creates a translator for the given platform, backed by the standard
// marker file location.
func NewTranslator(platform Platform) *Translator {
	return newTranslator(platform, containerManagerPath)
}

// Creates a translator probing the given marker file.
func newTranslator(platform Platform, markerPath string) *Translator {
	return &Translator{
		sandboxed: sync.OnceValue(func() bool {
			if platform.Family != FamilyFHS {
				return false
			}
			content, err := os.ReadFile(markerPath)
			if err != nil {
				return false
			}
			return strings.HasPrefix(string(content), pressureVesselID)
		}),
	}
}

// Returns the given host path as visible to the current process.
//
// Inside the sandbox the path is re-rooted under the host mount point;
// everywhere else it is returned unchanged.
func (t *Translator) Translate(path string) string {
	if t.sandboxed() {
		return filepath.Join(hostMountPoint, path)
	}
	return path
}
