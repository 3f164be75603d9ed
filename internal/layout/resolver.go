package layout

import (
	"path/filepath"
	"sync"
)

// Resolves the installation root and builds [Layout] values from it.
//
// A Resolver owns the override set and the container path translator for
// one process. Construct it once at startup and share it; all methods are
// safe for concurrent use. When a Root override is present the resolver
// is portable: the override is translated and built exactly once, the
// resulting Layout is memoized, and every entry point returns it
// regardless of its argument. Without a Root override each call derives a
// fresh root from its argument.
type Resolver struct {
	overrides  Overrides
	translator *Translator
	platform   Platform
	portable   func() (Layout, bool)
}

// Creates a resolver for the given platform and override set.
func NewResolver(platform Platform, ov Overrides) *Resolver {
	r := &Resolver{
		overrides:  ov,
		translator: NewTranslator(platform),
		platform:   platform,
	}
	r.portable = sync.OnceValues(r.resolvePortable)
	return r
}

// Builds the Layout of a portable installation, if this build is one.
func (r *Resolver) resolvePortable() (Layout, bool) {
	if r.overrides.Root == "" {
		return Layout{}, false
	}
	root := r.translator.Translate(r.overrides.Root)
	return New(root, r.platform, r.overrides), true
}

// Resolves the layout from the path of the dashboard executable.
//
// On the FHS family the executable sits in <root>/bin, so the root is two
// directory levels up; on the flat family it sits in the root itself.
func (r *Resolver) FromDashboardExe(path string) Layout {
	if l, ok := r.portable(); ok {
		return l
	}

	path = r.translator.Translate(path)
	root := filepath.Dir(path)
	if r.platform.Family == FamilyFHS {
		root = filepath.Dir(root)
	}
	return New(root, r.platform, r.overrides)
}

// Resolves the layout from the OpenVR driver root directory.
//
// On the FHS family the driver lives in <root>/lib64/alvr, so the root is
// two directory levels up; on the flat family the driver root and the
// installation root coincide.
func (r *Resolver) FromDriverRoot(dir string) Layout {
	if l, ok := r.portable(); ok {
		return l
	}

	root := r.translator.Translate(dir)
	if r.platform.Family == FamilyFHS {
		root = filepath.Dir(filepath.Dir(root))
	}
	return New(root, r.platform, r.overrides)
}

// Resolves a layout with no root information at all.
//
// Use this when the current executable location is unknown. The returned
// directories are placeholders relative to an empty root and must not be
// resolved, except for the ones that disregard the root entirely: the
// config and log directories on the FHS family, and any overridden field.
// A portable build still returns its full memoized layout.
func (r *Resolver) Invalid() Layout {
	if l, ok := r.portable(); ok {
		return l
	}
	return New("", r.platform, r.overrides)
}

// The process-wide resolver backing the package-level entry points,
// created on first use from the host platform and this build's overrides.
var defaultResolver = sync.OnceValue(func() *Resolver {
	return NewResolver(Host(), FromBuild())
})

// Resolves the layout from the dashboard executable path using the
// process-wide resolver.
func FromDashboardExe(path string) Layout {
	return defaultResolver().FromDashboardExe(path)
}

// Resolves the layout from the OpenVR driver root directory using the
// process-wide resolver.
func FromDriverRoot(dir string) Layout {
	return defaultResolver().FromDriverRoot(dir)
}

// Resolves a rootless layout using the process-wide resolver.
func Invalid() Layout {
	return defaultResolver().Invalid()
}
