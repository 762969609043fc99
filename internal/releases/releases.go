// Package releases holds the certified version set the documentation
// describes. It is populated from compiled-in constants, frozen at init,
// and read-only for the lifetime of the process, so any number of
// concurrent renders may consult it without synchronization.
package releases

import "fmt"

// ComponentKey identifies one of the external dependencies whose certified
// version appears in the documentation. The enumeration is closed: adding a
// key without a matching entry is a build defect caught by Validate.
type ComponentKey int

const (
	// ORANSpec is the O-RAN specification release documented by the site.
	ORANSpec ComponentKey = iota
	// OrchestratorPlatform is the Nephio release the agents target.
	OrchestratorPlatform
	// Runtime is the Go toolchain version required by example commands.
	Runtime
	// PackageTool is the kpt version used for package management.
	PackageTool
	// ClusterPlatform is the Kubernetes version floor.
	ClusterPlatform

	numComponents // sentinel, keep last
)

// String returns the stable slug for the key. Slugs appear in data
// attributes and in verifier output, so they must not change casually.
func (k ComponentKey) String() string {
	switch k {
	case ORANSpec:
		return "oran-spec"
	case OrchestratorPlatform:
		return "nephio"
	case Runtime:
		return "go"
	case PackageTool:
		return "kpt"
	case ClusterPlatform:
		return "kubernetes"
	default:
		return fmt.Sprintf("component(%d)", int(k))
	}
}

// Entry is one row of the certified version set.
type Entry struct {
	Key     ComponentKey
	Label   string // human-readable component name
	Icon    string // short inline glyph shown next to the label
	Version string // display string, not necessarily strict semver
}

// LastUpdated is the date the certified version set was last revised.
// It is a build-time value (override with -ldflags "-X ...LastUpdated=...")
// and is never derived from the clock, so rendered output stays
// reproducible across builds of the same revision.
var LastUpdated = "2025-08-24"

// entries is the frozen registry. Populated once here, never mutated.
var entries = map[ComponentKey]Entry{
	ORANSpec: {
		Key:     ORANSpec,
		Label:   "O-RAN",
		Icon:    "📡",
		Version: "L (released 2025-06-30)",
	},
	OrchestratorPlatform: {
		Key:     OrchestratorPlatform,
		Label:   "Nephio",
		Icon:    "🧩",
		Version: "R5 (v5.x)",
	},
	Runtime: {
		Key:     Runtime,
		Label:   "Go",
		Icon:    "🐹",
		Version: "1.24.6",
	},
	PackageTool: {
		Key:     PackageTool,
		Label:   "kpt",
		Icon:    "📦",
		Version: "v1.0.0-beta.55+",
	},
	ClusterPlatform: {
		Key:     ClusterPlatform,
		Label:   "Kubernetes",
		Icon:    "☸️",
		Version: "1.32+",
	},
}

// UnknownComponentError reports a lookup for a key outside the registry.
// It is an authoring defect: the documentation build should fail rather
// than render a blank badge.
type UnknownComponentError struct {
	Key ComponentKey
}

func (e *UnknownComponentError) Error() string {
	return fmt.Sprintf("releases: unknown component key %q", e.Key.String())
}

// Get returns the full entry for key.
func Get(key ComponentKey) (Entry, error) {
	entry, ok := entries[key]
	if !ok {
		return Entry{}, &UnknownComponentError{Key: key}
	}
	return entry, nil
}

// Resolve returns the certified version string for key. It is a total
// function over the closed enumeration; it fails only for keys outside it.
func Resolve(key ComponentKey) (string, error) {
	entry, err := Get(key)
	if err != nil {
		return "", err
	}
	return entry.Version, nil
}

// MustResolve is Resolve for compile-time constant keys.
// It panics on an unknown key, which is a programming error.
func MustResolve(key ComponentKey) string {
	version, err := Resolve(key)
	if err != nil {
		panic(err)
	}
	return version
}

// Keys returns every component key in stable declaration order.
func Keys() []ComponentKey {
	keys := make([]ComponentKey, 0, numComponents)
	for k := ComponentKey(0); k < numComponents; k++ {
		keys = append(keys, k)
	}
	return keys
}

// Validate checks the configuration-completeness invariant: every key in
// the enumeration has an entry with a non-empty version and label. Called
// once at process start; a failure should abort startup.
func Validate() error {
	for _, key := range Keys() {
		entry, err := Get(key)
		if err != nil {
			return err
		}
		if entry.Version == "" {
			return fmt.Errorf("releases: component %q has an empty version", key)
		}
		if entry.Label == "" {
			return fmt.Errorf("releases: component %q has an empty label", key)
		}
	}
	return nil
}
