package helix

import (
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// hotReloadRegistry is the process-wide hot-reload map: fully-qualified
// component name to its current wrapped render value. Registration happens
// during package initialization (sequential by definition), but the lock
// keeps later tooling reads safe against a concurrent dev-server.
type hotReloadRegistry struct {
	mu      sync.RWMutex
	entries map[string]*Component
}

var hotReload = hotReloadRegistry{entries: make(map[string]*Component)}

// RegisterForHotReload registers a wrapped render value under its
// fully-qualified name. Re-registering a name replaces its entry; entries are
// never deleted. Generated code calls this only under the debug flag.
func RegisterForHotReload(render *Component, fqn string) {
	if render == nil || fqn == "" {
		return
	}
	hotReload.mu.Lock()
	defer hotReload.mu.Unlock()
	hotReload.entries[fqn] = render
}

// LookupComponent returns the current wrapped render value registered under
// fqn.
func LookupComponent(fqn string) (*Component, bool) {
	hotReload.mu.RLock()
	defer hotReload.mu.RUnlock()
	c, ok := hotReload.entries[fqn]
	return c, ok
}

// RegisteredComponents returns the fully-qualified names currently in the
// registry.
func RegisteredComponents() []string {
	hotReload.mu.RLock()
	defer hotReload.mu.RUnlock()
	names := make([]string, 0, len(hotReload.entries))
	for fqn := range hotReload.entries {
		names = append(names, fqn)
	}
	return names
}

// RegistrySnapshot encodes the registry as a map of fully-qualified name to
// hook fingerprint. A dev-server transport diffs consecutive snapshots to
// decide which components changed identity across a reload.
func RegistrySnapshot() ([]byte, error) {
	hotReload.mu.RLock()
	defer hotReload.mu.RUnlock()
	fingerprints := make(map[string]string, len(hotReload.entries))
	for fqn, c := range hotReload.entries {
		fingerprints[fqn] = c.Signature().Fingerprint()
	}
	return msgpack.Marshal(fingerprints)
}

// DecodeRegistrySnapshot decodes a snapshot produced by RegistrySnapshot.
func DecodeRegistrySnapshot(data []byte) (map[string]string, error) {
	var fingerprints map[string]string
	if err := msgpack.Unmarshal(data, &fingerprints); err != nil {
		return nil, err
	}
	return fingerprints, nil
}

// resetHotReload clears the registry. Test helper.
func resetHotReload() {
	hotReload.mu.Lock()
	defer hotReload.mu.Unlock()
	hotReload.entries = make(map[string]*Component)
}
