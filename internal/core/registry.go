package core

import (
	"fmt"
	"sort"
	"sync"
)

var (
	profiles   = make(map[string]Profile)
	transforms = make(map[string]Transform)
	registryMu sync.RWMutex
)

// RegisterProfile adds a profile to the registry.
// Panics if a profile with the same key is already registered or its
// schema is invalid.
func RegisterProfile(p Profile) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := profiles[p.Key]; exists {
		panic(fmt.Sprintf("profile already registered: %s", p.Key))
	}
	if err := p.Columns.Validate(); err != nil {
		panic(fmt.Sprintf("profile %s: %v", p.Key, err))
	}

	profiles[p.Key] = p
}

// RegisterTransform adds a named transform to the registry.
// Panics if a transform with the same name is already registered.
func RegisterTransform(t Transform) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := transforms[t.Name()]; exists {
		panic(fmt.Sprintf("transform already registered: %s", t.Name()))
	}

	transforms[t.Name()] = t
}

// GetProfile returns a profile by key.
// Returns false if not found.
func GetProfile(key string) (Profile, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	p, ok := profiles[key]
	return p, ok
}

// Profiles returns all registered profiles sorted by key.
func Profiles() []Profile {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// TransformNames returns all registered transform names, sorted.
func TransformNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(transforms))
	for name := range transforms {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// ResolveProfile looks up a profile and the transforms to run with it.
// When names is empty the profile's defaults are used. Order is preserved.
func ResolveProfile(key string, names []string) (Profile, []Transform, error) {
	p, ok := GetProfile(key)
	if !ok {
		return Profile{}, nil, fmt.Errorf("unknown profile %q", key)
	}

	if len(names) == 0 {
		names = p.Transforms
	}

	registryMu.RLock()
	defer registryMu.RUnlock()

	resolved := make([]Transform, 0, len(names))
	for _, name := range names {
		t, ok := transforms[name]
		if !ok {
			return Profile{}, nil, fmt.Errorf("unknown transform %q", name)
		}
		resolved = append(resolved, t)
	}

	return p, resolved, nil
}

// Clear removes all registered profiles and transforms.
// Primarily useful for testing.
func Clear() {
	registryMu.Lock()
	defer registryMu.Unlock()
	profiles = make(map[string]Profile)
	transforms = make(map[string]Transform)
}
