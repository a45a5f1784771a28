// Package envsource is the runtime half of envgen: lookup sources, key
// composition, and the aggregated field-error model shared by generated
// loaders and the reflection loader.
package envsource

import "os"

// Source supplies configuration values by exact, case-sensitive key.
type Source interface {
	// Lookup returns the raw value for key and whether it was present.
	Lookup(key string) (string, bool)
}

// OS returns a Source backed by the process environment.
func OS() Source {
	return osSource{}
}

type osSource struct{}

func (osSource) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Map is an in-memory Source, mostly useful in tests.
type Map map[string]string

func (m Map) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Separator joins prefix segments in composed lookup keys.
const Separator = "_"

// Key composes a lookup key from an inherited prefix and an already
// uppercased segment. An empty prefix contributes no separator, so root
// level keys have no leading underscore.
func Key(prefix, segment string) string {
	if prefix == "" {
		return segment
	}

	return prefix + Separator + segment
}
