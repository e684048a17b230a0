package dialect

import (
	"fmt"
	"strings"
)

// DefaultKey is the dialect used when a request names none, or one we don't know.
const DefaultKey = "access"

type Entry struct {
	Key         string
	Name        string
	Instruction string
}

// Registry is an immutable lookup from dialect key to its instruction text.
// It is safe for concurrent use since nothing mutates it after construction.
type Registry struct {
	entries    []Entry
	byKey      map[string]int
	defaultKey string
}

func New(defaultKey string, entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries:    make([]Entry, 0, len(entries)),
		byKey:      make(map[string]int, len(entries)),
		defaultKey: strings.ToLower(strings.TrimSpace(defaultKey)),
	}

	for _, e := range entries {
		key := strings.ToLower(strings.TrimSpace(e.Key))
		if key == "" {
			return nil, fmt.Errorf("dialect key is required")
		}
		if _, exists := r.byKey[key]; exists {
			return nil, fmt.Errorf("duplicate dialect key %q", key)
		}
		e.Key = key
		r.byKey[key] = len(r.entries)
		r.entries = append(r.entries, e)
	}

	if _, ok := r.byKey[r.defaultKey]; !ok {
		return nil, fmt.Errorf("default dialect %q is not registered", defaultKey)
	}

	return r, nil
}

// Default returns the registry with the built-in dialects.
func Default() *Registry {
	r, err := New(DefaultKey, builtin...)
	if err != nil {
		panic(fmt.Sprintf("dialect: invalid built-in registry: %v", err))
	}
	return r
}

// Resolve returns the entry used for key. Matching is case-insensitive but
// otherwise exact; unknown or empty keys resolve to the default dialect.
func (r *Registry) Resolve(key string) Entry {
	if i, ok := r.byKey[strings.ToLower(key)]; ok {
		return r.entries[i]
	}
	return r.entries[r.byKey[r.defaultKey]]
}

// Lookup returns the instruction text for key, falling back to the default dialect.
func (r *Registry) Lookup(key string) string {
	return r.Resolve(key).Instruction
}

func (r *Registry) Has(key string) bool {
	_, ok := r.byKey[strings.ToLower(key)]
	return ok
}

func (r *Registry) DefaultKey() string {
	return r.defaultKey
}

// Keys returns the registered keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of the registered entries.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}
