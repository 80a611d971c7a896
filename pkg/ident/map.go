package ident

import "sort"

// Map is a map keyed by case-insensitive identifiers. It remembers the
// spelling used when a key was last set, so diagnostics and code output
// can show names the way the user wrote them.
type Map[T any] struct {
	values   map[string]T
	original map[string]string
}

// NewMap creates an empty Map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{
		values:   make(map[string]T),
		original: make(map[string]string),
	}
}

// NewMapWithCapacity creates an empty Map with room for n entries.
func NewMapWithCapacity[T any](n int) *Map[T] {
	return &Map[T]{
		values:   make(map[string]T, n),
		original: make(map[string]string, n),
	}
}

// Set stores value under the given key, replacing any existing entry that
// matches case-insensitively. The key's spelling is recorded as the new
// original spelling.
func (m *Map[T]) Set(key string, value T) {
	norm := Normalize(key)
	m.values[norm] = value
	m.original[norm] = key
}

// SetIfAbsent stores value under key only if no case-insensitive match
// exists yet. It reports whether the value was stored.
func (m *Map[T]) SetIfAbsent(key string, value T) bool {
	norm := Normalize(key)
	if _, exists := m.values[norm]; exists {
		return false
	}
	m.values[norm] = value
	m.original[norm] = key
	return true
}

// Get returns the value stored under a case-insensitive match of key.
func (m *Map[T]) Get(key string) (T, bool) {
	value, ok := m.values[Normalize(key)]
	return value, ok
}

// Has reports whether a case-insensitive match of key exists.
func (m *Map[T]) Has(key string) bool {
	_, ok := m.values[Normalize(key)]
	return ok
}

// Delete removes the entry matching key, if any.
func (m *Map[T]) Delete(key string) {
	norm := Normalize(key)
	delete(m.values, norm)
	delete(m.original, norm)
}

// GetOriginalKey returns the spelling the key was stored under,
// or the empty string if the key is not present.
func (m *Map[T]) GetOriginalKey(key string) string {
	return m.original[Normalize(key)]
}

// Len returns the number of entries.
func (m *Map[T]) Len() int {
	return len(m.values)
}

// Keys returns the original spellings of all keys, sorted
// case-insensitively for deterministic iteration.
func (m *Map[T]) Keys() []string {
	keys := make([]string, 0, len(m.original))
	for _, orig := range m.original {
		keys = append(keys, orig)
	}
	sort.Slice(keys, func(i, j int) bool {
		return Compare(keys[i], keys[j]) < 0
	})
	return keys
}
