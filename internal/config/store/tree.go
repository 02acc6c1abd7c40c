package store

import (
	"sort"
	"strings"
)

// Backend is a hierarchical key/value tree addressed by slash-separated
// keys such as "Engine/Piano/Settings/Gain". A key names either a value
// or a group of further keys.
type Backend interface {
	// Value returns the value stored at key. Groups are not values.
	Value(key string) (any, bool)
	// SetValue stores value at key, creating intermediate groups.
	SetValue(key string, value any) error
	// Remove deletes the value or the whole group at key.
	Remove(key string) error
	// ChildKeys lists the value keys directly under group, sorted.
	ChildKeys(group string) []string
	// ChildGroups lists the group keys directly under group, sorted.
	ChildGroups(group string) []string
}

// Tree is an in-memory Backend built from nested maps.
type Tree struct {
	data map[string]any
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	return &Tree{data: make(map[string]any)}
}

// NewTreeWithData wraps an existing nested map.
func NewTreeWithData(data map[string]any) *Tree {
	if data == nil {
		data = make(map[string]any)
	}
	return &Tree{data: data}
}

// Data returns the underlying nested map.
func (t *Tree) Data() map[string]any {
	return t.data
}

// Value returns the value at key.
func (t *Tree) Value(key string) (any, bool) {
	parts := splitKey(key)
	if len(parts) == 0 {
		return nil, false
	}

	current := t.data
	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	val, ok := current[parts[len(parts)-1]]
	if !ok {
		return nil, false
	}
	if _, isGroup := val.(map[string]any); isGroup {
		return nil, false
	}
	return val, true
}

// SetValue stores value at key. A value standing where a group is needed
// is replaced by the group.
func (t *Tree) SetValue(key string, value any) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return ErrEmptyKey
	}

	current := t.data
	for _, part := range parts[:len(parts)-1] {
		if next, ok := current[part].(map[string]any); ok {
			current = next
			continue
		}
		next := make(map[string]any)
		current[part] = next
		current = next
	}

	current[parts[len(parts)-1]] = value
	return nil
}

// Remove deletes key and everything below it, then drops any parent
// groups left empty.
func (t *Tree) Remove(key string) error {
	parts := splitKey(key)
	if len(parts) == 0 {
		return ErrEmptyKey
	}
	removePath(t.data, parts)
	return nil
}

func removePath(m map[string]any, parts []string) bool {
	if len(parts) == 1 {
		delete(m, parts[0])
		return len(m) == 0
	}

	next, ok := m[parts[0]].(map[string]any)
	if !ok {
		return false
	}
	if removePath(next, parts[1:]) {
		delete(m, parts[0])
	}
	return len(m) == 0
}

// ChildKeys lists the value keys directly under group.
func (t *Tree) ChildKeys(group string) []string {
	return t.children(group, false)
}

// ChildGroups lists the group keys directly under group.
func (t *Tree) ChildGroups(group string) []string {
	return t.children(group, true)
}

func (t *Tree) children(group string, groups bool) []string {
	current := t.data
	for _, part := range splitKey(group) {
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil
		}
		current = next
	}

	var result []string
	for key, val := range current {
		_, isGroup := val.(map[string]any)
		if isGroup == groups {
			result = append(result, key)
		}
	}
	sort.Strings(result)
	return result
}

// splitKey splits a slash-separated key, dropping empty segments so that
// "/Options//KnobStyle" and "Options/KnobStyle" address the same value.
func splitKey(key string) []string {
	raw := strings.Split(key, "/")
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// JoinKey joins key segments with '/' and normalizes the result.
func JoinKey(parts ...string) string {
	return strings.Join(splitKey(strings.Join(parts, "/")), "/")
}
