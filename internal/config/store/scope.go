package store

// Scope is a view of a Store rooted at a group. The zero value is not
// usable; get one from Store.Root or Store.Group.
type Scope struct {
	store  *Store
	prefix string
}

// Store returns the store the scope belongs to.
func (sc Scope) Store() *Store {
	return sc.store
}

// Path returns the scope's group key, without a leading slash.
func (sc Scope) Path() string {
	return sc.prefix
}

// Group returns a nested scope. A key starting with '/' is taken from the
// store root rather than from sc.
func (sc Scope) Group(key string) Scope {
	if len(key) > 0 && key[0] == '/' {
		return Scope{store: sc.store, prefix: JoinKey(key)}
	}
	return Scope{store: sc.store, prefix: sc.key(key)}
}

func (sc Scope) key(key string) string {
	return JoinKey(sc.prefix, key)
}

// Value returns the raw value at key.
func (sc Scope) Value(key string) (any, bool) {
	return sc.store.value(sc.key(key))
}

// Contains reports whether a value exists at key.
func (sc Scope) Contains(key string) bool {
	_, ok := sc.Value(key)
	return ok
}

// String returns the value at key as a string, or def.
func (sc Scope) String(key, def string) string {
	v, ok := sc.Value(key)
	if !ok {
		return def
	}
	if s, ok := toString(v); ok {
		return s
	}
	return def
}

// Bool returns the value at key as a bool, or def.
func (sc Scope) Bool(key string, def bool) bool {
	v, ok := sc.Value(key)
	if !ok {
		return def
	}
	if b, ok := toBool(v); ok {
		return b
	}
	return def
}

// Int returns the value at key as an int, or def.
func (sc Scope) Int(key string, def int) int {
	v, ok := sc.Value(key)
	if !ok {
		return def
	}
	if n, ok := toInt(v); ok {
		return n
	}
	return def
}

// Float returns the value at key as a float64, or def.
func (sc Scope) Float(key string, def float64) float64 {
	v, ok := sc.Value(key)
	if !ok {
		return def
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return def
}

// SetValue stores value at key. Write failures are recorded on the store
// and reported by Store.Err and Store.Sync.
func (sc Scope) SetValue(key string, value any) {
	sc.store.setValue(sc.key(key), value)
}

// Remove deletes key and everything below it. An empty key removes the
// scope's own group.
func (sc Scope) Remove(key string) {
	k := sc.key(key)
	if k == "" {
		for _, g := range sc.store.childGroups("") {
			sc.store.remove(g)
		}
		for _, v := range sc.store.childKeys("") {
			sc.store.remove(v)
		}
		return
	}
	sc.store.remove(k)
}

// ChildKeys lists the value keys directly under the scope, sorted.
func (sc Scope) ChildKeys() []string {
	return sc.store.childKeys(sc.prefix)
}

// ChildGroups lists the group keys directly under the scope, sorted.
func (sc Scope) ChildGroups() []string {
	return sc.store.childGroups(sc.prefix)
}

// CopyTo copies every value below the scope to the same relative keys
// below dst. Values already under dst are kept unless overwritten.
func (sc Scope) CopyTo(dst Scope) {
	for _, k := range sc.ChildKeys() {
		if v, ok := sc.Value(k); ok {
			dst.SetValue(k, v)
		}
	}
	for _, g := range sc.ChildGroups() {
		sc.Group(g).CopyTo(dst.Group(g))
	}
}
