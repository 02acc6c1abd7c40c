// Package notify delivers settings change notifications.
//
// Changes are addressed by settings store keys such as
// "Engine/Piano/Preset/Warm". An observer subscribed to a key also hears
// about every key below it.
package notify

import (
	"strings"
	"sync"
)

// ChangeType represents the type of settings change.
type ChangeType int

const (
	// ChangeSet indicates a value was set or updated.
	ChangeSet ChangeType = iota

	// ChangeDelete indicates a value was deleted.
	ChangeDelete

	// ChangeRename indicates a group moved to a new key.
	ChangeRename

	// ChangeReload indicates everything was re-read from disk.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeSet:
		return "set"
	case ChangeDelete:
		return "delete"
	case ChangeRename:
		return "rename"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a settings change event.
type Change struct {
	// Path is the store key of the change, without a leading slash.
	// Empty for reload events.
	Path string

	// Type is the type of change.
	Type ChangeType

	// OldValue is the previous value (may be nil).
	OldValue any

	// NewValue is the new value (may be nil for deletes).
	NewValue any
}

// Observer is called when settings change.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages change subscriptions. Observers run synchronously on
// the notifying goroutine.
type Notifier struct {
	mu sync.RWMutex

	globalObservers map[uint64]Observer
	pathObservers   map[string]map[uint64]Observer

	nextID uint64
	closed bool
}

// New creates a new Notifier.
func New() *Notifier {
	return &Notifier{
		globalObservers: make(map[uint64]Observer),
		pathObservers:   make(map[string]map[uint64]Observer),
	}
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.globalObservers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// SubscribePath registers an observer for changes at or below path.
func (n *Notifier) SubscribePath(path string, observer Observer) *Subscription {
	path = strings.Trim(path, "/")

	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++

	if n.pathObservers[path] == nil {
		n.pathObservers[path] = make(map[uint64]Observer)
	}
	n.pathObservers[path][id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change notification to all relevant observers.
func (n *Notifier) Notify(change Change) {
	change.Path = strings.Trim(change.Path, "/")

	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}

	var observers []Observer
	for _, obs := range n.globalObservers {
		observers = append(observers, obs)
	}
	for path, pathObs := range n.pathObservers {
		// Reloads reach everyone.
		if change.Path == "" || path == change.Path || isParentPath(path, change.Path) {
			for _, obs := range pathObs {
				observers = append(observers, obs)
			}
		}
	}
	n.mu.RUnlock()

	for _, obs := range observers {
		obs(change)
	}
}

// NotifySet is a convenience method for set changes.
func (n *Notifier) NotifySet(path string, oldValue, newValue any) {
	n.Notify(Change{Path: path, Type: ChangeSet, OldValue: oldValue, NewValue: newValue})
}

// NotifyDelete is a convenience method for delete changes.
func (n *Notifier) NotifyDelete(path string, oldValue any) {
	n.Notify(Change{Path: path, Type: ChangeDelete, OldValue: oldValue})
}

// NotifyRename is a convenience method for renamed groups.
func (n *Notifier) NotifyRename(path string, oldName, newName string) {
	n.Notify(Change{Path: path, Type: ChangeRename, OldValue: oldName, NewValue: newName})
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload() {
	n.Notify(Change{Type: ChangeReload})
}

// Close stops delivery. It is safe to call Close multiple times.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.closed = true
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.globalObservers, id)

	for path, observers := range n.pathObservers {
		delete(observers, id)
		if len(observers) == 0 {
			delete(n.pathObservers, path)
		}
	}
}

// isParentPath checks if parent is a parent key of child.
// e.g., "Engine" is parent of "Engine/Piano".
func isParentPath(parent, child string) bool {
	if parent == "" {
		return true
	}
	return len(child) > len(parent) && child[:len(parent)] == parent && child[len(parent)] == '/'
}
