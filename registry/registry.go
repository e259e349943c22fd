package registry

import (
	"sort"
	"sync"
)

// Forward declarations to avoid import cycles
// The concrete type behind `any` is engine.Behavior, asserted at spawn time

// BehaviorFactory decodes a raw GDL property map into a behavior instance
type BehaviorFactory func(props map[string]any) (any, error)

var (
	behaviorsMu sync.RWMutex
	behaviors   = make(map[string]BehaviorFactory)
)

// RegisterBehavior adds a behavior factory by GDL type name.
// Behavior packages call this from init; registering the same name twice
// keeps the last registration.
func RegisterBehavior(name string, factory BehaviorFactory) {
	behaviorsMu.Lock()
	defer behaviorsMu.Unlock()
	behaviors[name] = factory
}

// GetBehavior retrieves a behavior factory by GDL type name
func GetBehavior(name string) (BehaviorFactory, bool) {
	behaviorsMu.RLock()
	defer behaviorsMu.RUnlock()
	f, ok := behaviors[name]
	return f, ok
}

// HasBehavior reports whether a GDL behavior type is registered
func HasBehavior(name string) bool {
	_, ok := GetBehavior(name)
	return ok
}

// BehaviorNames returns all registered behavior type names, sorted
func BehaviorNames() []string {
	behaviorsMu.RLock()
	defer behaviorsMu.RUnlock()
	names := make([]string, 0, len(behaviors))
	for name := range behaviors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
