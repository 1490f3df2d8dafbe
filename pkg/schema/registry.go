package schema

import (
	"fmt"
	"sort"
	"sync"
)

var (
	mu       sync.RWMutex
	registry = make(map[string]*Shape)
)

// Register adds a shape to the global registry. Shape names are the
// removal/lookup key and must be unique; duplicates are rejected.
func Register(s *Shape) error {
	if s == nil {
		return fmt.Errorf("schema: cannot register nil shape")
	}
	if err := s.validate(); err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := registry[s.Name]; exists {
		return fmt.Errorf("schema: shape %q already registered", s.Name)
	}
	registry[s.Name] = s
	return nil
}

// MustRegister registers a shape and panics on error. Domain packages use
// it from init, where a failure is a programming error in the registry
// itself.
func MustRegister(s *Shape) {
	if err := Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the shape registered under name, or nil.
func Lookup(name string) *Shape {
	mu.RLock()
	defer mu.RUnlock()
	return registry[name]
}

// All returns every registered shape, sorted by name.
func All() []*Shape {
	mu.RLock()
	defer mu.RUnlock()

	shapes := make([]*Shape, 0, len(registry))
	for _, s := range registry {
		shapes = append(shapes, s)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })
	return shapes
}

// Names returns the sorted names of all registered shapes.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
