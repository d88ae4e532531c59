package annotation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownAnnotation is returned by New for names nobody registered.
var ErrUnknownAnnotation = errors.New("unknown annotation")

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() InfoFieldAnnotation)
)

// Register makes an annotation available by name.
// It panics if fn is nil or the name is already taken.
func Register(name string, fn func() InfoFieldAnnotation) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if fn == nil {
		panic("annotation: Register constructor is nil")
	}
	if _, dup := registry[name]; dup {
		panic("annotation: Register called twice for " + name)
	}
	registry[name] = fn
}

// New builds the named annotations, in order.
func New(names ...string) ([]InfoFieldAnnotation, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	annotations := make([]InfoFieldAnnotation, 0, len(names))
	for _, name := range names {
		fn, found := registry[name]
		if !found {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAnnotation, name)
		}
		annotations = append(annotations, fn())
	}
	return annotations, nil
}

// Names returns the registered names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
