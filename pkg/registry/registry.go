// pkg/registry/registry.go
package registry

import (
	"errors"
	"fmt"

	"github.com/upm-tools/upm/pkg/backend"
)

// ErrDuplicateName is returned when two descriptors share a name. This is a
// defect in the descriptor data and fatal at startup.
var ErrDuplicateName = errors.New("duplicate backend name")

// Registry holds the fixed set of known backend descriptors for one process
// lifetime. It is read-only after New returns.
type Registry struct {
	descriptors []backend.Descriptor
	byName      map[string]int
}

// New validates the descriptors and builds a registry. Descriptor order is
// preserved; it defines the stable iteration order used everywhere downstream.
func New(descriptors []backend.Descriptor) (*Registry, error) {
	r := &Registry{
		descriptors: make([]backend.Descriptor, 0, len(descriptors)),
		byName:      make(map[string]int, len(descriptors)),
	}

	for _, d := range descriptors {
		if err := d.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byName[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, d.Name)
		}
		r.byName[d.Name] = len(r.descriptors)
		r.descriptors = append(r.descriptors, d)
	}

	return r, nil
}

// All returns the descriptors in registration order. The returned slice is a
// copy; the registry itself never changes after New.
func (r *Registry) All() []backend.Descriptor {
	out := make([]backend.Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Get looks a descriptor up by name.
func (r *Registry) Get(name string) (backend.Descriptor, bool) {
	i, ok := r.byName[name]
	if !ok {
		return backend.Descriptor{}, false
	}
	return r.descriptors[i], true
}

// Names returns every registered backend name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
