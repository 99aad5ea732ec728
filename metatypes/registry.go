package metatypes

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Sentinel errors for registry operations.
var (
	// ErrNilMetatype indicates a nil Metatype passed to a registry call.
	ErrNilMetatype = errors.New("metatypes: metatype is nil")

	// ErrDuplicateMetatype indicates Register was called twice for one name.
	ErrDuplicateMetatype = errors.New("metatypes: metatype name already registered")
)

// Registry groups metatypes by name and tracks which of them belong to the
// designated "input" and "output" taxonomy groups. It is safe for concurrent
// use; registration typically happens from tracer-adapter init functions.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]Metatype
	inputs  map[string]struct{}
	outputs map[string]struct{}
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Metatype),
		inputs:  make(map[string]struct{}),
		outputs: make(map[string]struct{}),
	}
}

// Register adds m to the registry.
// Returns ErrNilMetatype for nil input and ErrDuplicateMetatype if another
// metatype with the same name is already present.
func (r *Registry) Register(m Metatype) error {
	if m == nil {
		return ErrNilMetatype
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[m.Name()]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateMetatype, m.Name())
	}
	r.byName[m.Name()] = m

	return nil
}

// RegisterInput marks m as a member of the "input" taxonomy group,
// registering it first if it is not yet known. Marking is idempotent.
func (r *Registry) RegisterInput(m Metatype) error {
	if m == nil {
		return ErrNilMetatype
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[m.Name()]; !exists {
		r.byName[m.Name()] = m
	}
	r.inputs[m.Name()] = struct{}{}

	return nil
}

// RegisterOutput marks m as a member of the "output" taxonomy group,
// registering it first if it is not yet known. Marking is idempotent.
func (r *Registry) RegisterOutput(m Metatype) error {
	if m == nil {
		return ErrNilMetatype
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[m.Name()]; !exists {
		r.byName[m.Name()] = m
	}
	r.outputs[m.Name()] = struct{}{}

	return nil
}

// Get returns the registered metatype with the given name, if any.
func (r *Registry) Get(name string) (Metatype, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.byName[name]

	return m, ok
}

// IsInput reports whether m belongs to the "input" taxonomy group.
// A nil metatype belongs to no group.
func (r *Registry) IsInput(m Metatype) bool {
	if m == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.inputs[m.Name()]

	return ok
}

// IsOutput reports whether m belongs to the "output" taxonomy group.
func (r *Registry) IsOutput(m Metatype) bool {
	if m == nil {
		return false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.outputs[m.Name()]

	return ok
}

// InputMetatypes returns the members of the "input" group sorted by name.
func (r *Registry) InputMetatypes() []Metatype {
	return r.group(func() map[string]struct{} { return r.inputs })
}

// OutputMetatypes returns the members of the "output" group sorted by name.
func (r *Registry) OutputMetatypes() []Metatype {
	return r.group(func() map[string]struct{} { return r.outputs })
}

// group snapshots one taxonomy group in deterministic (name asc) order.
func (r *Registry) group(pick func() map[string]struct{}) []Metatype {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(pick()))
	for name := range pick() {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Metatype, 0, len(names))
	for _, name := range names {
		out = append(out, r.byName[name])
	}

	return out
}

// defaultRegistry is the shared registry most graphs are built against.
var defaultRegistry = func() *Registry {
	r := NewRegistry()
	_ = r.RegisterInput(ModelInput)
	_ = r.RegisterOutput(ModelOutput)
	_ = r.Register(UnknownMetatype)

	return r
}()

// Default returns the shared registry pre-seeded with ModelInput and
// ModelOutput. Tracer adapters may register additional metatypes on it.
func Default() *Registry { return defaultRegistry }
