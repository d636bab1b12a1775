package parser

import (
	"errors"
	"sort"
	"sync"
)

// ErrRegistryFrozen is returned by Register once the definition phase is over.
var ErrRegistryFrozen = errors.New("enum registry is frozen")

// Registry maps qualified class names to the legacy enum types found during
// the definition phase. It is created empty for each run, written only until
// Freeze, and read-only afterwards.
type Registry struct {
	mu     sync.RWMutex
	types  map[string]registered
	frozen bool
}

type registered struct {
	enumType *EnumType
	order    int
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]registered)}
}

// Register records t under its qualified name. order is the position of the
// defining file in the run's file list; when two files define the same
// qualified name, the earlier file wins and Register reports false for the
// other one.
func (r *Registry) Register(t *EnumType, order int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return false, ErrRegistryFrozen
	}
	if existing, ok := r.types[t.QualifiedName]; ok && existing.order <= order {
		return false, nil
	}
	r.types[t.QualifiedName] = registered{enumType: t, order: order}
	return true, nil
}

// Get returns the type registered under a qualified name
func (r *Registry) Get(qualifiedName string) (*EnumType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.types[qualifiedName]
	return entry.enumType, ok
}

// Len returns the number of registered types
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.types)
}

// Freeze closes the registry for writes and returns its snapshot.
func (r *Registry) Freeze() []*EnumType {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
	return r.Types()
}

// Frozen reports whether Freeze has been called
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Types returns every registered type sorted by qualified name
func (r *Registry) Types() []*EnumType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*EnumType, 0, len(r.types))
	for _, entry := range r.types {
		out = append(out, entry.enumType)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].QualifiedName < out[j].QualifiedName
	})
	return out
}
