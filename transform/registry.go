package transform

import (
	"slices"

	"github.com/go-logr/logr"
)

// Registry is an ordered set of transformers, sorted by descending priority.
// Equal priorities keep insertion order. A registry may back any number of
// wrappers; they all see its current contents on every read.
type Registry struct {
	transformers []*Transformer
	logger       logr.Logger
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		logger: logr.Discard(),
	}
}

// WithLogger sets the logger used for registry changes and, unless
// overridden with WithLogger, by wrappers built over the registry.
// Returns the Registry for chaining.
func (r *Registry) WithLogger(logger logr.Logger) *Registry {
	r.logger = logger
	return r
}

// Add inserts t before the first entry with a strictly lower priority.
// Adding a transformer that is already present, or nil, does nothing.
// Returns the Registry for chaining.
func (r *Registry) Add(t *Transformer) *Registry {
	if t == nil || r.Has(t) {
		return r
	}

	at := slices.IndexFunc(r.transformers, func(e *Transformer) bool {
		return e.priority < t.priority
	})
	if at < 0 {
		at = len(r.transformers)
	}

	r.transformers = slices.Insert(r.transformers, at, t)
	r.logger.V(2).Info("transformer added", "property", t.property, "priority", t.priority, "position", at)

	return r
}

// Remove deletes t and reports whether it was present.
func (r *Registry) Remove(t *Transformer) bool {
	at := slices.Index(r.transformers, t)
	if at < 0 {
		return false
	}

	r.transformers = slices.Delete(r.transformers, at, at+1)
	r.logger.V(2).Info("transformer removed", "property", t.property, "priority", t.priority)

	return true
}

// Clear removes every transformer.
func (r *Registry) Clear() {
	clear(r.transformers)
	r.transformers = r.transformers[:0]
	r.logger.V(2).Info("registry cleared")
}

// Has reports whether t is registered.
func (r *Registry) Has(t *Transformer) bool {
	return slices.Contains(r.transformers, t)
}

// Len returns the number of registered transformers.
func (r *Registry) Len() int {
	return len(r.transformers)
}

// Snapshot returns a copy of the current order, for inspection only.
func (r *Registry) Snapshot() []*Transformer {
	return slices.Clone(r.transformers)
}

// Fold applies combine across the registry from the highest priority to the
// lowest and returns the final accumulator. A nil registry returns initial.
func Fold[A any](r *Registry, initial A, combine func(A, *Transformer) A) A {
	acc := initial
	if r == nil {
		return acc
	}

	for _, t := range r.transformers {
		acc = combine(acc, t)
	}

	return acc
}
