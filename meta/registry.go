package meta

import (
	"sync"

	"go.uber.org/zap"
)

// AncestorSource reports an entity's ordered direct ancestor identities. It
// is consulted exactly once per entity, at registration time; the resulting
// chain is snapshotted on the class and never re-derived.
type AncestorSource interface {
	Ancestors(entity string) []string
}

// AncestorFunc adapts a plain function to the AncestorSource interface.
type AncestorFunc func(entity string) []string

// Ancestors implements AncestorSource.
func (f AncestorFunc) Ancestors(entity string) []string { return f(entity) }

// Registry is the process-scoped table of class definitions, keyed by entity
// identity. It is an explicit object rather than package state so embedders
// can scope and inject it.
//
// Lifecycle: a single owner registers and builds each class; after Build the
// class and its descriptors are immutable and may be read by any number of
// goroutines concurrently. The registry's own map is guarded for the
// registration phase.
type Registry struct {
	mu       sync.RWMutex
	resolver TypeResolver
	ancestry AncestorSource
	log      *zap.Logger
	classes  map[string]*Class
	order    []string
}

// Option customizes a Registry.
type Option func(*Registry)

// WithLogger sets the registry's logger. The default is a no-op logger.
func WithLogger(log *zap.Logger) Option {
	return func(r *Registry) { r.log = log }
}

// WithAncestry sets the source consulted for entity ancestor chains at
// registration time. Without one, every chain is just the entity itself.
func WithAncestry(src AncestorSource) Option {
	return func(r *Registry) { r.ancestry = src }
}

// NewRegistry creates an empty registry. The resolver supplies type handles
// for attribute accessor synthesis; types.Default() is the stock choice.
func NewRegistry(resolver TypeResolver, opts ...Option) *Registry {
	r := &Registry{
		resolver: resolver,
		log:      zap.NewNop(),
		classes:  make(map[string]*Class),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register creates the class definition for entity and returns the Builder
// that is the sole handle for populating it. It fails with DuplicateClass
// when the entity is already registered; re-registration is rejected
// outright, never merged.
func (r *Registry) Register(entity string, opts ...ClassOption) (*Builder, error) {
	if entity == "" {
		return nil, Errorf(ErrInvalidName, "entity identity must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, dup := r.classes[entity]; dup {
		return nil, Errorf(ErrDuplicateClass, "class %s is already registered", entity)
	}

	c := newClass(entity, opts...)
	c.ancestors = r.ancestorChain(entity)
	r.classes[entity] = c
	r.order = append(r.order, entity)

	r.log.Debug("registered class",
		zap.String("class", entity),
		zap.String("key", c.key),
		zap.Strings("ancestors", c.ancestors))

	return &Builder{reg: r, class: c}, nil
}

// ancestorChain expands the entity's declared ancestors transitively,
// depth-first, keeping the first occurrence of each identity. The entity
// itself always leads the chain.
func (r *Registry) ancestorChain(entity string) []string {
	chain := []string{entity}
	if r.ancestry == nil {
		return chain
	}
	seen := map[string]bool{entity: true}
	var walk func(string)
	walk = func(e string) {
		for _, parent := range r.ancestry.Ancestors(e) {
			if seen[parent] {
				continue
			}
			seen[parent] = true
			chain = append(chain, parent)
			walk(parent)
		}
	}
	walk(entity)
	return chain
}

// Lookup returns the class definition registered for entity. It fails with
// NotFound when the entity is unregistered.
func (r *Registry) Lookup(entity string) (*Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if c, ok := r.classes[entity]; ok {
		return c, nil
	}
	return nil, Errorf(ErrNotFound, "class %s is not registered", entity)
}

// Classes returns all registered class definitions in registration order.
// Returns a fresh slice to prevent external mutation.
func (r *Registry) Classes() []*Class {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Class, len(r.order))
	for i, name := range r.order {
		out[i] = r.classes[name]
	}
	return out
}

// owns reports whether c is the live definition this registry issued.
func (r *Registry) owns(c *Class) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return c != nil && r.classes[c.name] == c
}
