package meta

import (
	"strings"

	"github.com/stoewer/go-strcase"
)

// Class is the definition of one entity: its member descriptors, the ordering
// lists introspection is served from, the snapshotted ancestor chain, and the
// namespaces the build phase installs callable behavior into.
//
// A Class is created once per entity through Registry.Register, populated
// through the Builder during the registration phase, and frozen by Build.
// After Build it may be read concurrently without locking.
type Class struct {
	name        string
	key         string
	displayName string
	ancestors   []string // entity itself first, snapshotted at registration

	attrs   map[string]*Attribute
	methods map[string]*Method
	ctors   map[string]*Constructor
	members map[string]MemberKind // merged name space, collision detection only

	// Declaration-order lists per kind. The public list is always an ordered
	// subsequence of the protected+public list; private members appear in
	// neither and are reachable only by name lookup.
	pubAttrs, protAttrs     []string
	pubMethods, protMethods []string
	pubCtors, protCtors     []string
	order                   []MemberRef // interleaved (kind, name) across all kinds

	built bool

	storeFactory func() Store
	classState   Store // shared storage for ContextClass attributes

	// Namespaces installed at build time; the default caller invocables
	// dispatch through these.
	methodFns map[string]Func
	ctorFns   map[string]Factory
}

// ClassOption customizes a class at registration time.
type ClassOption func(*Class)

// WithKey overrides the class key, which otherwise defaults to the snake_case
// form of the entity's short name.
func WithKey(key string) ClassOption {
	return func(c *Class) { c.key = key }
}

// WithDisplayName overrides the human-readable class name.
func WithDisplayName(name string) ClassOption {
	return func(c *Class) { c.displayName = name }
}

// WithStoreFactory overrides the field storage the class's constructors
// allocate for each instance.
func WithStoreFactory(fn func() Store) ClassOption {
	return func(c *Class) { c.storeFactory = fn }
}

func newClass(entity string, opts ...ClassOption) *Class {
	c := &Class{
		name:         entity,
		attrs:        make(map[string]*Attribute),
		methods:      make(map[string]*Method),
		ctors:        make(map[string]*Constructor),
		members:      make(map[string]MemberKind),
		storeFactory: newMapStore,
		classState:   newMapStore(),
		methodFns:    make(map[string]Func),
		ctorFns:      make(map[string]Factory),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.key == "" {
		c.key = strcase.SnakeCase(shortName(entity))
	}
	if c.displayName == "" {
		c.displayName = labelFor(c.key)
	}
	return c
}

// shortName strips path and package qualifiers from an entity identity.
func shortName(entity string) string {
	if i := strings.LastIndexAny(entity, "/."); i >= 0 {
		return entity[i+1:]
	}
	return entity
}

// Name returns the entity identity the class describes.
func (c *Class) Name() string { return c.name }

// Key returns the class's short key.
func (c *Class) Key() string { return c.key }

// DisplayName returns the class's human-readable name.
func (c *Class) DisplayName() string { return c.displayName }

// Built reports whether the build phase has completed.
func (c *Class) Built() bool { return c.built }

// Ancestors returns the class's ancestor chain, the entity itself first. The
// chain is snapshotted at registration time and never re-derived.
func (c *Class) Ancestors() []string {
	out := make([]string, len(c.ancestors))
	copy(out, c.ancestors)
	return out
}

// recordMember claims name in the merged name space and appends it to the
// ordering lists its visibility admits it to.
func (c *Class) recordMember(kind MemberKind, name string, vis Visibility) {
	c.members[name] = kind
	c.order = append(c.order, MemberRef{Kind: kind, Name: name})

	if vis < VisibilityProtected {
		return
	}
	switch kind {
	case KindAttribute:
		c.protAttrs = append(c.protAttrs, name)
		if vis == VisibilityPublic {
			c.pubAttrs = append(c.pubAttrs, name)
		}
	case KindMethod:
		c.protMethods = append(c.protMethods, name)
		if vis == VisibilityPublic {
			c.pubMethods = append(c.pubMethods, name)
		}
	case KindConstructor:
		c.protCtors = append(c.protCtors, name)
		if vis == VisibilityPublic {
			c.pubCtors = append(c.pubCtors, name)
		}
	}
}

// Attributes returns the class's public attributes in declaration order.
// Returns a fresh slice to prevent external mutation.
func (c *Class) Attributes() []*Attribute {
	out := make([]*Attribute, len(c.pubAttrs))
	for i, name := range c.pubAttrs {
		out[i] = c.attrs[name]
	}
	return out
}

// ProtectedAttributes returns the class's protected and public attributes in
// declaration order.
func (c *Class) ProtectedAttributes() []*Attribute {
	out := make([]*Attribute, len(c.protAttrs))
	for i, name := range c.protAttrs {
		out[i] = c.attrs[name]
	}
	return out
}

// Attribute looks an attribute up by name across all visibilities. It fails
// with NotFound when the class has no such attribute.
func (c *Class) Attribute(name string) (*Attribute, error) {
	if a, ok := c.attrs[name]; ok {
		return a, nil
	}
	return nil, memberError(ErrNotFound, c.name, name,
		"class %s has no attribute %s", c.name, name)
}

// Methods returns the class's public methods in declaration order.
func (c *Class) Methods() []*Method {
	out := make([]*Method, len(c.pubMethods))
	for i, name := range c.pubMethods {
		out[i] = c.methods[name]
	}
	return out
}

// ProtectedMethods returns the class's protected and public methods in
// declaration order.
func (c *Class) ProtectedMethods() []*Method {
	out := make([]*Method, len(c.protMethods))
	for i, name := range c.protMethods {
		out[i] = c.methods[name]
	}
	return out
}

// Method looks a method up by name across all visibilities. It fails with
// NotFound when the class has no such method.
func (c *Class) Method(name string) (*Method, error) {
	if m, ok := c.methods[name]; ok {
		return m, nil
	}
	return nil, memberError(ErrNotFound, c.name, name,
		"class %s has no method %s", c.name, name)
}

// Constructors returns the class's public constructors in declaration order.
func (c *Class) Constructors() []*Constructor {
	out := make([]*Constructor, len(c.pubCtors))
	for i, name := range c.pubCtors {
		out[i] = c.ctors[name]
	}
	return out
}

// ProtectedConstructors returns the class's protected and public constructors
// in declaration order.
func (c *Class) ProtectedConstructors() []*Constructor {
	out := make([]*Constructor, len(c.protCtors))
	for i, name := range c.protCtors {
		out[i] = c.ctors[name]
	}
	return out
}

// Constructor looks a constructor up by name across all visibilities. It
// fails with NotFound when the class has no such constructor.
func (c *Class) Constructor(name string) (*Constructor, error) {
	if ct, ok := c.ctors[name]; ok {
		return ct, nil
	}
	return nil, memberError(ErrNotFound, c.name, name,
		"class %s has no constructor %s", c.name, name)
}

// Members returns every member of the class, all kinds interleaved in
// declaration order. Unlike the per-kind lists this includes private members.
func (c *Class) Members() []MemberRef {
	out := make([]MemberRef, len(c.order))
	copy(out, c.order)
	return out
}

// NewInstance allocates a blank instance backed by the class's store
// factory. It is intended for custom Factory implementations; everything
// else constructs instances through a constructor descriptor.
func (c *Class) NewInstance() *Instance {
	return &Instance{class: c, store: c.storeFactory()}
}

// New constructs a new instance through the named constructor.
func (c *Class) New(name string, values map[string]any) (*Instance, error) {
	ctor, err := c.Constructor(name)
	if err != nil {
		return nil, err
	}
	return ctor.Call(values)
}

// methodFunc looks a method body up in the class namespace.
func (c *Class) methodFunc(name string) (Func, bool) {
	fn, ok := c.methodFns[name]
	return fn, ok
}

// constructorFunc looks a factory up in the class namespace.
func (c *Class) constructorFunc(name string) (Factory, bool) {
	fn, ok := c.ctorFns[name]
	return fn, ok
}
