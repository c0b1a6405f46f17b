// Package types is the default type-handler implementation for the metakit
// metaobject facility. A Resolver maps declared attribute type names to
// handles; each handle coerces raw values into a canonical Go form and
// synthesizes the get/set accessors an attribute's creation mode asks for.
//
// The built-in scalar types lean on go-cty's conversion machinery, which
// already knows how to convert between strings, numbers, and bools with
// well-defined failure modes. Identifier and time types use dedicated
// coercers on top of google/uuid and the time package.
package types

import (
	"fmt"
	"sync"

	"github.com/metakit-lang/metakit/meta"
)

// Coercer normalizes a raw value into a handler's canonical Go form,
// rejecting values that cannot represent the type.
type Coercer func(value any) (any, error)

// Handle implements meta.TypeHandle for one named type.
type Handle struct {
	name   string
	coerce Coercer
}

// NewHandle creates a type handle with the given name and coercion logic.
func NewHandle(name string, coerce Coercer) *Handle {
	return &Handle{name: name, coerce: coerce}
}

// Name returns the type name the handle serves.
func (h *Handle) Name() string { return h.name }

// BuildAccessors returns the accessor closures implied by mode, each bound to
// the attribute's storage slot. Per the type-handler contract it returns
// exactly the invocables the mode asks for.
func (h *Handle) BuildAccessors(class *meta.Class, attr *meta.Attribute, mode meta.CreationMode) (meta.Getter, meta.Setter, error) {
	if class == nil || attr == nil {
		return nil, nil, fmt.Errorf("type %s: nil class or attribute", h.name)
	}

	var get meta.Getter
	var set meta.Setter

	if mode.WantsGet() {
		get = func(inst *meta.Instance) (any, error) {
			if inst == nil {
				return nil, fmt.Errorf("attribute %s: nil instance", attr.Name())
			}
			v, _ := attr.RawGet(inst)
			return v, nil
		}
	}
	if mode.WantsSet() {
		coerce := h.coerce
		set = func(inst *meta.Instance, value any) error {
			if inst == nil {
				return fmt.Errorf("attribute %s: nil instance", attr.Name())
			}
			if value == nil {
				if attr.Required() {
					return meta.Errorf(meta.ErrRequiredAttribute,
						"attribute %s of class %s must not be nil", attr.Name(), class.Name())
				}
				attr.RawSet(inst, nil)
				return nil
			}
			v, err := coerce(value)
			if err != nil {
				return fmt.Errorf("attribute %s: %w", attr.Name(), err)
			}
			attr.RawSet(inst, v)
			return nil
		}
	}

	if get == nil && set == nil {
		return nil, nil, fmt.Errorf("type %s: creation mode %s yields no accessors", h.name, mode)
	}
	return get, set, nil
}

// Resolver maps declared type names to handles. It implements
// meta.TypeResolver.
type Resolver struct {
	mu      sync.RWMutex
	handles map[string]*Handle
}

// NewResolver creates an empty resolver. Most callers want Default instead.
func NewResolver() *Resolver {
	return &Resolver{handles: make(map[string]*Handle)}
}

// Default returns a resolver preloaded with the built-in types: string, int,
// float, bool, timestamp, duration, uuid, and any.
func Default() *Resolver {
	r := NewResolver()
	for name, coerce := range builtins() {
		r.MustRegister(name, coerce)
	}
	return r
}

// Register adds a type to the resolver. It fails when the name is already
// taken; built classes keep the handle they resolved at registration time,
// so replacing a handle in place is not supported.
func (r *Resolver) Register(name string, coerce Coercer) (*Handle, error) {
	if name == "" {
		return nil, meta.Errorf(meta.ErrInvalidName, "type name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.handles[name]; dup {
		return nil, meta.Errorf(meta.ErrDuplicateMember, "type %s is already registered", name)
	}
	h := NewHandle(name, coerce)
	r.handles[name] = h
	return h, nil
}

// MustRegister is Register for static type sets; it panics on conflict.
func (r *Resolver) MustRegister(name string, coerce Coercer) *Handle {
	h, err := r.Register(name, coerce)
	if err != nil {
		panic(err)
	}
	return h
}

// Resolve returns the handle for a declared type name. It fails with
// NoTypeHandler for names the resolver does not know.
func (r *Resolver) Resolve(name string) (meta.TypeHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if h, ok := r.handles[name]; ok {
		return h, nil
	}
	return nil, meta.Errorf(meta.ErrNoTypeHandler, "no type handler registered for %s", name)
}

// Names returns the registered type names. Useful for diagnostics.
func (r *Resolver) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.handles))
	for name := range r.handles {
		out = append(out, name)
	}
	return out
}
