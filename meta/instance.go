package meta

// Store is the generic key-indexed field storage an instance's attribute
// values live in. The bound accessors are the only externally supported path
// to it; nothing in this package hands the store itself to callers.
type Store interface {
	Get(key string) (any, bool)
	Set(key string, value any)
}

type mapStore map[string]any

func (s mapStore) Get(key string) (any, bool) {
	v, ok := s[key]
	return v, ok
}

func (s mapStore) Set(key string, value any) {
	s[key] = value
}

func newMapStore() Store { return mapStore{} }

// Instance is one object of a built class. Instances are created by
// constructor descriptors; attribute values are read and written through the
// accessors synthesized at build time.
//
// The metaobject layer does not synchronize per-instance mutation. Concurrent
// writes to the same instance are the instance owner's responsibility.
type Instance struct {
	class *Class
	store Store
}

// Class returns the class the instance was constructed from.
func (i *Instance) Class() *Class { return i.class }

// Get reads the named attribute through its bound accessor.
func (i *Instance) Get(name string) (any, error) {
	attr, err := i.class.Attribute(name)
	if err != nil {
		return nil, err
	}
	return attr.Get(i)
}

// Set writes the named attribute through its bound accessor.
func (i *Instance) Set(name string, value any) error {
	attr, err := i.class.Attribute(name)
	if err != nil {
		return err
	}
	return attr.Set(i, value)
}
