package meta

import "sync/atomic"

// testResolver hands out passthrough handles for any type name, so core tests
// do not depend on the types package. The synth counter tracks how many times
// accessor synthesis ran, which the build-idempotency tests assert on.
type testResolver struct {
	synth atomic.Int64
}

func (r *testResolver) Resolve(name string) (TypeHandle, error) {
	if name == "bogus" {
		return nil, Errorf(ErrNoTypeHandler, "no type handler registered for %s", name)
	}
	return &testHandle{name: name, resolver: r}, nil
}

type testHandle struct {
	name     string
	resolver *testResolver
}

func (h *testHandle) Name() string { return h.name }

func (h *testHandle) BuildAccessors(class *Class, attr *Attribute, mode CreationMode) (Getter, Setter, error) {
	h.resolver.synth.Add(1)
	var get Getter
	var set Setter
	if mode.WantsGet() {
		get = func(inst *Instance) (any, error) {
			v, _ := attr.RawGet(inst)
			return v, nil
		}
	}
	if mode.WantsSet() {
		set = func(inst *Instance, value any) error {
			attr.RawSet(inst, value)
			return nil
		}
	}
	return get, set, nil
}

func newTestRegistry(opts ...Option) (*Registry, *testResolver) {
	resolver := &testResolver{}
	return NewRegistry(resolver, opts...), resolver
}
