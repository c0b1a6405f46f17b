package meta

// Factory allocates and initializes a new instance of a class. The values map
// carries attribute values keyed by attribute name.
type Factory func(class *Class, values map[string]any) (*Instance, error)

// CtorCaller dispatches a constructor invocation. The default caller looks
// the factory up by name in the owning class's constructor namespace.
type CtorCaller func(values map[string]any) (*Instance, error)

// ConstructorSpec declares one constructor during registration. When Factory
// is nil the standard factory is synthesized at build time: it allocates a
// blank instance and walks every attribute in declaration order, applying the
// supplied value when write authorization permits and the attribute's default
// otherwise. As with methods, no default caller is synthesized for Private
// constructors, but an explicit Caller is accepted unchanged.
type ConstructorSpec struct {
	Name        string
	Description string
	Label       string
	Visibility  Visibility
	Factory     Factory
	Caller      CtorCaller
}

// Constructor describes one constructor of a class.
type Constructor struct {
	Member

	factory Factory
	caller  CtorCaller
	built   bool
}

func newConstructor(c *Class, spec ConstructorSpec) (*Constructor, error) {
	m, err := newMember(c.name, spec.Name, spec.Description, spec.Label, spec.Visibility)
	if err != nil {
		return nil, err
	}

	ctor := &Constructor{
		Member:  m,
		factory: spec.Factory,
		caller:  spec.Caller,
	}
	if ctor.caller == nil && m.visibility != VisibilityPrivate {
		ctor.caller = defaultCtorCaller(c, spec.Name)
	}
	return ctor, nil
}

// defaultCtorCaller dispatches to the same-named factory in the owning
// class's constructor namespace, installed at build time.
func defaultCtorCaller(c *Class, name string) CtorCaller {
	return func(values map[string]any) (*Instance, error) {
		fn, ok := c.constructorFunc(name)
		if !ok {
			return nil, memberError(ErrNotCallable, c.name, name,
				"class %s has no callable constructor %s", c.name, name)
		}
		return fn(c, values)
	}
}

// Call invokes the constructor through its caller invocable. It fails with
// NotCallable when no caller is available.
func (ct *Constructor) Call(values map[string]any) (*Instance, error) {
	if ct.caller == nil {
		return nil, memberError(ErrNotCallable, ct.owner, ct.name,
			"constructor %s of class %s has no caller", ct.name, ct.owner)
	}
	return ct.caller(values)
}
