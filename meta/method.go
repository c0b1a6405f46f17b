package meta

// Func is a method body bound to an instance receiver. At build time the
// class installs each method's Func into its namespace under the method name.
type Func func(inst *Instance, args ...any) (any, error)

// Caller dispatches a method invocation to its implementation. The default
// caller looks the method up by name in the receiver's class namespace; a
// custom Caller replaces that dispatch entirely.
type Caller func(inst *Instance, args ...any) (any, error)

// MethodSpec declares one method during registration. Func is the method
// body; Caller optionally overrides dispatch. For Private methods no default
// caller is synthesized, but an explicit Caller is accepted unchanged.
type MethodSpec struct {
	Name        string
	Description string
	Label       string
	Visibility  Visibility
	Context     Context
	Func        Func
	Caller      Caller
}

// Method describes one method of a class.
type Method struct {
	Member

	context Context
	fn      Func
	caller  Caller
	built   bool
}

func newMethod(owner string, spec MethodSpec) (*Method, error) {
	m, err := newMember(owner, spec.Name, spec.Description, spec.Label, spec.Visibility)
	if err != nil {
		return nil, err
	}

	ctx := spec.Context
	if ctx == 0 {
		ctx = DefaultContext
	}
	if !ctx.Valid() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"method %s: invalid context %d", spec.Name, ctx)
	}

	meth := &Method{
		Member:  m,
		context: ctx,
		fn:      spec.Func,
		caller:  spec.Caller,
	}
	if meth.caller == nil && m.visibility != VisibilityPrivate {
		meth.caller = defaultMethodCaller(spec.Name)
	}
	return meth, nil
}

// defaultMethodCaller dispatches to the same-named entry in the receiver's
// class namespace, installed at build time.
func defaultMethodCaller(name string) Caller {
	return func(inst *Instance, args ...any) (any, error) {
		if inst == nil || inst.class == nil {
			return nil, Errorf(ErrNotCallable, "method %s: no receiver", name)
		}
		fn, ok := inst.class.methodFunc(name)
		if !ok {
			return nil, memberError(ErrNotCallable, inst.class.name, name,
				"class %s has no callable method %s", inst.class.name, name)
		}
		return fn(inst, args...)
	}
}

// Context reports whether the method applies to the class or to an instance.
func (m *Method) Context() Context { return m.context }

// Call invokes the method on inst through its caller invocable. It fails with
// NotCallable when no caller is available, which is the case for a Private
// method registered without an explicit Caller.
func (m *Method) Call(inst *Instance, args ...any) (any, error) {
	if m.caller == nil {
		return nil, memberError(ErrNotCallable, m.owner, m.name,
			"method %s of class %s has no caller", m.name, m.owner)
	}
	return m.caller(inst, args...)
}
