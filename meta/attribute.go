package meta

// Getter reads an attribute value from an instance. It behaves exactly as
// calling the underlying accessor synthesized by the type handle.
type Getter func(inst *Instance) (any, error)

// Setter validates and writes an attribute value on an instance.
type Setter func(inst *Instance, value any) error

// AttributeSpec declares one attribute during registration.
//
// Zero values mean "unset": Visibility defaults to Public, Authorization to
// ReadWrite, CreationMode to the mode the authorization implies, Context to
// Instance, and Label is derived from Name. Default and DefaultFunc are
// mutually exclusive; DefaultFunc is invoked fresh on every resolution so
// non-idempotent defaults (timestamps, fresh collections) stay correct.
type AttributeSpec struct {
	Name          string
	Type          string
	Description   string
	Label         string
	Visibility    Visibility
	Authorization Authorization
	CreationMode  CreationMode
	Context       Context
	Required      bool
	Default       any
	DefaultFunc   func() any
}

// Attribute describes one attribute of a class. Once the class is built it
// also carries the bound get/set invocables, which are immutable and are the
// only supported path to the attribute's underlying storage.
type Attribute struct {
	Member

	typeName string
	handle   TypeHandle
	auth     Authorization
	creation CreationMode
	context  Context
	required bool

	def     any
	defFunc func() any

	getter Getter
	setter Setter
	built  bool
}

// newAttribute validates an AttributeSpec and produces the descriptor.
// Nothing is recorded on the class here; a failed spec leaves no trace.
func newAttribute(owner string, spec AttributeSpec) (*Attribute, error) {
	m, err := newMember(owner, spec.Name, spec.Description, spec.Label, spec.Visibility)
	if err != nil {
		return nil, err
	}

	if spec.Type == "" {
		return nil, memberError(ErrNoTypeHandler, owner, spec.Name,
			"attribute %s: no type declared", spec.Name)
	}

	auth := spec.Authorization
	if auth == 0 {
		auth = DefaultAuthorization
	}
	if !auth.Valid() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: invalid authorization %d", spec.Name, auth)
	}

	mode := spec.CreationMode
	if mode == 0 {
		mode = CreationModeFor(auth)
	}
	if !mode.Valid() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: invalid creation mode %d", spec.Name, mode)
	}
	// Authorization bounds which accessors may exist; a creation mode asking
	// for more is a contradiction in the spec, not an override.
	if mode.WantsGet() && !auth.CanRead() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: creation mode %s requires read authorization, have %s", spec.Name, mode, auth)
	}
	if mode.WantsSet() && !auth.CanWrite() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: creation mode %s requires write authorization, have %s", spec.Name, mode, auth)
	}

	ctx := spec.Context
	if ctx == 0 {
		ctx = DefaultContext
	}
	if !ctx.Valid() {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: invalid context %d", spec.Name, ctx)
	}

	if spec.Default != nil && spec.DefaultFunc != nil {
		return nil, memberError(ErrInvalidEnumValue, owner, spec.Name,
			"attribute %s: Default and DefaultFunc are mutually exclusive", spec.Name)
	}

	return &Attribute{
		Member:   m,
		typeName: spec.Type,
		auth:     auth,
		creation: mode,
		context:  ctx,
		required: spec.Required,
		def:      spec.Default,
		defFunc:  spec.DefaultFunc,
	}, nil
}

// Type returns the attribute's declared type name.
func (a *Attribute) Type() string { return a.typeName }

// Authorization returns the attribute's accessor authorization.
func (a *Attribute) Authorization() Authorization { return a.auth }

// CreationMode returns which accessors are synthesized at build time.
func (a *Attribute) CreationMode() CreationMode { return a.creation }

// Context reports whether the attribute belongs to the class's shared state
// or to each instance.
func (a *Attribute) Context() Context { return a.context }

// Required reports whether a value must be present after construction.
func (a *Attribute) Required() bool { return a.required }

// HasDefault reports whether the attribute carries a default of either form.
func (a *Attribute) HasDefault() bool { return a.def != nil || a.defFunc != nil }

// Default resolves the attribute's default value. A producer default is
// invoked fresh on every call; a static default is returned unchanged.
func (a *Attribute) Default() any {
	if a.defFunc != nil {
		return a.defFunc()
	}
	return a.def
}

// Get reads the attribute from inst through the bound get invocable. It fails
// with NotReadable when no get invocable exists.
func (a *Attribute) Get(inst *Instance) (any, error) {
	if a.getter == nil {
		return nil, memberError(ErrNotReadable, a.owner, a.name,
			"attribute %s of class %s is not readable", a.name, a.owner)
	}
	return a.getter(inst)
}

// Set writes value to the attribute on inst through the bound set invocable.
// It fails with NotWritable when no set invocable exists.
func (a *Attribute) Set(inst *Instance, value any) error {
	if a.setter == nil {
		return memberError(ErrNotWritable, a.owner, a.name,
			"attribute %s of class %s is not writable", a.name, a.owner)
	}
	return a.setter(inst, value)
}

// RawGet reads the attribute's underlying storage slot. It is the sanctioned
// path for TypeHandle implementations synthesizing accessors; application
// code goes through Get.
func (a *Attribute) RawGet(inst *Instance) (any, bool) {
	return a.storage(inst).Get(a.name)
}

// RawSet writes the attribute's underlying storage slot directly, bypassing
// coercion. See RawGet.
func (a *Attribute) RawSet(inst *Instance, value any) {
	a.storage(inst).Set(a.name, value)
}

// storage selects the slot the attribute's values live in: the class's shared
// state for ContextClass, the instance's store otherwise.
func (a *Attribute) storage(inst *Instance) Store {
	if a.context == ContextClass {
		return inst.class.classState
	}
	return inst.store
}
