package meta

import "go.uber.org/zap"

// Builder is the registration handle for one class. Builders are issued
// exclusively by Registry.Register; a hand-constructed or otherwise detached
// handle fails every operation with UnauthorizedCaller.
//
// The registration and build phases assume a single owner: concurrent calls
// against the same Builder must be serialized by the caller.
type Builder struct {
	reg   *Registry
	class *Class
}

// Class returns the definition the builder populates.
func (b *Builder) Class() *Class { return b.class }

// guard verifies the handle was issued by a live registry.
func (b *Builder) guard() error {
	if b == nil || b.reg == nil || !b.reg.owns(b.class) {
		return Errorf(ErrUnauthorizedCaller, "builder was not issued by a registry")
	}
	return nil
}

// checkName enforces the merged name space: a name used for any member kind,
// in this class or anywhere along its ancestor chain, cannot be reused.
func (b *Builder) checkName(name string) error {
	c := b.class
	if kind, taken := c.members[name]; taken {
		return memberError(ErrDuplicateMember, c.name, name,
			"class %s already has %s named %s", c.name, kind, name)
	}
	for _, anc := range c.ancestors[1:] {
		ac, ok := b.reg.classes[anc]
		if !ok {
			continue
		}
		if kind, taken := ac.members[name]; taken {
			return memberError(ErrDuplicateMember, c.name, name,
				"class %s inherits %s named %s from %s", c.name, kind, name, anc)
		}
	}
	return nil
}

// AddAttribute validates spec, resolves its type handle, and records the
// attribute descriptor on the class. A failed spec leaves the class
// definition untouched: no descriptor, no ordering list entries.
func (b *Builder) AddAttribute(spec AttributeSpec) (*Attribute, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}

	b.reg.mu.Lock()
	defer b.reg.mu.Unlock()

	c := b.class
	if c.built {
		return nil, Errorf(ErrClassBuilt, "class %s is already built", c.name)
	}
	if err := b.checkName(spec.Name); err != nil {
		return nil, err
	}

	attr, err := newAttribute(c.name, spec)
	if err != nil {
		return nil, err
	}

	if b.reg.resolver == nil {
		return nil, memberError(ErrNoTypeHandler, c.name, spec.Name,
			"registry has no type resolver")
	}
	handle, err := b.reg.resolver.Resolve(attr.typeName)
	if err != nil {
		return nil, err
	}
	attr.handle = handle

	c.attrs[attr.name] = attr
	c.recordMember(KindAttribute, attr.name, attr.visibility)

	b.reg.log.Debug("added attribute",
		zap.String("class", c.name),
		zap.String("attribute", attr.name),
		zap.String("type", attr.typeName),
		zap.String("visibility", attr.visibility.String()))

	return attr, nil
}

// AddMethod validates spec and records the method descriptor on the class.
func (b *Builder) AddMethod(spec MethodSpec) (*Method, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}

	b.reg.mu.Lock()
	defer b.reg.mu.Unlock()

	c := b.class
	if c.built {
		return nil, Errorf(ErrClassBuilt, "class %s is already built", c.name)
	}
	if err := b.checkName(spec.Name); err != nil {
		return nil, err
	}

	meth, err := newMethod(c.name, spec)
	if err != nil {
		return nil, err
	}

	c.methods[meth.name] = meth
	c.recordMember(KindMethod, meth.name, meth.visibility)

	b.reg.log.Debug("added method",
		zap.String("class", c.name),
		zap.String("method", meth.name),
		zap.String("visibility", meth.visibility.String()))

	return meth, nil
}

// AddConstructor validates spec and records the constructor descriptor on
// the class.
func (b *Builder) AddConstructor(spec ConstructorSpec) (*Constructor, error) {
	if err := b.guard(); err != nil {
		return nil, err
	}

	b.reg.mu.Lock()
	defer b.reg.mu.Unlock()

	c := b.class
	if c.built {
		return nil, Errorf(ErrClassBuilt, "class %s is already built", c.name)
	}
	if err := b.checkName(spec.Name); err != nil {
		return nil, err
	}

	ctor, err := newConstructor(c, spec)
	if err != nil {
		return nil, err
	}

	c.ctors[ctor.name] = ctor
	c.recordMember(KindConstructor, ctor.name, ctor.visibility)

	b.reg.log.Debug("added constructor",
		zap.String("class", c.name),
		zap.String("constructor", ctor.name),
		zap.String("visibility", ctor.visibility.String()))

	return ctor, nil
}

// Build finalizes the class: it installs every constructor's factory into the
// class namespace (synthesizing the standard factory where none was
// supplied), installs method bodies, and asks each attribute's type handle
// for the accessors its creation mode requires.
//
// Build is idempotent. Members carry a built flag, so calling Build again
// never re-synthesizes an accessor or factory; descriptors added after a
// build are rejected by the Add methods, not here.
func (b *Builder) Build() error {
	if err := b.guard(); err != nil {
		return err
	}

	b.reg.mu.Lock()
	defer b.reg.mu.Unlock()

	c := b.class
	for _, ref := range c.order {
		switch ref.Kind {
		case KindConstructor:
			ctor := c.ctors[ref.Name]
			if ctor.built {
				continue
			}
			fn := ctor.factory
			if fn == nil {
				fn = standardFactory(c)
				ctor.factory = fn
			}
			c.ctorFns[ctor.name] = fn
			ctor.built = true

		case KindMethod:
			meth := c.methods[ref.Name]
			if meth.built {
				continue
			}
			if meth.fn != nil {
				c.methodFns[meth.name] = meth.fn
			}
			meth.built = true

		case KindAttribute:
			attr := c.attrs[ref.Name]
			if attr.built {
				continue
			}
			if attr.creation != CreateNone {
				get, set, err := attr.handle.BuildAccessors(c, attr, attr.creation)
				if err != nil {
					// Synthesis failures propagate unchanged.
					return err
				}
				attr.getter = get
				attr.setter = set
			}
			// Shared state gets its default exactly once, at build time.
			if attr.context == ContextClass && attr.HasDefault() {
				if _, set := c.classState.Get(attr.name); !set {
					c.classState.Set(attr.name, attr.Default())
				}
			}
			attr.built = true
		}
	}

	c.built = true
	b.reg.log.Debug("built class",
		zap.String("class", c.name),
		zap.Int("members", len(c.order)))
	return nil
}

// standardFactory synthesizes the default constructor behavior for a class:
// allocate a blank instance, then walk every instance-context attribute in
// declaration order, applying the caller-supplied value when write
// authorization permits and the attribute's default otherwise. Unknown names
// in the supplied values fail with NoSuchAttribute, reporting every offender
// at once.
func standardFactory(c *Class) Factory {
	return func(class *Class, values map[string]any) (*Instance, error) {
		if class == nil {
			class = c
		}

		var unknown []string
		for name := range values {
			if _, ok := class.attrs[name]; !ok {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			return nil, noSuchAttributes(class.name, unknown)
		}

		inst := &Instance{class: class, store: class.storeFactory()}
		for _, ref := range class.order {
			if ref.Kind != KindAttribute {
				continue
			}
			attr := class.attrs[ref.Name]
			if attr.context == ContextClass {
				// Shared state is initialized at build time, not per instance.
				continue
			}

			value, supplied := values[ref.Name]
			if supplied && attr.auth.CanWrite() {
				if attr.setter != nil {
					if err := attr.setter(inst, value); err != nil {
						return nil, err
					}
				} else {
					attr.RawSet(inst, value)
				}
				continue
			}

			if attr.HasDefault() {
				attr.RawSet(inst, attr.Default())
				continue
			}
			if attr.required {
				return nil, memberError(ErrRequiredAttribute, class.name, attr.name,
					"attribute %s of class %s is required and has no default", attr.name, class.name)
			}
		}
		return inst, nil
	}
}
