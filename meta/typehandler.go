package meta

// TypeResolver maps a declared attribute type name to the handle supplying
// that type's coercion and accessor-generation strategy. The types package
// ships the default implementation; embedders may substitute their own.
type TypeResolver interface {
	Resolve(typeName string) (TypeHandle, error)
}

// TypeHandle supplies validation, coercion, and accessor synthesis for one
// declared type.
//
// BuildAccessors returns exactly the invocables the creation mode implies:
// a getter when the mode wants one, a setter when the mode wants one, never
// both absent for a mode other than CreateNone. The returned closures bind
// the attribute's storage slot; implementations use Attribute.RawGet and
// Attribute.RawSet to reach it.
type TypeHandle interface {
	Name() string
	BuildAccessors(class *Class, attr *Attribute, mode CreationMode) (Getter, Setter, error)
}
