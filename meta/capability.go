package meta

// Visibility controls which introspection lists a member appears in.
// It is ordered: Private < Protected < Public. Visibility is structural,
// not a capability check; any holder of a descriptor may invoke it.
type Visibility int

const (
	VisibilityPrivate Visibility = iota + 1
	VisibilityProtected
	VisibilityPublic
)

// DefaultVisibility is applied when a spec leaves Visibility unset.
const DefaultVisibility = VisibilityPublic

// String returns the string representation of the visibility
func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityProtected:
		return "protected"
	case VisibilityPublic:
		return "public"
	default:
		return "unknown"
	}
}

// ParseVisibility converts a string to a Visibility
func ParseVisibility(s string) (Visibility, error) {
	switch s {
	case "private":
		return VisibilityPrivate, nil
	case "protected":
		return VisibilityProtected, nil
	case "public":
		return VisibilityPublic, nil
	default:
		return 0, Errorf(ErrInvalidEnumValue, "unknown visibility: %s", s)
	}
}

// Valid reports whether v is one of the declared visibility values.
func (v Visibility) Valid() bool {
	return v >= VisibilityPrivate && v <= VisibilityPublic
}

// Authorization governs which accessor invocables may exist for an
// attribute. ReadWrite implies both Read and Write; test the implication
// with CanRead and CanWrite, never by comparing values.
type Authorization int

const (
	AuthNone Authorization = iota + 1
	AuthRead
	AuthWrite
	AuthReadWrite
)

// DefaultAuthorization is applied when a spec leaves Authorization unset.
const DefaultAuthorization = AuthReadWrite

// String returns the string representation of the authorization
func (a Authorization) String() string {
	switch a {
	case AuthNone:
		return "none"
	case AuthRead:
		return "read"
	case AuthWrite:
		return "write"
	case AuthReadWrite:
		return "read_write"
	default:
		return "unknown"
	}
}

// ParseAuthorization converts a string to an Authorization
func ParseAuthorization(s string) (Authorization, error) {
	switch s {
	case "none":
		return AuthNone, nil
	case "read":
		return AuthRead, nil
	case "write":
		return AuthWrite, nil
	case "read_write":
		return AuthReadWrite, nil
	default:
		return 0, Errorf(ErrInvalidEnumValue, "unknown authorization: %s", s)
	}
}

// Valid reports whether a is one of the declared authorization values.
func (a Authorization) Valid() bool {
	return a >= AuthNone && a <= AuthReadWrite
}

// CanRead reports whether the authorization permits a get accessor.
func (a Authorization) CanRead() bool {
	return a == AuthRead || a == AuthReadWrite
}

// CanWrite reports whether the authorization permits a set accessor.
func (a Authorization) CanWrite() bool {
	return a == AuthWrite || a == AuthReadWrite
}

// CreationMode governs which accessors are actually synthesized at build
// time, independently of Authorization. An attribute with CreateNone relies
// on accessor logic supplied outside the metaobject layer.
type CreationMode int

const (
	CreateNone CreationMode = iota + 1
	CreateGet
	CreateSet
	CreateGetSet
)

// String returns the string representation of the creation mode
func (c CreationMode) String() string {
	switch c {
	case CreateNone:
		return "none"
	case CreateGet:
		return "get"
	case CreateSet:
		return "set"
	case CreateGetSet:
		return "get_set"
	default:
		return "unknown"
	}
}

// ParseCreationMode converts a string to a CreationMode
func ParseCreationMode(s string) (CreationMode, error) {
	switch s {
	case "none":
		return CreateNone, nil
	case "get":
		return CreateGet, nil
	case "set":
		return CreateSet, nil
	case "get_set":
		return CreateGetSet, nil
	default:
		return 0, Errorf(ErrInvalidEnumValue, "unknown creation mode: %s", s)
	}
}

// Valid reports whether c is one of the declared creation modes.
func (c CreationMode) Valid() bool {
	return c >= CreateNone && c <= CreateGetSet
}

// WantsGet reports whether the mode asks for a synthesized get accessor.
func (c CreationMode) WantsGet() bool {
	return c == CreateGet || c == CreateGetSet
}

// WantsSet reports whether the mode asks for a synthesized set accessor.
func (c CreationMode) WantsSet() bool {
	return c == CreateSet || c == CreateGetSet
}

// CreationModeFor returns the creation mode an authorization implies.
// It is the default applied when a spec leaves CreationMode unset.
func CreationModeFor(a Authorization) CreationMode {
	switch a {
	case AuthRead:
		return CreateGet
	case AuthWrite:
		return CreateSet
	case AuthReadWrite:
		return CreateGetSet
	default:
		return CreateNone
	}
}

// Context marks whether a member applies to the entity's shared state or to
// each instance.
type Context int

const (
	ContextClass Context = iota + 1
	ContextInstance
)

// DefaultContext is applied when a spec leaves Context unset.
const DefaultContext = ContextInstance

// String returns the string representation of the context
func (c Context) String() string {
	switch c {
	case ContextClass:
		return "class"
	case ContextInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// ParseContext converts a string to a Context
func ParseContext(s string) (Context, error) {
	switch s {
	case "class":
		return ContextClass, nil
	case "instance":
		return ContextInstance, nil
	default:
		return 0, Errorf(ErrInvalidEnumValue, "unknown context: %s", s)
	}
}

// Valid reports whether c is one of the declared context values.
func (c Context) Valid() bool {
	return c == ContextClass || c == ContextInstance
}
