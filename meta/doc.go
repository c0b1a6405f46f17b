// Package meta is a metaobject facility: it lets a class author declaratively
// register attributes, methods, and constructors for a bare data-holding
// entity, synthesizes the accessor and constructor behavior for that entity,
// and exposes a uniform introspection API over the result. Consumers range
// from generic serializers to UI generators that must enumerate a class's
// public surface without compile-time knowledge of it.
//
// # Overview
//
// A class author obtains a Builder from a Registry, registers members, and
// finalizes with Build:
//
//	reg := meta.NewRegistry(types.Default())
//	b, err := reg.Register("geometry/Point")
//	if err != nil {
//		// ...
//	}
//	b.AddAttribute(meta.AttributeSpec{Name: "x", Type: "int", Default: 0})
//	b.AddAttribute(meta.AttributeSpec{Name: "y", Type: "int", Default: 0})
//	b.AddConstructor(meta.ConstructorSpec{Name: "new"})
//	if err := b.Build(); err != nil {
//		// ...
//	}
//
// Consumers retrieve the class definition and introspect or call descriptors:
//
//	point, _ := reg.Lookup("geometry/Point")
//	inst, _ := point.New("new", map[string]any{"x": 3})
//	x, _ := inst.Get("x") // 3
//	y, _ := inst.Get("y") // 0, the default
//
// # Visibility and authorization
//
// The two axes are independent. Visibility (Private/Protected/Public) decides
// which introspection lists a member appears in: Attributes() serves the
// public list, ProtectedAttributes() the protected+public list, and private
// members appear in neither but remain reachable through Attribute(name).
// Visibility never gates invocation; any holder of a descriptor may call it.
//
// Authorization (None/Read/Write/ReadWrite) is the only axis deciding whether
// an attribute's get and set invocables may exist. CreationMode independently
// selects which of the permitted accessors are actually synthesized at build
// time, so an attribute can be readable through generated code while writable
// only through custom logic the author supplies elsewhere.
//
// # Lifecycle and concurrency
//
// Each entity is registered exactly once; the registry rejects a second
// Register call for the same identity. Descriptors are append-only during the
// registration phase, accessors are synthesized exactly once during Build,
// and afterwards the class definition is read-only. A single owner drives
// registration and build; once built, a class and its descriptors may be read
// concurrently without locking. Per-instance state mutated through accessors
// is not synchronized by this layer.
//
// Attribute accessor synthesis is delegated to a TypeResolver; the types
// package provides the default implementation.
package meta
