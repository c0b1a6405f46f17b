package meta

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pointClass registers the canonical two-attribute class used across the
// construction tests: x and y, int, read-write, defaulting to 0.
func pointClass(t *testing.T) (*Builder, *Class) {
	t.Helper()
	reg, _ := newTestRegistry()
	b, err := reg.Register("geometry/Point")
	require.NoError(t, err)

	for _, name := range []string{"x", "y"} {
		_, err := b.AddAttribute(AttributeSpec{Name: name, Type: "int", Default: 0})
		require.NoError(t, err)
	}
	_, err = b.AddConstructor(ConstructorSpec{Name: "new"})
	require.NoError(t, err)
	require.NoError(t, b.Build())
	return b, b.Class()
}

func TestConstructionRoundTrip(t *testing.T) {
	_, point := pointClass(t)

	inst, err := point.New("new", map[string]any{"x": 3})
	require.NoError(t, err)

	x, err := inst.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 3, x)

	y, err := inst.Get("y")
	require.NoError(t, err)
	assert.Equal(t, 0, y)
}

func TestConstructionRejectsUnknownAttributes(t *testing.T) {
	_, point := pointClass(t)

	t.Run("single unknown name", func(t *testing.T) {
		_, err := point.New("new", map[string]any{"x": 3, "z": 9})
		require.Error(t, err)

		var merr *Error
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, ErrNoSuchAttribute, merr.Code)
		assert.Equal(t, []string{"z"}, merr.Names)
	})

	t.Run("every offender is reported", func(t *testing.T) {
		_, err := point.New("new", map[string]any{"x": 3, "z": 9, "q": 1})
		require.Error(t, err)

		var merr *Error
		require.True(t, errors.As(err, &merr))
		assert.Equal(t, []string{"q", "z"}, merr.Names)
	})
}

func TestConstructionIgnoresValuesWithoutWriteAuthorization(t *testing.T) {
	reg, _ := newTestRegistry()
	b, err := reg.Register("app/Account")
	require.NoError(t, err)

	_, err = b.AddAttribute(AttributeSpec{Name: "id", Type: "int", Authorization: AuthRead, Default: 7})
	require.NoError(t, err)
	_, err = b.AddConstructor(ConstructorSpec{Name: "new"})
	require.NoError(t, err)
	require.NoError(t, b.Build())

	// "id" is a known attribute, so no NoSuchAttribute; but without write
	// authorization the supplied value yields to the default.
	inst, err := b.Class().New("new", map[string]any{"id": 5})
	require.NoError(t, err)

	v, err := inst.Get("id")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestConstructionRequiredAttribute(t *testing.T) {
	reg, _ := newTestRegistry()
	b, err := reg.Register("app/Account")
	require.NoError(t, err)

	_, err = b.AddAttribute(AttributeSpec{Name: "owner", Type: "string", Required: true})
	require.NoError(t, err)
	_, err = b.AddConstructor(ConstructorSpec{Name: "new"})
	require.NoError(t, err)
	require.NoError(t, b.Build())

	_, err = b.Class().New("new", nil)
	require.Error(t, err)
	assert.Equal(t, ErrRequiredAttribute, CodeOf(err))

	inst, err := b.Class().New("new", map[string]any{"owner": "ada"})
	require.NoError(t, err)
	v, err := inst.Get("owner")
	require.NoError(t, err)
	assert.Equal(t, "ada", v)
}

func TestConstructionAppliesProducerDefaultPerInstance(t *testing.T) {
	reg, _ := newTestRegistry()
	b, err := reg.Register("app/Job")
	require.NoError(t, err)

	n := 0
	_, err = b.AddAttribute(AttributeSpec{
		Name: "serial",
		Type: "int",
		DefaultFunc: func() any {
			n++
			return n
		},
	})
	require.NoError(t, err)
	_, err = b.AddConstructor(ConstructorSpec{Name: "new"})
	require.NoError(t, err)
	require.NoError(t, b.Build())

	first, err := b.Class().New("new", nil)
	require.NoError(t, err)
	second, err := b.Class().New("new", nil)
	require.NoError(t, err)

	v1, err := first.Get("serial")
	require.NoError(t, err)
	v2, err := second.Get("serial")
	require.NoError(t, err)
	assert.NotEqual(t, v1, v2)
}

func TestBuildIsIdempotent(t *testing.T) {
	reg, resolver := newTestRegistry()
	b, err := reg.Register("geometry/Point")
	require.NoError(t, err)

	_, err = b.AddAttribute(AttributeSpec{Name: "x", Type: "int", Default: 0})
	require.NoError(t, err)
	_, err = b.AddConstructor(ConstructorSpec{Name: "new"})
	require.NoError(t, err)

	require.NoError(t, b.Build())
	synthesized := resolver.synth.Load()

	// A second build never re-synthesizes already-built members.
	require.NoError(t, b.Build())
	assert.Equal(t, synthesized, resolver.synth.Load())
	assert.True(t, b.Class().Built())

	inst, err := b.Class().New("new", map[string]any{"x": 1})
	require.NoError(t, err)
	v, err := inst.Get("x")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestRegistrationAfterBuildIsRejected(t *testing.T) {
	b, _ := pointClass(t)

	_, err := b.AddAttribute(AttributeSpec{Name: "color", Type: "string"})
	assert.Equal(t, ErrClassBuilt, CodeOf(err))
	_, err = b.AddMethod(MethodSpec{Name: "mirror"})
	assert.Equal(t, ErrClassBuilt, CodeOf(err))
	_, err = b.AddConstructor(ConstructorSpec{Name: "origin"})
	assert.Equal(t, ErrClassBuilt, CodeOf(err))
}

func TestBuildPropagatesSynthesisFailure(t *testing.T) {
	reg := NewRegistry(failingResolver{})
	b, err := reg.Register("app/Broken")
	require.NoError(t, err)

	_, err = b.AddAttribute(AttributeSpec{Name: "x", Type: "int"})
	require.NoError(t, err)

	err = b.Build()
	require.Error(t, err)
	assert.EqualError(t, err, "synthesis exploded")
	assert.False(t, b.Class().Built())
}

// failingResolver resolves every type to a handle whose synthesis fails,
// for exercising build-time error propagation.
type failingResolver struct{}

func (failingResolver) Resolve(name string) (TypeHandle, error) {
	return failingHandle{}, nil
}

type failingHandle struct{}

func (failingHandle) Name() string { return "failing" }

func (failingHandle) BuildAccessors(*Class, *Attribute, CreationMode) (Getter, Setter, error) {
	return nil, nil, errors.New("synthesis exploded")
}
