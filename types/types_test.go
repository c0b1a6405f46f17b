package types

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metakit-lang/metakit/meta"
)

func TestDefaultResolverKnowsBuiltins(t *testing.T) {
	r := Default()
	for _, name := range []string{"string", "int", "float", "bool", "timestamp", "duration", "uuid", "any"} {
		h, err := r.Resolve(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, h.Name())
	}

	_, err := r.Resolve("quaternion")
	require.Error(t, err)
	assert.Equal(t, meta.ErrNoTypeHandler, meta.CodeOf(err))
}

func TestRegisterConflicts(t *testing.T) {
	r := Default()

	_, err := r.Register("string", coerceAny)
	require.Error(t, err)

	_, err = r.Register("", coerceAny)
	require.Error(t, err)

	_, err = r.Register("money", func(v any) (any, error) { return v, nil })
	require.NoError(t, err)
	_, err = r.Resolve("money")
	assert.NoError(t, err)
}

func TestScalarCoercion(t *testing.T) {
	tests := []struct {
		typeName string
		in       any
		want     any
		wantErr  bool
	}{
		{"int", 42, int64(42), false},
		{"int", "42", int64(42), false},
		{"int", 3.5, nil, true},
		{"int", "abc", nil, true},
		{"float", 3, float64(3), false},
		{"float", "2.5", float64(2.5), false},
		{"bool", true, true, false},
		{"bool", "true", true, false},
		{"bool", "yes", nil, true},
		{"string", "hi", "hi", false},
		{"string", 42, "42", false},
	}

	table := builtins()
	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			got, err := table[tt.typeName](tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUUIDCoercion(t *testing.T) {
	id := uuid.New()

	got, err := coerceUUID(id)
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = coerceUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, got)

	got, err = coerceUUID([16]byte(id))
	require.NoError(t, err)
	assert.Equal(t, id, got)

	_, err = coerceUUID("not-a-uuid")
	require.Error(t, err)
	_, err = coerceUUID(42)
	require.Error(t, err)
}

func TestTimeCoercion(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)

	got, err := coerceTimestamp(now)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	got, err = coerceTimestamp(now.Format(time.RFC3339))
	require.NoError(t, err)
	assert.Equal(t, now, got)

	_, err = coerceTimestamp("yesterday")
	require.Error(t, err)

	d, err := coerceDuration("1h30m")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	_, err = coerceDuration(1.5)
	require.Error(t, err)
}

// TestTypedClassEndToEnd wires the default resolver into a registry and
// exercises coercion through the synthesized accessors.
func TestTypedClassEndToEnd(t *testing.T) {
	reg := meta.NewRegistry(Default())
	b, err := reg.Register("geometry/Point")
	require.NoError(t, err)

	_, err = b.AddAttribute(meta.AttributeSpec{Name: "x", Type: "int", Default: int64(0)})
	require.NoError(t, err)
	_, err = b.AddAttribute(meta.AttributeSpec{Name: "y", Type: "int", Default: int64(0)})
	require.NoError(t, err)
	_, err = b.AddAttribute(meta.AttributeSpec{Name: "label", Type: "string", Required: true, Default: "origin"})
	require.NoError(t, err)
	_, err = b.AddConstructor(meta.ConstructorSpec{Name: "new"})
	require.NoError(t, err)
	require.NoError(t, b.Build())

	point := b.Class()

	t.Run("values are coerced on the way in", func(t *testing.T) {
		inst, err := point.New("new", map[string]any{"x": "3"})
		require.NoError(t, err)

		x, err := inst.Get("x")
		require.NoError(t, err)
		assert.Equal(t, int64(3), x)

		y, err := inst.Get("y")
		require.NoError(t, err)
		assert.Equal(t, int64(0), y)
	})

	t.Run("uncoercible values fail the set accessor", func(t *testing.T) {
		inst, err := point.New("new", nil)
		require.NoError(t, err)

		err = inst.Set("x", "three")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x")
	})

	t.Run("required attribute rejects nil", func(t *testing.T) {
		inst, err := point.New("new", nil)
		require.NoError(t, err)

		err = inst.Set("label", nil)
		require.Error(t, err)
		assert.Equal(t, meta.ErrRequiredAttribute, meta.CodeOf(err))

		// Optional attributes accept nil.
		require.NoError(t, inst.Set("x", nil))
	})
}
