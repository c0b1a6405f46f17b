package types

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// builtins returns the stock type table.
func builtins() map[string]Coercer {
	return map[string]Coercer{
		"string":    ctyCoercer(cty.String, fromString),
		"int":       ctyCoercer(cty.Number, fromInt),
		"float":     ctyCoercer(cty.Number, fromFloat),
		"bool":      ctyCoercer(cty.Bool, fromBool),
		"timestamp": coerceTimestamp,
		"duration":  coerceDuration,
		"uuid":      coerceUUID,
		"any":       coerceAny,
	}
}

// ctyCoercer builds a Coercer that lifts the raw value into cty, converts it
// to the wanted cty type, and lowers the result back to a Go value. The
// conversion rules (string "42" to a number, a number to its string form,
// "true" to a bool) are cty's, which keeps coercion behavior consistent and
// well-specified.
func ctyCoercer(want cty.Type, lower func(cty.Value) (any, error)) Coercer {
	return func(value any) (any, error) {
		implied, err := gocty.ImpliedType(value)
		if err != nil {
			return nil, fmt.Errorf("unsupported value of type %T: %w", value, err)
		}
		raw, err := gocty.ToCtyValue(value, implied)
		if err != nil {
			return nil, fmt.Errorf("cannot lift %T: %w", value, err)
		}
		converted, err := convert.Convert(raw, want)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to %s: %w", value, want.FriendlyName(), err)
		}
		return lower(converted)
	}
}

func fromString(v cty.Value) (any, error) {
	return v.AsString(), nil
}

func fromInt(v cty.Value) (any, error) {
	var n int64
	if err := gocty.FromCtyValue(v, &n); err != nil {
		return nil, fmt.Errorf("not an integer: %w", err)
	}
	return n, nil
}

func fromFloat(v cty.Value) (any, error) {
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return nil, fmt.Errorf("not a float: %w", err)
	}
	return f, nil
}

func fromBool(v cty.Value) (any, error) {
	return v.True(), nil
}

// coerceTimestamp accepts time.Time values and RFC 3339 strings.
func coerceTimestamp(value any) (any, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return nil, fmt.Errorf("nil *time.Time")
		}
		return *v, nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return nil, fmt.Errorf("not an RFC 3339 timestamp: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to timestamp", value)
	}
}

// coerceDuration accepts time.Duration values and time.ParseDuration strings.
func coerceDuration(value any) (any, error) {
	switch v := value.(type) {
	case time.Duration:
		return v, nil
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("not a duration: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to duration", value)
	}
}

// coerceUUID accepts uuid.UUID values, their string forms, and raw 16-byte
// representations. The canonical form is uuid.UUID.
func coerceUUID(value any) (any, error) {
	switch v := value.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("not a uuid: %w", err)
		}
		return id, nil
	case [16]byte:
		return uuid.UUID(v), nil
	case []byte:
		id, err := uuid.FromBytes(v)
		if err != nil {
			return nil, fmt.Errorf("not a uuid: %w", err)
		}
		return id, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to uuid", value)
	}
}

func coerceAny(value any) (any, error) {
	return value, nil
}
