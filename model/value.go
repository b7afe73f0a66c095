package model

import (
	"fmt"
	"math"
)

// Value is the engine's dynamic value carrier: a tagged union over the
// primitive type set. It remembers the type it was constructed with;
// accessors coerce following standard widening (int to long, float to
// double). Narrowing succeeds only when the value round-trips exactly.
// Strings never coerce to numerics and vice versa.
type Value struct {
	dt DataType
	n  int64
	f  float64
	s  string
}

// Int32Value wraps a 32-bit integer.
func Int32Value(v int32) Value { return Value{dt: Int, n: int64(v)} }

// Int64Value wraps a 64-bit integer.
func Int64Value(v int64) Value { return Value{dt: Long, n: v} }

// Float32Value wraps a 32-bit float.
func Float32Value(v float32) Value { return Value{dt: Float, f: float64(v)} }

// Float64Value wraps a 64-bit float.
func Float64Value(v float64) Value { return Value{dt: Double, f: v} }

// StringValue wraps a string.
func StringValue(v string) Value { return Value{dt: String, s: v} }

// NewValue wraps a native Go value. Untyped int literals map to "int" when
// they fit, "long" otherwise.
func NewValue(v any) (Value, error) {
	switch x := v.(type) {
	case int32:
		return Int32Value(x), nil
	case int64:
		return Int64Value(x), nil
	case int:
		if x >= math.MinInt32 && x <= math.MaxInt32 {
			return Int32Value(int32(x)), nil
		}
		return Int64Value(int64(x)), nil
	case float32:
		return Float32Value(x), nil
	case float64:
		return Float64Value(x), nil
	case string:
		return StringValue(x), nil
	case Value:
		return x, nil
	default:
		return Value{}, fmt.Errorf("%w: unsupported value of type %T", ErrTypeMismatch, v)
	}
}

// MustValue is like NewValue but panics on unsupported input. Intended for
// literals in tests and examples.
func MustValue(v any) Value {
	val, err := NewValue(v)
	if err != nil {
		panic(err)
	}
	return val
}

// DataType returns the type the value was constructed with.
func (v Value) DataType() DataType { return v.dt }

// AsInt32 coerces the value to int32.
func (v Value) AsInt32() (int32, error) {
	switch v.dt {
	case Int:
		return int32(v.n), nil
	case Long:
		if v.n < math.MinInt32 || v.n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: long %d does not fit into int", ErrTypeMismatch, v.n)
		}
		return int32(v.n), nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %s to int", ErrTypeMismatch, v.dt)
	}
}

// AsInt64 coerces the value to int64.
func (v Value) AsInt64() (int64, error) {
	switch v.dt {
	case Int, Long:
		return v.n, nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %s to long", ErrTypeMismatch, v.dt)
	}
}

// AsFloat32 coerces the value to float32.
func (v Value) AsFloat32() (float32, error) {
	switch v.dt {
	case Float:
		return float32(v.f), nil
	case Double:
		if f := float32(v.f); float64(f) == v.f || math.IsNaN(v.f) {
			return float32(v.f), nil
		}
		return 0, fmt.Errorf("%w: double %v does not fit into float", ErrTypeMismatch, v.f)
	default:
		return 0, fmt.Errorf("%w: cannot coerce %s to float", ErrTypeMismatch, v.dt)
	}
}

// AsFloat64 coerces the value to float64.
func (v Value) AsFloat64() (float64, error) {
	switch v.dt {
	case Float, Double:
		return v.f, nil
	default:
		return 0, fmt.Errorf("%w: cannot coerce %s to double", ErrTypeMismatch, v.dt)
	}
}

// AsString returns the string payload. Numerics do not coerce to strings.
func (v Value) AsString() (string, error) {
	if v.dt != String {
		return "", fmt.Errorf("%w: cannot coerce %s to string", ErrTypeMismatch, v.dt)
	}
	return v.s, nil
}

// String returns a display representation of the payload.
func (v Value) String() string {
	switch v.dt {
	case Int, Long:
		return fmt.Sprintf("%d", v.n)
	case Float, Double:
		return fmt.Sprintf("%v", v.f)
	default:
		return v.s
	}
}

// ValueAs coerces a Value to the requested primitive type. It is the typed
// counterpart of the AsXxx accessors, usable from generic code.
func ValueAs[T Primitive](v Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int32:
		x, err := v.AsInt32()
		return any(x).(T), err
	case int64:
		x, err := v.AsInt64()
		return any(x).(T), err
	case float32:
		x, err := v.AsFloat32()
		return any(x).(T), err
	case float64:
		x, err := v.AsFloat64()
		return any(x).(T), err
	default:
		x, err := v.AsString()
		return any(x).(T), err
	}
}

// ValueOf wraps a primitive into a Value without reflection.
func ValueOf[T Primitive](v T) Value {
	switch x := any(v).(type) {
	case int32:
		return Int32Value(x)
	case int64:
		return Int64Value(x)
	case float32:
		return Float32Value(x)
	case float64:
		return Float64Value(x)
	default:
		return StringValue(any(v).(string))
	}
}

// DataTypeOf returns the data type tag for a primitive type.
func DataTypeOf[T Primitive]() DataType {
	var zero T
	switch any(zero).(type) {
	case int32:
		return Int
	case int64:
		return Long
	case float32:
		return Float
	case float64:
		return Double
	default:
		return String
	}
}

// Row builds a row of values from native Go values, see NewValue.
func Row(values ...any) ([]Value, error) {
	row := make([]Value, len(values))
	for i, v := range values {
		val, err := NewValue(v)
		if err != nil {
			return nil, err
		}
		row[i] = val
	}
	return row, nil
}

// MustRow is like Row but panics on unsupported input.
func MustRow(values ...any) []Value {
	row, err := Row(values...)
	if err != nil {
		panic(err)
	}
	return row
}
