package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueCoercion(t *testing.T) {
	t.Run("Widening", func(t *testing.T) {
		long, err := Int32Value(42).AsInt64()
		require.NoError(t, err)
		assert.Equal(t, int64(42), long)

		double, err := Float32Value(1.5).AsFloat64()
		require.NoError(t, err)
		assert.Equal(t, 1.5, double)
	})

	t.Run("LosslessNarrowing", func(t *testing.T) {
		i, err := Int64Value(7).AsInt32()
		require.NoError(t, err)
		assert.Equal(t, int32(7), i)

		f, err := Float64Value(0.25).AsFloat32()
		require.NoError(t, err)
		assert.Equal(t, float32(0.25), f)
	})

	t.Run("LossyNarrowing", func(t *testing.T) {
		_, err := Int64Value(1 << 40).AsInt32()
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Float64Value(0.1).AsFloat32()
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("StringsNeverCoerce", func(t *testing.T) {
		_, err := StringValue("42").AsInt32()
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Int32Value(42).AsString()
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = StringValue("1.5").AsFloat64()
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("IntFloatNeverCoerce", func(t *testing.T) {
		_, err := Int32Value(1).AsFloat64()
		assert.ErrorIs(t, err, ErrTypeMismatch)

		_, err = Float64Value(1.0).AsInt64()
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  DataType
	}{
		{name: "int32", input: int32(1), want: Int},
		{name: "int64", input: int64(1), want: Long},
		{name: "small int", input: 1, want: Int},
		{name: "large int", input: 1 << 40, want: Long},
		{name: "float32", input: float32(1.5), want: Float},
		{name: "float64", input: 1.5, want: Double},
		{name: "string", input: "a", want: String},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := NewValue(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.DataType())
		})
	}

	_, err := NewValue([]byte("nope"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValueAs(t *testing.T) {
	s, err := ValueAs[string](StringValue("Hasso"))
	require.NoError(t, err)
	assert.Equal(t, "Hasso", s)

	i, err := ValueAs[int32](Int32Value(4))
	require.NoError(t, err)
	assert.Equal(t, int32(4), i)

	_, err = ValueAs[int32](StringValue("4"))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestValueOfRoundTrip(t *testing.T) {
	assert.Equal(t, Int32Value(4), ValueOf(int32(4)))
	assert.Equal(t, Int64Value(4), ValueOf(int64(4)))
	assert.Equal(t, Float32Value(4), ValueOf(float32(4)))
	assert.Equal(t, Float64Value(4), ValueOf(float64(4)))
	assert.Equal(t, StringValue("4"), ValueOf("4"))
}

func TestRow(t *testing.T) {
	row, err := Row(4, "Hello,")
	require.NoError(t, err)
	require.Len(t, row, 2)
	assert.Equal(t, Int32Value(4), row[0])
	assert.Equal(t, StringValue("Hello,"), row[1])

	_, err = Row(4, struct{}{})
	assert.ErrorIs(t, err, ErrTypeMismatch)
}
