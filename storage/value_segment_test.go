package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colgo/model"
)

func TestValueSegmentAppendAndGet(t *testing.T) {
	segment := NewValueSegment[int32]()
	assert.Equal(t, model.ChunkOffset(0), segment.Size())

	values := []int32{3, 1, 4, 1, 5}
	for _, v := range values {
		require.NoError(t, segment.Append(model.Int32Value(v)))
	}
	require.Equal(t, model.ChunkOffset(len(values)), segment.Size())

	for i, want := range values {
		got, err := segment.GetTyped(model.ChunkOffset(i))
		require.NoError(t, err)
		assert.Equal(t, want, got)

		boxed, err := segment.Get(model.ChunkOffset(i))
		require.NoError(t, err)
		assert.Equal(t, model.Int32Value(want), boxed)
	}

	_, err := segment.Get(model.ChunkOffset(len(values)))
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestValueSegmentAppendCoercion(t *testing.T) {
	segment := NewValueSegment[int32]()

	// Lossless narrowing from long is accepted.
	require.NoError(t, segment.Append(model.Int64Value(7)))

	err := segment.Append(model.Int64Value(1 << 40))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)

	err = segment.Append(model.StringValue("7"))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)

	assert.Equal(t, []int32{7}, segment.Values())
}

func TestValueSegmentMemoryUsage(t *testing.T) {
	segment := NewValueSegment[int64]()
	for i := int64(0); i < 8; i++ {
		segment.AppendTyped(i)
	}
	assert.GreaterOrEqual(t, segment.EstimateMemoryUsage(), 8*8)

	strSegment := NewValueSegment[string]()
	strSegment.AppendTyped("Alexander")
	assert.GreaterOrEqual(t, strSegment.EstimateMemoryUsage(), len("Alexander"))
}
