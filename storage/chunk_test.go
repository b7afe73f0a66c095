package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colgo/model"
)

func TestChunkAppend(t *testing.T) {
	chunk := NewChunk()
	chunk.AddSegment(NewValueSegment[int32]())
	chunk.AddSegment(NewValueSegment[string]())

	require.Equal(t, model.ColumnCount(2), chunk.ColumnCount())
	require.Equal(t, model.ChunkOffset(0), chunk.Size())

	require.NoError(t, chunk.Append(model.MustRow(4, "Hello,")))
	require.NoError(t, chunk.Append(model.MustRow(6, "world")))
	assert.Equal(t, model.ChunkOffset(2), chunk.Size())

	err := chunk.Append(model.MustRow(4))
	assert.ErrorIs(t, err, ErrColumnCountMismatch)

	err = chunk.Append(model.MustRow("oops", "!"))
	assert.ErrorIs(t, err, model.ErrTypeMismatch)
}

func TestChunkGetSegment(t *testing.T) {
	chunk := NewChunk()
	chunk.AddSegment(NewValueSegment[int32]())

	segment, err := chunk.GetSegment(0)
	require.NoError(t, err)
	assert.IsType(t, &ValueSegment[int32]{}, segment)

	_, err = chunk.GetSegment(1)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestChunkMemoryUsage(t *testing.T) {
	chunk := NewChunk()
	chunk.AddSegment(NewValueSegment[int64]())
	require.NoError(t, chunk.Append(model.MustRow(int64(1))))

	assert.GreaterOrEqual(t, chunk.EstimateMemoryUsage(), 8)
}
