package storage

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colgo/model"
)

func newTestTable(t *testing.T) *Table {
	t.Helper()

	table := NewTable(2)
	require.NoError(t, table.AddColumn("col_1", model.Int))
	require.NoError(t, table.AddColumn("col_2", model.String))
	return table
}

func TestTableChunking(t *testing.T) {
	table := newTestTable(t)
	assert.Equal(t, model.ChunkCount(1), table.ChunkCount())

	require.NoError(t, table.Append(model.MustRow(4, "Hello,")))
	require.NoError(t, table.Append(model.MustRow(6, "world")))
	require.NoError(t, table.Append(model.MustRow(3, "!")))

	assert.Equal(t, model.ChunkCount(2), table.ChunkCount())
	assert.Equal(t, uint64(3), table.RowCount())

	first, err := table.GetChunk(0)
	require.NoError(t, err)
	assert.Equal(t, model.ChunkOffset(2), first.Size())

	second, err := table.GetChunk(1)
	require.NoError(t, err)
	assert.Equal(t, model.ChunkOffset(1), second.Size())

	// Every non-last chunk is full.
	for chunkID := model.ChunkID(0); chunkID < model.ChunkID(table.ChunkCount())-1; chunkID++ {
		chunk, err := table.GetChunk(chunkID)
		require.NoError(t, err)
		assert.Equal(t, table.TargetChunkSize(), chunk.Size())
	}

	_, err = table.GetChunk(42)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestTableSchemaFrozen(t *testing.T) {
	table := newTestTable(t)
	require.NoError(t, table.Append(model.MustRow(4, "Hello,")))

	err := table.AddColumn("col_3", model.Double)
	assert.ErrorIs(t, err, ErrSchemaFrozen)
}

func TestTableColumns(t *testing.T) {
	table := newTestTable(t)

	assert.Equal(t, model.ColumnCount(2), table.ColumnCount())
	assert.Equal(t, []string{"col_1", "col_2"}, table.ColumnNames())

	name, err := table.ColumnName(0)
	require.NoError(t, err)
	assert.Equal(t, "col_1", name)

	dt, err := table.ColumnType(1)
	require.NoError(t, err)
	assert.Equal(t, model.String, dt)

	_, err = table.ColumnName(2)
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = table.ColumnType(2)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	columnID, err := table.ColumnIDByName("col_2")
	require.NoError(t, err)
	assert.Equal(t, model.ColumnID(1), columnID)

	_, err = table.ColumnIDByName("no_column_name")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestTableCopyColumnDefinition(t *testing.T) {
	source := newTestTable(t)

	target := NewTable(2)
	require.NoError(t, target.CopyColumnDefinition(source, 1))

	assert.Equal(t, []string{"col_2"}, target.ColumnNames())
	dt, err := target.ColumnType(0)
	require.NoError(t, err)
	assert.Equal(t, model.String, dt)

	assert.ErrorIs(t, target.CopyColumnDefinition(source, 5), ErrOutOfBounds)
}

func TestTableIsEmpty(t *testing.T) {
	table := NewTable(2)
	assert.True(t, table.IsEmpty())

	require.NoError(t, table.AddColumn("col_1", model.Int))
	assert.False(t, table.IsEmpty())
}

func TestTableTargetChunkSizeDefault(t *testing.T) {
	assert.Equal(t, DefaultTargetChunkSize, NewTable(0).TargetChunkSize())
	assert.Equal(t, model.ChunkOffset(2), NewTable(2).TargetChunkSize())
}

func TestTableEmplaceChunk(t *testing.T) {
	t.Run("ReplacesInitialChunk", func(t *testing.T) {
		table := newTestTable(t)

		chunk := NewChunk()
		chunk.AddSegment(NewValueSegment[int32]())
		chunk.AddSegment(NewValueSegment[string]())
		require.NoError(t, chunk.Append(model.MustRow(1, "a")))

		require.NoError(t, table.EmplaceChunk(chunk))
		assert.Equal(t, model.ChunkCount(1), table.ChunkCount())
		assert.Equal(t, uint64(1), table.RowCount())
	})

	t.Run("AppendsAfterFullChunk", func(t *testing.T) {
		table := newTestTable(t)
		require.NoError(t, table.Append(model.MustRow(4, "Hello,")))
		require.NoError(t, table.Append(model.MustRow(6, "world")))

		chunk := NewChunk()
		chunk.AddSegment(NewValueSegment[int32]())
		chunk.AddSegment(NewValueSegment[string]())

		require.NoError(t, table.EmplaceChunk(chunk))
		assert.Equal(t, model.ChunkCount(2), table.ChunkCount())
	})

	t.Run("RejectsPartialLastChunk", func(t *testing.T) {
		table := newTestTable(t)
		require.NoError(t, table.Append(model.MustRow(4, "Hello,")))

		chunk := NewChunk()
		assert.ErrorIs(t, table.EmplaceChunk(chunk), ErrLastChunkNotFull)
	})
}

func TestTableCompressChunk(t *testing.T) {
	table := newTestTable(t)
	require.NoError(t, table.Append(model.MustRow(0, "Alexander")))
	require.NoError(t, table.Append(model.MustRow(1, "Alexander")))

	require.NoError(t, table.CompressChunk(0))

	chunk, err := table.GetChunk(0)
	require.NoError(t, err)

	segment, err := chunk.GetSegment(1)
	require.NoError(t, err)

	dict, ok := segment.(*DictionarySegment[string])
	require.True(t, ok, "expected a dictionary segment, got %T", segment)

	v0, err := dict.GetTyped(0)
	require.NoError(t, err)
	assert.Equal(t, "Alexander", v0)

	v1, err := dict.GetTyped(1)
	require.NoError(t, err)
	assert.Equal(t, "Alexander", v1)

	assert.Equal(t, 1, dict.UniqueValuesCount())

	assert.ErrorIs(t, table.CompressChunk(42), ErrOutOfBounds)
}

func TestTableCompressChunkPreservesRows(t *testing.T) {
	table := newTestTable(t)
	rows := [][]any{{3, "c"}, {1, "a"}, {4, "d"}, {1, "a"}}
	for _, row := range rows {
		require.NoError(t, table.Append(model.MustRow(row...)))
	}

	require.NoError(t, table.CompressChunk(0))
	require.NoError(t, table.CompressChunk(1))

	for i, row := range rows {
		chunk, err := table.GetChunk(model.ChunkID(i / 2))
		require.NoError(t, err)

		intSeg, err := chunk.GetSegment(0)
		require.NoError(t, err)
		v, err := intSeg.Get(model.ChunkOffset(i % 2))
		require.NoError(t, err)
		assert.Equal(t, model.Int32Value(int32(row[0].(int))), v)

		strSeg, err := chunk.GetSegment(1)
		require.NoError(t, err)
		s, err := strSeg.Get(model.ChunkOffset(i % 2))
		require.NoError(t, err)
		assert.Equal(t, model.StringValue(row[1].(string)), s)
	}
}

func TestTableCompressAllChunks(t *testing.T) {
	table := newTestTable(t)
	for i := 0; i < 5; i++ {
		require.NoError(t, table.Append(model.MustRow(i, "v")))
	}

	pool := NewWorkerPool(2)
	defer pool.Close()

	compressed, err := table.CompressAllChunks(pool)
	require.NoError(t, err)
	assert.Equal(t, 2, compressed)

	// The partial last chunk stays unencoded.
	last, err := table.GetChunk(2)
	require.NoError(t, err)
	segment, err := last.GetSegment(0)
	require.NoError(t, err)
	assert.IsType(t, &ValueSegment[int32]{}, segment)

	// Re-running finds nothing left to compress.
	compressed, err = table.CompressAllChunks(pool)
	require.NoError(t, err)
	assert.Equal(t, 0, compressed)
}

func TestTableConcurrentReadsDuringCompression(t *testing.T) {
	table := newTestTable(t)
	for i := 0; i < 64; i++ {
		require.NoError(t, table.Append(model.MustRow(i, "v")))
	}

	var wg sync.WaitGroup
	for chunkID := model.ChunkID(0); chunkID < 32; chunkID++ {
		chunkID := chunkID
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, table.CompressChunk(chunkID))
		}()
	}

	// Readers race the installs; they must always observe a consistent
	// chunk with the original values.
	for i := 0; i < 1000; i++ {
		chunk, err := table.GetChunk(model.ChunkID(i % 32))
		require.NoError(t, err)
		segment, err := chunk.GetSegment(0)
		require.NoError(t, err)
		v, err := segment.Get(model.ChunkOffset(i % 2))
		require.NoError(t, err)
		want := int32((i%32)*2 + i%2)
		got, err := v.AsInt32()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	wg.Wait()
}
