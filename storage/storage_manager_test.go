package storage

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/colgo/model"
)

func TestStorageManager(t *testing.T) {
	m := NewStorageManager()

	t.Run("AddAndGet", func(t *testing.T) {
		table := NewTable(2)
		require.NoError(t, m.AddTable("first", table))

		got, err := m.GetTable("first")
		require.NoError(t, err)
		assert.Same(t, table, got)

		assert.True(t, m.HasTable("first"))
		assert.False(t, m.HasTable("second"))
	})

	t.Run("DuplicateName", func(t *testing.T) {
		err := m.AddTable("first", NewTable(2))
		assert.ErrorIs(t, err, ErrDuplicateName)

		var dup *DuplicateNameError
		require.ErrorAs(t, err, &dup)
		assert.Equal(t, "first", dup.Name)
	})

	t.Run("Drop", func(t *testing.T) {
		require.NoError(t, m.AddTable("second", NewTable(2)))
		require.NoError(t, m.DropTable("second"))
		assert.False(t, m.HasTable("second"))

		assert.ErrorIs(t, m.DropTable("second"), ErrUnknownTable)
	})

	t.Run("GetUnknown", func(t *testing.T) {
		_, err := m.GetTable("missing")
		assert.ErrorIs(t, err, ErrUnknownTable)
	})

	t.Run("Reset", func(t *testing.T) {
		m.Reset()
		assert.Empty(t, m.TableNames())
	})
}

func TestStorageManagerTableNames(t *testing.T) {
	m := NewStorageManager()
	require.NoError(t, m.AddTable("zeta", NewTable(2)))
	require.NoError(t, m.AddTable("alpha", NewTable(2)))

	assert.Equal(t, []string{"alpha", "zeta"}, m.TableNames())
}

func TestStorageManagerPrint(t *testing.T) {
	m := NewStorageManager()

	table := NewTable(2)
	require.NoError(t, table.AddColumn("col_1", model.Int))
	require.NoError(t, table.AddColumn("col_2", model.String))
	require.NoError(t, table.Append(model.MustRow(4, "Hello,")))
	require.NoError(t, table.Append(model.MustRow(6, "world")))
	require.NoError(t, table.Append(model.MustRow(3, "!")))
	require.NoError(t, m.AddTable("t1", table))

	var buf bytes.Buffer
	require.NoError(t, m.Print(&buf))

	want := "1 tables available:\n" +
		" - \"t1\" [column_count=2, row_count=3, chunk_count=2]\n"
	assert.Equal(t, want, buf.String())
}

func TestGetStorageManagerSingleton(t *testing.T) {
	first := GetStorageManager()
	second := GetStorageManager()
	assert.Same(t, first, second)

	name := "colgo_singleton_test_table"
	require.NoError(t, first.AddTable(name, NewTable(2)))
	defer first.Reset()

	assert.True(t, second.HasTable(name))
}
