package testutil

import (
	"github.com/hupe1980/colgo/model"
	"github.com/hupe1980/colgo/storage"
)

// Rows is a list of rows of native Go values, see model.Row.
type Rows [][]any

// BuildTable creates a table with the given schema and appends all rows.
func BuildTable(targetChunkSize model.ChunkOffset, columns []storage.ColumnDefinition, rows Rows) (*storage.Table, error) {
	table := storage.NewTable(targetChunkSize)
	for _, col := range columns {
		if err := table.AddColumn(col.Name, col.Type); err != nil {
			return nil, err
		}
	}
	for _, row := range rows {
		values, err := model.Row(row...)
		if err != nil {
			return nil, err
		}
		if err := table.Append(values); err != nil {
			return nil, err
		}
	}
	return table, nil
}

// MustBuildTable is like BuildTable but panics on error.
func MustBuildTable(targetChunkSize model.ChunkOffset, columns []storage.ColumnDefinition, rows Rows) *storage.Table {
	table, err := BuildTable(targetChunkSize, columns, rows)
	if err != nil {
		panic(err)
	}
	return table
}

// NewSegment creates a value segment holding the given values.
func NewSegment[T model.Primitive](values ...T) *storage.ValueSegment[T] {
	segment := storage.NewValueSegment[T]()
	for _, v := range values {
		segment.AppendTyped(v)
	}
	return segment
}

// MustEncode dictionary-encodes a value segment.
func MustEncode[T model.Primitive](segment *storage.ValueSegment[T]) *storage.DictionarySegment[T] {
	encoded, err := storage.NewDictionarySegment[T](segment)
	if err != nil {
		panic(err)
	}
	return encoded
}

// PosListOf builds a position list from (chunk, offset) pairs.
func PosListOf(pairs ...[2]uint32) *model.PosList {
	posList := make(model.PosList, len(pairs))
	for i, p := range pairs {
		posList[i] = model.RowID{
			ChunkID:     model.ChunkID(p[0]),
			ChunkOffset: model.ChunkOffset(p[1]),
		}
	}
	return &posList
}
