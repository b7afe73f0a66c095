package model

import (
	"fmt"
	"math"
)

// ChunkID is the index of a chunk inside a table.
type ChunkID uint32

// ChunkOffset is a row index inside a single chunk.
type ChunkOffset uint32

// ColumnID is the index of a column inside a table.
type ColumnID uint16

// ColumnCount is the number of columns of a table or chunk.
type ColumnCount uint16

// ChunkCount is the number of chunks of a table.
type ChunkCount uint32

// ValueID is an index into a dictionary segment's sorted dictionary.
// It is strictly 32-bit, allowing for max 4 billion distinct values per segment.
type ValueID uint32

// InvalidValueID marks the absence of a qualifying dictionary entry,
// e.g. when a probed value is greater than every dictionary entry.
//
// It compares greater than every valid ValueID, so value-ID comparators may
// treat it as a past-the-end position.
const InvalidValueID = ValueID(math.MaxUint32)

// RowID identifies a single row of a table by chunk and offset.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

// String returns a string representation of the RowID.
func (r RowID) String() string {
	return fmt.Sprintf("Row(%d:%d)", r.ChunkID, r.ChunkOffset)
}

// PosList is an ordered sequence of RowIDs. Position lists are shared
// between the reference segments of one result chunk.
type PosList []RowID
