package storage

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/colgo/model"
)

// ReferenceSegment is a positional view over a base table: it stores the
// referenced table, a column ID and a position list, and resolves reads
// through them. The referenced segments must be value or dictionary
// segments; a reference segment never references another reference segment.
// The operator producing one guarantees this, which keeps chained scans one
// level deep.
//
// Reference segments share ownership of the referenced table and of their
// position list, which is shared between all segments of one result chunk.
type ReferenceSegment struct {
	referencedTable    *Table
	referencedColumnID model.ColumnID
	posList            *model.PosList
}

// NewReferenceSegment creates a reference segment over the given table,
// column and positions.
func NewReferenceSegment(referencedTable *Table, referencedColumnID model.ColumnID, posList *model.PosList) *ReferenceSegment {
	return &ReferenceSegment{
		referencedTable:    referencedTable,
		referencedColumnID: referencedColumnID,
		posList:            posList,
	}
}

// Size returns the number of positions in the view.
func (s *ReferenceSegment) Size() model.ChunkOffset {
	return model.ChunkOffset(len(*s.posList))
}

// Get resolves the position at the given offset and reads the value from
// the referenced table.
func (s *ReferenceSegment) Get(offset model.ChunkOffset) (model.Value, error) {
	if int(offset) >= len(*s.posList) {
		return model.Value{}, fmt.Errorf("%w: offset %d, size %d", ErrOutOfBounds, offset, len(*s.posList))
	}
	rowID := (*s.posList)[offset]

	chunk, err := s.referencedTable.GetChunk(rowID.ChunkID)
	if err != nil {
		return model.Value{}, err
	}
	segment, err := chunk.GetSegment(s.referencedColumnID)
	if err != nil {
		return model.Value{}, err
	}
	return segment.Get(rowID.ChunkOffset)
}

// Append fails: reference segments are immutable.
func (s *ReferenceSegment) Append(model.Value) error {
	return fmt.Errorf("%w: cannot append to a reference segment", ErrImmutable)
}

// PosList returns the shared position list.
func (s *ReferenceSegment) PosList() *model.PosList {
	return s.posList
}

// ReferencedTable returns the base table the view resolves into.
func (s *ReferenceSegment) ReferencedTable() *Table {
	return s.referencedTable
}

// ReferencedColumnID returns the column the view resolves into.
func (s *ReferenceSegment) ReferencedColumnID() model.ColumnID {
	return s.referencedColumnID
}

// EstimateMemoryUsage returns the approximate payload size in bytes. The
// referenced table is shared and not counted.
func (s *ReferenceSegment) EstimateMemoryUsage() int {
	var rowID model.RowID
	return cap(*s.posList) * int(unsafe.Sizeof(rowID))
}
