package storage

import (
	"fmt"

	"github.com/hupe1980/colgo/model"
)

// Chunk is a horizontal partition of a table: an ordered tuple of segments
// sharing a row count, one segment per column.
type Chunk struct {
	segments []Segment
}

// NewChunk creates an empty chunk.
func NewChunk() *Chunk {
	return &Chunk{}
}

// AddSegment appends a segment as the next column of the chunk.
func (c *Chunk) AddSegment(segment Segment) {
	c.segments = append(c.segments, segment)
}

// Append adds a row to the chunk, forwarding the i-th value to the i-th
// segment. The row length must match the column count. Callers must
// guarantee schema compatibility; a failing segment aborts the append.
func (c *Chunk) Append(values []model.Value) error {
	if len(values) != len(c.segments) {
		return fmt.Errorf("%w: row has %d values, chunk has %d columns",
			ErrColumnCountMismatch, len(values), len(c.segments))
	}
	for i, v := range values {
		if err := c.segments[i].Append(v); err != nil {
			return err
		}
	}
	return nil
}

// GetSegment returns the segment at the given column.
func (c *Chunk) GetSegment(columnID model.ColumnID) (Segment, error) {
	if int(columnID) >= len(c.segments) {
		return nil, fmt.Errorf("%w: column %d, column count %d", ErrOutOfBounds, columnID, len(c.segments))
	}
	return c.segments[columnID], nil
}

// ColumnCount returns the number of segments.
func (c *Chunk) ColumnCount() model.ColumnCount {
	return model.ColumnCount(len(c.segments))
}

// Size returns the row count, read from the first segment (all segments
// share the same height).
func (c *Chunk) Size() model.ChunkOffset {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}

// EstimateMemoryUsage returns the approximate payload size in bytes.
func (c *Chunk) EstimateMemoryUsage() int {
	var usage int
	for _, s := range c.segments {
		usage += s.EstimateMemoryUsage()
	}
	return usage
}
