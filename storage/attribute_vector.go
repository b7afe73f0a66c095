package storage

import (
	"fmt"
	"math"

	"github.com/hupe1980/colgo/model"
)

// AttributeVector is the width-parametric array of value IDs behind a
// dictionary segment. The element width is fixed at construction time.
type AttributeVector interface {
	// Get returns the value ID at the given offset.
	Get(offset model.ChunkOffset) (model.ValueID, error)

	// Set writes the value ID at the given offset. The ID must fit the
	// element width.
	Set(offset model.ChunkOffset, id model.ValueID) error

	// Size returns the number of entries.
	Size() model.ChunkOffset

	// Width returns the element width in bytes: 1, 2 or 4.
	Width() int

	// EstimateMemoryUsage returns the payload size in bytes.
	EstimateMemoryUsage() int
}

// FixedSizeAttributeVector stores value IDs down-cast to a fixed unsigned
// element width.
type FixedSizeAttributeVector[U uint8 | uint16 | uint32] struct {
	ids []U
}

// NewFixedSizeAttributeVector copies the given value IDs into a vector of
// element type U. Every ID must fit into U.
func NewFixedSizeAttributeVector[U uint8 | uint16 | uint32](ids []model.ValueID) (*FixedSizeAttributeVector[U], error) {
	v := &FixedSizeAttributeVector[U]{ids: make([]U, len(ids))}
	maxID := maxValueForWidth[U]()
	for i, id := range ids {
		if uint64(id) > maxID {
			return nil, fmt.Errorf("%w: value id %d, width %d", ErrOverflow, id, v.Width())
		}
		v.ids[i] = U(id)
	}
	return v, nil
}

// Get returns the value ID at the given offset.
func (v *FixedSizeAttributeVector[U]) Get(offset model.ChunkOffset) (model.ValueID, error) {
	if int(offset) >= len(v.ids) {
		return 0, fmt.Errorf("%w: offset %d, size %d", ErrOutOfBounds, offset, len(v.ids))
	}
	return model.ValueID(v.ids[offset]), nil
}

// Set writes the value ID at the given offset.
func (v *FixedSizeAttributeVector[U]) Set(offset model.ChunkOffset, id model.ValueID) error {
	if int(offset) >= len(v.ids) {
		return fmt.Errorf("%w: offset %d, size %d", ErrOutOfBounds, offset, len(v.ids))
	}
	if uint64(id) > maxValueForWidth[U]() {
		return fmt.Errorf("%w: value id %d, width %d", ErrOverflow, id, v.Width())
	}
	v.ids[offset] = U(id)
	return nil
}

// Size returns the number of entries.
func (v *FixedSizeAttributeVector[U]) Size() model.ChunkOffset {
	return model.ChunkOffset(len(v.ids))
}

// Width returns the element width in bytes.
func (v *FixedSizeAttributeVector[U]) Width() int {
	var zero U
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}

// EstimateMemoryUsage returns the payload size in bytes.
func (v *FixedSizeAttributeVector[U]) EstimateMemoryUsage() int {
	return cap(v.ids) * v.Width()
}

func maxValueForWidth[U uint8 | uint16 | uint32]() uint64 {
	var zero U
	switch any(zero).(type) {
	case uint8:
		return math.MaxUint8
	case uint16:
		return math.MaxUint16
	default:
		return math.MaxUint32
	}
}
