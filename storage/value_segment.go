package storage

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/colgo/model"
)

// ValueSegment is an append-only typed column fragment backing unencoded
// data. It is written by the single goroutine that fills its chunk and is
// logically read-only once the chunk is full.
type ValueSegment[T model.Primitive] struct {
	values []T
}

// NewValueSegment creates an empty value segment.
func NewValueSegment[T model.Primitive]() *ValueSegment[T] {
	return &ValueSegment[T]{}
}

// Size returns the number of rows in the segment.
func (s *ValueSegment[T]) Size() model.ChunkOffset {
	return model.ChunkOffset(len(s.values))
}

// Get returns the value at the given offset.
func (s *ValueSegment[T]) Get(offset model.ChunkOffset) (model.Value, error) {
	if int(offset) >= len(s.values) {
		return model.Value{}, fmt.Errorf("%w: offset %d, size %d", ErrOutOfBounds, offset, len(s.values))
	}
	return model.ValueOf(s.values[offset]), nil
}

// GetTyped returns the value at the given offset without boxing.
func (s *ValueSegment[T]) GetTyped(offset model.ChunkOffset) (T, error) {
	var zero T
	if int(offset) >= len(s.values) {
		return zero, fmt.Errorf("%w: offset %d, size %d", ErrOutOfBounds, offset, len(s.values))
	}
	return s.values[offset], nil
}

// Append coerces the value to the segment's element type and adds it to the
// end. Incompatible variants fail with model.ErrTypeMismatch.
func (s *ValueSegment[T]) Append(value model.Value) error {
	typed, err := model.ValueAs[T](value)
	if err != nil {
		return err
	}
	s.values = append(s.values, typed)
	return nil
}

// AppendTyped adds a value without coercion.
func (s *ValueSegment[T]) AppendTyped(value T) {
	s.values = append(s.values, value)
}

// Values exposes the underlying slice for zero-copy scans and dictionary
// construction. Callers must not mutate it.
func (s *ValueSegment[T]) Values() []T {
	return s.values
}

// EstimateMemoryUsage returns the approximate payload size in bytes. For
// strings only the headers and byte payloads are counted.
func (s *ValueSegment[T]) EstimateMemoryUsage() int {
	var zero T
	usage := cap(s.values) * int(unsafe.Sizeof(zero))
	if strs, ok := any(s.values).([]string); ok {
		for _, str := range strs {
			usage += len(str)
		}
	}
	return usage
}
