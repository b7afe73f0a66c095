package storage

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"unsafe"

	"github.com/hupe1980/colgo/model"
)

// DictionarySegment is an immutable encoded column fragment: a sorted,
// deduplicated dictionary plus an attribute vector mapping every original
// row to the value ID of its value. The attribute vector uses the smallest
// element width of 1, 2 or 4 bytes that fits the largest value ID.
type DictionarySegment[T model.Primitive] struct {
	dictionary      []T
	attributeVector AttributeVector
}

// NewDictionarySegment encodes the given base segment, which must be a
// value segment with element type T.
func NewDictionarySegment[T model.Primitive](base Segment) (*DictionarySegment[T], error) {
	valueSegment, ok := base.(*ValueSegment[T])
	if !ok {
		return nil, fmt.Errorf("%w: base segment is not a value segment of type %s",
			model.ErrTypeMismatch, model.DataTypeOf[T]())
	}

	values := valueSegment.Values()

	var dictionary []T
	for _, v := range values {
		idx := lowerBound(dictionary, v)
		if idx == len(dictionary) || dictionary[idx] != v {
			dictionary = slices.Insert(dictionary, idx, v)
		}
	}

	ids := make([]model.ValueID, len(values))
	for i, v := range values {
		ids[i] = model.ValueID(lowerBound(dictionary, v))
	}

	attributeVector, err := newAttributeVectorForCardinality(len(dictionary), ids)
	if err != nil {
		return nil, err
	}

	return &DictionarySegment[T]{
		dictionary:      dictionary,
		attributeVector: attributeVector,
	}, nil
}

// newAttributeVectorForCardinality picks the narrowest element width that
// fits the largest value ID, uniqueCount-1.
func newAttributeVectorForCardinality(uniqueCount int, ids []model.ValueID) (AttributeVector, error) {
	switch {
	case uniqueCount <= math.MaxUint8+1:
		return NewFixedSizeAttributeVector[uint8](ids)
	case uniqueCount <= math.MaxUint16+1:
		return NewFixedSizeAttributeVector[uint16](ids)
	case uint64(uniqueCount) <= math.MaxUint32+1:
		return NewFixedSizeAttributeVector[uint32](ids)
	default:
		return nil, fmt.Errorf("%w: %d distinct values", ErrTooManyDistinctValues, uniqueCount)
	}
}

// Size returns the number of rows in the segment.
func (s *DictionarySegment[T]) Size() model.ChunkOffset {
	return s.attributeVector.Size()
}

// Get returns the value at the given offset as a dynamic Value.
func (s *DictionarySegment[T]) Get(offset model.ChunkOffset) (model.Value, error) {
	v, err := s.GetTyped(offset)
	if err != nil {
		return model.Value{}, err
	}
	return model.ValueOf(v), nil
}

// GetTyped returns the value at the given offset.
func (s *DictionarySegment[T]) GetTyped(offset model.ChunkOffset) (T, error) {
	var zero T
	id, err := s.attributeVector.Get(offset)
	if err != nil {
		return zero, err
	}
	return s.ValueByValueID(id)
}

// Append fails: dictionary segments are immutable.
func (s *DictionarySegment[T]) Append(model.Value) error {
	return fmt.Errorf("%w: cannot append to a dictionary segment", ErrImmutable)
}

// Dictionary returns the sorted unique dictionary. Callers must not
// mutate it.
func (s *DictionarySegment[T]) Dictionary() []T {
	return s.dictionary
}

// AttributeVector returns the underlying value-ID vector.
func (s *DictionarySegment[T]) AttributeVector() AttributeVector {
	return s.attributeVector
}

// ValueByValueID returns the value a value ID stands for.
func (s *DictionarySegment[T]) ValueByValueID(id model.ValueID) (T, error) {
	var zero T
	if int(id) >= len(s.dictionary) {
		return zero, fmt.Errorf("%w: value id %d, dictionary size %d", ErrOutOfBounds, id, len(s.dictionary))
	}
	return s.dictionary[id], nil
}

// LowerBound returns the first value ID whose value is >= the search value,
// or InvalidValueID if every dictionary entry is smaller.
func (s *DictionarySegment[T]) LowerBound(value T) model.ValueID {
	idx := lowerBound(s.dictionary, value)
	if idx == len(s.dictionary) {
		return model.InvalidValueID
	}
	return model.ValueID(idx)
}

// UpperBound returns the first value ID whose value is > the search value,
// or InvalidValueID if every dictionary entry is smaller or equal.
func (s *DictionarySegment[T]) UpperBound(value T) model.ValueID {
	idx := upperBound(s.dictionary, value)
	if idx == len(s.dictionary) {
		return model.InvalidValueID
	}
	return model.ValueID(idx)
}

// LowerBoundValue is LowerBound for a dynamic value, coercing it to T first.
func (s *DictionarySegment[T]) LowerBoundValue(value model.Value) (model.ValueID, error) {
	typed, err := model.ValueAs[T](value)
	if err != nil {
		return model.InvalidValueID, err
	}
	return s.LowerBound(typed), nil
}

// UpperBoundValue is UpperBound for a dynamic value, coercing it to T first.
func (s *DictionarySegment[T]) UpperBoundValue(value model.Value) (model.ValueID, error) {
	typed, err := model.ValueAs[T](value)
	if err != nil {
		return model.InvalidValueID, err
	}
	return s.UpperBound(typed), nil
}

// UniqueValuesCount returns the number of dictionary entries.
func (s *DictionarySegment[T]) UniqueValuesCount() int {
	return len(s.dictionary)
}

// EstimateMemoryUsage returns the approximate payload size in bytes.
func (s *DictionarySegment[T]) EstimateMemoryUsage() int {
	var zero T
	usage := cap(s.dictionary) * int(unsafe.Sizeof(zero))
	if strs, ok := any(s.dictionary).([]string); ok {
		for _, str := range strs {
			usage += len(str)
		}
	}
	return usage + s.attributeVector.EstimateMemoryUsage()
}

// lowerBound returns the first index i with sorted[i] >= value.
func lowerBound[T model.Primitive](sorted []T, value T) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] >= value })
}

// upperBound returns the first index i with sorted[i] > value.
func upperBound[T model.Primitive](sorted []T, value T) int {
	return sort.Search(len(sorted), func(i int) bool { return sorted[i] > value })
}
