package storage

import (
	"github.com/hupe1980/colgo/model"
)

// Segment is one column's slice within one chunk. Three physical variants
// exist: the mutable ValueSegment, the immutable DictionarySegment and the
// positional ReferenceSegment. Operators dispatch on the concrete type.
type Segment interface {
	// Size returns the number of rows in the segment.
	Size() model.ChunkOffset

	// Get returns the value at the given offset as a dynamic Value.
	// If you want to write efficient operators, back off: use the typed
	// accessors of the concrete segment instead.
	Get(offset model.ChunkOffset) (model.Value, error)

	// Append adds a value to the end of the segment. Dictionary and
	// reference segments reject appends with ErrImmutable.
	Append(value model.Value) error

	// EstimateMemoryUsage returns the approximate payload size in bytes.
	EstimateMemoryUsage() int
}

// EncodedSegment is implemented by dictionary segments of every element
// type. It exposes the parts of the encoding that do not depend on the
// element type.
type EncodedSegment interface {
	Segment

	// AttributeVector returns the underlying value-ID vector.
	AttributeVector() AttributeVector

	// UniqueValuesCount returns the number of dictionary entries.
	UniqueValuesCount() int
}

// segmentFactory builds an empty value segment for a column's data type.
// It carries the result out of the model.Resolve dispatch.
type segmentFactory struct {
	segment Segment
}

func (f *segmentFactory) VisitInt32()   { f.segment = NewValueSegment[int32]() }
func (f *segmentFactory) VisitInt64()   { f.segment = NewValueSegment[int64]() }
func (f *segmentFactory) VisitFloat32() { f.segment = NewValueSegment[float32]() }
func (f *segmentFactory) VisitFloat64() { f.segment = NewValueSegment[float64]() }
func (f *segmentFactory) VisitString()  { f.segment = NewValueSegment[string]() }

// NewValueSegmentOfType creates an empty value segment for the given
// column data type.
func NewValueSegmentOfType(dt model.DataType) (Segment, error) {
	var f segmentFactory
	if err := model.Resolve(dt, &f); err != nil {
		return nil, err
	}
	return f.segment, nil
}

// dictionaryFactory encodes a base segment for a column's data type.
type dictionaryFactory struct {
	base    Segment
	segment Segment
	err     error
}

func (f *dictionaryFactory) VisitInt32()   { f.segment, f.err = NewDictionarySegment[int32](f.base) }
func (f *dictionaryFactory) VisitInt64()   { f.segment, f.err = NewDictionarySegment[int64](f.base) }
func (f *dictionaryFactory) VisitFloat32() { f.segment, f.err = NewDictionarySegment[float32](f.base) }
func (f *dictionaryFactory) VisitFloat64() { f.segment, f.err = NewDictionarySegment[float64](f.base) }
func (f *dictionaryFactory) VisitString()  { f.segment, f.err = NewDictionarySegment[string](f.base) }

// NewDictionarySegmentOfType dictionary-encodes the given base segment,
// which must be a value segment of the given data type.
func NewDictionarySegmentOfType(dt model.DataType, base Segment) (Segment, error) {
	f := dictionaryFactory{base: base}
	if err := model.Resolve(dt, &f); err != nil {
		return nil, err
	}
	return f.segment, f.err
}
