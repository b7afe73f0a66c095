package operators

import (
	"fmt"

	"github.com/hupe1980/colgo/model"
	"github.com/hupe1980/colgo/storage"
)

// ScanType enumerates the supported scan predicates.
type ScanType uint8

const (
	// OpEquals matches rows equal to the search value.
	OpEquals ScanType = iota
	// OpNotEquals matches rows not equal to the search value.
	OpNotEquals
	// OpLessThan matches rows less than the search value.
	OpLessThan
	// OpLessThanEquals matches rows less than or equal to the search value.
	OpLessThanEquals
	// OpGreaterThan matches rows greater than the search value.
	OpGreaterThan
	// OpGreaterThanEquals matches rows greater than or equal to the search value.
	OpGreaterThanEquals
)

var scanTypeNames = map[ScanType]string{
	OpEquals:            "=",
	OpNotEquals:         "!=",
	OpLessThan:          "<",
	OpLessThanEquals:    "<=",
	OpGreaterThan:       ">",
	OpGreaterThanEquals: ">=",
}

// String returns the predicate spelling of the scan type.
func (st ScanType) String() string {
	if name, ok := scanTypeNames[st]; ok {
		return name
	}
	return "invalid"
}

// TableScan filters one column of its input table by a predicate and emits
// a reference table: a single chunk of reference segments, one per column,
// sharing one position list into the base table.
type TableScan struct {
	BaseOperator
	columnID    model.ColumnID
	scanType    ScanType
	searchValue model.Value
}

// NewTableScan creates a scan over the output of the input operator.
func NewTableScan(input Operator, columnID model.ColumnID, scanType ScanType, searchValue model.Value) *TableScan {
	op := &TableScan{
		columnID:    columnID,
		scanType:    scanType,
		searchValue: searchValue,
	}
	op.BaseOperator = NewBaseOperator(op, input, nil)
	return op
}

// ColumnID returns the probed column.
func (op *TableScan) ColumnID() model.ColumnID { return op.columnID }

// ScanType returns the predicate.
func (op *TableScan) ScanType() ScanType { return op.scanType }

// SearchValue returns the probe value.
func (op *TableScan) SearchValue() model.Value { return op.searchValue }

func (op *TableScan) onExecute() (*storage.Table, error) {
	input, err := op.LeftInput().GetOutput()
	if err != nil {
		return nil, err
	}

	output := storage.NewTable(0)
	columnCount := input.ColumnCount()
	for columnID := model.ColumnID(0); columnID < model.ColumnID(columnCount); columnID++ {
		if err := output.CopyColumnDefinition(input, columnID); err != nil {
			return nil, err
		}
	}

	if input.IsEmpty() {
		return output, nil
	}

	columnType, err := input.ColumnType(op.columnID)
	if err != nil {
		return nil, err
	}

	dispatch := &scanDispatch{op: op, input: input}
	if err := model.Resolve(columnType, dispatch); err != nil {
		return nil, err
	}
	if dispatch.err != nil {
		return nil, dispatch.err
	}
	posList := dispatch.posList

	referencedTable, err := referencedBaseTable(input)
	if err != nil {
		return nil, err
	}

	resultChunk := storage.NewChunk()
	for columnID := model.ColumnID(0); columnID < model.ColumnID(columnCount); columnID++ {
		resultChunk.AddSegment(storage.NewReferenceSegment(referencedTable, columnID, posList))
	}
	if err := output.EmplaceChunk(resultChunk); err != nil {
		return nil, err
	}

	return output, nil
}

// referencedBaseTable unwraps one level of indirection: if the input is
// already a reference table, its base table becomes the base of the output,
// so chained scans stay one level deep.
func referencedBaseTable(input *storage.Table) (*storage.Table, error) {
	firstChunk, err := input.GetChunk(0)
	if err != nil {
		return nil, err
	}
	firstSegment, err := firstChunk.GetSegment(0)
	if err != nil {
		return nil, err
	}
	if ref, ok := firstSegment.(*storage.ReferenceSegment); ok {
		return ref.ReferencedTable(), nil
	}
	return input, nil
}

// scanDispatch carries the typed scan through model.Resolve.
type scanDispatch struct {
	op      *TableScan
	input   *storage.Table
	posList *model.PosList
	err     error
}

func (d *scanDispatch) VisitInt32()   { d.posList, d.err = scanColumn[int32](d.op, d.input) }
func (d *scanDispatch) VisitInt64()   { d.posList, d.err = scanColumn[int64](d.op, d.input) }
func (d *scanDispatch) VisitFloat32() { d.posList, d.err = scanColumn[float32](d.op, d.input) }
func (d *scanDispatch) VisitFloat64() { d.posList, d.err = scanColumn[float64](d.op, d.input) }
func (d *scanDispatch) VisitString()  { d.posList, d.err = scanColumn[string](d.op, d.input) }

// scanColumn walks all chunks of the probed column and collects matching
// row IDs into one shared position list.
func scanColumn[T model.Primitive](op *TableScan, input *storage.Table) (*model.PosList, error) {
	searchValue, err := model.ValueAs[T](op.searchValue)
	if err != nil {
		return nil, err
	}
	compare, err := buildComparator(op.scanType, searchValue)
	if err != nil {
		return nil, err
	}

	posList := &model.PosList{}

	chunkCount := input.ChunkCount()
	for chunkID := model.ChunkID(0); chunkID < model.ChunkID(chunkCount); chunkID++ {
		chunk, err := input.GetChunk(chunkID)
		if err != nil {
			return nil, err
		}
		segment, err := chunk.GetSegment(op.columnID)
		if err != nil {
			return nil, err
		}
		if err := scanSegment(chunkID, segment, posList, op.scanType, searchValue, compare); err != nil {
			return nil, err
		}
	}

	return posList, nil
}

// scanSegment picks the algorithm matching the physical segment variant.
func scanSegment[T model.Primitive](chunkID model.ChunkID, segment storage.Segment, posList *model.PosList,
	scanType ScanType, searchValue T, compare func(T) bool) error {
	switch s := segment.(type) {
	case *storage.ReferenceSegment:
		return scanReferenceSegment(s, posList, compare)
	case *storage.DictionarySegment[T]:
		return scanDictionarySegment(chunkID, s, posList, scanType, searchValue)
	case *storage.ValueSegment[T]:
		scanValueSegment(chunkID, s, posList, compare)
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedSegment, segment)
	}
}

// scanValueSegment linearly scans the unencoded values.
func scanValueSegment[T model.Primitive](chunkID model.ChunkID, segment *storage.ValueSegment[T],
	posList *model.PosList, compare func(T) bool) {
	for offset, value := range segment.Values() {
		if compare(value) {
			*posList = append(*posList, model.RowID{
				ChunkID:     chunkID,
				ChunkOffset: model.ChunkOffset(offset),
			})
		}
	}
}

// scanDictionarySegment computes the dictionary bounds once and compares
// value IDs instead of values. InvalidValueID compares greater than every
// valid value ID and thereby acts as a past-the-end position.
func scanDictionarySegment[T model.Primitive](chunkID model.ChunkID, segment *storage.DictionarySegment[T],
	posList *model.PosList, scanType ScanType, searchValue T) error {
	lower := segment.LowerBound(searchValue)
	upper := segment.UpperBound(searchValue)

	var match func(model.ValueID) bool
	switch scanType {
	case OpEquals:
		if upper == lower {
			// The dictionary lacks the search value; no row matches.
			return nil
		}
		match = func(id model.ValueID) bool { return id == lower }
	case OpNotEquals:
		if upper == lower {
			match = func(model.ValueID) bool { return true }
		} else {
			match = func(id model.ValueID) bool { return id != lower }
		}
	case OpGreaterThanEquals:
		match = func(id model.ValueID) bool { return id >= lower }
	case OpGreaterThan:
		match = func(id model.ValueID) bool { return id >= upper }
	case OpLessThanEquals:
		if upper == lower {
			match = func(id model.ValueID) bool { return id < lower }
		} else {
			match = func(id model.ValueID) bool { return id <= lower }
		}
	case OpLessThan:
		match = func(id model.ValueID) bool { return id < lower }
	default:
		return fmt.Errorf("%w: %d", ErrUnknownScanType, scanType)
	}

	attributeVector := segment.AttributeVector()
	size := attributeVector.Size()
	for offset := model.ChunkOffset(0); offset < size; offset++ {
		id, err := attributeVector.Get(offset)
		if err != nil {
			return err
		}
		if match(id) {
			*posList = append(*posList, model.RowID{ChunkID: chunkID, ChunkOffset: offset})
		}
	}
	return nil
}

// scanReferenceSegment reads through the view's position list and, on a
// match, appends the underlying row ID, keeping chained scans flat against
// the base table.
func scanReferenceSegment[T model.Primitive](segment *storage.ReferenceSegment, posList *model.PosList,
	compare func(T) bool) error {
	refPosList := *segment.PosList()
	for offset := range refPosList {
		value, err := segment.Get(model.ChunkOffset(offset))
		if err != nil {
			return err
		}
		typed, err := model.ValueAs[T](value)
		if err != nil {
			return err
		}
		if compare(typed) {
			*posList = append(*posList, refPosList[offset])
		}
	}
	return nil
}

// buildComparator returns the predicate closure for a scan type.
func buildComparator[T model.Primitive](scanType ScanType, searchValue T) (func(T) bool, error) {
	switch scanType {
	case OpEquals:
		return func(v T) bool { return v == searchValue }, nil
	case OpNotEquals:
		return func(v T) bool { return v != searchValue }, nil
	case OpLessThan:
		return func(v T) bool { return v < searchValue }, nil
	case OpLessThanEquals:
		return func(v T) bool { return v <= searchValue }, nil
	case OpGreaterThan:
		return func(v T) bool { return v > searchValue }, nil
	case OpGreaterThanEquals:
		return func(v T) bool { return v >= searchValue }, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownScanType, scanType)
	}
}
