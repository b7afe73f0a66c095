package storage

import (
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/colgo/model"
)

// DefaultTargetChunkSize is used when a table is created with a target
// chunk size of zero.
const DefaultTargetChunkSize = model.ChunkOffset(65535)

// ColumnDefinition describes one column of a table.
type ColumnDefinition struct {
	Name string
	Type model.DataType
}

// Table is a chunked columnar table: a schema, an ordered list of chunks
// and an append path that fills the last chunk up to the target chunk size.
//
// Chunk access is guarded so that the compressed-chunk install is a single
// slot write: concurrent readers observe either the old or the new chunk,
// never a torn state. Appends are not synchronized against concurrent
// scans; callers must not race writes against reads of the same chunk.
type Table struct {
	mu              sync.RWMutex
	targetChunkSize model.ChunkOffset
	columns         []ColumnDefinition
	chunks          []*Chunk
}

// NewTable creates a table with the given target chunk size and one initial
// empty chunk. A target chunk size of zero selects DefaultTargetChunkSize.
func NewTable(targetChunkSize model.ChunkOffset) *Table {
	if targetChunkSize == 0 {
		targetChunkSize = DefaultTargetChunkSize
	}
	t := &Table{targetChunkSize: targetChunkSize}
	t.chunks = append(t.chunks, t.newChunkForSchema())
	return t
}

// newChunkForSchema creates an empty chunk with one typed value segment per
// column. The column types are validated on AddColumn, so the factory
// cannot fail here.
func (t *Table) newChunkForSchema() *Chunk {
	chunk := NewChunk()
	for _, col := range t.columns {
		segment, err := NewValueSegmentOfType(col.Type)
		if err != nil {
			panic(fmt.Sprintf("colgo: segment factory failed for validated column type: %v", err))
		}
		chunk.AddSegment(segment)
	}
	return chunk
}

// AddColumn appends a column definition and an empty typed segment to every
// existing chunk. The schema can only be altered while the table has no
// rows.
func (t *Table) AddColumn(name string, dt model.DataType) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rowCountLocked() != 0 {
		return ErrSchemaFrozen
	}
	segments := make([]Segment, 0, len(t.chunks))
	for range t.chunks {
		segment, err := NewValueSegmentOfType(dt)
		if err != nil {
			return err
		}
		segments = append(segments, segment)
	}
	t.columns = append(t.columns, ColumnDefinition{Name: name, Type: dt})
	for i, chunk := range t.chunks {
		chunk.AddSegment(segments[i])
	}
	return nil
}

// CopyColumnDefinition appends a clone of another table's column
// definition. Operators use this to shape their output tables.
func (t *Table) CopyColumnDefinition(other *Table, columnID model.ColumnID) error {
	other.mu.RLock()
	if int(columnID) >= len(other.columns) {
		other.mu.RUnlock()
		return fmt.Errorf("%w: column %d, column count %d", ErrOutOfBounds, columnID, len(other.columns))
	}
	def := other.columns[columnID]
	other.mu.RUnlock()

	return t.AddColumn(def.Name, def.Type)
}

// Append adds a row to the last chunk, creating a new schema-matching chunk
// first if the last one is full.
func (t *Table) Append(values []model.Value) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	last := t.chunks[len(t.chunks)-1]
	if last.Size() == t.targetChunkSize {
		last = t.newChunkForSchema()
		t.chunks = append(t.chunks, last)
	}
	return last.Append(values)
}

// EmplaceChunk installs a chunk produced by an operator. While the table is
// empty the initial placeholder chunk is replaced; otherwise the previous
// last chunk must be full and the chunk is appended.
func (t *Table) EmplaceChunk(chunk *Chunk) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.rowCountLocked() == 0 {
		t.chunks[len(t.chunks)-1] = chunk
		return nil
	}
	if t.chunks[len(t.chunks)-1].Size() != t.targetChunkSize {
		return ErrLastChunkNotFull
	}
	t.chunks = append(t.chunks, chunk)
	return nil
}

// ColumnCount returns the number of columns.
func (t *Table) ColumnCount() model.ColumnCount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return model.ColumnCount(len(t.columns))
}

// RowCount returns the total number of rows across all chunks.
func (t *Table) RowCount() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rowCountLocked()
}

func (t *Table) rowCountLocked() uint64 {
	var count uint64
	for _, chunk := range t.chunks {
		count += uint64(chunk.Size())
	}
	return count
}

// ChunkCount returns the number of chunks.
func (t *Table) ChunkCount() model.ChunkCount {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return model.ChunkCount(len(t.chunks))
}

// IsEmpty reports whether the table has no chunks or no columns.
func (t *Table) IsEmpty() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.chunks) == 0 || len(t.columns) == 0
}

// ColumnIDByName resolves a column name with a linear scan.
func (t *Table) ColumnIDByName(name string) (model.ColumnID, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for i, col := range t.columns {
		if col.Name == name {
			return model.ColumnID(i), nil
		}
	}
	return 0, &UnknownColumnError{Name: name}
}

// ColumnName returns the name of the given column.
func (t *Table) ColumnName(columnID model.ColumnID) (string, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(columnID) >= len(t.columns) {
		return "", fmt.Errorf("%w: column %d, column count %d", ErrOutOfBounds, columnID, len(t.columns))
	}
	return t.columns[columnID].Name, nil
}

// ColumnNames returns the names of all columns in order.
func (t *Table) ColumnNames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	names := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
	}
	return names
}

// ColumnType returns the data type of the given column.
func (t *Table) ColumnType(columnID model.ColumnID) (model.DataType, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(columnID) >= len(t.columns) {
		return 0, fmt.Errorf("%w: column %d, column count %d", ErrOutOfBounds, columnID, len(t.columns))
	}
	return t.columns[columnID].Type, nil
}

// TargetChunkSize returns the configured chunk capacity.
func (t *Table) TargetChunkSize() model.ChunkOffset {
	return t.targetChunkSize
}

// GetChunk returns the chunk at the given index.
func (t *Table) GetChunk(chunkID model.ChunkID) (*Chunk, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(chunkID) >= len(t.chunks) {
		return nil, fmt.Errorf("%w: chunk %d, chunk count %d", ErrOutOfBounds, chunkID, len(t.chunks))
	}
	return t.chunks[chunkID], nil
}

// EstimateMemoryUsage returns the approximate payload size of all chunks in
// bytes.
func (t *Table) EstimateMemoryUsage() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	var usage int
	for _, chunk := range t.chunks {
		usage += chunk.EstimateMemoryUsage()
	}
	return usage
}

// CompressChunk dictionary-encodes the chunk at the given index. One worker
// per column builds the encoded segment into its own slot; after the join
// the fresh chunk is installed with a single slot write. Readers holding
// the old chunk keep reading it; new readers observe the compressed chunk.
//
// The chunk must not be mutated while compression runs, so only full (or
// otherwise frozen) chunks should be compressed.
func (t *Table) CompressChunk(chunkID model.ChunkID) error {
	t.mu.RLock()
	if int(chunkID) >= len(t.chunks) {
		t.mu.RUnlock()
		return fmt.Errorf("%w: chunk %d, chunk count %d", ErrOutOfBounds, chunkID, len(t.chunks))
	}
	chunk := t.chunks[chunkID]
	columns := t.columns
	t.mu.RUnlock()

	compressed := make([]Segment, len(columns))

	var g errgroup.Group
	for i, col := range columns {
		i, col := i, col
		g.Go(func() error {
			segment, err := chunk.GetSegment(model.ColumnID(i))
			if err != nil {
				return err
			}
			encoded, err := NewDictionarySegmentOfType(col.Type, segment)
			if err != nil {
				return fmt.Errorf("compress column %q: %w", col.Name, err)
			}
			compressed[i] = encoded
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	newChunk := NewChunk()
	for _, segment := range compressed {
		newChunk.AddSegment(segment)
	}

	t.mu.Lock()
	t.chunks[chunkID] = newChunk
	t.mu.Unlock()

	return nil
}

// CompressAllChunks dictionary-encodes every full, still unencoded chunk,
// scheduling one compression per chunk on the given pool. A nil pool
// compresses sequentially. Returns the number of chunks compressed.
func (t *Table) CompressAllChunks(pool *WorkerPool) (int, error) {
	t.mu.RLock()
	candidates := make([]model.ChunkID, 0, len(t.chunks))
	for i, chunk := range t.chunks {
		if chunk.Size() != t.targetChunkSize {
			continue
		}
		segment, err := chunk.GetSegment(0)
		if err != nil {
			continue
		}
		if _, encoded := segment.(EncodedSegment); encoded {
			continue
		}
		if _, ref := segment.(*ReferenceSegment); ref {
			continue
		}
		candidates = append(candidates, model.ChunkID(i))
	}
	t.mu.RUnlock()

	if pool == nil {
		for _, chunkID := range candidates {
			if err := t.CompressChunk(chunkID); err != nil {
				return 0, err
			}
		}
		return len(candidates), nil
	}

	errs := make([]error, len(candidates))
	var wg sync.WaitGroup
	for i, chunkID := range candidates {
		i, chunkID := i, chunkID
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			errs[i] = t.CompressChunk(chunkID)
		}); err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return 0, err
		}
	}
	return len(candidates), nil
}
