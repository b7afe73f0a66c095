package colgo

import (
	"io"
	"time"

	"github.com/hupe1980/colgo/model"
	"github.com/hupe1980/colgo/operators"
	"github.com/hupe1980/colgo/storage"
)

// ScanType is the predicate of a table scan.
type ScanType = operators.ScanType

// Scan predicates, re-exported for convenience.
const (
	OpEquals            = operators.OpEquals
	OpNotEquals         = operators.OpNotEquals
	OpLessThan          = operators.OpLessThan
	OpLessThanEquals    = operators.OpLessThanEquals
	OpGreaterThan       = operators.OpGreaterThan
	OpGreaterThanEquals = operators.OpGreaterThanEquals
)

// DB is the embedded engine facade: a table registry plus the ambient
// configuration (logging, metrics, chunk sizing) shared by the tables
// created through it.
type DB struct {
	manager        *storage.StorageManager
	logger         *Logger
	metrics        MetricsCollector
	chunkSize      model.ChunkOffset
	compactWorkers int
}

// New creates a DB bound to the process-wide storage manager unless
// configured otherwise.
func New(optFns ...Option) *DB {
	opts := options{
		manager:          storage.GetStorageManager(),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &DB{
		manager:        opts.manager,
		logger:         opts.logger,
		metrics:        opts.metricsCollector,
		chunkSize:      opts.targetChunkSize,
		compactWorkers: opts.compactWorkers,
	}
}

// CreateTable creates a table with the given columns and registers it.
func (db *DB) CreateTable(name string, columns ...storage.ColumnDefinition) (*storage.Table, error) {
	table := storage.NewTable(db.chunkSize)
	for _, col := range columns {
		if err := table.AddColumn(col.Name, col.Type); err != nil {
			return nil, err
		}
	}
	if err := db.manager.AddTable(name, table); err != nil {
		return nil, err
	}

	db.logger.Info("table created",
		"table", name,
		"columns", len(columns),
		"target_chunk_size", table.TargetChunkSize(),
	)

	return table, nil
}

// GetTable returns the table registered under the given name.
func (db *DB) GetTable(name string) (*storage.Table, error) {
	return db.manager.GetTable(name)
}

// DropTable removes the table registered under the given name.
func (db *DB) DropTable(name string) error {
	if err := db.manager.DropTable(name); err != nil {
		return err
	}
	db.logger.Info("table dropped", "table", name)
	return nil
}

// HasTable reports whether a table is registered under the given name.
func (db *DB) HasTable(name string) bool {
	return db.manager.HasTable(name)
}

// TableNames returns the registered names in lexicographic order.
func (db *DB) TableNames() []string {
	return db.manager.TableNames()
}

// Print writes one diagnostic line per registered table.
func (db *DB) Print(w io.Writer) error {
	return db.manager.Print(w)
}

// Append adds a row of native Go values to the named table.
func (db *DB) Append(name string, values ...any) error {
	start := time.Now()
	err := db.append(name, values...)
	db.metrics.RecordAppend(time.Since(start), err)
	return err
}

func (db *DB) append(name string, values ...any) error {
	table, err := db.manager.GetTable(name)
	if err != nil {
		return err
	}
	row, err := model.Row(values...)
	if err != nil {
		return err
	}
	return table.Append(row)
}

// Scan filters one column of the named table and returns the reference
// table of matching rows. The search value is wrapped like in Append; its
// type must be coercible to the column type.
func (db *DB) Scan(table, column string, scanType ScanType, searchValue any) (*storage.Table, error) {
	start := time.Now()
	result, err := db.scan(table, column, scanType, searchValue)

	matched := 0
	if result != nil {
		matched = int(result.RowCount())
	}
	db.metrics.RecordScan(matched, time.Since(start), err)
	db.logger.LogScan(table, column, matched, err)

	return result, err
}

func (db *DB) scan(table, column string, scanType ScanType, searchValue any) (*storage.Table, error) {
	value, err := model.NewValue(searchValue)
	if err != nil {
		return nil, err
	}

	getTable := operators.NewGetTableWithManager(db.manager, table)
	if err := getTable.Execute(); err != nil {
		return nil, err
	}
	input, err := getTable.GetOutput()
	if err != nil {
		return nil, err
	}
	columnID, err := input.ColumnIDByName(column)
	if err != nil {
		return nil, err
	}

	scanOp := operators.NewTableScan(getTable, columnID, scanType, value)
	if err := scanOp.Execute(); err != nil {
		return nil, err
	}
	return scanOp.GetOutput()
}

// Compact dictionary-encodes every full chunk of the named table, bounding
// parallelism by the configured number of compaction workers.
func (db *DB) Compact(name string) error {
	start := time.Now()
	chunks, err := db.compact(name)
	db.metrics.RecordCompaction(chunks, time.Since(start), err)
	db.logger.LogCompaction(name, chunks, err)
	return err
}

func (db *DB) compact(name string) (int, error) {
	table, err := db.manager.GetTable(name)
	if err != nil {
		return 0, err
	}

	pool := storage.NewWorkerPool(db.compactWorkers)
	defer pool.Close()

	return table.CompressAllChunks(pool)
}

// Reset clears the underlying table registry. Intended for tests.
func (db *DB) Reset() {
	db.manager.Reset()
}
