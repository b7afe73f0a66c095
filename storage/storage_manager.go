package storage

import (
	"fmt"
	"io"
	"sort"
	"sync"
)

// StorageManager is a table registry mapping names to tables with
// unique-insertion semantics.
//
// The process-wide instance is obtained via GetStorageManager; isolated
// instances for tests or embedded use are created with NewStorageManager.
type StorageManager struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

var (
	managerInstance *StorageManager
	managerOnce     sync.Once
)

// GetStorageManager returns the process-wide storage manager.
func GetStorageManager() *StorageManager {
	managerOnce.Do(func() {
		managerInstance = NewStorageManager()
	})
	return managerInstance
}

// NewStorageManager creates an empty storage manager.
func NewStorageManager() *StorageManager {
	return &StorageManager{tables: make(map[string]*Table)}
}

// AddTable registers a table under the given name.
func (m *StorageManager) AddTable(name string, table *Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tables[name]; exists {
		return &DuplicateNameError{Name: name}
	}
	m.tables[name] = table
	return nil
}

// DropTable removes the table registered under the given name.
func (m *StorageManager) DropTable(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.tables[name]; !exists {
		return &UnknownTableError{Name: name}
	}
	delete(m.tables, name)
	return nil
}

// GetTable returns the table registered under the given name.
func (m *StorageManager) GetTable(name string) (*Table, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	table, exists := m.tables[name]
	if !exists {
		return nil, &UnknownTableError{Name: name}
	}
	return table, nil
}

// HasTable reports whether a table is registered under the given name.
func (m *StorageManager) HasTable(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.tables[name]
	return exists
}

// TableNames returns the registered names in lexicographic order.
func (m *StorageManager) TableNames() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.tables))
	for name := range m.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Print writes one diagnostic line per registered table.
func (m *StorageManager) Print(w io.Writer) error {
	names := m.TableNames()

	if _, err := fmt.Fprintf(w, "%d tables available:\n", len(names)); err != nil {
		return err
	}
	for _, name := range names {
		table, err := m.GetTable(name)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, " - %q [column_count=%d, row_count=%d, chunk_count=%d]\n",
			name, table.ColumnCount(), table.RowCount(), table.ChunkCount())
		if err != nil {
			return err
		}
	}
	return nil
}

// Reset clears the registry. Intended for tests.
func (m *StorageManager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = make(map[string]*Table)
}
