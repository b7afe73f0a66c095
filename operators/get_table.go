package operators

import (
	"github.com/hupe1980/colgo/storage"
)

// GetTable is the leaf operator resolving a table name against a storage
// manager.
type GetTable struct {
	BaseOperator
	manager *storage.StorageManager
	name    string
}

// NewGetTable creates a GetTable against the process-wide storage manager.
func NewGetTable(name string) *GetTable {
	return NewGetTableWithManager(storage.GetStorageManager(), name)
}

// NewGetTableWithManager creates a GetTable against an explicit registry.
func NewGetTableWithManager(manager *storage.StorageManager, name string) *GetTable {
	op := &GetTable{manager: manager, name: name}
	op.BaseOperator = NewBaseOperator(op, nil, nil)
	return op
}

// TableName returns the name the operator resolves.
func (op *GetTable) TableName() string { return op.name }

func (op *GetTable) onExecute() (*storage.Table, error) {
	return op.manager.GetTable(op.name)
}
