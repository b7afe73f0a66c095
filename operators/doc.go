// Package operators implements the physical operators of the engine.
//
// Every operator follows the same lifecycle: Execute runs it exactly once,
// GetOutput returns the materialized table afterwards. GetTable is the leaf
// pulling a table out of the storage manager; TableScan filters one column
// and produces a reference table over the scanned base table.
package operators
