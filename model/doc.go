// Package model defines core types used throughout colgo.
//
// # Identity Types
//
//   - ChunkID: Index of a chunk within a table (uint32)
//   - ChunkOffset: Row index within a chunk (uint32)
//   - ColumnID: Column index within a table (uint16)
//   - ValueID: Index into a dictionary segment's dictionary (uint32)
//   - RowID: Physical row address (ChunkID, ChunkOffset)
//   - PosList: Ordered sequence of RowIDs
//
// # Data Types
//
//   - DataType: Closed enum over the primitive column types
//     (int, long, float, double, string)
//   - Value: Tagged union carrying one primitive, with widening coercion
//
// # Type Dispatch
//
// Resolve is the single bridge from a runtime DataType tag to static Go
// types. Typed code implements TypeVisitor and instantiates its generic
// bodies from the visitor methods:
//
//	var f segmentFactory
//	if err := model.Resolve(dt, &f); err != nil { ... }
package model
