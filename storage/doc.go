// Package storage implements the chunked column store.
//
// A Table is a schema plus an ordered list of Chunks; a Chunk holds one
// Segment per column, all sharing a row count. Three physical segment
// variants exist:
//
//   - ValueSegment: mutable, append-only typed values
//   - DictionarySegment: immutable, sorted unique dictionary plus a
//     width-adaptive attribute vector of value IDs
//   - ReferenceSegment: positional view over a base table, produced by
//     scan operators
//
// CompressChunk freezes a chunk by dictionary-encoding every column in
// parallel and installing the encoded chunk atomically. The StorageManager
// is the process-wide name-to-table registry.
package storage
