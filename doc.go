// Package colgo provides an embedded columnar in-memory table engine for Go.
//
// Tables are partitioned into fixed-capacity chunks; each chunk stores one
// segment per column. Filled chunks can be dictionary-compressed in
// parallel, and the table-scan operator evaluates predicates directly on
// the encoded form, emitting positional reference tables instead of copies.
//
// # Quick Start
//
//	db := colgo.New()
//	_, _ = db.CreateTable("users",
//	    storage.ColumnDefinition{Name: "id", Type: model.Int},
//	    storage.ColumnDefinition{Name: "name", Type: model.String},
//	)
//	_ = db.Append("users", 1, "Jane")
//	_ = db.Append("users", 2, "John")
//
//	result, _ := db.Scan("users", "id", colgo.OpGreaterThan, 1)
//	fmt.Println(result.RowCount()) // 1
//
// # Compression
//
//	_ = db.Compact("users") // dictionary-encode all full chunks
//
// Scans are layout-transparent: value, dictionary and reference segments
// yield identical position lists.
//
// The operators package exposes the underlying GetTable and TableScan
// operators for composing scans over intermediate results.
package colgo
