// Package testutil provides testing utilities for colgo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for building populated tables and typed segments
// without threading errors through every fixture.
//
// # Table Fixtures
//
//	table := testutil.MustBuildTable(2,
//	    []storage.ColumnDefinition{
//	        {Name: "col_1", Type: model.Int},
//	        {Name: "col_2", Type: model.String},
//	    },
//	    testutil.Rows{{4, "Hello,"}, {6, "world"}, {3, "!"}},
//	)
package testutil
