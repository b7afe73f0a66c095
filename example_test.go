package colgo_test

import (
	"fmt"
	"os"

	"github.com/hupe1980/colgo"
	"github.com/hupe1980/colgo/model"
	"github.com/hupe1980/colgo/storage"
)

func Example() {
	db := colgo.New(
		colgo.WithStorageManager(storage.NewStorageManager()),
		colgo.WithTargetChunkSize(2),
	)

	_, err := db.CreateTable("users",
		storage.ColumnDefinition{Name: "id", Type: model.Int},
		storage.ColumnDefinition{Name: "name", Type: model.String},
	)
	if err != nil {
		panic(err)
	}

	_ = db.Append("users", 1, "Jane")
	_ = db.Append("users", 2, "John")
	_ = db.Append("users", 3, "Joan")

	if err := db.Compact("users"); err != nil {
		panic(err)
	}

	result, err := db.Scan("users", "id", colgo.OpGreaterThan, 1)
	if err != nil {
		panic(err)
	}

	fmt.Println("matched:", result.RowCount())
	_ = db.Print(os.Stdout)

	// Output:
	// matched: 2
	// 1 tables available:
	//  - "users" [column_count=2, row_count=3, chunk_count=2]
}
