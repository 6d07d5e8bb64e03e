// groqchat/sources/badgerdb/database.go
package badgerdb

import (
	"github.com/dgraph-io/badger/v4"
)

// Open opens (or creates) the BadgerDB directory at path.
func Open(path string) (*badger.DB, error) {
	return badger.Open(badger.DefaultOptions(path).WithLoggingLevel(badger.ERROR))
}
