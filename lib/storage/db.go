package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
)

// Database is the byte keyed store every component persists through.
// `Get` returns `errors.StorageRecordDoesNotExist` when the key is missing.
type Database interface {
	Has(key []byte) (bool, error)
	Get(key []byte) ([]byte, error)
	Put(key []byte, value []byte) error
	Delete(key []byte) error

	// Write applies every operation of the batch at once.
	Write(batch *leveldb.Batch) error
}
