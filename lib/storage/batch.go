package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"boscoin.io/council/lib/errors"
)

// BatchBackend buffers every write on top of `core`; reads see the buffered
// writes first. Nothing reaches `core` until `Commit`, and `Discard` drops
// the buffer, so a failed operation leaves `core` untouched.
type BatchBackend struct {
	sync.RWMutex

	core  Database
	batch *leveldb.Batch

	inserted map[string][]byte
	deleted  map[string]struct{}
}

func NewBatchBackend(core Database) *BatchBackend {
	return &BatchBackend{
		core:     core,
		batch:    &leveldb.Batch{},
		inserted: map[string][]byte{},
		deleted:  map[string]struct{}{},
	}
}

func (bb *BatchBackend) convertKey(key []byte) string {
	return string(key)
}

func (bb *BatchBackend) Has(key []byte) (bool, error) {
	bb.RLock()
	defer bb.RUnlock()

	k := bb.convertKey(key)
	if _, found := bb.inserted[k]; found {
		return true, nil
	}
	if _, found := bb.deleted[k]; found {
		return false, nil
	}

	return bb.core.Has(key)
}

func (bb *BatchBackend) Get(key []byte) (b []byte, err error) {
	bb.RLock()
	defer bb.RUnlock()

	k := bb.convertKey(key)

	var found bool
	if b, found = bb.inserted[k]; found {
		return
	}
	if _, found = bb.deleted[k]; found {
		return nil, errors.StorageRecordDoesNotExist
	}

	return bb.core.Get(key)
}

func (bb *BatchBackend) Put(key []byte, v []byte) error {
	bb.Lock()
	defer bb.Unlock()

	bb.put(key, v)

	return nil
}

func (bb *BatchBackend) put(key []byte, v []byte) {
	k := bb.convertKey(key)
	v = append([]byte(nil), v...)

	delete(bb.deleted, k)
	bb.inserted[k] = v
	bb.batch.Put(key, v)
}

func (bb *BatchBackend) Delete(key []byte) error {
	bb.Lock()
	defer bb.Unlock()

	bb.remove(key)

	return nil
}

func (bb *BatchBackend) remove(key []byte) {
	k := bb.convertKey(key)

	delete(bb.inserted, k)
	bb.deleted[k] = struct{}{}
	bb.batch.Delete(key)
}

// Write appends the operations of `batch` to the buffer; they are written
// with the rest at `Commit`.
func (bb *BatchBackend) Write(batch *leveldb.Batch) error {
	bb.Lock()
	defer bb.Unlock()

	return batch.Replay(batchReplay{bb})
}

func (bb *BatchBackend) Discard() {
	bb.Lock()
	defer bb.Unlock()

	bb.clear()
}

func (bb *BatchBackend) Commit() (err error) {
	bb.Lock()
	defer bb.Unlock()

	if bb.batch.Len() < 1 {
		return
	}

	if err = bb.core.Write(bb.batch); err != nil {
		return
	}

	bb.clear()

	return
}

// Len is the number of buffered operations.
func (bb *BatchBackend) Len() int {
	bb.RLock()
	defer bb.RUnlock()

	return bb.batch.Len()
}

func (bb *BatchBackend) clear() {
	bb.batch = &leveldb.Batch{}
	bb.inserted = map[string][]byte{}
	bb.deleted = map[string]struct{}{}
}

type batchReplay struct {
	bb *BatchBackend
}

func (r batchReplay) Put(key, value []byte) {
	r.bb.put(key, value)
}

func (r batchReplay) Delete(key []byte) {
	r.bb.remove(key)
}
