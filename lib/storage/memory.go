package storage

import (
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"boscoin.io/council/lib/errors"
)

type MemoryDB struct {
	sync.RWMutex

	db map[string][]byte
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{
		db: make(map[string][]byte),
	}
}

func (o *MemoryDB) Put(key []byte, value []byte) error {
	o.Lock()
	defer o.Unlock()

	o.db[string(key)] = append([]byte(nil), value...)
	return nil
}

func (o *MemoryDB) Has(key []byte) (bool, error) {
	o.RLock()
	defer o.RUnlock()

	_, ok := o.db[string(key)]
	return ok, nil
}

func (o *MemoryDB) Get(key []byte) ([]byte, error) {
	o.RLock()
	defer o.RUnlock()

	if v, ok := o.db[string(key)]; ok {
		return v, nil
	}
	return nil, errors.StorageRecordDoesNotExist
}

func (o *MemoryDB) Delete(key []byte) error {
	o.Lock()
	defer o.Unlock()

	delete(o.db, string(key))
	return nil
}

func (o *MemoryDB) Write(batch *leveldb.Batch) error {
	o.Lock()
	defer o.Unlock()

	return batch.Replay(memoryReplay{o.db})
}

func (o *MemoryDB) Len() int {
	o.RLock()
	defer o.RUnlock()

	return len(o.db)
}

type memoryReplay struct {
	db map[string][]byte
}

func (r memoryReplay) Put(key, value []byte) {
	r.db[string(key)] = append([]byte(nil), value...)
}

func (r memoryReplay) Delete(key []byte) {
	delete(r.db, string(key))
}
