package storage

import (
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	leveldbStorage "github.com/syndtr/goleveldb/leveldb/storage"

	"boscoin.io/council/lib/errors"
)

type LevelDBBackend struct {
	DB *leveldb.DB
}

func setLevelDBCoreError(err error) error {
	if err == nil {
		return nil
	}

	return errors.NewError(
		errors.StorageCoreError.Code,
		fmt.Sprintf("%s: %s", errors.StorageCoreError.Message, err.Error()),
	)
}

func NewLevelDBBackend(config *Config) (st *LevelDBBackend, err error) {
	st = &LevelDBBackend{}
	if err = st.Init(config); err != nil {
		return nil, err
	}

	return
}

func (st *LevelDBBackend) Init(config *Config) (err error) {
	var db *leveldb.DB

	switch config.Scheme {
	case "file":
		if db, err = leveldb.OpenFile(config.Path, nil); err != nil {
			err = setLevelDBCoreError(err)
			return
		}
	case "memory":
		sto := leveldbStorage.NewMemStorage()
		if db, err = leveldb.Open(sto, nil); err != nil {
			err = setLevelDBCoreError(err)
			return
		}
	default:
		return errors.StorageBadConfig.Clone().SetData("scheme", config.Scheme)
	}

	st.DB = db

	return
}

func (st *LevelDBBackend) Close() error {
	return st.DB.Close()
}

func (st *LevelDBBackend) Has(k []byte) (bool, error) {
	ok, err := st.DB.Has(k, nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return false, nil
		}
		return false, setLevelDBCoreError(err)
	}

	return ok, nil
}

func (st *LevelDBBackend) Get(k []byte) (b []byte, err error) {
	if b, err = st.DB.Get(k, nil); err != nil {
		if err == leveldb.ErrNotFound {
			err = errors.StorageRecordDoesNotExist
			return
		}
		err = setLevelDBCoreError(err)
	}

	return
}

func (st *LevelDBBackend) Put(k []byte, v []byte) error {
	return setLevelDBCoreError(st.DB.Put(k, v, nil))
}

func (st *LevelDBBackend) Delete(k []byte) error {
	return setLevelDBCoreError(st.DB.Delete(k, nil))
}

func (st *LevelDBBackend) Write(batch *leveldb.Batch) error {
	return setLevelDBCoreError(st.DB.Write(batch, nil))
}
