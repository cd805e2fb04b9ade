package storage

import (
	"github.com/vmihailenco/msgpack"

	"boscoin.io/council/lib/errors"
)

func Encode(v interface{}) ([]byte, error) {
	b, err := msgpack.Marshal(v)
	if err != nil {
		return nil, setLevelDBCoreError(err)
	}

	return b, nil
}

func Decode(b []byte, v interface{}) error {
	return setLevelDBCoreError(msgpack.Unmarshal(b, v))
}

// GetValue decodes the value of `key` into `v`; `found` is false when the
// key does not exist.
func GetValue(st Database, key string, v interface{}) (found bool, err error) {
	var b []byte
	if b, err = st.Get([]byte(key)); err != nil {
		if err == errors.StorageRecordDoesNotExist {
			return false, nil
		}
		return
	}

	if err = Decode(b, v); err != nil {
		return
	}

	return true, nil
}

func PutValue(st Database, key string, v interface{}) error {
	b, err := Encode(v)
	if err != nil {
		return err
	}

	return st.Put([]byte(key), b)
}

func Exists(st Database, key string) (bool, error) {
	return st.Has([]byte(key))
}

func Remove(st Database, key string) error {
	return st.Delete([]byte(key))
}
