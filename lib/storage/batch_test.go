package storage

import (
	"testing"

	"github.com/stretchr/testify/require"

	"boscoin.io/council/lib/errors"
)

func TestBatchBackendPut(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := "showme"
	input := []string{"bob", "", "eve"}

	bt := NewBatchBackend(st)

	{ // `Put` in BatchBackend, but it is not stored in LevelDBBackend
		require.NoError(t, PutValue(bt, key, input))

		var fetched []string
		found, err := GetValue(st, key, &fetched)
		require.NoError(t, err)
		require.False(t, found)
	}

	{ // `Get` must return the value of `Put` in BatchBackend
		var fetched []string
		found, err := GetValue(bt, key, &fetched)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, input, fetched)
	}

	{ // `Commit` batch, it must be stored in LevelDBBackend
		require.NoError(t, bt.Commit())
		require.Equal(t, 0, bt.Len())

		var fetched []string
		found, err := GetValue(st, key, &fetched)
		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, input, fetched)
	}
}

func TestBatchBackendDelete(t *testing.T) {
	st := NewTestStorage()
	defer st.Close()

	key := []byte("showme")
	require.NoError(t, st.Put(key, []byte("killme")))

	bt := NewBatchBackend(st)
	require.NoError(t, bt.Delete(key))

	{ // deleted in BatchBackend only
		exists, _ := bt.Has(key)
		require.False(t, exists)
		_, err := bt.Get(key)
		require.Equal(t, errors.StorageRecordDoesNotExist, err)

		exists, _ = st.Has(key)
		require.True(t, exists)
	}

	{ // put again after delete
		require.NoError(t, bt.Put(key, []byte("findme")))
		b, err := bt.Get(key)
		require.NoError(t, err)
		require.Equal(t, []byte("findme"), b)
	}

	require.NoError(t, bt.Delete(key))
	require.NoError(t, bt.Commit())

	exists, _ := st.Has(key)
	require.False(t, exists)
}

func TestBatchBackendDiscard(t *testing.T) {
	db := NewMemoryDB()
	require.NoError(t, db.Put([]byte("vote-index"), []byte{0}))

	bt := NewBatchBackend(db)
	require.NoError(t, bt.Put([]byte("vote-index"), []byte{1}))
	require.NoError(t, bt.Put([]byte("voters"), []byte{2}))
	bt.Discard()

	require.NoError(t, bt.Commit())

	b, err := db.Get([]byte("vote-index"))
	require.NoError(t, err)
	require.Equal(t, []byte{0}, b)

	exists, _ := db.Has([]byte("voters"))
	require.False(t, exists)
}

func TestBatchBackendNested(t *testing.T) {
	db := NewMemoryDB()

	outer := NewBatchBackend(db)
	inner := NewBatchBackend(outer)

	require.NoError(t, inner.Put([]byte("a"), []byte("1")))
	require.NoError(t, inner.Commit())

	exists, _ := outer.Has([]byte("a"))
	require.True(t, exists)
	exists, _ = db.Has([]byte("a"))
	require.False(t, exists)

	require.NoError(t, outer.Commit())
	exists, _ = db.Has([]byte("a"))
	require.True(t, exists)
}
