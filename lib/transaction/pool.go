package transaction

import (
	"container/list"
	"sync"

	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/metrics"
)

// Pool keeps the pending transactions in arrival order until a block takes
// them.
type Pool struct {
	sync.RWMutex

	pool map[ /* Transaction.GetHash() */ string]Transaction

	hashList *list.List // Transaction.GetHash()
	hashMap  map[ /* Transaction.GetHash() */ string]*list.Element

	limit int
}

func NewPool(limit int) *Pool {
	if limit <= 0 {
		limit = common.DefaultTxPoolLimit
	}
	return &Pool{
		pool:     map[string]Transaction{},
		hashList: list.New(),
		hashMap:  make(map[string]*list.Element),
		limit:    limit,
	}
}

func (tp *Pool) Len() int {
	tp.RLock()
	defer tp.RUnlock()

	return len(tp.pool)
}

func (tp *Pool) Has(hash string) bool {
	tp.RLock()
	defer tp.RUnlock()

	_, found := tp.pool[hash]
	return found
}

func (tp *Pool) Get(hash string) (Transaction, bool) {
	tp.RLock()
	defer tp.RUnlock()

	tx, found := tp.pool[hash]
	return tx, found
}

func (tp *Pool) Add(tx Transaction) error {
	tp.Lock()
	defer tp.Unlock()

	txHash := tx.GetHash()
	if _, found := tp.pool[txHash]; found {
		metrics.TxPool.AddRejected(metrics.TxPoolDuplicated)
		return errors.TransactionAlreadyExistsInPool
	}

	if len(tp.pool) >= tp.limit {
		metrics.TxPool.AddRejected(metrics.TxPoolFull)
		return errors.TransactionPoolFull
	}

	tp.pool[txHash] = tx
	tp.hashMap[txHash] = tp.hashList.PushBack(txHash)

	metrics.TxPool.AddSize(1)

	return nil
}

func (tp *Pool) Remove(hashes ...string) {
	if len(hashes) < 1 {
		return
	}

	tp.Lock()
	defer tp.Unlock()

	var num int
	for _, hash := range hashes {
		if _, found := tp.pool[hash]; !found {
			continue
		}

		delete(tp.pool, hash)
		if e, ok := tp.hashMap[hash]; ok {
			tp.hashList.Remove(e)
			delete(tp.hashMap, hash)
		}
		num++
	}

	metrics.TxPool.AddSize(-num)
}

// AvailableTransactions returns at most `transactionLimit` hashes, oldest
// first.
func (tp *Pool) AvailableTransactions(transactionLimit int) []string {
	if transactionLimit < 1 {
		return nil
	}

	tp.RLock()
	defer tp.RUnlock()

	var ret []string
	for e := tp.hashList.Front(); e != nil && len(ret) < transactionLimit; e = e.Next() {
		if hash, ok := e.Value.(string); ok {
			ret = append(ret, hash)
		}
	}

	return ret
}
