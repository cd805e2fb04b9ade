package transaction

import (
	"boscoin.io/council/lib/transaction/operation"
)

func MakeTestTransaction(source string, nonce uint64, ops ...operation.Operation) Transaction {
	tx, err := NewTransaction(source, nonce, ops...)
	if err != nil {
		panic(err)
	}

	return tx
}
