package runner

import (
	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/storage"
)

// MakeTestRunner returns a runner at block 0 over a genesis made from
// `council.TestParams` and `council.TestAccounts`.
func MakeTestRunner(conf common.Config) (*Runner, council.TestAccounts, *storage.LevelDBBackend) {
	st := storage.NewTestStorage()
	height := block.NewHeight(0)
	accounts := council.NewTestAccounts()

	c := council.New(st, ledger.NewAccounts(st, height), height)
	if err := c.Genesis(council.GenesisConfig{
		Params:   council.TestParams(),
		Accounts: accounts.Genesis(),
	}); err != nil {
		panic(err)
	}

	r, err := NewRunner(st, conf)
	if err != nil {
		panic(err)
	}

	return r, accounts, st
}
