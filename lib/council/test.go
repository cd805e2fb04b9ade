package council

import (
	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/storage"
)

// TestParams are small enough to run a whole election in a few blocks.
func TestParams() Params {
	return Params{
		CandidacyBond:        common.Amount(9),
		VotingBond:           common.Amount(3),
		PresentSlashPerVoter: common.Amount(1),
		CarryCount:           2,
		PresentationDuration: 2,
		VotingPeriod:         4,
		TermDuration:         5,
		DesiredSeats:         2,
	}
}

type TestAccounts struct {
	Alice   string
	Bob     string
	Charlie string
	Dave    string
	Eve     string
	Ferdie  string
}

func NewTestAccounts() TestAccounts {
	return TestAccounts{
		Alice:   keypair.Random().Address(),
		Bob:     keypair.Random().Address(),
		Charlie: keypair.Random().Address(),
		Dave:    keypair.Random().Address(),
		Eve:     keypair.Random().Address(),
		Ferdie:  keypair.Random().Address(),
	}
}

// Genesis gives 10, 20, .. 60 to alice, bob, .. ferdie.
func (a TestAccounts) Genesis() []GenesisAccount {
	return []GenesisAccount{
		{Address: a.Alice, Balance: common.Amount(10)},
		{Address: a.Bob, Balance: common.Amount(20)},
		{Address: a.Charlie, Balance: common.Amount(30)},
		{Address: a.Dave, Balance: common.Amount(40)},
		{Address: a.Eve, Balance: common.Amount(50)},
		{Address: a.Ferdie, Balance: common.Amount(60)},
	}
}

type TestEnv struct {
	Storage  *storage.LevelDBBackend
	Height   *block.Height
	Ledger   *ledger.Accounts
	Council  *Council
	Accounts TestAccounts
}

// NewTestEnv makes an initialized election on a memory storage at block 1.
func NewTestEnv() *TestEnv {
	return NewTestEnvWith(nil)
}

// NewTestEnvWith lets `edit` change the genesis before it is written.
func NewTestEnvWith(edit func(a TestAccounts, config *GenesisConfig)) *TestEnv {
	st := storage.NewTestStorage()
	height := block.NewHeight(1)
	accounts := ledger.NewAccounts(st, height)

	env := &TestEnv{
		Storage:  st,
		Height:   height,
		Ledger:   accounts,
		Council:  New(st, accounts, height),
		Accounts: NewTestAccounts(),
	}

	config := GenesisConfig{
		Params:   TestParams(),
		Accounts: env.Accounts.Genesis(),
	}
	if edit != nil {
		edit(env.Accounts, &config)
	}
	if err := env.Council.Genesis(config); err != nil {
		panic(err)
	}

	return env
}

func (env *TestEnv) Close() {
	env.Storage.Close()
}

func (env *TestEnv) Balance(address string) common.Amount {
	balance, err := env.Ledger.BalanceOf(address)
	if err != nil {
		panic(err)
	}

	return balance
}
