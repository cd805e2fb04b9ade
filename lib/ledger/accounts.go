package ledger

import (
	"fmt"

	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/observer"
	"boscoin.io/council/lib/storage"
)

// Accounts is the balance service of the election. An address without a
// record has a zero, liquid balance.
type Accounts struct {
	st    storage.Database
	clock block.Clock
}

func NewAccounts(st storage.Database, clock block.Clock) *Accounts {
	return &Accounts{st: st, clock: clock}
}

func (l *Accounts) Exists(address string) (bool, error) {
	return storage.Exists(l.st, GetAccountKey(address))
}

func (l *Accounts) Get(address string) (*Account, error) {
	var account Account
	found, err := storage.GetValue(l.st, GetAccountKey(address), &account)
	if err != nil {
		return nil, err
	}
	if !found {
		return NewAccount(address, 0), nil
	}

	return &account, nil
}

func (l *Accounts) Save(account *Account) error {
	if err := storage.PutValue(l.st, GetAccountKey(account.Address), account); err != nil {
		return err
	}

	observer.AccountObserver.Trigger(
		fmt.Sprintf("%s address-%s", observer.EventAccountSaved, account.Address),
		account,
	)

	return nil
}

func (l *Accounts) BalanceOf(address string) (common.Amount, error) {
	account, err := l.Get(address)
	if err != nil {
		return 0, err
	}

	return account.Balance, nil
}

func (l *Accounts) SetBalance(address string, balance common.Amount) error {
	account, err := l.Get(address)
	if err != nil {
		return err
	}
	account.Balance = balance

	return l.Save(account)
}

// Deposit adds `fund` to the balance of `address`.
func (l *Accounts) Deposit(address string, fund common.Amount) error {
	account, err := l.Get(address)
	if err != nil {
		return err
	}
	if err = account.Deposit(fund); err != nil {
		return err
	}

	return l.Save(account)
}

// Withdraw takes `fund` from the balance of `address`. It fails with
// `AccountBalanceUnderZero` and saves nothing when the balance is short.
func (l *Accounts) Withdraw(address string, fund common.Amount) error {
	account, err := l.Get(address)
	if err != nil {
		return err
	}
	if err = account.Withdraw(fund); err != nil {
		return err
	}

	return l.Save(account)
}

func (l *Accounts) IsLiquid(address string) (bool, error) {
	account, err := l.Get(address)
	if err != nil {
		return false, err
	}

	return account.IsLiquid(l.clock.CurrentBlock()), nil
}

// Lock makes the funds of `address` unmovable until the block `until`.
func (l *Accounts) Lock(address string, until uint64) error {
	account, err := l.Get(address)
	if err != nil {
		return err
	}
	account.LockedUntil = until

	return l.Save(account)
}
