package ledger

import (
	"fmt"

	"boscoin.io/council/lib/common"
)

const AccountPrefixAddress string = "ledger.account."

// Account is the balance record of an address. The funds are locked until
// the block `LockedUntil`.
type Account struct {
	Address     string        `json:"address"`
	Balance     common.Amount `json:"balance"`
	LockedUntil uint64        `json:"locked_until"`
}

func NewAccount(address string, balance common.Amount) *Account {
	return &Account{
		Address: address,
		Balance: balance,
	}
}

func (a *Account) String() string {
	return string(common.MustMarshalJSON(a))
}

// IsLiquid reports whether the funds can be moved at block `height`.
func (a *Account) IsLiquid(height uint64) bool {
	return a.LockedUntil <= height
}

// Deposit adds fund to the account.
func (a *Account) Deposit(fund common.Amount) error {
	if val, err := a.Balance.Add(fund); err != nil {
		return err
	} else {
		a.Balance = val
	}
	return nil
}

// Withdraw removes fund from the account.
func (a *Account) Withdraw(fund common.Amount) error {
	if val, err := a.Balance.Sub(fund); err != nil {
		return err
	} else {
		a.Balance = val
	}
	return nil
}

func GetAccountKey(address string) string {
	return fmt.Sprintf("%s%s", AccountPrefixAddress, address)
}
