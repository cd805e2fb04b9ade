package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/council/lib/ledger"
)

type Account struct {
	la *ledger.Account
}

func NewAccount(la *ledger.Account) *Account {
	a := &Account{
		la: la,
	}
	return a
}

func (a Account) GetMap() hal.Entry {
	return hal.Entry{
		"address":      a.la.Address,
		"balance":      a.la.Balance,
		"locked_until": a.la.LockedUntil,
	}
}

func (a Account) Resource() *hal.Resource {
	address := a.la.Address

	r := hal.NewResource(a, a.LinkSelf())
	r.AddLink("candidate", hal.NewLink(strings.Replace(URLCandidate, "{id}", address, -1)))
	r.AddLink("voter", hal.NewLink(strings.Replace(URLVoter, "{id}", address, -1)))
	return r
}

func (a Account) LinkSelf() string {
	return strings.Replace(URLAccounts, "{id}", a.la.Address, -1)
}
