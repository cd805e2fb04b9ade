package resource

import (
	"strings"

	"github.com/nvellon/hal"

	"boscoin.io/council/lib/node/runner"
)

// Transaction is the status of a received transaction.
type Transaction struct {
	result runner.TransactionResult
}

func NewTransaction(result runner.TransactionResult) *Transaction {
	return &Transaction{result: result}
}

func (t Transaction) GetMap() hal.Entry {
	m := hal.Entry{
		"hash":   t.result.Hash,
		"source": t.result.Source,
		"status": t.result.Status,
	}
	if t.result.Status != runner.StatusPending {
		m["height"] = t.result.Height
	}
	if t.result.Error != nil {
		m["error"] = t.result.Error
	}
	if len(t.result.Operations) > 0 {
		m["operations"] = t.result.Operations
	}

	return m
}

func (t Transaction) Resource() *hal.Resource {
	r := hal.NewResource(t, t.LinkSelf())
	r.AddLink("account", hal.NewLink(strings.Replace(URLAccounts, "{id}", t.result.Source, -1)))
	return r
}

func (t Transaction) LinkSelf() string {
	return strings.Replace(URLTransactions, "{id}", t.result.Hash, -1)
}
