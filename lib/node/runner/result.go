package runner

import (
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/transaction"
)

const (
	StatusPending  = "pending"
	StatusApplied  = "applied"
	StatusRejected = "rejected"
)

// TransactionResult is what a node knows about a transaction it received.
type TransactionResult struct {
	Hash       string                        `json:"hash"`
	Source     string                        `json:"source"`
	Status     string                        `json:"status"`
	Height     uint64                        `json:"height,omitempty"`
	Error      *errors.Error                 `json:"error,omitempty"`
	Operations []transaction.OperationResult `json:"operations,omitempty"`
}

func (r TransactionResult) Applied() bool {
	return r.Status == StatusApplied
}

// BlockResult is the outcome of one processed block.
type BlockResult struct {
	Height       uint64              `json:"height"`
	Transactions []TransactionResult `json:"transactions"`
	Report       council.BlockReport `json:"report"`
}

func toError(err error) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}

	return errors.StorageCoreError.Clone().SetData("error", err.Error())
}
