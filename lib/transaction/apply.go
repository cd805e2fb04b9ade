package transaction

import (
	"boscoin.io/council/lib/block"
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/council"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/ledger"
	"boscoin.io/council/lib/storage"
	"boscoin.io/council/lib/transaction/operation"
)

// OperationResult is the outcome of one applied operation. Only `present`
// and `kill-inactive-voter` carry more than their type.
type OperationResult struct {
	Type    operation.OperationType `json:"type"`
	Present *council.PresentResult  `json:"present,omitempty"`
	Kill    *council.KillResult     `json:"kill,omitempty"`
}

// Apply runs every operation of `tx` against `st` as one unit. The first
// failing operation discards everything the transaction wrote.
func Apply(st storage.Database, clock block.Clock, config common.Config, tx Transaction) (results []OperationResult, err error) {
	if err = tx.IsWellFormed(config); err != nil {
		return
	}

	bt := storage.NewBatchBackend(st)
	c := council.New(bt, ledger.NewAccounts(bt, clock), clock)

	for i, op := range tx.B.Operations {
		var result OperationResult
		if result, err = ApplyOperation(c, tx.B.Source, op); err != nil {
			bt.Discard()
			log.Debug("transaction rejected", "hash", tx.GetHash(), "operation", i, "error", err)
			return nil, err
		}
		results = append(results, result)
	}

	if err = bt.Commit(); err != nil {
		return nil, err
	}

	log.Debug("transaction applied", "hash", tx.GetHash(), "operations", len(results))

	return
}

func ApplyOperation(c *council.Council, source string, op operation.Operation) (result OperationResult, err error) {
	result.Type = op.H.Type

	switch body := op.B.(type) {
	case operation.SubmitCandidacy:
		err = c.SubmitCandidacy(source, body.Slot)
	case operation.SetApprovals:
		err = c.SetApprovals(source, body.Approvals, body.Index)
	case operation.RetractVoter:
		err = c.RetractVoter(source, body.Index)
	case operation.KillInactiveVoter:
		var kill council.KillResult
		if kill, err = c.KillInactiveVoter(
			source,
			body.SourceIndex,
			body.Target,
			body.TargetIndex,
			body.AssumedVoteIndex,
		); err == nil {
			result.Kill = &kill
		}
	case operation.Present:
		var present council.PresentResult
		if present, err = c.Present(source, body.Candidate, body.Total, body.Index); err == nil {
			result.Present = &present
		}
	case operation.SetDesiredSeats:
		err = c.SetDesiredSeats(body.Seats)
	case operation.RemoveMember:
		err = c.RemoveMember(body.Member)
	case operation.SetPresentationDuration:
		err = c.SetPresentationDuration(body.Duration)
	case operation.SetTermDuration:
		err = c.SetTermDuration(body.Duration)
	default:
		err = errors.UnknownOperationType
	}

	return
}
