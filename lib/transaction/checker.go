package transaction

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/common/keypair"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/transaction/operation"
)

type Checker struct {
	common.DefaultChecker

	Config      common.Config
	Transaction Transaction
}

func CheckOperationsCount(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	n := len(checker.Transaction.B.Operations)
	if n < 1 {
		return errors.TransactionEmptyOperations
	}

	limit := checker.Config.OpsLimit
	if limit < 1 {
		limit = operation.Limit
	}
	if n > limit {
		return errors.TransactionHasOverMaxOperations.Clone().SetData("limit", limit)
	}

	return
}

func CheckSource(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)
	if _, err = keypair.Parse(checker.Transaction.B.Source); err != nil {
		return errors.BadPublicAddress.Clone().SetData("source", checker.Transaction.B.Source)
	}

	return
}

func CheckCreated(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)
	if _, err = common.ParseISO8601(checker.Transaction.H.Created); err != nil {
		return errors.TransactionBadCreated.Clone().SetData("created", checker.Transaction.H.Created)
	}

	return
}

func CheckHash(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)
	if checker.Transaction.H.Hash != checker.Transaction.B.MakeHashString() {
		return errors.TransactionHashMismatch
	}

	return
}

func CheckOperations(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	for i, op := range checker.Transaction.B.Operations {
		if err = op.IsWellFormed(checker.Config); err != nil {
			if e, ok := err.(*errors.Error); ok {
				return e.Clone().SetData("operation", i)
			}
			return
		}
	}

	return
}

// CheckPrivileged allows governance operations only from the configured
// governance address. With no governance address nobody can send them.
func CheckPrivileged(c common.Checker, args ...interface{}) (err error) {
	checker := c.(*Checker)

	for i, op := range checker.Transaction.B.Operations {
		if !operation.IsPrivileged(op.H.Type) {
			continue
		}

		governance := checker.Config.GovernanceAddress
		if len(governance) < 1 || checker.Transaction.B.Source != governance {
			return errors.NotPrivileged.Clone().SetData("operation", i)
		}
	}

	return
}
