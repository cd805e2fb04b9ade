package council

import (
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

// SubmitCandidacy registers `caller` at `slot` and takes the candidacy bond.
// `slot` must be the append position or a hole of the candidate list.
func (c *Council) SubmitCandidacy(caller string, slot uint32) error {
	if is, err := c.IsACandidate(caller); err != nil {
		return err
	} else if is {
		return errors.AlreadyCandidate
	}

	bond, err := c.CandidacyBond()
	if err != nil {
		return err
	}
	balance, err := c.ledger.BalanceOf(caller)
	if err != nil {
		return err
	}
	if balance < bond {
		return errors.InsufficientBalance
	}
	if liquid, err := c.ledger.IsLiquid(caller); err != nil {
		return err
	} else if !liquid {
		return errors.FundsLocked
	}

	count, err := c.CandidateCount()
	if err != nil {
		return err
	}
	candidates, err := c.Candidates()
	if err != nil {
		return err
	}

	s := int(slot)
	appending := s == int(count) && int(count) == len(candidates)
	if !appending && !candidates.IsHole(s) {
		return errors.SlotConflict
	}

	index, err := c.VoteIndex()
	if err != nil {
		return err
	}

	if err = c.ledger.Withdraw(caller, bond); err != nil {
		return err
	}
	if err = storage.PutValue(c.st, CandidateListKey, candidates.Place(s, caller)); err != nil {
		return err
	}
	if err = storage.PutValue(c.st, CandidateCountKey, count+1); err != nil {
		return err
	}
	info := RegisterInfo{VoteIndex: index, Slot: slot}
	if err = storage.PutValue(c.st, candidateRegistrationKey(caller), info); err != nil {
		return err
	}

	log.Debug("candidacy submitted", "candidate", caller, "slot", slot, "vote-index", index)

	return nil
}
