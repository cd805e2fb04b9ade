package council

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

// KillResult tells which account `KillInactiveVoter` removed. `Valid` is
// false when the caller was removed instead of the target.
type KillResult struct {
	Removed string `json:"removed"`
	Valid   bool   `json:"valid"`
}

func (c *Council) requireNoWindow() error {
	active, err := c.PresentationActive()
	if err != nil {
		return err
	}
	if active {
		return errors.WindowActive
	}

	return nil
}

func (c *Council) requireVoteIndex(index VoteIndex) error {
	current, err := c.VoteIndex()
	if err != nil {
		return err
	}
	if index != current {
		return errors.StaleVoteIndex
	}

	return nil
}

// SetApprovals replaces the approvals of `caller`. A new voter pays the
// voting bond and is appended to the voter list.
func (c *Council) SetApprovals(caller string, approvals []bool, index VoteIndex) error {
	if err := c.requireNoWindow(); err != nil {
		return err
	}
	if err := c.requireVoteIndex(index); err != nil {
		return err
	}

	_, isVoter, err := c.VoterLastActive(caller)
	if err != nil {
		return err
	}

	if !isVoter {
		bond, err := c.VotingBond()
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
		voters, err := c.Voters()
		if err != nil {
			return err
		}

		if err = c.ledger.Withdraw(caller, bond); err != nil {
			return err
		}
		if err = storage.PutValue(c.st, VoterListKey, append(voters, caller)); err != nil {
			return err
		}
		log.Debug("new voter", "voter", caller, "voters", len(voters)+1)
	}

	if err = storage.PutValue(c.st, voterApprovalsKey(caller), approvals); err != nil {
		return err
	}

	return storage.PutValue(c.st, voterLastActiveKey(caller), index)
}

// RetractVoter removes `caller`, found at `index` of the voter list, and
// returns the voting bond.
func (c *Council) RetractVoter(caller string, index uint32) error {
	if err := c.requireNoWindow(); err != nil {
		return err
	}

	_, isVoter, err := c.VoterLastActive(caller)
	if err != nil {
		return err
	}
	if !isVoter {
		return errors.NotVoter
	}

	voters, err := c.Voters()
	if err != nil {
		return err
	}
	if !atPosition(voters, index, caller) {
		return errors.PositionMismatch
	}

	refunded, err := c.refundedBalance(caller)
	if err != nil {
		return err
	}

	if err = c.removeVoter(caller, int(index), voters); err != nil {
		return err
	}

	return c.ledger.SetBalance(caller, refunded)
}

// KillInactiveVoter prunes `target`, a voter not active since before
// `assumedIndex`. The pruning is valid when none of the candidates the
// target approved, looked up at the current slots, registered at or before
// its last activity. A valid pruning removes the target and pays the voting
// bond to `caller`; otherwise `caller` is removed without refund.
func (c *Council) KillInactiveVoter(
	caller string,
	callerIndex uint32,
	target string,
	targetIndex uint32,
	assumedIndex VoteIndex,
) (result KillResult, err error) {
	if err = c.requireNoWindow(); err != nil {
		return
	}

	var isVoter bool
	if _, isVoter, err = c.VoterLastActive(caller); err != nil {
		return
	} else if !isVoter {
		err = errors.NotVoter.Clone().SetData("voter", caller)
		return
	}

	var lastActive VoteIndex
	if lastActive, isVoter, err = c.VoterLastActive(target); err != nil {
		return
	} else if !isVoter {
		err = errors.NotVoter.Clone().SetData("voter", target)
		return
	}

	if err = c.requireVoteIndex(assumedIndex); err != nil {
		return
	}
	if lastActive >= assumedIndex {
		err = errors.TargetNotStale
		return
	}

	var voters []string
	if voters, err = c.Voters(); err != nil {
		return
	}
	if !atPosition(voters, callerIndex, caller) || !atPosition(voters, targetIndex, target) {
		err = errors.PositionMismatch
		return
	}

	var valid bool
	if valid, err = c.isStale(target, lastActive); err != nil {
		return
	}

	if !valid {
		if err = c.removeVoter(caller, int(callerIndex), voters); err != nil {
			return
		}
		log.Debug("invalid pruning; caller removed", "caller", caller, "target", target)

		result = KillResult{Removed: caller, Valid: false}
		return
	}

	var refunded common.Amount
	if refunded, err = c.refundedBalance(caller); err != nil {
		return
	}
	if err = c.removeVoter(target, int(targetIndex), voters); err != nil {
		return
	}
	if err = c.ledger.SetBalance(caller, refunded); err != nil {
		return
	}
	log.Debug("inactive voter removed", "caller", caller, "target", target)

	result = KillResult{Removed: target, Valid: true}
	return
}

// isStale reports whether every candidate approved by `voter`, at the
// current slot contents, registered after `lastActive`.
func (c *Council) isStale(voter string, lastActive VoteIndex) (bool, error) {
	approvals, err := c.ApprovalsOf(voter)
	if err != nil {
		return false, err
	}
	candidates, err := c.Candidates()
	if err != nil {
		return false, err
	}

	for slot, approved := range approvals {
		if !approved || !candidates.Occupied(slot) {
			continue
		}

		info, found, err := c.CandidateRegInfo(candidates[slot])
		if err != nil {
			return false, err
		}
		if !found {
			return false, errors.NotCandidate.Clone().SetData("candidate", candidates[slot])
		}
		if info.VoteIndex <= lastActive {
			return false, nil
		}
	}

	return true, nil
}

func (c *Council) refundedBalance(address string) (common.Amount, error) {
	bond, err := c.VotingBond()
	if err != nil {
		return 0, err
	}
	balance, err := c.ledger.BalanceOf(address)
	if err != nil {
		return 0, err
	}

	return balance.Add(bond)
}

// removeVoter swaps the voter at `index` with the last one, so the positions
// of the other voters can change.
func (c *Council) removeVoter(voter string, index int, voters []string) (err error) {
	last := len(voters) - 1
	voters[index] = voters[last]
	voters = voters[:last]

	if err = storage.PutValue(c.st, VoterListKey, voters); err != nil {
		return
	}
	if err = storage.Remove(c.st, voterApprovalsKey(voter)); err != nil {
		return
	}

	return storage.Remove(c.st, voterLastActiveKey(voter))
}

func atPosition(voters []string, index uint32, address string) bool {
	return int(index) < len(voters) && voters[index] == address
}
