package council

import (
	"boscoin.io/council/lib/common"
	"boscoin.io/council/lib/errors"
	"boscoin.io/council/lib/storage"
)

// PresentResult is the outcome of an admitted presentation. A rejected one
// slashes the presenter; `Reason` is `errors.TotalMismatch` or
// `errors.DuplicatePresentation`.
type PresentResult struct {
	Accepted bool          `json:"accepted"`
	Slashed  common.Amount `json:"slashed"`
	Reason   *errors.Error `json:"reason,omitempty"`
}

// Present claims that `candidate` is approved by `claimed` of the stake
// snapshot. A verified claim takes the lowest place of the leaderboard.
// Otherwise the presenter pays `present_slash_per_voter` for every voter.
func (c *Council) Present(caller, candidate string, claimed common.Amount, index VoteIndex) (result PresentResult, err error) {
	var active bool
	if active, err = c.PresentationActive(); err != nil {
		return
	} else if !active {
		err = errors.WindowInactive
		return
	}
	if err = c.requireVoteIndex(index); err != nil {
		return
	}

	var balance, slash common.Amount
	if balance, err = c.ledger.BalanceOf(caller); err != nil {
		return
	}
	var voters []string
	if voters, err = c.Voters(); err != nil {
		return
	}
	if slash, err = c.PresentSlashPerVoter(); err != nil {
		return
	}
	var punishment common.Amount
	if punishment, err = slash.MultUint64(uint64(len(voters))); err != nil {
		return
	}
	if balance < punishment {
		err = errors.InsufficientBalance
		return
	}

	var leaderboard Leaderboard
	if leaderboard, err = c.Leaderboard(); err != nil {
		return
	}
	if len(leaderboard) < 1 || claimed <= leaderboard.Lowest() {
		err = errors.ClaimTooLow
		return
	}

	var info RegisterInfo
	var found bool
	if info, found, err = c.CandidateRegInfo(candidate); err != nil {
		return
	} else if !found {
		err = errors.NotCandidate
		return
	}

	var actual common.Amount
	if actual, err = c.actualTotal(voters, info); err != nil {
		return
	}

	var reason *errors.Error
	if claimed != actual {
		reason = errors.TotalMismatch
	} else if leaderboard.Contains(candidate) {
		reason = errors.DuplicatePresentation
	}

	if reason == nil {
		leaderboard.Insert(LeaderboardEntry{Stake: claimed, Candidate: candidate})
		if err = storage.PutValue(c.st, WindowLeaderboardKey, leaderboard); err != nil {
			return
		}
		log.Debug("presentation accepted", "presenter", caller, "candidate", candidate, "total", claimed)

		result = PresentResult{Accepted: true}
		return
	}

	if err = c.ledger.Withdraw(caller, punishment); err != nil {
		return
	}
	log.Debug(
		"presentation rejected; slashed",
		"presenter", caller,
		"candidate", candidate,
		"claimed", claimed,
		"slashed", punishment,
		"reason", reason.Message,
	)

	result = PresentResult{Slashed: punishment, Reason: reason}
	return
}

// actualTotal sums the snapshotted stakes of the voters approving the slot
// of the candidate since its registration.
func (c *Council) actualTotal(voters []string, info RegisterInfo) (total common.Amount, err error) {
	var stakes []common.Amount
	if stakes, err = c.StakeSnapshot(); err != nil {
		return
	}

	for i, voter := range voters {
		if i >= len(stakes) {
			break
		}

		lastActive, isVoter, err := c.VoterLastActive(voter)
		if err != nil {
			return 0, err
		}
		if !isVoter || lastActive < info.VoteIndex {
			continue
		}

		approvals, err := c.ApprovalsOf(voter)
		if err != nil {
			return 0, err
		}
		if int(info.Slot) >= len(approvals) || !approvals[info.Slot] {
			continue
		}

		if total, err = total.Add(stakes[i]); err != nil {
			return 0, err
		}
	}

	return
}
